package postgres

import (
	"context"
	"fmt"
	"spotQuest/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

func (r *RecommendationRepository) CountSent(ctx context.Context, userID uint) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Recommendation{}).
		Where("sender_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recommendations: %w", err)
	}

	return count, nil
}
