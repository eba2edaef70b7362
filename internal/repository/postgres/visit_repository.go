package postgres

import (
	"context"
	"fmt"
	"spotQuest/domain"

	"gorm.io/gorm"
)

type VisitRepository struct {
	DB *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{
		DB: db,
	}
}

// FindByUser returns the user's visits oldest first with Place preloaded.
func (r *VisitRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Visit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var visits []domain.Visit
	err := r.DB.WithContext(ctx).
		Preload("Place").
		Where("user_id = ?", userID).
		Order("verified_at ASC").
		Order("id ASC").
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find visits: %w", err)
	}

	return visits, nil
}

func (r *VisitRepository) Exists(ctx context.Context, userID, placeID uint) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Visit{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check visit: %w", err)
	}

	return count > 0, nil
}
