package postgres

import (
	"context"
	"fmt"
	"spotQuest/domain"

	"gorm.io/gorm"
)

type SaveRepository struct {
	DB *gorm.DB
}

func NewSaveRepository(db *gorm.DB) *SaveRepository {
	return &SaveRepository{
		DB: db,
	}
}

// FindByUser returns the user's saves oldest first with Place preloaded.
// Compatibility tie-breaks depend on this order.
func (r *SaveRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Save, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var saves []domain.Save
	err := r.DB.WithContext(ctx).
		Preload("Place").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&saves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find saves: %w", err)
	}

	return saves, nil
}
