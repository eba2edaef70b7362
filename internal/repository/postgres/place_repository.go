package postgres

import (
	"context"
	"errors"
	"fmt"
	"spotQuest/domain"

	"gorm.io/gorm"
)

type PlaceRepository struct {
	DB *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{
		DB: db,
	}
}

func (r *PlaceRepository) FindByID(ctx context.Context, id uint) (domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return domain.Place{}, fmt.Errorf("context error: %w", err)
	}

	var place domain.Place

	err := r.DB.WithContext(ctx).First(&place, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Place{}, domain.Errorf(domain.ErrNotFound, "place not found")
		}
		return domain.Place{}, fmt.Errorf("failed to find place: %w", err)
	}

	return place, nil
}
