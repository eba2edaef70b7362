package postgres

import (
	"context"
	"errors"
	"fmt"
	"spotQuest/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{
		DB: db,
	}
}

func (r *BadgeRepository) FindByUser(ctx context.Context, userID uint) ([]domain.EarnedBadge, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var badges []domain.EarnedBadge
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find earned badges: %w", err)
	}

	return badges, nil
}

// Insert relies on the ux_user_badge index. A row that already exists yields
// domain.ErrDuplicate and leaves the stored row untouched.
func (r *BadgeRepository) Insert(ctx context.Context, badge *domain.EarnedBadge) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_type"}},
			DoNothing: true,
		},
	).Create(badge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.Errorf(domain.ErrDuplicate, "badge %s already earned", badge.BadgeType)
		}
		return fmt.Errorf("failed to insert earned badge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrDuplicate, "badge %s already earned", badge.BadgeType)
	}

	return nil
}
