package postgres

import (
	"context"
	"fmt"
	"spotQuest/domain"

	"gorm.io/gorm"
)

type FriendshipRepository struct {
	DB *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{
		DB: db,
	}
}

// AreFriends reports an accepted friendship in either direction.
func (r *FriendshipRepository) AreFriends(ctx context.Context, userID, otherID uint) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("status = ?", domain.FriendshipStatusAccepted).
		Where(
			r.DB.Where("sender_id = ? AND receiver_id = ?", userID, otherID).
				Or("sender_id = ? AND receiver_id = ?", otherID, userID),
		).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}

	return count > 0, nil
}

// CountAccepted counts accepted friendships where the user is either side.
func (r *FriendshipRepository) CountAccepted(ctx context.Context, userID uint) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)", domain.FriendshipStatusAccepted, userID, userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count friendships: %w", err)
	}

	return count, nil
}
