package user

import (
	"context"
	"errors"
	"fmt"
	"spotQuest/domain"
	"spotQuest/pkg/logger"
)

// UserRepository contract interface
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// FriendshipRepository contract interface
type FriendshipRepository interface {
	AreFriends(ctx context.Context, userID, otherID uint) (bool, error)
}

type userService struct {
	userRepo       UserRepository
	friendshipRepo FriendshipRepository
}

func NewUserService(userRepo UserRepository, friendshipRepo FriendshipRepository) *userService {
	return &userService{
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.User{}, domain.Errorf(domain.ErrInvalidInput, "invalid user id")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to get user by ID", err)
		}
		return domain.User{}, err
	}

	return user, nil
}

// RequireFriend succeeds only when friendID exists and has an accepted
// friendship with userID, in either direction.
func (s *userService) RequireFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return domain.Errorf(domain.ErrInvalidInput, "cannot compare with yourself")
	}

	if _, err := s.GetUserByID(ctx, friendID); err != nil {
		return err
	}

	ok, err := s.friendshipRepo.AreFriends(ctx, userID, friendID)
	if err != nil {
		logger.Error("Failed to check friendship", "user_id", userID, "friend_id", friendID, "error", err)
		return err
	}
	if !ok {
		return domain.Errorf(domain.ErrForbidden, "not friends")
	}

	return nil
}
