package compatibility

import (
	"context"
	"fmt"

	"spotQuest/domain"
	"spotQuest/pkg/logger"
	"spotQuest/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// SaveRepository contract interface
type SaveRepository interface {
	// FindByUser returns every save of the user with Place preloaded,
	// oldest first.
	FindByUser(ctx context.Context, userID uint) ([]domain.Save, error)
}

// FriendGate rejects pairs that are not accepted friends.
type FriendGate interface {
	RequireFriend(ctx context.Context, userID, friendID uint) error
}

type compatibilityService struct {
	saveRepo   SaveRepository
	friendGate FriendGate
}

func NewCompatibilityService(saveRepo SaveRepository, friendGate FriendGate) *compatibilityService {
	return &compatibilityService{
		saveRepo:   saveRepo,
		friendGate: friendGate,
	}
}

func (s *compatibilityService) Compatibility(ctx context.Context, userID, friendID uint) (domain.CompatibilityResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("context error: %w", err)
	}

	if err := s.friendGate.RequireFriend(ctx, userID, friendID); err != nil {
		return domain.CompatibilityResult{}, err
	}

	var mine, theirs []domain.Save

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		saves, err := s.saveRepo.FindByUser(gctx, userID)
		mine = saves
		return err
	})
	g.Go(func() error {
		saves, err := s.saveRepo.FindByUser(gctx, friendID)
		theirs = saves
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load saves for compatibility", "user_id", userID, "friend_id", friendID, "error", err)
		return domain.CompatibilityResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("context error: %w", err)
	}

	res := Score(mine, theirs)
	if !res.NoData {
		metrics.CompatibilityScores.Observe(float64(res.Score))
	}

	return res, nil
}
