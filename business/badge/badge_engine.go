package badge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spotQuest/business/exploration"
	"spotQuest/business/geozone"
	"spotQuest/domain"
	"spotQuest/pkg/logger"
	"spotQuest/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxParallelInserts = 4

// VisitRepository contract interface
type VisitRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.Visit, error)
}

// SaveRepository contract interface
type SaveRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.Save, error)
}

// FriendshipRepository contract interface
type FriendshipRepository interface {
	// CountAccepted counts accepted friendships in either direction.
	CountAccepted(ctx context.Context, userID uint) (int64, error)
}

// RecommendationRepository contract interface
type RecommendationRepository interface {
	CountSent(ctx context.Context, userID uint) (int64, error)
}

// BadgeRepository contract interface
type BadgeRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.EarnedBadge, error)
	// Insert returns domain.ErrDuplicate when the user already holds the badge.
	Insert(ctx context.Context, badge *domain.EarnedBadge) error
}

// Notifier is told about badges after they are persisted.
type Notifier interface {
	BadgesEarned(ctx context.Context, userID uint, badges []domain.BadgeDefinition) error
}

type badgeEngine struct {
	visitRepo          VisitRepository
	saveRepo           SaveRepository
	friendshipRepo     FriendshipRepository
	recommendationRepo RecommendationRepository
	badgeRepo          BadgeRepository
	zones              *geozone.Index
	notifier           Notifier
	now                func() time.Time
}

// NewBadgeEngine wires the engine. notifier may be nil.
func NewBadgeEngine(
	visitRepo VisitRepository,
	saveRepo SaveRepository,
	friendshipRepo FriendshipRepository,
	recommendationRepo RecommendationRepository,
	badgeRepo BadgeRepository,
	zones *geozone.Index,
	notifier Notifier,
) *badgeEngine {
	return &badgeEngine{
		visitRepo:          visitRepo,
		saveRepo:           saveRepo,
		friendshipRepo:     friendshipRepo,
		recommendationRepo: recommendationRepo,
		badgeRepo:          badgeRepo,
		zones:              zones,
		notifier:           notifier,
		now:                time.Now,
	}
}

// Evaluate awards every badge the user newly qualifies for and returns only
// the badges persisted by this call, in catalog order.
func (e *badgeEngine) Evaluate(ctx context.Context, userID uint) ([]domain.BadgeDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	counters, earned, err := e.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates := qualifies(counters, earnedSet(earned))
	if len(candidates) == 0 {
		return []domain.BadgeDefinition{}, nil
	}

	awarded := make([]bool, len(candidates))

	// one failed insert must not stop the others, so no shared cancellation
	var g errgroup.Group
	g.SetLimit(maxParallelInserts)
	for i, def := range candidates {
		g.Go(func() error {
			awarded[i] = e.award(ctx, userID, def, counters)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.BadgeDefinition, 0, len(candidates))
	for i, def := range candidates {
		if awarded[i] {
			out = append(out, def)
		}
	}

	if len(out) > 0 && e.notifier != nil {
		if err := e.notifier.BadgesEarned(ctx, userID, out); err != nil {
			logger.Warn("Failed to notify earned badges", "user_id", userID, "error", err)
		}
	}

	return out, nil
}

// List returns the whole catalog with the user's earned state and progress.
func (e *badgeEngine) List(ctx context.Context, userID uint) ([]domain.BadgeStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	counters, earned, err := e.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	earnedAt := make(map[string]time.Time, len(earned))
	for _, b := range earned {
		earnedAt[b.BadgeType] = b.EarnedAt
	}

	out := make([]domain.BadgeStatus, 0, len(definitions))
	for _, def := range definitions {
		st := domain.BadgeStatus{BadgeDefinition: def}
		if v, ok := progress(def.Type, counters); ok {
			st.Progress = min(v, def.Requirement)
		}
		if at, ok := earnedAt[def.Type]; ok {
			st.Earned = true
			st.EarnedAt = &at
			st.Progress = def.Requirement
		}
		out = append(out, st)
	}

	return out, nil
}

// award inserts one badge and reports whether this call persisted it.
func (e *badgeEngine) award(ctx context.Context, userID uint, def domain.BadgeDefinition, c Counters) bool {
	badge := &domain.EarnedBadge{
		ID:        uuid.NewString(),
		UserID:    userID,
		BadgeType: def.Type,
		EarnedAt:  e.now().UTC(),
		Metadata:  c.snapshot(),
	}

	err := e.badgeRepo.Insert(ctx, badge)
	switch {
	case err == nil:
		metrics.BadgesAwarded.WithLabelValues(def.Type).Inc()
		logger.Info("badge awarded", "user_id", userID, "badge_type", def.Type)
		return true
	case errors.Is(err, domain.ErrDuplicate):
		metrics.BadgeInsertConflicts.Inc()
		logger.Debug("badge already held", "user_id", userID, "badge_type", def.Type)
		return false
	default:
		metrics.BadgeInsertFailures.Inc()
		logger.Error("Failed to insert earned badge", "user_id", userID, "badge_type", def.Type, "error", err)
		return false
	}
}

// load reads the counters and the earned set concurrently. Any failure
// fails the whole evaluation.
func (e *badgeEngine) load(ctx context.Context, userID uint) (Counters, []domain.EarnedBadge, error) {
	var (
		visits          []domain.Visit
		saves           []domain.Save
		friendCount     int64
		recommendations int64
		earned          []domain.EarnedBadge
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		visits, err = e.visitRepo.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		saves, err = e.saveRepo.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		friendCount, err = e.friendshipRepo.CountAccepted(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		recommendations, err = e.recommendationRepo.CountSent(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		earned, err = e.badgeRepo.FindByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load badge counters", "user_id", userID, "error", err)
		return Counters{}, nil, err
	}
	if err := ctx.Err(); err != nil {
		return Counters{}, nil, fmt.Errorf("context error: %w", err)
	}

	return e.count(visits, saves, int(friendCount), int(recommendations)), earned, nil
}

func (e *badgeEngine) count(visits []domain.Visit, saves []domain.Save, friendCount, recommendations int) Counters {
	places := make(map[uint]struct{}, len(visits))
	dates := make([]time.Time, 0, len(visits)+len(saves))
	for _, v := range visits {
		places[v.PlaceID] = struct{}{}
		dates = append(dates, v.VerifiedAt)
	}

	intentSet := make(map[string]struct{})
	for _, s := range saves {
		if s.Intent != "" {
			intentSet[s.Intent] = struct{}{}
		}
		dates = append(dates, s.CreatedAt)
	}

	return Counters{
		Visits:          len(places),
		Neighborhoods:   exploration.Stats(visits, e.zones).ExploredCount,
		Friends:         friendCount,
		Recommendations: recommendations,
		Saves:           len(saves),
		Intents:         len(intentSet),
		Streak:          DayStreak(dates),
	}
}

func earnedSet(earned []domain.EarnedBadge) map[string]struct{} {
	set := make(map[string]struct{}, len(earned))
	for _, b := range earned {
		set[b.BadgeType] = struct{}{}
	}
	return set
}
