package exploration

import (
	"context"
	"errors"
	"fmt"

	"spotQuest/business/geozone"
	"spotQuest/domain"
	"spotQuest/pkg/logger"
	"spotQuest/pkg/metrics"
	"spotQuest/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// VisitRepository contract interface
type VisitRepository interface {
	// FindByUser returns every visit of the user with Place preloaded.
	FindByUser(ctx context.Context, userID uint) ([]domain.Visit, error)
	Exists(ctx context.Context, userID, placeID uint) (bool, error)
}

// PlaceRepository contract interface
type PlaceRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Place, error)
}

// FriendGate rejects pairs that are not accepted friends.
type FriendGate interface {
	RequireFriend(ctx context.Context, userID, friendID uint) error
}

type explorationService struct {
	visitRepo  VisitRepository
	placeRepo  PlaceRepository
	friendGate FriendGate
	zones      *geozone.Index
}

func NewExplorationService(
	visitRepo VisitRepository,
	placeRepo PlaceRepository,
	friendGate FriendGate,
	zones *geozone.Index,
) *explorationService {
	return &explorationService{
		visitRepo:  visitRepo,
		placeRepo:  placeRepo,
		friendGate: friendGate,
		zones:      zones,
	}
}

func (s *explorationService) Stats(ctx context.Context, userID uint) (domain.ExplorationSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExplorationSnapshot{}, fmt.Errorf("context error: %w", err)
	}

	visits, err := s.visitRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load visits", "user_id", userID, "error", err)
		return domain.ExplorationSnapshot{}, err
	}

	// a deadline that fired mid-load must not yield a partial snapshot
	if err := ctx.Err(); err != nil {
		return domain.ExplorationSnapshot{}, fmt.Errorf("context error: %w", err)
	}

	return Stats(visits, s.zones), nil
}

// CheckNewNeighborhood runs right after a visit to placeID was recorded.
func (s *explorationService) CheckNewNeighborhood(ctx context.Context, userID, placeID uint) (domain.NewNeighborhoodResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.NewNeighborhoodResult{}, fmt.Errorf("context error: %w", err)
	}

	if placeID == 0 {
		return domain.NewNeighborhoodResult{}, domain.Errorf(domain.ErrInvalidInput, "placeId is required")
	}

	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to find place", "place_id", placeID, "error", err)
		}
		return domain.NewNeighborhoodResult{}, err
	}

	visited, err := s.visitRepo.Exists(ctx, userID, placeID)
	if err != nil {
		logger.Error("Failed to check visit", "user_id", userID, "place_id", placeID, "error", err)
		return domain.NewNeighborhoodResult{}, err
	}
	if !visited {
		return domain.NewNeighborhoodResult{}, domain.Errorf(domain.ErrNotFound, "no visit recorded for this place")
	}

	// read the full post-write set, never a cached counter
	visits, err := s.visitRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load visits", "user_id", userID, "error", err)
		return domain.NewNeighborhoodResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.NewNeighborhoodResult{}, fmt.Errorf("context error: %w", err)
	}

	res := DetectNewNeighborhood(visits, &place, s.zones)
	if res.IsNewNeighborhood {
		metrics.NewNeighborhoods.Inc()
		logger.Info("neighborhood unlocked",
			"user_id", userID,
			"neighborhood", res.Neighborhood.Name,
			"total_explored", res.TotalExplored,
		)
	}

	return res, nil
}

func (s *explorationService) Compare(ctx context.Context, userID, friendID uint) (domain.ExplorationComparison, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExplorationComparison{}, fmt.Errorf("context error: %w", err)
	}

	if err := s.friendGate.RequireFriend(ctx, userID, friendID); err != nil {
		return domain.ExplorationComparison{}, err
	}

	var userVisits, friendVisits []domain.Visit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.visitRepo.FindByUser(gctx, userID)
		userVisits = v
		return err
	})
	g.Go(func() error {
		v, err := s.visitRepo.FindByUser(gctx, friendID)
		friendVisits = v
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load visits for comparison", "user_id", userID, "friend_id", friendID, "error", err)
		return domain.ExplorationComparison{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.ExplorationComparison{}, fmt.Errorf("context error: %w", err)
	}

	return Compare(userVisits, friendVisits, s.zones), nil
}

// Neighborhoods lists the catalog. When near is set each entry carries its
// center's distance from that point, rounded to 0.1 km.
func (s *explorationService) Neighborhoods(near *domain.LatLng) []domain.NeighborhoodListing {
	zones := s.zones.Zones()
	out := make([]domain.NeighborhoodListing, len(zones))

	for i, z := range zones {
		out[i] = domain.NeighborhoodListing{Neighborhood: z}
		if near != nil {
			d := utils.RoundTo(utils.DistanceKm(near.Lat, near.Lng, z.Center.Lat, z.Center.Lng), 1)
			out[i].DistanceKm = &d
		}
	}

	return out
}
