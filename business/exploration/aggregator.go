package exploration

import (
	"math"
	"sort"
	"time"

	"spotQuest/business/geozone"
	"spotQuest/domain"
)

type zoneBucket struct {
	explored   bool
	visitCount int
	places     map[uint]struct{}
	firstVisit *time.Time
}

// Stats buckets a user's visits into the catalog. Every declared
// neighborhood gets an entry, visited or not. Visits whose place has no
// coordinates, or that fall outside every zone, only count toward
// TotalVisits.
func Stats(visits []domain.Visit, idx *geozone.Index) domain.ExplorationSnapshot {
	zones := idx.Zones()
	buckets := make([]zoneBucket, len(zones))
	pos := make(map[string]int, len(zones))
	for i, z := range zones {
		pos[z.Name] = i
	}

	for _, v := range sortedByVerifiedAt(visits) {
		if !v.Place.HasCoordinates() {
			continue
		}

		zone, ok := idx.ZoneFor(*v.Place.Lat, *v.Place.Lng)
		if !ok {
			continue
		}

		b := &buckets[pos[zone.Name]]
		b.explored = true
		b.visitCount++
		if b.places == nil {
			b.places = make(map[uint]struct{})
		}
		b.places[v.PlaceID] = struct{}{}

		if b.firstVisit == nil || v.VerifiedAt.Before(*b.firstVisit) {
			at := v.VerifiedAt
			b.firstVisit = &at
		}
	}

	snap := domain.ExplorationSnapshot{
		Neighborhoods:      make([]domain.NeighborhoodStat, len(zones)),
		TotalNeighborhoods: len(zones),
		TotalVisits:        len(visits),
	}

	for i, z := range zones {
		b := buckets[i]
		snap.Neighborhoods[i] = domain.NeighborhoodStat{
			Name:             z.Name,
			Area:             z.Area,
			Explored:         b.explored,
			VisitCount:       b.visitCount,
			UniquePlaceCount: len(b.places),
			FirstVisitDate:   b.firstVisit,
		}
		if b.explored {
			snap.ExploredCount++
		}
	}

	snap.Percentage = percentage(snap.ExploredCount, snap.TotalNeighborhoods)

	return snap
}

// DetectNewNeighborhood decides whether place was the user's first-ever
// visit into its zone. visits must be the full visit set after the new
// visit was written; a cached count would report stale results.
func DetectNewNeighborhood(visits []domain.Visit, place *domain.Place, idx *geozone.Index) domain.NewNeighborhoodResult {
	snap := Stats(visits, idx)

	res := domain.NewNeighborhoodResult{
		TotalExplored:      snap.ExploredCount,
		TotalNeighborhoods: snap.TotalNeighborhoods,
	}

	if !place.HasCoordinates() {
		return res
	}

	zone, ok := idx.ZoneFor(*place.Lat, *place.Lng)
	if !ok {
		return res
	}

	for _, n := range snap.Neighborhoods {
		if n.Name != zone.Name {
			continue
		}
		if n.VisitCount == 1 {
			res.IsNewNeighborhood = true
			res.Neighborhood = &domain.NeighborhoodRef{Name: zone.Name, Area: zone.Area}
		}
		break
	}

	return res
}

func sortedByVerifiedAt(visits []domain.Visit) []domain.Visit {
	out := make([]domain.Visit, len(visits))
	copy(out, visits)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].VerifiedAt.Before(out[j].VerifiedAt)
	})
	return out
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
