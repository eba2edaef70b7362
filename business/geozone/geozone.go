package geozone

import (
	"fmt"
	"math"

	"spotQuest/domain"
)

const earthRadiusMeters = 6371000.0

// Index is the read-only neighborhood catalog. It is built once at startup
// and shared by every request; nothing mutates it after New returns.
type Index struct {
	zones []domain.Neighborhood
}

// New copies zones into an Index. Declaration order is kept because
// ZoneFor resolves overlaps by first match.
func New(zones []domain.Neighborhood) (*Index, error) {
	seen := make(map[string]struct{}, len(zones))
	out := make([]domain.Neighborhood, 0, len(zones))

	for _, z := range zones {
		if z.Name == "" {
			return nil, fmt.Errorf("neighborhood name is required")
		}
		if _, dup := seen[z.Name]; dup {
			return nil, fmt.Errorf("duplicate neighborhood %q", z.Name)
		}
		if z.RadiusMeters <= 0 {
			return nil, fmt.Errorf("neighborhood %q: radius must be positive", z.Name)
		}
		seen[z.Name] = struct{}{}
		out = append(out, z)
	}

	return &Index{zones: out}, nil
}

// ZoneFor returns the first neighborhood, in declaration order, whose circle
// contains the point. Overlapping zones are not ranked by distance.
func (idx *Index) ZoneFor(lat, lng float64) (domain.Neighborhood, bool) {
	for _, z := range idx.zones {
		if HaversineMeters(lat, lng, z.Center.Lat, z.Center.Lng) <= z.RadiusMeters {
			return z, true
		}
	}
	return domain.Neighborhood{}, false
}

// Zones returns a copy of the catalog in declaration order.
func (idx *Index) Zones() []domain.Neighborhood {
	out := make([]domain.Neighborhood, len(idx.zones))
	copy(out, idx.zones)
	return out
}

func (idx *Index) Len() int {
	return len(idx.zones)
}

// HaversineMeters is the great-circle distance between two points in meters.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	s1 := math.Sin(dPhi / 2)
	s2 := math.Sin(dLambda / 2)
	a := s1*s1 + math.Cos(phi1)*math.Cos(phi2)*s2*s2

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
