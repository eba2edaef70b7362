package domain

import "time"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Neighborhood is a named circular zone.
type Neighborhood struct {
	Name         string  `json:"name"`
	Area         string  `json:"area"`
	Center       LatLng  `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
}

type NeighborhoodStat struct {
	Name             string     `json:"name"`
	Area             string     `json:"area"`
	Explored         bool       `json:"explored"`
	VisitCount       int        `json:"visit_count"`
	UniquePlaceCount int        `json:"unique_place_count"`
	FirstVisitDate   *time.Time `json:"first_visit_date"`
}

// ExplorationSnapshot holds one entry per declared neighborhood, in catalog
// order, whether or not it was visited.
type ExplorationSnapshot struct {
	Neighborhoods      []NeighborhoodStat `json:"neighborhoods"`
	ExploredCount      int                `json:"explored_count"`
	TotalNeighborhoods int                `json:"total_neighborhoods"`
	Percentage         int                `json:"percentage"`
	TotalVisits        int                `json:"total_visits"`
}

type NeighborhoodRef struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

type NewNeighborhoodResult struct {
	IsNewNeighborhood  bool             `json:"is_new_neighborhood"`
	Neighborhood       *NeighborhoodRef `json:"neighborhood"`
	TotalExplored      int              `json:"total_explored"`
	TotalNeighborhoods int              `json:"total_neighborhoods"`
}

type ZoneComparison struct {
	Name           string `json:"name"`
	Area           string `json:"area"`
	UserExplored   bool   `json:"user_explored"`
	FriendExplored bool   `json:"friend_explored"`
}

type ExplorationComparison struct {
	User       ExplorationSnapshot `json:"user"`
	Friend     ExplorationSnapshot `json:"friend"`
	Shared     int                 `json:"shared"`
	OnlyUser   int                 `json:"only_user"`
	OnlyFriend int                 `json:"only_friend"`
	Neither    int                 `json:"neither"`
	Zones      []ZoneComparison    `json:"zones"`
}

// NeighborhoodListing is a catalog entry, optionally with the distance from
// the caller's position.
type NeighborhoodListing struct {
	Neighborhood
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
