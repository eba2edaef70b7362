package badge

import (
	"spotQuest/domain"

	"gorm.io/datatypes"
)

// Counters are the aggregate activity figures badges are judged on. They are
// recomputed on every evaluation.
type Counters struct {
	Visits          int `json:"visits"`
	Neighborhoods   int `json:"neighborhoods"`
	Friends         int `json:"friends"`
	Recommendations int `json:"recommendations"`
	Saves           int `json:"saves"`
	Intents         int `json:"intents"`
	Streak          int `json:"streak"`
}

// snapshot is stored on the earned badge row.
func (c Counters) snapshot() datatypes.JSONMap {
	return datatypes.JSONMap{
		"visits":          c.Visits,
		"neighborhoods":   c.Neighborhoods,
		"friends":         c.Friends,
		"recommendations": c.Recommendations,
		"saves":           c.Saves,
		"intents":         c.Intents,
		"streak":          c.Streak,
	}
}

type counterSelector func(Counters) int

func byVisits(c Counters) int          { return c.Visits }
func byNeighborhoods(c Counters) int   { return c.Neighborhoods }
func byFriends(c Counters) int         { return c.Friends }
func byRecommendations(c Counters) int { return c.Recommendations }
func bySaves(c Counters) int           { return c.Saves }
func byIntents(c Counters) int         { return c.Intents }
func byStreak(c Counters) int          { return c.Streak }

// definitions is the badge catalog in display order. Every Type must have an
// entry in selectors.
var definitions = []domain.BadgeDefinition{
	{Type: "first_visit", Name: "First Steps", Description: "Verify your first visit", Icon: "👣", Category: domain.BadgeCategoryExploration, Requirement: 1},
	{Type: "explorer_10", Name: "Explorer", Description: "Visit 10 different places", Icon: "🧭", Category: domain.BadgeCategoryExploration, Requirement: 10},
	{Type: "explorer_50", Name: "Trailblazer", Description: "Visit 50 different places", Icon: "🗺️", Category: domain.BadgeCategoryExploration, Requirement: 50},
	{Type: "neighborhood_3", Name: "Neighborhood Hopper", Description: "Explore 3 neighborhoods", Icon: "🏘️", Category: domain.BadgeCategoryExploration, Requirement: 3},
	{Type: "neighborhood_all", Name: "City Master", Description: "Explore every neighborhood", Icon: "🏙️", Category: domain.BadgeCategoryExploration, Requirement: 12},
	{Type: "first_friend", Name: "Plus One", Description: "Make your first friend", Icon: "🤝", Category: domain.BadgeCategorySocial, Requirement: 1},
	{Type: "social_butterfly", Name: "Social Butterfly", Description: "Have 5 friends", Icon: "🦋", Category: domain.BadgeCategorySocial, Requirement: 5},
	{Type: "recommender", Name: "Tastemaker", Description: "Send 5 recommendations", Icon: "💌", Category: domain.BadgeCategorySocial, Requirement: 5},
	{Type: "first_save", Name: "Bookmarked", Description: "Save your first place", Icon: "🔖", Category: domain.BadgeCategoryCollection, Requirement: 1},
	{Type: "curator", Name: "Curator", Description: "Save 25 places", Icon: "📚", Category: domain.BadgeCategoryCollection, Requirement: 25},
	{Type: "eclectic", Name: "Eclectic", Description: "Save places for 4 different intents", Icon: "🎨", Category: domain.BadgeCategoryCollection, Requirement: 4},
	{Type: "streak_3", Name: "On a Roll", Description: "Be active 3 days in a row", Icon: "🔥", Category: domain.BadgeCategoryStreak, Requirement: 3},
	{Type: "streak_7", Name: "Week Warrior", Description: "Be active 7 days in a row", Icon: "⚡", Category: domain.BadgeCategoryStreak, Requirement: 7},
}

// selectors maps a badge type to the one counter it is judged on. Adding a
// badge is an entry here plus a row in definitions.
var selectors = map[string]counterSelector{
	"first_visit":      byVisits,
	"explorer_10":      byVisits,
	"explorer_50":      byVisits,
	"neighborhood_3":   byNeighborhoods,
	"neighborhood_all": byNeighborhoods,
	"first_friend":     byFriends,
	"social_butterfly": byFriends,
	"recommender":      byRecommendations,
	"first_save":       bySaves,
	"curator":          bySaves,
	"eclectic":         byIntents,
	"streak_3":         byStreak,
	"streak_7":         byStreak,
}

// Definitions returns a copy of the badge catalog.
func Definitions() []domain.BadgeDefinition {
	out := make([]domain.BadgeDefinition, len(definitions))
	copy(out, definitions)
	return out
}

// progress reports the counter backing badgeType. Unknown types report false.
func progress(badgeType string, c Counters) (int, bool) {
	sel, ok := selectors[badgeType]
	if !ok {
		return 0, false
	}
	return sel(c), true
}

// qualifies lists the definitions met by c that are not in earned, in
// catalog order.
func qualifies(c Counters, earned map[string]struct{}) []domain.BadgeDefinition {
	var out []domain.BadgeDefinition
	for _, def := range definitions {
		if _, ok := earned[def.Type]; ok {
			continue
		}
		v, ok := progress(def.Type, c)
		if !ok {
			continue
		}
		if v >= def.Requirement {
			out = append(out, def)
		}
	}
	return out
}
