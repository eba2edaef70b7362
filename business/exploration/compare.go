package exploration

import (
	"spotQuest/business/geozone"
	"spotQuest/domain"
)

// Compare aggregates both users over the same catalog and classifies every
// zone into exactly one of shared / only user / only friend / neither.
// Swapping the arguments swaps OnlyUser and OnlyFriend and nothing else.
func Compare(userVisits, friendVisits []domain.Visit, idx *geozone.Index) domain.ExplorationComparison {
	user := Stats(userVisits, idx)
	friend := Stats(friendVisits, idx)

	cmp := domain.ExplorationComparison{
		User:   user,
		Friend: friend,
		Zones:  make([]domain.ZoneComparison, len(user.Neighborhoods)),
	}

	for i := range user.Neighborhoods {
		u := user.Neighborhoods[i]
		f := friend.Neighborhoods[i]

		switch {
		case u.Explored && f.Explored:
			cmp.Shared++
		case u.Explored:
			cmp.OnlyUser++
		case f.Explored:
			cmp.OnlyFriend++
		default:
			cmp.Neither++
		}

		cmp.Zones[i] = domain.ZoneComparison{
			Name:           u.Name,
			Area:           u.Area,
			UserExplored:   u.Explored,
			FriendExplored: f.Explored,
		}
	}

	return cmp
}
