package compatibility

import (
	"math"
	"sort"
	"strings"

	"spotQuest/domain"
)

const (
	sharedPlaceWeight  = 50.0
	intentWeight       = 30.0
	priceWeight        = 10.0
	ratingWeight       = 10.0
	sharedPlaceCeiling = 5
	maxSharedIntents   = 3
	ratingTolerance    = 0.5
)

// Score compares two save histories. It is symmetric in SharedCount and in
// the intent overlap; SharedPlaces follows the order of mine.
func Score(mine, friend []domain.Save) domain.CompatibilityResult {
	res := domain.CompatibilityResult{
		SharedIntents: []string{},
		SharedPlaces:  []domain.SharedPlace{},
		NoData:        len(mine) == 0 && len(friend) == 0,
	}
	if res.NoData {
		return res
	}

	friendPlaces := make(map[string]struct{}, len(friend))
	for _, s := range friend {
		if id := externalID(s); id != "" {
			friendPlaces[id] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	for _, s := range mine {
		id := externalID(s)
		if id == "" {
			continue
		}
		if _, ok := friendPlaces[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		res.SharedPlaces = append(res.SharedPlaces, domain.SharedPlace{
			ExternalID: id,
			Name:       s.Place.Name,
			PhotoURL:   s.Place.PhotoURL,
			Intent:     s.Intent,
		})
	}
	res.SharedCount = len(res.SharedPlaces)

	jaccard, shared := intentOverlap(mine, friend)
	res.SharedIntents = shared

	myPrice, friendPrice := priceMode(mine), priceMode(friend)
	priceMatch := myPrice != nil && friendPrice != nil && *myPrice == *friendPrice
	if priceMatch {
		p := strings.Repeat("$", *myPrice)
		res.SharedPrice = &p
	}

	myRating, okMine := avgRating(mine)
	friendRating, okFriend := avgRating(friend)
	ratingMatch := okMine && okFriend && math.Abs(myRating-friendRating) <= ratingTolerance

	score := math.Min(float64(res.SharedCount)/sharedPlaceCeiling, 1)*sharedPlaceWeight +
		jaccard*intentWeight
	if priceMatch {
		score += priceWeight
	}
	if ratingMatch {
		score += ratingWeight
	}

	res.Score = clamp(int(math.Round(score)), 0, 100)

	return res
}

func externalID(s domain.Save) string {
	if s.Place == nil {
		return ""
	}
	return s.Place.ExternalID
}

// intentOverlap returns the Jaccard index of the two distinct-intent sets and
// the intersecting intents ranked by combined frequency, capped at three.
func intentOverlap(mine, friend []domain.Save) (float64, []string) {
	freqMine := intentFrequency(mine)
	freqFriend := intentFrequency(friend)

	union := len(freqMine)
	shared := make([]string, 0)
	for intent := range freqFriend {
		if _, ok := freqMine[intent]; ok {
			shared = append(shared, intent)
		} else {
			union++
		}
	}
	if union == 0 {
		return 0, shared
	}

	jaccard := float64(len(shared)) / float64(union)

	sort.Slice(shared, func(i, j int) bool {
		ci := freqMine[shared[i]] + freqFriend[shared[i]]
		cj := freqMine[shared[j]] + freqFriend[shared[j]]
		if ci != cj {
			return ci > cj
		}
		return shared[i] < shared[j]
	})
	if len(shared) > maxSharedIntents {
		shared = shared[:maxSharedIntents]
	}

	return jaccard, shared
}

func intentFrequency(saves []domain.Save) map[string]int {
	freq := make(map[string]int)
	for _, s := range saves {
		if s.Intent == "" {
			continue
		}
		freq[s.Intent]++
	}
	return freq
}

// priceMode returns the most frequent non-null price level. On a tie the
// level seen first wins.
func priceMode(saves []domain.Save) *int {
	counts := make(map[int]int)
	order := make([]int, 0)
	for _, s := range saves {
		if s.Place == nil || s.Place.PriceLevel == nil {
			continue
		}
		lvl := *s.Place.PriceLevel
		if counts[lvl] == 0 {
			order = append(order, lvl)
		}
		counts[lvl]++
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, lvl := range order[1:] {
		if counts[lvl] > counts[best] {
			best = lvl
		}
	}

	return &best
}

func avgRating(saves []domain.Save) (float64, bool) {
	var sum float64
	var n int
	for _, s := range saves {
		if s.Place == nil || s.Place.Rating == nil {
			continue
		}
		sum += *s.Place.Rating
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
