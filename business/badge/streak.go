package badge

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// DayStreak counts consecutive UTC calendar days with activity, walking back
// from the most recent active day and stopping at the first gap.
func DayStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := d.UTC().Truncate(24 * time.Hour)
		key := day.Format(dateLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}

	return streak
}
