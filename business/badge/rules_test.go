package badge

import (
	"testing"
	"time"

	"spotQuest/business/geozone"
)

func TestEveryDefinitionHasSelector(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Definitions() {
		if seen[def.Type] {
			t.Fatalf("duplicate badge type %q", def.Type)
		}
		seen[def.Type] = true

		if _, ok := selectors[def.Type]; !ok {
			t.Fatalf("badge type %q has no counter selector", def.Type)
		}
	}
	if len(selectors) != len(seen) {
		t.Fatalf("selectors: want=%d got=%d", len(seen), len(selectors))
	}
}

func TestNeighborhoodAllMatchesCatalog(t *testing.T) {
	for _, def := range Definitions() {
		if def.Type == "neighborhood_all" && def.Requirement != geozone.Default().Len() {
			t.Fatalf("neighborhood_all: want=%d got=%d", geozone.Default().Len(), def.Requirement)
		}
	}
}

func TestQualifies(t *testing.T) {
	c := Counters{Visits: 10, Saves: 1, Streak: 3}
	earned := map[string]struct{}{"first_visit": {}}

	got := qualifies(c, earned)
	want := []string{"explorer_10", "first_save", "streak_3"}
	if len(got) != len(want) {
		t.Fatalf("qualifies: want=%v got=%v", want, got)
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Fatalf("qualifies[%d]: want=%q got=%q", i, want[i], got[i].Type)
		}
	}
}

func TestDayStreak(t *testing.T) {
	today := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	day := func(back int) time.Time { return today.AddDate(0, 0, -back) }

	cases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no activity", nil, 0},
		{"only today", []time.Time{today}, 1},
		{"same day twice", []time.Time{today, today.Add(-time.Hour)}, 1},
		{"five consecutive", []time.Time{day(0), day(1), day(2), day(3), day(4)}, 5},
		{"unordered input", []time.Time{day(2), day(0), day(1)}, 3},
		{"stops at gap", []time.Time{day(0), day(1), day(3), day(4), day(5)}, 2},
		{"counts from most recent day", []time.Time{day(4), day(5), day(6)}, 3},
		{"utc calendar days", []time.Time{
			time.Date(2026, 5, 10, 0, 30, 0, 0, time.UTC),
			time.Date(2026, 5, 9, 23, 30, 0, 0, time.UTC),
		}, 2},
		{"non-utc input is normalized", []time.Time{
			time.Date(2026, 5, 10, 20, 0, 0, 0, time.FixedZone("EDT", -4*3600)), // 11th UTC
			time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayStreak(tc.dates); got != tc.want {
				t.Fatalf("streak: want=%d got=%d", tc.want, got)
			}
		})
	}
}
