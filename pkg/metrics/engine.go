package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Badges persisted by the badge engine, by badge type
	BadgesAwarded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_badges_awarded_total",
		Help: "Badges newly persisted by the badge engine",
	}, []string{"badge_type"})

	// Inserts rejected by the (user_id, badge_type) unique index
	BadgeInsertConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_badge_insert_conflicts_total",
		Help: "Badge inserts that lost a race to a concurrent evaluation",
	})

	BadgeInsertFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_badge_insert_failures_total",
		Help: "Badge inserts that failed for reasons other than a duplicate",
	})

	NewNeighborhoods = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_new_neighborhoods_total",
		Help: "First-ever visits into a neighborhood",
	})

	CompatibilityScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "engine_compatibility_score",
		Help:    "Distribution of computed compatibility scores",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	})
)

func Init() {
	prometheus.MustRegister(
		BadgesAwarded,
		BadgeInsertConflicts,
		BadgeInsertFailures,
		NewNeighborhoods,
		CompatibilityScores,
	)
}
