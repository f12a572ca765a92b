package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts search operations by kind (global, advanced, autocomplete).
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "searches_total",
			Help:      "Total number of search operations",
		},
		[]string{"operation"},
	)

	// FanoutDuration observes the duration of the strategy fan-out step.
	FanoutDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchapi",
			Name:      "fanout_duration_seconds",
			Help:      "Strategy fan-out duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	// StrategyFailures counts recovered per-strategy failures by entity type.
	StrategyFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "strategy_failures_total",
			Help:      "Total number of recovered strategy failures",
		},
		[]string{"entity_type"},
	)

	// FacetCacheTotal counts facet cache lookups by outcome (hit, miss, error).
	FacetCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "facet_cache_total",
			Help:      "Facet cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

// RegisterSearchMetrics registers search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(FanoutDuration)
	prometheus.MustRegister(StrategyFailures)
	prometheus.MustRegister(FacetCacheTotal)
}
