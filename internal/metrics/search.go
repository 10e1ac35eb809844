package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studyfind",
			Name:      "search_duration_seconds",
			Help:      "Full search pipeline duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"density", "outcome"},
	)

	searchFanout = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "studyfind",
			Name:      "search_fanout_queries",
			Help:      "Number of decomposed remote queries per search",
			Buckets:   []float64{1, 2, 3, 5, 8},
		},
	)

	remoteQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyfind",
			Name:      "remote_queries_total",
			Help:      "Total number of remote study queries",
		},
		[]string{"outcome"},
	)

	resultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studyfind",
			Name:      "result_cache_total",
			Help:      "Result cache lookups by outcome",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(searchDuration)
	prometheus.MustRegister(searchFanout)
	prometheus.MustRegister(remoteQueriesTotal)
	prometheus.MustRegister(resultCacheTotal)
}

// ObserveSearch records one completed search invocation.
func ObserveSearch(d time.Duration, density, outcome string) {
	searchDuration.WithLabelValues(density, outcome).Observe(d.Seconds())
}

// ObserveFanout records the decomposed batch size of one search.
func ObserveFanout(n int) {
	searchFanout.Observe(float64(n))
}

// IncRemoteQuery counts one remote query by outcome ("ok"/"error").
func IncRemoteQuery(outcome string) {
	remoteQueriesTotal.WithLabelValues(outcome).Inc()
}

// ResultCacheCounter returns the cache hit/miss counter, passed into the
// cache repository explicitly.
func ResultCacheCounter() *prometheus.CounterVec {
	return resultCacheTotal
}
