package prometheus

import (
	"time"

	"github.com/anlewis/rails-engine/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Search metrics
	SearchOperationsCounter prometheus.CounterVec
	SearchMissesCounter     prometheus.CounterVec
	RandomFallbackCounter   prometheus.Counter

	// Relationship metrics
	RelationLookupsCounter prometheus.CounterVec

	// Aggregation metrics
	FavoriteMerchantCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	SearchOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_search_operations_total",
			Help: "Total number of find/find_all searches",
		},
		[]string{"entity", "mode"},
	)

	SearchMissesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_search_misses_total",
			Help: "Total number of searches that matched no record",
		},
		[]string{"entity"},
	)

	RandomFallbackCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_search_random_fallback_total",
			Help: "Total number of searches served by the random-record fallback",
		},
	)

	RelationLookupsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_relation_lookups_total",
			Help: "Total number of relationship listings",
		},
		[]string{"owner", "relation"},
	)

	FavoriteMerchantCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_favorite_merchant_total",
			Help: "Total number of favorite merchant aggregations",
		},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSearch increments the counter for a search entrypoint
func RecordSearch(entity string, mode string) {
	SearchOperationsCounter.WithLabelValues(entity, mode).Inc()
}

// RecordSearchMiss increments the counter for searches that found nothing
func RecordSearchMiss(entity string) {
	SearchMissesCounter.WithLabelValues(entity).Inc()
}

// RecordRelationLookup increments the counter for relationship listings
func RecordRelationLookup(owner string, relation string) {
	RelationLookupsCounter.WithLabelValues(owner, relation).Inc()
}
