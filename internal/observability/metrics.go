package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolverse_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// StoreQueryLatency records entity store latency by backend, operation and collection.
	StoreQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "toolverse_store_query_latency_seconds",
		Help:    "Entity store query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation", "collection"})

	// CatalogQueries counts filtered list queries by collection and whether any filter was applied.
	CatalogQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolverse_catalog_queries_total",
		Help: "Total number of catalog list queries",
	}, []string{"collection", "filtered"})

	// CacheResults counts cache lookups by cache name and result (hit, miss, error).
	CacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolverse_cache_results_total",
		Help: "Cache lookups by result",
	}, []string{"cache", "result"})

	// SubmissionsTotal counts user submissions by kind.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolverse_submissions_total",
		Help: "Total number of accepted submissions",
	}, []string{"kind"})

	// NotificationsPublished counts pub/sub publishes by channel and outcome.
	NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolverse_notifications_published_total",
		Help: "Total number of published notifications",
	}, []string{"channel", "status"})
)

// StoreMetrics records latency for one store backend.
type StoreMetrics struct {
	backend string
}

// NewStoreMetrics returns a StoreMetrics instance labelled with backend.
func NewStoreMetrics(backend string) *StoreMetrics {
	return &StoreMetrics{backend: backend}
}

// ObserveQuery records the latency of a store call.
func (m *StoreMetrics) ObserveQuery(operation, collection string, start time.Time) {
	StoreQueryLatency.WithLabelValues(m.backend, operation, collection).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *StoreMetrics) TrackQuery(operation, collection string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, collection, start)
	}
}

// RecordCatalogQuery counts a list query on collection.
func RecordCatalogQuery(collection string, filtered bool) {
	label := "false"
	if filtered {
		label = "true"
	}
	CatalogQueries.WithLabelValues(collection, label).Inc()
}
