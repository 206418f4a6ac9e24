package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Filter engine metrics
	FilterEvaluations *prometheus.CounterVec
	FilterResultSize  *prometheus.HistogramVec
	FilterLatency     *prometheus.HistogramVec

	// Catalog cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Outbox related metrics
	OutboxEventsProcessed   prometheus.Counter
	OutboxEventsFailed      prometheus.Counter
	OutboxProcessingLatency prometheus.Histogram

	// Geocoder metrics
	GeocodeRequests *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FilterEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_evaluations_total",
			Help:      "Filtered catalog queries served, by entity",
		}, []string{"entity"}),
		FilterResultSize: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_result_size",
			Help:      "Number of records passing the composite filter",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}, []string{"entity"}),
		FilterLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_duration_seconds",
			Help:      "Time spent applying the composite filter",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"entity"}),
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_hits_total",
			Help:      "Approved-catalog cache hits, by entity",
		}, []string{"entity"}),
		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_misses_total",
			Help:      "Approved-catalog cache misses, by entity",
		}, []string{"entity"}),
		OutboxEventsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_processed_total",
			Help:      "Total number of successfully processed outbox events",
		}),
		OutboxEventsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_failed_total",
			Help:      "Total number of failed outbox events",
		}),
		OutboxProcessingLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "outbox_processing_duration_seconds",
			Help:      "Time spent processing outbox events",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		GeocodeRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Forward geocoding requests, by outcome",
		}, []string{"status"}),
	}
}
