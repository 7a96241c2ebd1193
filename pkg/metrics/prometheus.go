// Package metrics provides Prometheus metrics for the boxscore pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the boxscore service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Fetch metrics, labeled by remote endpoint
	fetchRequests *prometheus.CounterVec
	fetchFailures *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	fetchInFlight prometheus.Gauge

	// Corpus write metrics, labeled by record category
	recordsWritten *prometheus.CounterVec
	writeFailures  *prometheus.CounterVec

	// Day pipeline metrics
	daysCompleted prometheus.Counter
	daysFailed    prometheus.Counter
	daysInFlight  prometheus.Gauge
	playerBatches prometheus.Counter

	// Status listener metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Default buckets for request latency histograms, in milliseconds.
var defaultLatencyBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000} //nolint:gochecknoglobals

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "boxscore",
		subsystem:        "pipeline",
		histogramBuckets: defaultLatencyBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.fetchRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_requests_total",
			Help:      "Total number of upstream fetch requests by endpoint",
		},
		[]string{"endpoint"},
	)

	m.fetchFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_failures_total",
			Help:      "Total number of failed upstream fetches by endpoint",
		},
		[]string{"endpoint"},
	)

	m.fetchDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_duration_milliseconds",
			Help:      "Upstream fetch duration in milliseconds by endpoint",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint"},
	)

	m.fetchInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_in_flight",
		Help:      "Number of upstream fetches currently in flight",
	})

	m.recordsWritten = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records_written_total",
			Help:      "Total number of records persisted to the corpus by category",
		},
		[]string{"category"},
	)

	m.writeFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "write_failures_total",
			Help:      "Total number of failed corpus writes by category",
		},
		[]string{"category"},
	)

	m.daysCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_completed_total",
		Help:      "Total number of day pipelines that finished successfully",
	})

	m.daysFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_failed_total",
		Help:      "Total number of day pipelines that finished with an error",
	})

	m.daysInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_in_flight",
		Help:      "Number of day pipelines currently running",
	})

	m.playerBatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "player_batches_total",
		Help:      "Total number of player statsheet batches dispatched",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of status listener requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "Status listener request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordFetch increments the fetch counter for an endpoint.
func RecordFetch(endpoint string) {
	if !globalManager.enabled {
		return
	}
	globalManager.fetchRequests.WithLabelValues(endpoint).Inc()
}

// RecordFetchFailure increments the fetch failure counter for an endpoint.
func RecordFetchFailure(endpoint string) {
	if !globalManager.enabled {
		return
	}
	globalManager.fetchFailures.WithLabelValues(endpoint).Inc()
}

// RecordFetchDuration records fetch latency in milliseconds for an endpoint.
func RecordFetchDuration(endpoint string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.fetchDuration.WithLabelValues(endpoint).Observe(latencyMs)
}

// IncFetchInFlight increments the in-flight fetch gauge.
func IncFetchInFlight() {
	if !globalManager.enabled {
		return
	}
	globalManager.fetchInFlight.Inc()
}

// DecFetchInFlight decrements the in-flight fetch gauge.
func DecFetchInFlight() {
	if !globalManager.enabled {
		return
	}
	globalManager.fetchInFlight.Dec()
}

// RecordWrite increments the written records counter for a category.
func RecordWrite(category string) {
	if !globalManager.enabled {
		return
	}
	globalManager.recordsWritten.WithLabelValues(category).Inc()
}

// RecordWriteFailure increments the write failure counter for a category.
func RecordWriteFailure(category string) {
	if !globalManager.enabled {
		return
	}
	globalManager.writeFailures.WithLabelValues(category).Inc()
}

// RecordDayStarted increments the in-flight day gauge.
func RecordDayStarted() {
	if !globalManager.enabled {
		return
	}
	globalManager.daysInFlight.Inc()
}

// RecordDayCompleted marks a day pipeline as finished successfully.
func RecordDayCompleted() {
	if !globalManager.enabled {
		return
	}
	globalManager.daysInFlight.Dec()
	globalManager.daysCompleted.Inc()
}

// RecordDayFailed marks a day pipeline as finished with an error.
func RecordDayFailed() {
	if !globalManager.enabled {
		return
	}
	globalManager.daysInFlight.Dec()
	globalManager.daysFailed.Inc()
}

// RecordPlayerBatch increments the dispatched player batch counter.
func RecordPlayerBatch() {
	if !globalManager.enabled {
		return
	}
	globalManager.playerBatches.Inc()
}

// RecordHTTPRequest records a status listener request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records status listener request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
