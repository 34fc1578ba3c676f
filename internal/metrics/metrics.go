package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Recording pipeline metrics
	recordingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recordings_created_total",
			Help: "Total number of recordings created",
		},
	)

	recordingUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recording_upload_bytes",
			Help:    "Size of uploaded recording audio in bytes",
			Buckets: prometheus.ExponentialBuckets(64*1024, 4, 8),
		},
	)

	recordingsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recordings_processed_total",
			Help: "Total number of processing messages handled, by outcome",
		},
		[]string{"outcome"},
	)

	emailsSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of emails sent",
		},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Cache lookups by result (hit, miss, error)",
		},
		[]string{"cache", "result"},
	)

	// Dependency health metrics
	dependencyHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_health",
			Help: "Health status of dependencies (1 = healthy, 0 = unhealthy)",
		},
		[]string{"dependency"},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordRecordingCreated counts a new recording and the size of its audio, if any
func RecordRecordingCreated(sizeBytes int64) {
	recordingsCreatedTotal.Inc()
	if sizeBytes > 0 {
		recordingUploadBytes.Observe(float64(sizeBytes))
	}
}

// RecordRecordingProcessed counts a processing message by how it was settled
func RecordRecordingProcessed(outcome string) {
	recordingsProcessedTotal.WithLabelValues(outcome).Inc()
}

// RecordEmailSent increments the sent email counter
func RecordEmailSent() {
	emailsSentTotal.Inc()
}

// RecordCacheLookup counts a cache lookup
func RecordCacheLookup(cache, result string) {
	cacheLookupsTotal.WithLabelValues(cache, result).Inc()
}

// SetDependencyHealth sets the health status of a dependency
func SetDependencyHealth(dependency string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	dependencyHealth.WithLabelValues(dependency).Set(value)
}

// MetricsHandler returns the Prometheus metrics handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
