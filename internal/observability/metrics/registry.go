// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// RateLimitedRequestsTotal counts requests rejected by the per-client limiter
	RateLimitedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Summarization metrics track the extractive engine
var (
	// SummarizationsTotal counts summarization requests by level, input source and status
	SummarizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarizations_total",
			Help: "Total number of summarization requests",
		},
		[]string{"level", "source", "status"}, // source: text, url; status: success, invalid, failure
	)

	// SummarizationDuration measures the time to produce one summary
	SummarizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to summarize one document",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"level"},
	)

	// SummaryReductionPercent observes the word reduction of produced summaries
	SummaryReductionPercent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_reduction_percent",
			Help:    "Distribution of summary word reduction in percent",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	// SummarizeBatchSize observes the number of documents per batch request
	SummarizeBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarize_batch_size",
			Help:    "Number of documents per batch summarization request",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	// SummarizeSupersededTotal counts session jobs discarded in favour of a newer one
	SummarizeSupersededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summarize_superseded_total",
			Help: "Total number of summarization results discarded because a newer request arrived",
		},
	)

	// KeyPointConfigReloadsTotal counts key point configuration reloads by status
	KeyPointConfigReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keypoint_config_reloads_total",
			Help: "Total number of key point configuration reload attempts",
		},
		[]string{"status"}, // status: applied, unchanged, failure
	)
)

// Content fetch metrics track URL ingestion
var (
	// ContentFetchAttemptsTotal counts content fetch attempts by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of content fetch attempts",
		},
		[]string{"result"}, // result: success, failure
	)

	// ContentFetchDuration measures time to fetch page content
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Time taken to fetch page content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	// ContentFetchSize measures fetched content size in bytes
	ContentFetchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "content_fetch_size_bytes",
			Help: "Fetched page content size in bytes",
			Buckets: []float64{
				100, 200, 400, 800, 1600, 3200, 6400, 12800,
				25600, 51200, 102400, 204800, 409600, 819200,
				1638400, 3276800, 6553600, 10485760, // up to 10MB
			},
		},
	)
)

// Resilience metrics track circuit breakers and retries around outbound calls
var (
	// CircuitBreakerState reports breaker state by name: 0 closed, 1 half-open, 2 open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	// RetriesTotal counts retried attempts by operation
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retries_total",
			Help: "Total number of retried outbound attempts",
		},
		[]string{"operation"},
	)
)

// Assistant and learning path metrics
var (
	// AssistantRequestsTotal counts assistant requests by operation and status
	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Total number of assistant requests",
		},
		[]string{"operation", "status"}, // operation: document_qa, website_chat; status: success, fallback, invalid
	)

	// LearningPathsGeneratedTotal counts generated learning paths by template
	LearningPathsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_paths_generated_total",
			Help: "Total number of generated learning paths",
		},
		[]string{"template"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordRateLimited records a request rejected by the rate limiter
func RecordRateLimited() {
	RateLimitedRequestsTotal.Inc()
}

// RecordBreakerState records the current state of a named circuit breaker
func RecordBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordRetry records one retried attempt of an operation
func RecordRetry(operation string) {
	RetriesTotal.WithLabelValues(operation).Inc()
}
