package llm

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CallMetricsRecorder defines the interface for recording provider call metrics.
// It abstracts the metrics implementation so adapters can be tested with a
// recording mock instead of Prometheus.
type CallMetricsRecorder interface {
	// RecordCall records one completed API call and whether it succeeded.
	RecordCall(provider string, duration time.Duration, success bool)

	// RecordReplyLength records the length of a reply in characters.
	RecordReplyLength(provider string, length int)
}

// PrometheusCallMetrics implements CallMetricsRecorder using Prometheus metrics.
type PrometheusCallMetrics struct {
	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	replyLength  *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusCallMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateCounterVec gets an existing counter vector or creates a new one if it doesn't exist
func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

// getOrCreateHistogramVec gets an existing histogram vector or creates a new one if it doesn't exist
func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

// NewPrometheusCallMetrics returns the process-wide Prometheus recorder.
// Uses singleton pattern to avoid duplicate metric registration in tests.
func NewPrometheusCallMetrics() *PrometheusCallMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusCallMetrics{
			callsTotal: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "llm_api_calls_total",
				Help: "Total number of language model API calls",
			}, []string{"provider", "status"}),
			callDuration: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "llm_api_call_duration_seconds",
				Help:    "Time taken by a language model API call",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider"}),
			replyLength: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "llm_reply_length_characters",
				Help:    "Distribution of reply lengths in characters (Unicode runes)",
				Buckets: []float64{50, 100, 250, 500, 1000, 2000, 4000, 8000},
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordCall implements CallMetricsRecorder.RecordCall
func (p *PrometheusCallMetrics) RecordCall(provider string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.callsTotal.WithLabelValues(provider, status).Inc()
	p.callDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordReplyLength implements CallMetricsRecorder.RecordReplyLength
func (p *PrometheusCallMetrics) RecordReplyLength(provider string, length int) {
	p.replyLength.WithLabelValues(provider).Observe(float64(length))
}
