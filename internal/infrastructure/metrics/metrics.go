// Package metrics provides Prometheus metrics for the orchestrator service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts inbound requests per endpoint and method.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Total requests",
		},
		[]string{"endpoint", "method"},
	)

	// RequestDuration observes wall-clock handler latency.
	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
	)

	// OllamaErrors counts backend call failures by type.
	OllamaErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ollama_errors_total",
			Help: "Ollama API errors",
		},
		[]string{"type"},
	)
)

// RecordRequest increments the request counter for an endpoint.
func RecordRequest(endpoint, method string) {
	RequestsTotal.WithLabelValues(endpoint, method).Inc()
}

// RecordOllamaError increments the backend error counter for a failure type.
func RecordOllamaError(errorType string) {
	OllamaErrors.WithLabelValues(errorType).Inc()
}
