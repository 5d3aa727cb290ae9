// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RetrievalLookupsTotal tracks per-collection record lookups by outcome.
	RetrievalLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_lookups_total",
			Help: "Record store lookups by collection and outcome",
		},
		[]string{"collection", "outcome"},
	)

	// RetrievalDuration tracks the aggregate context assembly duration.
	RetrievalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retrieval_assembly_duration_seconds",
			Help:    "Context assembly duration across all collections",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	// LLMRequestDuration tracks completion request duration.
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "LLM completion request duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider", "status"},
	)

	// LLMTokensTotal tracks total LLM tokens processed.
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"provider", "direction"},
	)

	// MessagesTotal tracks conversation turns persisted, by role.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_total",
			Help: "Total conversation turns persisted",
		},
		[]string{"role"},
	)

	// RFQsCreatedTotal tracks RFQ documents created through the API.
	RFQsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rfqs_created_total",
			Help: "Total RFQs created",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordLookup records the outcome of a single collection lookup.
func RecordLookup(collection, outcome string) {
	RetrievalLookupsTotal.WithLabelValues(collection, outcome).Inc()
}

// RecordLLMRequest records metrics for a completion request.
func RecordLLMRequest(provider, status string, duration float64, tokensIn, tokensOut int) {
	LLMRequestDuration.WithLabelValues(provider, status).Observe(duration)
	LLMTokensTotal.WithLabelValues(provider, "in").Add(float64(tokensIn))
	LLMTokensTotal.WithLabelValues(provider, "out").Add(float64(tokensOut))
}
