// Package metrics provides Prometheus metrics for the Freshdesk Solutions client.
// It tracks API request counts, latencies, upsert outcomes, and rate limiting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "freshdesk_solutions"
)

var (
	// APIRequestsTotal counts Solutions API requests by entity, method and status
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total Solutions API requests by entity, method and status",
	}, []string{"entity", "method", "status"})

	// APIRequestDuration measures Solutions API call latency
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Solutions API call latency by entity and method",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"entity", "method"})

	// APIErrors counts Solutions API errors by entity and error kind
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "Solutions API errors by entity and error kind",
	}, []string{"entity", "kind"})

	// TranslationUpserts counts translation upserts by entity and outcome
	TranslationUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "translation_upserts_total",
		Help:      "Translation upserts by entity and outcome (updated, created, skipped, failed)",
	}, []string{"entity", "outcome"})

	// TranslationFallbacks counts PUT-then-POST create fallbacks
	TranslationFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "translation_create_fallbacks_total",
		Help:      "Upserts that fell back to POST after a 404 on PUT",
	}, []string{"entity"})

	// RateLimitTrips counts one-way rate-limit gate trips
	RateLimitTrips = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_trips_total",
		Help:      "Times the rate-limit gate tripped after a 429",
	})

	// RateLimitSkips counts upserts skipped because the gate was tripped
	RateLimitSkips = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_skips_total",
		Help:      "Upserts skipped without a network call because the gate was tripped",
	}, []string{"entity"})

	// DedupSharedRequests counts list requests coalesced by the deduplicator
	DedupSharedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "dedup_shared_requests_total",
		Help:      "List requests that shared the result of an identical in-flight request",
	})
)

// RecordAPICall records a completed API call with its duration and outcome
func RecordAPICall(entity, method string, duration float64, success bool, kind string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(entity, method, status).Inc()
	APIRequestDuration.WithLabelValues(entity, method).Observe(duration)
	if kind != "" {
		APIErrors.WithLabelValues(entity, kind).Inc()
	}
}

// RecordUpsert records a translation upsert outcome
func RecordUpsert(entity, outcome string) {
	TranslationUpserts.WithLabelValues(entity, outcome).Inc()
}
