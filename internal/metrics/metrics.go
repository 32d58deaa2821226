// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Assist Metrics
	AssistCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assist_calls_total",
			Help: "Total number of assist calls by request type and outcome",
		},
		[]string{"type", "outcome"}, // outcome: "hit", "miss", "error"
	)

	AssistGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assist_generation_duration_seconds",
			Help:    "Duration of upstream content generation in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"type"},
	)

	AssistCoalescedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assist_coalesced_requests_total",
			Help: "Total number of assist misses served by an in-flight generation",
		},
	)

	AssistRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assist_rate_limited_total",
			Help: "Total number of generations rejected by the upstream rate limiter",
		},
	)

	// Response Cache Metrics
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "response_cache_entries",
			Help: "Current number of cached responses",
		},
		[]string{"cache"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_evictions_total",
			Help: "Total number of capacity evictions",
		},
		[]string{"cache"},
	)

	CacheExpirations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_expirations_total",
			Help: "Total number of entries purged after their TTL",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Feed Metrics
	FeedRankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_rank_duration_seconds",
			Help:    "Time spent scoring and sorting feed candidates",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	FeedCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_candidates",
			Help:    "Number of candidate works ranked per feed request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// Auth Metrics
	AuthLoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // "success", "failure"
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the HTTP rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// Assist call outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// RecordAssistCall records the outcome of one assist call.
func RecordAssistCall(callType string, hit, errored bool) {
	outcome := OutcomeMiss
	switch {
	case errored:
		outcome = OutcomeError
	case hit:
		outcome = OutcomeHit
	}
	AssistCallsTotal.WithLabelValues(callType, outcome).Inc()
}

// RecordAssistGeneration records the latency of one upstream generation.
func RecordAssistGeneration(callType string, duration time.Duration) {
	AssistGenerationDuration.WithLabelValues(callType).Observe(duration.Seconds())
}

// RecordAssistCoalesced records a miss that joined an in-flight generation.
func RecordAssistCoalesced() {
	AssistCoalescedTotal.Inc()
}

// RecordAssistRateLimited records a generation refused by the upstream limiter.
func RecordAssistRateLimited() {
	AssistRateLimited.Inc()
}

// UpdateCacheStats publishes the counters of a bounded cache. Evictions and
// expirations are cumulative, so only the delta since the last call is added.
func UpdateCacheStats(name string, entries int, evictionsDelta, expirationsDelta int64) {
	CacheEntries.WithLabelValues(name).Set(float64(entries))
	if evictionsDelta > 0 {
		CacheEvictions.WithLabelValues(name).Add(float64(evictionsDelta))
	}
	if expirationsDelta > 0 {
		CacheExpirations.WithLabelValues(name).Add(float64(expirationsDelta))
	}
}

// RecordFeedRank records one ranking pass over n candidates.
func RecordFeedRank(duration time.Duration, n int) {
	FeedRankDuration.Observe(duration.Seconds())
	FeedCandidates.Observe(float64(n))
}

// RecordLoginAttempt records a login attempt result.
func RecordLoginAttempt(success bool) {
	if success {
		AuthLoginAttempts.WithLabelValues("success").Inc()
		return
	}
	AuthLoginAttempts.WithLabelValues("failure").Inc()
}
