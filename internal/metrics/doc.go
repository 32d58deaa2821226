// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed by the HTTP server at /metrics in the Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by httprate (counter)
    Labels: endpoint

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type (first 50 characters of the error)

Assist Metrics:
  - assist_calls_total: Assist calls (counter)
    Labels: type, outcome (hit, miss, error)
  - assist_generation_duration_seconds: Upstream generation latency (histogram)
    Labels: type
  - assist_coalesced_requests_total: Misses served by an in-flight generation
  - assist_rate_limited_total: Generations refused by the upstream limiter

Response Cache Metrics:
  - response_cache_entries: Entries currently cached (gauge)
  - response_cache_evictions_total: Capacity evictions (counter)
  - response_cache_expirations_total: TTL purges (counter)
    Labels: cache

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

Feed Metrics:
  - feed_rank_duration_seconds: Scoring and sorting time (histogram)
  - feed_candidates: Candidates per ranking pass (histogram)

Auth Metrics:
  - auth_login_attempts_total: Login attempts (counter)
    Labels: result

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "works", time.Since(start), err)

	metrics.RecordAssistCall("caption", hit, false)

# Thread Safety

All functions are safe for concurrent use; the underlying Prometheus
collectors handle their own synchronization.
*/
package metrics
