// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package api provides the HTTP API on a chi router.

# Routes

	GET    /api/v1/health/live            liveness, no dependencies
	GET    /api/v1/health/ready           readiness, pings the database
	POST   /api/v1/auth/login             admin login, returns a JWT
	GET    /api/v1/feed                   ranked feed (limit, offset, days)
	POST   /api/v1/works                  publish a work
	GET    /api/v1/works/{id}             fetch a work
	POST   /api/v1/works/{id}/likes       engagement counters
	POST   /api/v1/works/{id}/comments
	POST   /api/v1/works/{id}/views
	GET    /api/v1/assist/types           supported assist types
	POST   /api/v1/assist/{type}          cached content generation
	GET    /api/v1/assist/stats           admin: telemetry and cache stats
	POST   /api/v1/assist/stats/reset     admin: zero telemetry
	DELETE /api/v1/assist/cache           admin: drop cached responses
	GET    /metrics                       Prometheus

Everything under /api/v1 except health and login requires a bearer token
(or the token cookie set by login) unless AUTH_MODE=none.

# Responses

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Assist errors map to statuses as follows: unknown type 404, rate limited
429, breaker open or provider not configured 503, any other provider
failure 502 EXTERNAL_SERVICE_FAILED. Validation failures are 400
VALIDATION_ERROR.
*/
package api
