// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package middleware provides HTTP middleware shared by every route.

  - RequestID: assigns request and correlation IDs, echoes them in
    X-Request-ID and X-Correlation-ID, and stores them in the logging
    context so logging.Ctx picks them up
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labelled by chi route pattern

Both are plain func(http.Handler) http.Handler and mount with chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics reads the route pattern after the handler returns, so it
must be mounted on the router itself and not wrapped around it.
*/
package middleware
