// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package middleware

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/tomtom215/lenscape/internal/logging"
)

// Header names for request tracing.
const (
	RequestIDHeader     = "X-Request-ID"
	CorrelationIDHeader = "X-Correlation-ID"
)

// validTraceID limits inbound IDs to a safe charset and length so they can
// be logged and echoed without escaping.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID assigns every request a request ID and a correlation ID.
// Well-formed IDs from upstream proxies are reused; anything else is
// replaced with a fresh one. Both IDs are echoed in response headers and
// stored in the logging context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validTraceID.MatchString(requestID) {
			requestID = uuid.New().String()
		}

		correlationID := r.Header.Get(CorrelationIDHeader)
		if !validTraceID.MatchString(correlationID) {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
