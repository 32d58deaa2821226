// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/lenscape/internal/logging"
	"github.com/tomtom215/lenscape/internal/metrics"
)

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/things/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/things/{id}", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/"+id, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("expected 418, got %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter); got != before+3 {
		t.Errorf("expected %f requests under the pattern label, got %f", before+3, got)
	}
}

func TestPrometheusMetrics_DefaultStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/ok", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected implicit 200 to be recorded, got %f", got-before)
	}
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	handler := PrometheusMetrics(http.NotFoundHandler())

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected unmatched request to be recorded, got %f", got-before)
	}
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var ctxRequestID, ctxCorrelationID string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxRequestID = logging.RequestIDFromContext(r.Context())
		ctxCorrelationID = logging.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headerID := rec.Header().Get(RequestIDHeader)
	if headerID == "" || headerID != ctxRequestID {
		t.Errorf("expected matching request IDs, header=%q ctx=%q", headerID, ctxRequestID)
	}
	if len(headerID) != 36 {
		t.Errorf("expected UUID request ID, got %q", headerID)
	}
	if ctxCorrelationID == "" || rec.Header().Get(CorrelationIDHeader) != ctxCorrelationID {
		t.Errorf("expected correlation ID in header and context, got %q", ctxCorrelationID)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	t.Parallel()

	var ctxRequestID, ctxCorrelationID string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxRequestID = logging.RequestIDFromContext(r.Context())
		ctxCorrelationID = logging.CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	req.Header.Set(CorrelationIDHeader, "trace.abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ctxRequestID != "upstream-123" {
		t.Errorf("expected upstream request ID, got %q", ctxRequestID)
	}
	if ctxCorrelationID != "trace.abc" {
		t.Errorf("expected upstream correlation ID, got %q", ctxCorrelationID)
	}
}

func TestRequestID_RejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []string{
		"has space",
		"line\nbreak",
		strings.Repeat("a", 65),
		`"quoted"`,
	}

	for _, bad := range tests {
		handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			if got := logging.RequestIDFromContext(r.Context()); got == bad {
				t.Errorf("malformed request ID %q was accepted", bad)
			}
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, bad)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
