// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"context"
	"net/http"
	"time"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// HealthLive reports that the process is up, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 only when the database responds to a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	dbConnected := h.db != nil && h.db.Ping(ctx) == nil

	data := map[string]interface{}{
		"database_connected": dbConnected,
		"ready_to_serve":     dbConnected,
		"uptime":             time.Since(h.startTime).Seconds(),
	}
	if h.assist != nil {
		data["assist_breaker"] = h.assist.BreakerState()
	}

	rw := NewResponseWriter(w, r)
	if !dbConnected {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service is not ready", data)
		return
	}
	rw.Success(data)
}
