// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lenscape/internal/assist"
)

// Assist generates or returns cached content for the {type} in the path.
func (h *Handler) Assist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	callType := chi.URLParam(r, "type")
	if !assist.ValidType(callType) {
		rw.NotFound("Unknown assist type: " + callType)
		return
	}

	var body AssistRequest
	if err := decodeJSONBody(w, r, &body, true); err != nil {
		rw.BadRequest("Invalid request body: params must be a JSON object")
		return
	}

	result, err := h.assist.Assist(r.Context(), assist.Request{Type: callType, Params: body.Params})
	if err != nil {
		writeAssistError(rw, err)
		return
	}
	rw.Success(result)
}

// AssistTypes lists the supported assist types.
func (h *Handler) AssistTypes(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{"types": assist.Types()})
}

// AssistStats returns telemetry and cache statistics.
func (h *Handler) AssistStats(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.assist.Stats())
}

// AssistResetStats zeroes the telemetry counters.
func (h *Handler) AssistResetStats(w http.ResponseWriter, r *http.Request) {
	h.assist.ResetStats()
	NewResponseWriter(w, r).NoContent()
}

// AssistClearCache drops every cached response.
func (h *Handler) AssistClearCache(w http.ResponseWriter, r *http.Request) {
	h.assist.ClearCache()
	NewResponseWriter(w, r).NoContent()
}

// writeAssistError maps assist errors to HTTP statuses.
func writeAssistError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, assist.ErrUnknownType):
		rw.NotFound(err.Error())
	case errors.Is(err, assist.ErrRateLimited):
		rw.TooManyRequests("Assist rate limit exceeded, try again later")
	case errors.Is(err, assist.ErrUnavailable):
		rw.ServiceUnavailable("Assist provider is temporarily unavailable")
	case errors.Is(err, assist.ErrNotConfigured):
		rw.ServiceUnavailable("Assist provider is not configured")
	default:
		rw.ExternalServiceError("assist", err)
	}
}
