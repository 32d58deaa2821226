// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey     contextKey = "request_id"
	correlationIDKey contextKey = "correlation_id"
	userKey          contextKey = "user"
)

// GenerateCorrelationID creates a short ID that ties together the log lines of
// one logical operation, such as a coalesced generation shared by several
// requests.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// ContextWithCorrelationID returns a new context carrying the correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context carrying the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithUser returns a new context carrying the authenticated username
// so that it appears on every log line written through Ctx.
func ContextWithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey, username)
}

// UserFromContext returns the username stored by ContextWithUser.
func UserFromContext(ctx context.Context) string {
	if u, ok := ctx.Value(userKey).(string); ok {
		return u
	}
	return ""
}

// Ctx returns a logger with request_id, correlation_id and user added from
// ctx when present.
//
//	logging.Ctx(ctx).Info().Str("type", "caption").Msg("Assist request")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := Logger().With()
	if id := RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	if u := UserFromContext(ctx); u != "" {
		logCtx = logCtx.Str("user", u)
	}
	logger := logCtx.Logger()
	return &logger
}
