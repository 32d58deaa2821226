// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/logging"
	"github.com/tomtom215/lenscape/internal/metrics"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Endpoint-specific rate limits.
var (
	// RateLimitLogin is strict to slow down credential guessing.
	RateLimitLogin = RateLimitConfig{Requests: 5, Window: 5 * time.Minute}

	// RateLimitHealth is permissive for monitoring probes.
	RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Correlation-ID"},
		AllowCredentials: false,
		MaxAge:           cfg.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: cfg,
		cors:   corsHandler,
	}
}

// NewChiMiddlewareFromConfig builds the middleware factory from security settings.
func NewChiMiddlewareFromConfig(sec *config.SecurityConfig) *ChiMiddleware {
	return NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: sec.CORSOrigins,
		CORSMaxAge:         86400,
		RateLimitRequests:  sec.RateLimitReqs,
		RateLimitWindow:    sec.RateLimitWindow,
		RateLimitDisabled:  sec.RateLimitDisabled,
	})
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the default per-IP limiter for API routes.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.config.RateLimitRequests,
		Window:   m.config.RateLimitWindow,
	})
}

// RateLimitLogin returns the strict limiter for the login endpoint.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitLogin)
}

// RateLimitHealth returns the permissive limiter for health probes.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// RateLimitCustom returns a per-IP limiter that answers with the standard
// error envelope and counts rejections.
func (m *ChiMiddleware) RateLimitCustom(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled || cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		endpoint = rctx.RoutePattern()
	}
	metrics.RecordRateLimitHit(endpoint)
	logging.Ctx(r.Context()).Warn().Str("endpoint", endpoint).Msg("Rate limit exceeded")
	NewResponseWriter(w, r).TooManyRequests("Rate limit exceeded, try again later")
}

// APISecurityHeaders adds security headers to API responses. HSTS is only
// sent when the request arrived over TLS or a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Cache-Control", "no-store")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
