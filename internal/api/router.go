// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/lenscape/internal/auth"
	"github.com/tomtom215/lenscape/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. The handler's config supplies the CORS and
// rate limit settings.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware) *Router {
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: NewChiMiddlewareFromConfig(&handler.config.Security),
	}
}

// Setup builds the HTTP handler for every route.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes, in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(router.auth.Authenticate)

		r.Get("/feed", router.handler.Feed)

		r.Route("/works", func(r chi.Router) {
			r.Post("/", router.handler.CreateWork)
			r.Get("/{id}", router.handler.GetWork)
			r.Post("/{id}/likes", router.handler.LikeWork)
			r.Post("/{id}/comments", router.handler.CommentWork)
			r.Post("/{id}/views", router.handler.ViewWork)
		})

		r.Route("/assist", func(r chi.Router) {
			r.Get("/types", router.handler.AssistTypes)
			r.Post("/{type}", router.handler.Assist)

			r.Group(func(r chi.Router) {
				r.Use(router.auth.RequireRole(auth.RoleAdmin))
				r.Get("/stats", router.handler.AssistStats)
				r.Post("/stats/reset", router.handler.AssistResetStats)
				r.Delete("/cache", router.handler.AssistClearCache)
			})
		})
	})

	return r
}
