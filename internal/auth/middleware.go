// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/lenscape/internal/logging"
)

type contextKey string

// ClaimsContextKey holds the *Claims of an authenticated request.
const ClaimsContextKey contextKey = "claims"

// anonymousClaims are attached to every request when authentication is off.
var anonymousClaims = &Claims{Username: "anonymous", Role: RoleAdmin}

// ErrorResponder writes an error response. The API layer supplies one that
// renders its JSON envelope.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, status int, code, message string)

func plainError(w http.ResponseWriter, _ *http.Request, status int, _, message string) {
	http.Error(w, message, status)
}

// Middleware enforces bearer-token authentication and roles.
type Middleware struct {
	jwtManager *JWTManager
	enabled    bool
	respond    ErrorResponder
}

// NewMiddleware creates authentication middleware. With enabled false every
// request is treated as the anonymous admin; jwtManager may then be nil.
func NewMiddleware(jwtManager *JWTManager, enabled bool, respond ErrorResponder) *Middleware {
	if respond == nil {
		respond = plainError
	}
	return &Middleware{jwtManager: jwtManager, enabled: enabled, respond: respond}
}

// Authenticate rejects requests without a valid token with 401 and stores
// the claims in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), anonymousClaims)))
			return
		}

		token, ok := extractToken(r)
		if !ok {
			m.respond(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or malformed bearer token")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			m.respond(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireRole returns middleware that allows role or admin and answers 403
// otherwise. It must run after Authenticate.
func (m *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				m.respond(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			if claims.Role != role && claims.Role != RoleAdmin {
				m.respond(w, r, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, ClaimsContextKey, claims)
	return logging.ContextWithUser(ctx, claims.Username)
}

// extractToken reads "Authorization: Bearer <token>", falling back to the
// "token" cookie.
func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value == "" {
			return "", false
		}
		return cookie.Value, true
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
