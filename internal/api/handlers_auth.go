// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/lenscape/internal/auth"
	"github.com/tomtom215/lenscape/internal/logging"
	"github.com/tomtom215/lenscape/internal/metrics"
	"github.com/tomtom215/lenscape/internal/validation"
)

// Login exchanges the admin credentials for a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !h.config.AuthEnabled() {
		rw.Error(http.StatusForbidden, ErrCodeAuthDisabled, "Authentication is disabled")
		return
	}
	if h.jwtManager == nil || h.credentials == nil {
		rw.InternalError("Authentication is not configured")
		return
	}

	var req LoginRequest
	if err := decodeJSONBody(w, r, &req, false); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(validation.ErrorCode, verr.Error(), verr.Details())
		return
	}

	log := logging.Ctx(r.Context())
	if !h.credentials.Verify(req.Username, req.Password) {
		metrics.RecordLoginAttempt(false)
		log.Warn().Str("username", req.Username).Msg("Failed login attempt")
		rw.Error(http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid username or password")
		return
	}

	token, err := h.jwtManager.GenerateToken(h.credentials.Username(), auth.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token")
		rw.InternalError("Failed to generate authentication token")
		return
	}
	metrics.RecordLoginAttempt(true)

	expiresAt := time.Now().Add(h.jwtManager.Timeout())
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil || h.config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})

	log.Info().Str("username", h.credentials.Username()).Msg("Admin logged in")
	rw.Success(LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  h.credentials.Username(),
		Role:      auth.RoleAdmin,
	})
}
