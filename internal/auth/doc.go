// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package auth provides token authentication and role checks for the HTTP API.

Key Components:

  - JWTManager: HS256 token generation and validation
  - AdminCredentials: bcrypt verification of the configured admin login
  - Middleware: chi-compatible Authenticate and RequireRole middleware

Tokens are issued by POST /api/v1/auth/login and presented as
"Authorization: Bearer <token>" or in the "token" cookie.

With AUTH_MODE=none (refused in production) every request is treated as the
anonymous admin.

Usage Example:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(jwtManager, cfg.AuthEnabled(), writeAuthError)

	r.With(mw.Authenticate, mw.RequireRole(auth.RoleAdmin)).Get("/assist/stats", h.AssistStats)
*/
package auth
