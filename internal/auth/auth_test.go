// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tomtom215/lenscape/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTManager failed: %v", err)
	}
	return m
}

func TestNewJWTManager_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	token, err := m.GenerateToken("ansel", RoleMember)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Username != "ansel" || claims.Role != RoleMember {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "ansel" {
		t.Errorf("expected subject ansel, got %q", claims.Subject)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	token, err := m.GenerateToken("ansel", RoleMember)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	m.now = time.Now
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	other, _ := NewJWTManager(&config.SecurityConfig{JWTSecret: "ffffffffffffffffffffffffffffffff", SessionTimeout: time.Hour})
	foreign, _ := other.GenerateToken("mallory", RoleAdmin)

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username: "mallory",
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		Username: "mallory",
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))

	tests := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": foreign,
		"alg none":     unsigned,
		"other hmac":   hs512,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestAdminCredentials(t *testing.T) {
	t.Parallel()

	creds, err := NewAdminCredentials("admin", "golden-hour", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewAdminCredentials failed: %v", err)
	}

	tests := []struct {
		user, pass string
		want       bool
	}{
		{"admin", "golden-hour", true},
		{"admin", "golden-hour!", false},
		{"Admin", "golden-hour", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := creds.Verify(tt.user, tt.pass); got != tt.want {
			t.Errorf("Verify(%q, %q) = %v, want %v", tt.user, tt.pass, got, tt.want)
		}
	}
}

func TestNewAdminCredentials_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewAdminCredentials("", "long-enough", bcrypt.MinCost); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := NewAdminCredentials("admin", "short", bcrypt.MinCost); err == nil {
		t.Error("expected error for short password")
	}
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	w.Header().Set("X-User", claims.Username)
	w.WriteHeader(http.StatusOK)
}

func TestMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	token, _ := m.GenerateToken("ansel", RoleMember)
	mw := NewMiddleware(m, true, nil)
	handler := mw.Authenticate(http.HandlerFunc(okHandler))

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantCode int
		wantUser string
	}{
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "ansel"},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+token) }, http.StatusOK, "ansel"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: token}) }, http.StatusOK, "ansel"},
		{"missing", func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }, http.StatusUnauthorized, ""},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Header().Get("X-User"); got != tt.wantUser {
				t.Errorf("expected user %q, got %q", tt.wantUser, got)
			}
		})
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(nil, false, nil)
	handler := mw.Authenticate(mw.RequireRole(RoleAdmin)(http.HandlerFunc(okHandler)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with auth disabled, got %d", rec.Code)
	}
	if rec.Header().Get("X-User") != "anonymous" {
		t.Errorf("expected anonymous user, got %q", rec.Header().Get("X-User"))
	}
}

func TestMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	memberToken, _ := m.GenerateToken("ansel", RoleMember)
	adminToken, _ := m.GenerateToken("root", RoleAdmin)

	var gotCode string
	respond := func(w http.ResponseWriter, _ *http.Request, status int, code, _ string) {
		gotCode = code
		w.WriteHeader(status)
	}
	mw := NewMiddleware(m, true, respond)
	handler := mw.Authenticate(mw.RequireRole(RoleAdmin)(http.HandlerFunc(okHandler)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden || gotCode != "FORBIDDEN" {
		t.Errorf("expected 403 FORBIDDEN for member, got %d %q", rec.Code, gotCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(nil, true, nil)
	rec := httptest.NewRecorder()
	mw.RequireRole(RoleMember)(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without claims, got %d", rec.Code)
	}
}
