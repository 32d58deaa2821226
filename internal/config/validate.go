// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Authentication modes.
const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"
)

const (
	minJWTSecretLength = 32

	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateAssist(); err != nil {
		return err
	}
	if err := c.validateFeed(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	switch c.Security.AuthMode {
	case AuthModeNone:
		// never run unauthenticated in production
		if c.IsProduction() {
			return fmt.Errorf("AUTH_MODE=none is not allowed when ENVIRONMENT=production")
		}
	case AuthModeJWT:
		if err := c.validateJWTAuth(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("AUTH_MODE must be one of: jwt, none")
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateJWTAuth() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters for security", minJWTSecretLength)
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	if c.Security.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required when AUTH_MODE is jwt")
	}
	if c.Security.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required when AUTH_MODE is jwt")
	}
	if containsPlaceholder(c.Security.AdminPassword) {
		return fmt.Errorf("ADMIN_PASSWORD contains a placeholder value - set a secure password")
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAssist() error {
	a := c.Assist
	if a.Endpoint != "" {
		u, err := url.Parse(a.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("ASSIST_ENDPOINT must be an http(s) URL")
		}
	}
	if a.CacheCapacity <= 0 {
		return fmt.Errorf("ASSIST_CACHE_CAPACITY must be positive")
	}
	if a.CacheTTL <= 0 {
		return fmt.Errorf("ASSIST_CACHE_TTL must be positive")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("ASSIST_TIMEOUT must be positive")
	}
	if a.RatePerSecond < 0 {
		return fmt.Errorf("ASSIST_RATE_PER_SECOND must not be negative")
	}
	if a.RatePerSecond > 0 && a.Burst < 1 {
		return fmt.Errorf("ASSIST_BURST must be at least 1 when the rate limiter is enabled")
	}
	if a.BreakerFailureRatio <= 0 || a.BreakerFailureRatio > 1 {
		return fmt.Errorf("ASSIST_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

func (c *Config) validateFeed() error {
	f := c.Feed
	if f.DefaultPageSize < 1 {
		return fmt.Errorf("FEED_DEFAULT_PAGE_SIZE must be at least 1")
	}
	if f.MaxPageSize < f.DefaultPageSize {
		return fmt.Errorf("FEED_MAX_PAGE_SIZE (%d) must be >= FEED_DEFAULT_PAGE_SIZE (%d)", f.MaxPageSize, f.DefaultPageSize)
	}
	if f.CandidateDays < 1 {
		return fmt.Errorf("FEED_CANDIDATE_DAYS must be at least 1")
	}
	if f.MaxCandidates < f.MaxPageSize {
		return fmt.Errorf("FEED_MAX_CANDIDATES must be >= FEED_MAX_PAGE_SIZE")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns indicate a value copied from an example file.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_PASSWORD",
	"PLACEHOLDER",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
