// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults built into defaultConfig
//  2. Optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment variables
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Assist   AssistConfig   `koanf:"assist"`
	Feed     FeedConfig     `koanf:"feed"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is "development" or "production". Production refuses to
	// start with authentication disabled.
	Environment string `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings. Path ":memory:" runs without a file.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`

	// CheckpointInterval is how often the WAL is flushed to the database
	// file. Ignored for in-memory databases.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// SecurityConfig holds authentication and request limiting settings.
type SecurityConfig struct {
	// AuthMode is "jwt" or "none".
	AuthMode       string        `koanf:"auth_mode"`
	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`
	AdminUsername  string        `koanf:"admin_username"`
	AdminPassword  string        `koanf:"admin_password"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// AssistConfig holds settings for the content generation service, its
// response cache, and the protections around the upstream provider.
type AssistConfig struct {
	Endpoint string        `koanf:"endpoint"`
	APIKey   string        `koanf:"api_key"`
	Model    string        `koanf:"model"`
	Timeout  time.Duration `koanf:"timeout"`

	CacheCapacity int           `koanf:"cache_capacity"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`

	// SweepInterval is how often expired responses are purged eagerly.
	SweepInterval time.Duration `koanf:"sweep_interval"`

	// RatePerSecond and Burst bound calls to the upstream provider.
	// RatePerSecond 0 disables the limiter.
	RatePerSecond float64 `koanf:"rate_per_second"`
	Burst         int     `koanf:"burst"`

	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"`
	BreakerInterval     time.Duration `koanf:"breaker_interval"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
}

// FeedConfig holds feed pagination and candidate selection settings.
type FeedConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`

	// CandidateDays is the default look-back window for candidate works.
	CandidateDays int `koanf:"candidate_days"`

	// MaxCandidates caps how many works are scored per request.
	MaxCandidates int `koanf:"max_candidates"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// AuthEnabled reports whether requests must carry a valid token.
func (c *Config) AuthEnabled() bool {
	return c.Security.AuthMode != AuthModeNone
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
