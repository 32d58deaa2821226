// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/lenscape/config.yaml",
	"/etc/lenscape/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config populated with defaults. These are applied
// first and then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/lenscape.duckdb",
			MaxMemory: "1GB",
			Threads:   0, // 0 = DuckDB default

			CheckpointInterval: 5 * time.Minute,
		},
		Security: SecurityConfig{
			AuthMode:        AuthModeJWT,
			SessionTimeout:  24 * time.Hour,
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Assist: AssistConfig{
			Model:               "default",
			Timeout:             30 * time.Second,
			CacheCapacity:       1000,
			CacheTTL:            24 * time.Hour,
			SweepInterval:       10 * time.Minute,
			RatePerSecond:       5,
			Burst:               10,
			BreakerMaxRequests:  3,
			BreakerInterval:     time.Minute,
			BreakerTimeout:      30 * time.Second,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
		},
		Feed: FeedConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			CandidateDays:   30,
			MaxCandidates:   1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration with layered sources:
//  1. Defaults
//  2. Config file (optional)
//  3. Environment variables (highest priority)
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// ASSIST_CACHE_TTL -> assist.cache_ttl, HTTP_PORT -> server.port, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated strings into slices for the
// paths in sliceConfigPaths. YAML lists are left untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Database
	"duckdb_path":                "database.path",
	"duckdb_max_memory":          "database.max_memory",
	"duckdb_threads":             "database.threads",
	"duckdb_checkpoint_interval": "database.checkpoint_interval",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"session_timeout":     "security.session_timeout",
	"admin_username":      "security.admin_username",
	"admin_password":      "security.admin_password",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Assist
	"assist_endpoint":              "assist.endpoint",
	"assist_api_key":               "assist.api_key",
	"assist_model":                 "assist.model",
	"assist_timeout":               "assist.timeout",
	"assist_cache_capacity":        "assist.cache_capacity",
	"assist_cache_ttl":             "assist.cache_ttl",
	"assist_sweep_interval":        "assist.sweep_interval",
	"assist_rate_per_second":       "assist.rate_per_second",
	"assist_burst":                 "assist.burst",
	"assist_breaker_max_requests":  "assist.breaker_max_requests",
	"assist_breaker_interval":      "assist.breaker_interval",
	"assist_breaker_timeout":       "assist.breaker_timeout",
	"assist_breaker_min_requests":  "assist.breaker_min_requests",
	"assist_breaker_failure_ratio": "assist.breaker_failure_ratio",

	// Feed
	"feed_default_page_size": "feed.default_page_size",
	"feed_max_page_size":     "feed.max_page_size",
	"feed_candidate_days":    "feed.candidate_days",
	"feed_max_candidates":    "feed.max_candidates",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped so that unrelated environment
// does not leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
