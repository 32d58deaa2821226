// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package config loads and validates application configuration.

# Configuration Sources

Configuration is layered with Koanf v2, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, config.yaml, or /etc/lenscape/config.yaml
 3. Environment variables

Only the environment variables listed in envMappings are read, so unrelated
variables never leak into the configuration.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 8080), HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development or production

Database:
  - DUCKDB_PATH (":memory:" for an ephemeral store), DUCKDB_MAX_MEMORY, DUCKDB_THREADS

Security:
  - AUTH_MODE: jwt or none (none is refused in production)
  - JWT_SECRET: at least 32 characters
  - ADMIN_USERNAME, ADMIN_PASSWORD, SESSION_TIMEOUT
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated

Assist:
  - ASSIST_ENDPOINT, ASSIST_API_KEY, ASSIST_MODEL, ASSIST_TIMEOUT
  - ASSIST_CACHE_CAPACITY (default 1000), ASSIST_CACHE_TTL (default 24h)
  - ASSIST_RATE_PER_SECOND, ASSIST_BURST
  - ASSIST_BREAKER_MAX_REQUESTS, ASSIST_BREAKER_INTERVAL, ASSIST_BREAKER_TIMEOUT,
    ASSIST_BREAKER_MIN_REQUESTS, ASSIST_BREAKER_FAILURE_RATIO

Feed:
  - FEED_DEFAULT_PAGE_SIZE, FEED_MAX_PAGE_SIZE, FEED_CANDIDATE_DAYS, FEED_MAX_CANDIDATES

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
