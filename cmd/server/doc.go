// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package main is the entry point for the Lenscape server.

Lenscape is the backend of a photography social network. It stores works in
DuckDB, serves a recency-weighted feed, and proxies AI writing assistance
(captions, critiques, tags, lessons) through a bounded response cache.

# Application Architecture

	RootSupervisor ("lenscape")
	├── DataSupervisor ("data-layer")
	│   ├── assist-cache-sweeper (ASSIST_SWEEP_INTERVAL)
	│   └── db-checkpoint (DUCKDB_CHECKPOINT_INTERVAL, file databases only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB works table
 4. Authentication: JWT with a bcrypt-hashed admin account, or none
 5. Assist service: HTTP generator behind a rate limiter and circuit breaker
 6. Supervisor tree and HTTP server

# Configuration

	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	AUTH_MODE=jwt                # jwt or none
	JWT_SECRET=<32+ chars>
	ADMIN_USERNAME=admin
	ADMIN_PASSWORD=<8-72 chars>

	DUCKDB_PATH=/data/lenscape.duckdb
	ASSIST_ENDPOINT=https://generator.internal/v1/generate
	ASSIST_API_KEY=<key>
	ASSIST_CACHE_CAPACITY=1000
	ASSIST_CACHE_TTL=24h

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT, then the database is
checkpointed and closed.
*/
package main
