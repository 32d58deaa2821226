// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/logging"
)

// MemoryPath opens a database that lives only for the life of the process.
const MemoryPath = ":memory:"

// defaultQueryTimeout bounds queries whose caller passed no deadline.
const defaultQueryTimeout = 30 * time.Second

// DB wraps the DuckDB connection and provides data access methods
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
	now  func() time.Time
}

// New opens the database described by cfg and creates the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	if cfg.Path != MemoryPath {
		// 0750 per gosec G301
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg, now: time.Now}
	if err := db.createSchema(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Int("threads", threads).Str("max_memory", maxMemory).Msg("Database opened")
	return db, nil
}

// Close flushes the WAL and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if db.cfg.Path != MemoryPath {
		ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
		if err := db.Checkpoint(ctx); err != nil {
			logging.Warn().Err(err).Msg("Checkpoint before close failed")
		}
		cancel()
	}
	return db.conn.Close()
}

// Ping verifies the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Checkpoint writes the WAL into the database file.
func (db *DB) Checkpoint(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// ensureContext applies defaultQueryTimeout when ctx has no deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
