// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package database

import (
	"context"
	"fmt"
	"time"
)

var schemaQueries = []string{
	`CREATE SEQUENCE IF NOT EXISTS works_id_seq START 1`,

	`CREATE TABLE IF NOT EXISTS works (
		id BIGINT PRIMARY KEY DEFAULT nextval('works_id_seq'),
		user_id BIGINT NOT NULL,
		title TEXT NOT NULL,
		like_count BIGINT NOT NULL DEFAULT 0,
		comment_count BIGINT NOT NULL DEFAULT 0,
		view_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_works_created_at ON works(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_works_user_id ON works(user_id)`,
}

func (db *DB) createSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, query := range schemaQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}
