// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/lenscape/internal/feed"
	"github.com/tomtom215/lenscape/internal/metrics"
)

const worksTable = "works"

// Work is a published photograph and its engagement counters.
type Work struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	ViewCount    int64     `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeedItem converts the work to the engagement snapshot the ranker scores.
func (w *Work) FeedItem() feed.Item {
	return feed.Item{
		ID:           w.ID,
		LikeCount:    w.LikeCount,
		CommentCount: w.CommentCount,
		ViewCount:    w.ViewCount,
		CreatedAt:    w.CreatedAt,
	}
}

// CreateWork inserts a work and returns it with its assigned ID.
// A zero CreatedAt is replaced with the current time.
func (db *DB) CreateWork(ctx context.Context, w *Work) (*Work, error) {
	if w == nil || strings.TrimSpace(w.Title) == "" || w.UserID <= 0 {
		return nil, ErrInvalidWork
	}
	if w.LikeCount < 0 || w.CommentCount < 0 || w.ViewCount < 0 {
		return nil, fmt.Errorf("%w: negative counter", ErrInvalidWork)
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	created := *w
	if created.CreatedAt.IsZero() {
		created.CreatedAt = db.now().UTC()
	}

	start := time.Now()
	err := db.conn.QueryRowContext(ctx, `
		INSERT INTO works (user_id, title, like_count, comment_count, view_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		created.UserID, created.Title, created.LikeCount, created.CommentCount, created.ViewCount, created.CreatedAt,
	).Scan(&created.ID)
	metrics.RecordDBQuery("insert", worksTable, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to insert work: %w", err)
	}
	return &created, nil
}

// GetWork returns the work with the given ID or ErrNotFound.
func (db *DB) GetWork(ctx context.Context, id int64) (*Work, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var w Work
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, user_id, title, like_count, comment_count, view_count, created_at
		FROM works WHERE id = ?`, id,
	).Scan(&w.ID, &w.UserID, &w.Title, &w.LikeCount, &w.CommentCount, &w.ViewCount, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", worksTable, time.Since(start), nil)
		return nil, ErrNotFound
	}
	metrics.RecordDBQuery("select", worksTable, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get work %d: %w", id, err)
	}
	return &w, nil
}

// IncrementLikes adds one like to a work.
func (db *DB) IncrementLikes(ctx context.Context, id int64) error {
	return db.increment(ctx, "like_count", id)
}

// IncrementComments adds one comment to a work.
func (db *DB) IncrementComments(ctx context.Context, id int64) error {
	return db.increment(ctx, "comment_count", id)
}

// IncrementViews adds one view to a work.
func (db *DB) IncrementViews(ctx context.Context, id int64) error {
	return db.increment(ctx, "view_count", id)
}

// increment bumps a counter column. column is always one of the fixed
// names above, never caller input.
func (db *DB) increment(ctx context.Context, column string, id int64) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	//nolint:gosec // column is a package constant
	query := fmt.Sprintf("UPDATE works SET %s = %s + 1 WHERE id = ?", column, column)

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, query, id)
	metrics.RecordDBQuery("update", worksTable, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to increment %s for work %d: %w", column, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FeedCandidates returns up to limit works created at or after since,
// newest first, as ranker input.
func (db *DB) FeedCandidates(ctx context.Context, since time.Time, limit int) ([]feed.Item, error) {
	if limit <= 0 {
		return []feed.Item{}, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, like_count, comment_count, view_count, created_at
		FROM works
		WHERE created_at >= ?
		ORDER BY created_at DESC, id ASC
		LIMIT ?`, since.UTC(), limit)
	if err != nil {
		metrics.RecordDBQuery("select", worksTable, time.Since(start), err)
		return nil, fmt.Errorf("failed to query feed candidates: %w", err)
	}
	defer closeWithLog(rows, "rows")

	items := make([]feed.Item, 0, limit)
	for rows.Next() {
		var it feed.Item
		if err := rows.Scan(&it.ID, &it.LikeCount, &it.CommentCount, &it.ViewCount, &it.CreatedAt); err != nil {
			metrics.RecordDBQuery("select", worksTable, time.Since(start), err)
			return nil, fmt.Errorf("failed to scan feed candidate: %w", err)
		}
		items = append(items, it)
	}
	err = rows.Err()
	metrics.RecordDBQuery("select", worksTable, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating feed candidates: %w", err)
	}
	return items, nil
}

// CountWorks returns the number of stored works.
func (db *DB) CountWorks(ctx context.Context) (int64, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int64
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM works").Scan(&n)
	metrics.RecordDBQuery("count", worksTable, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count works: %w", err)
	}
	return n, nil
}
