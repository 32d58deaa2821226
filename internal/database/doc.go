// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package database provides the DuckDB-backed store for published works.

The store keeps one row per work with its engagement counters. The feed
endpoint reads recent rows through FeedCandidates and hands them to the
ranker in internal/feed; ranking itself happens in Go, not in SQL.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	items, err := db.FeedCandidates(ctx, time.Now().AddDate(0, 0, -30), 1000)

Pass database.MemoryPath as the path for an in-process database that is
discarded on Close. Tests use this.

# Metrics

Every query is timed through metrics.RecordDBQuery with the operation and
table as labels.
*/
package database
