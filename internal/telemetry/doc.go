// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

// Package telemetry aggregates assist call outcomes: cache hits and misses,
// generation errors and a running average latency, overall and per request
// type.
//
// The aggregator is independent of the cache internals. The caller that
// consults the cache reports each outcome with RecordCall, and the statistics
// endpoint reads a consistent copy with Snapshot.
//
//	agg := telemetry.NewAggregator()
//	agg.RecordCall("caption", false, telemetry.Millis(elapsed), false)
//
//	snap := agg.Snapshot()
//	fmt.Printf("hit rate %.2f%%\n", snap.HitRate())
package telemetry
