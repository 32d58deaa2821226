// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package telemetry

import (
	"sync"
	"time"
)

// TypeStats holds counters for one request type.
type TypeStats struct {
	Count  int64 `json:"count"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Errors int64 `json:"errors"`
}

// Snapshot is a point-in-time copy of the aggregated telemetry.
type Snapshot struct {
	TotalCalls   int64                `json:"total_calls"`
	CacheHits    int64                `json:"cache_hits"`
	CacheMisses  int64                `json:"cache_misses"`
	Errors       int64                `json:"errors"`
	AvgLatencyMs float64              `json:"avg_latency_ms"`
	ByType       map[string]TypeStats `json:"by_type"`
}

// HitRate returns the cache hit rate as a percentage (0 when nothing was recorded).
func (s Snapshot) HitRate() float64 {
	if s.TotalCalls == 0 {
		return 0.0
	}
	return float64(s.CacheHits) / float64(s.TotalCalls) * 100.0
}

// ErrorRate returns the error rate as a percentage (0 when nothing was recorded).
func (s Snapshot) ErrorRate() float64 {
	if s.TotalCalls == 0 {
		return 0.0
	}
	return float64(s.Errors) / float64(s.TotalCalls) * 100.0
}

// CallRecord describes the outcome of one assist call.
type CallRecord struct {
	Type    string
	Hit     bool
	Errored bool

	// Elapsed is the call latency. A negative value means no latency was
	// measured and leaves the running average untouched.
	Elapsed time.Duration
}

// Aggregator accumulates call outcomes. It is safe for concurrent use.
type Aggregator struct {
	mu sync.Mutex

	totalCalls   int64
	cacheHits    int64
	cacheMisses  int64
	errors       int64
	avgLatencyMs float64
	byType       map[string]*TypeStats
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		byType: make(map[string]*TypeStats),
	}
}

// RecordCall records one call outcome.
//
// Every call counts toward the totals and exactly one of hits or misses.
// elapsedMillis, when non-nil, is folded into the running average using the
// incremental mean over totalCalls:
//
//	avg = (avg*(totalCalls-1) + elapsed) / totalCalls
func (a *Aggregator) RecordCall(callType string, hit bool, elapsedMillis *float64, errored bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalCalls++
	if hit {
		a.cacheHits++
	} else {
		a.cacheMisses++
	}
	if errored {
		a.errors++
	}
	if elapsedMillis != nil {
		a.avgLatencyMs = (a.avgLatencyMs*float64(a.totalCalls-1) + *elapsedMillis) / float64(a.totalCalls)
	}

	ts, ok := a.byType[callType]
	if !ok {
		ts = &TypeStats{}
		a.byType[callType] = ts
	}
	ts.Count++
	if hit {
		ts.Hits++
	} else {
		ts.Misses++
	}
	if errored {
		ts.Errors++
	}
}

// Record records a CallRecord.
//
//nolint:gocritic // CallRecord is small and passed by value for call-site clarity
func (a *Aggregator) Record(rec CallRecord) {
	var elapsed *float64
	if rec.Elapsed >= 0 {
		elapsed = Millis(rec.Elapsed)
	}
	a.RecordCall(rec.Type, rec.Hit, elapsed, rec.Errored)
}

// Snapshot returns a deep copy of the current state.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	byType := make(map[string]TypeStats, len(a.byType))
	for name, ts := range a.byType {
		byType[name] = *ts
	}

	return Snapshot{
		TotalCalls:   a.totalCalls,
		CacheHits:    a.cacheHits,
		CacheMisses:  a.cacheMisses,
		Errors:       a.errors,
		AvgLatencyMs: a.avgLatencyMs,
		ByType:       byType,
	}
}

// Reset clears all counters.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalCalls = 0
	a.cacheHits = 0
	a.cacheMisses = 0
	a.errors = 0
	a.avgLatencyMs = 0
	a.byType = make(map[string]*TypeStats)
}

// Millis converts a duration to a pointer to fractional milliseconds,
// the form RecordCall expects.
func Millis(d time.Duration) *float64 {
	ms := float64(d) / float64(time.Millisecond)
	return &ms
}
