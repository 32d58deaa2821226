// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package assist

import (
	"math"

	"github.com/tomtom215/lenscape/internal/telemetry"
)

// Overview holds the global call counters.
type Overview struct {
	TotalCalls  int64 `json:"total_calls"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
}

// CacheInfo describes the response cache.
type CacheInfo struct {
	Entries     int     `json:"entries"`
	Capacity    int     `json:"capacity"`
	Evictions   int64   `json:"evictions"`
	Expirations int64   `json:"expirations"`
	Utilization float64 `json:"utilization"`
}

// StatsPayload is the read-only stats view served to admins.
// Rates are percentages rounded to two decimals.
type StatsPayload struct {
	Overview     Overview                       `json:"overview"`
	HitRate      float64                        `json:"hit_rate"`
	ErrorRate    float64                        `json:"error_rate"`
	AvgLatencyMs float64                        `json:"avg_latency_ms"`
	Cache        CacheInfo                      `json:"cache"`
	Breaker      string                         `json:"breaker_state"`
	ByType       map[string]telemetry.TypeStats `json:"by_type"`
}

// Stats builds the stats payload from telemetry and the cache.
func (s *Service) Stats() StatsPayload {
	snap := s.telemetry.Snapshot()
	cs := s.cache.Stats()

	var utilization float64
	if cs.Capacity > 0 {
		utilization = round2(float64(cs.Entries) / float64(cs.Capacity) * 100)
	}

	return StatsPayload{
		Overview: Overview{
			TotalCalls:  snap.TotalCalls,
			CacheHits:   snap.CacheHits,
			CacheMisses: snap.CacheMisses,
			Errors:      snap.Errors,
		},
		HitRate:      round2(snap.HitRate()),
		ErrorRate:    round2(snap.ErrorRate()),
		AvgLatencyMs: round2(snap.AvgLatencyMs),
		Cache: CacheInfo{
			Entries:     cs.Entries,
			Capacity:    cs.Capacity,
			Evictions:   cs.Evictions,
			Expirations: cs.Expirations,
			Utilization: utilization,
		},
		Breaker: s.breaker.state(),
		ByType:  snap.ByType,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
