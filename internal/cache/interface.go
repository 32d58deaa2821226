// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package cache

import "time"

// Store defines the cache operations the assist service depends on.
// Bounded implements it; tests may substitute a fake.
//
// Usage:
//
//	var s Store = NewBounded(1000, 24*time.Hour)
//
//	key := Fingerprint("caption", params)
//	if content, ok := s.Get(key); ok {
//	    // Serve cached content
//	}
type Store interface {
	// Get returns the value and true if present and not expired.
	Get(key string) (string, bool)

	// Set stores a value. Callers only store successful generations.
	Set(key, value string)

	// Delete removes a value from the cache.
	Delete(key string) bool

	// Clear removes all entries from the cache.
	Clear()

	// Stats returns occupancy and removal counters.
	Stats() BoundedStats
}

// Config holds configuration for creating a bounded cache.
type Config struct {
	// Capacity is the maximum number of entries (default 1000).
	Capacity int

	// TTL is the lifetime of an entry (default 24h).
	TTL time.Duration
}

// New creates a bounded cache from the configuration.
func New(cfg Config, opts ...BoundedOption) *Bounded {
	return NewBounded(cfg.Capacity, cfg.TTL, opts...)
}

// Verify interface implementations at compile time
var _ Store = (*Bounded)(nil)
