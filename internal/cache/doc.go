// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package cache provides the bounded response cache that fronts the external
text generation service, plus the request fingerprint used to address it.

# Overview

Generation calls are slow and billed per call. Identical assist requests
(same category, same parameters in the same order) are served from memory for
24 hours. The cache provides:
  - Thread-safe access (single sync.Mutex, every operation is atomic)
  - Fixed capacity with insertion-order (FIFO) eviction
  - Lazy TTL expiry on Get (no background sweeper)
  - Injectable clock for deterministic tests

# Usage Example

	c := cache.NewBounded(cache.DefaultCapacity, cache.DefaultTTL)

	key := cache.Fingerprint("caption", cache.Params{
	    {Key: "work_id", Value: 42},
	    {Key: "tone", Value: "playful"},
	})

	if content, ok := c.Get(key); ok {
	    return content, nil
	}

	content, err := generator.Generate(ctx, req)
	if err != nil {
	    return "", err // never cache failures
	}
	c.Set(key, content)

# Eviction Policy

Entries leave the cache in the order they were first inserted. Reads do not
refresh an entry, and overwriting an existing key keeps its place in the
queue while resetting its TTL. When a new key arrives at capacity exactly one
entry, the oldest insertion, is evicted.

# Fingerprints

Fingerprint serializes parameters in caller order, so reordering fields
produces a different key. Keys are truncated to FingerprintLength characters;
long parameter lists that share a prefix share a key.

# Limitations

  - No persistence (in-memory only, cleared on restart)
  - No cross-process sharing
  - Expired entries occupy a slot until looked up or evicted
*/
package cache
