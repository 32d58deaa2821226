// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package cache

import (
	"sync"
	"time"
)

const (
	// DefaultCapacity is the production entry limit for assist responses.
	DefaultCapacity = 1000

	// DefaultTTL is the production lifetime of an assist response.
	DefaultTTL = 24 * time.Hour
)

// boundedEntry is a node in the insertion-order list.
type boundedEntry struct {
	key        string
	value      string
	insertedAt time.Time
	prev       *boundedEntry
	next       *boundedEntry
}

// Bounded is a thread-safe string cache with a fixed entry limit, lazy TTL
// expiry and insertion-order (FIFO) eviction.
//
// Reads never change eviction order. Overwriting an existing key refreshes its
// value and insertion time but keeps its original position in the eviction
// queue, so a frequently rewritten key is still evicted first once it is the
// oldest insertion.
type Bounded struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[string]*boundedEntry

	// head.next is the oldest insertion, tail.prev is the newest
	head *boundedEntry
	tail *boundedEntry

	evictions   int64
	expirations int64
}

// BoundedOption configures a Bounded cache.
type BoundedOption func(*Bounded)

// WithClock overrides the time source used for TTL checks.
func WithClock(now func() time.Time) BoundedOption {
	return func(c *Bounded) {
		if now != nil {
			c.now = now
		}
	}
}

// BoundedStats is a point-in-time view of cache occupancy.
type BoundedStats struct {
	Entries     int   `json:"entries"`
	Capacity    int   `json:"capacity"`
	Evictions   int64 `json:"evictions"`
	Expirations int64 `json:"expirations"`
}

// NewBounded creates a cache holding at most capacity entries, each valid for ttl.
// Non-positive values fall back to DefaultCapacity and DefaultTTL.
func NewBounded(capacity int, ttl time.Duration, opts ...BoundedOption) *Bounded {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Bounded{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*boundedEntry, capacity),
		head:     &boundedEntry{},
		tail:     &boundedEntry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the cached value for key.
// An entry older than the TTL is removed during the lookup and reported as absent.
func (c *Bounded) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		return "", false
	}

	if c.now().Sub(entry.insertedAt) > c.ttl {
		c.unlink(entry)
		c.expirations++
		return "", false
	}

	return entry.value, true
}

// Set stores value under key. When the key is new and the cache is full, the
// oldest inserted entry is evicted first.
func (c *Bounded) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.insertedAt = now
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	entry := &boundedEntry{
		key:        key,
		value:      value,
		insertedAt: now,
	}
	c.pushBack(entry)
	c.items[key] = entry
}

// Delete removes key from the cache. Returns true if it was present.
func (c *Bounded) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		return false
	}
	c.unlink(entry)
	return true
}

// Clear removes every entry. Counters are kept.
func (c *Bounded) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*boundedEntry, c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// PurgeExpired removes every entry older than the TTL and returns how many
// were dropped. Rewritten keys keep their queue position, so the whole list
// is scanned.
func (c *Bounded) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	purged := 0
	for entry := c.head.next; entry != c.tail; {
		next := entry.next
		if now.Sub(entry.insertedAt) > c.ttl {
			c.unlink(entry)
			c.expirations++
			purged++
		}
		entry = next
	}
	return purged
}

// Len returns the number of stored entries, including expired entries that
// have not been looked up yet.
func (c *Bounded) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the configured entry limit.
func (c *Bounded) Capacity() int {
	return c.capacity
}

// TTL returns the configured entry lifetime.
func (c *Bounded) TTL() time.Duration {
	return c.ttl
}

// Stats returns occupancy and removal counters.
func (c *Bounded) Stats() BoundedStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return BoundedStats{
		Entries:     len(c.items),
		Capacity:    c.capacity,
		Evictions:   c.evictions,
		Expirations: c.expirations,
	}
}

// Internal methods (must be called with lock held)

// pushBack appends an entry as the newest insertion.
func (c *Bounded) pushBack(entry *boundedEntry) {
	entry.next = c.tail
	entry.prev = c.tail.prev
	c.tail.prev.next = entry
	c.tail.prev = entry
}

// unlink removes an entry from both the list and the map.
func (c *Bounded) unlink(entry *boundedEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	entry.prev = nil
	entry.next = nil
	delete(c.items, entry.key)
}

// evictOldest removes the earliest inserted entry.
func (c *Bounded) evictOldest() {
	oldest := c.head.next
	if oldest == c.tail {
		return
	}
	c.unlink(oldest)
	c.evictions++
}
