// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestBounded_Defaults(t *testing.T) {
	c := NewBounded(0, 0)

	if c.Capacity() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, c.Capacity())
	}
	if c.TTL() != DefaultTTL {
		t.Errorf("expected ttl %v, got %v", DefaultTTL, c.TTL())
	}
}

func TestBounded_SetAndGet(t *testing.T) {
	c := NewBounded(3, time.Hour)

	c.Set("a", "alpha")
	value, ok := c.Get("a")
	if !ok {
		t.Fatal("expected 'a' to be present")
	}
	if value != "alpha" {
		t.Errorf("expected 'alpha', got %q", value)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected 'missing' to be absent")
	}
}

func TestBounded_TTLExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewBounded(10, time.Hour, WithClock(clock.Now))

	c.Set("k", "v")

	clock.Advance(time.Hour)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry exactly ttl old should still be served")
	}

	clock.Advance(time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry older than ttl should be absent")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be purged on lookup, len=%d", c.Len())
	}
	if stats := c.Stats(); stats.Expirations != 1 {
		t.Errorf("expected 1 expiration, got %d", stats.Expirations)
	}
}

func TestBounded_ExpiryIsLazy(t *testing.T) {
	clock := newFakeClock()
	c := NewBounded(10, time.Minute, WithClock(clock.Now))

	c.Set("a", "1")
	c.Set("b", "2")
	clock.Advance(2 * time.Minute)

	// Nothing sweeps in the background; only the looked-up key is purged.
	if c.Len() != 2 {
		t.Fatalf("expected 2 stored entries before lookup, got %d", c.Len())
	}
	c.Get("a")
	if c.Len() != 1 {
		t.Errorf("expected 1 stored entry after lookup, got %d", c.Len())
	}
}

func TestBounded_CapacityEviction(t *testing.T) {
	const n = 5
	c := NewBounded(n, time.Hour)

	for i := 1; i <= n+1; i++ {
		c.Set(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
	}

	if _, ok := c.Get("k1"); ok {
		t.Error("expected k1 (oldest insertion) to be evicted")
	}
	for i := 2; i <= n+1; i++ {
		key := fmt.Sprintf("k%d", i)
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %s to be present", key)
		}
	}
	if c.Len() != n {
		t.Errorf("expected len %d, got %d", n, c.Len())
	}
	if stats := c.Stats(); stats.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestBounded_ReadsDoNotAffectEvictionOrder(t *testing.T) {
	c := NewBounded(3, time.Hour)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	// An LRU cache would now evict 'b'; FIFO still evicts 'a'.
	c.Get("a")
	c.Set("d", "4")

	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a' to be evicted despite recent read")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected 'b' to be present")
	}
}

func TestBounded_OverwriteKeepsPosition(t *testing.T) {
	clock := newFakeClock()
	c := NewBounded(2, time.Hour, WithClock(clock.Now))

	c.Set("a", "1")
	c.Set("b", "2")

	clock.Advance(30 * time.Minute)
	c.Set("a", "updated")

	if value, _ := c.Get("a"); value != "updated" {
		t.Errorf("expected overwritten value, got %q", value)
	}
	if c.Len() != 2 {
		t.Errorf("overwrite must not grow the cache, len=%d", c.Len())
	}

	// 'a' keeps its place at the front of the queue.
	c.Set("c", "3")
	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a' to be evicted first even after overwrite")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected 'b' to be present")
	}
}

func TestBounded_OverwriteRefreshesTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewBounded(2, time.Hour, WithClock(clock.Now))

	c.Set("a", "1")
	clock.Advance(50 * time.Minute)
	c.Set("a", "2")
	clock.Advance(50 * time.Minute)

	if value, ok := c.Get("a"); !ok || value != "2" {
		t.Errorf("expected refreshed entry, got %q (found=%v)", value, ok)
	}
}

func TestBounded_EvictsOnePerSet(t *testing.T) {
	c := NewBounded(2, time.Hour)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")
	c.Set("d", "4")

	if c.Len() != 2 {
		t.Fatalf("expected len 2, got %d", c.Len())
	}
	if stats := c.Stats(); stats.Evictions != 2 {
		t.Errorf("expected 2 evictions, got %d", stats.Evictions)
	}
}

func TestBounded_DeleteAndClear(t *testing.T) {
	c := NewBounded(3, time.Hour)

	c.Set("a", "1")
	c.Set("b", "2")

	if !c.Delete("a") {
		t.Error("expected Delete to report existing key")
	}
	if c.Delete("a") {
		t.Error("expected second Delete to report missing key")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a' to be deleted")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}

	// List must be usable after Clear
	c.Set("x", "1")
	c.Set("y", "2")
	c.Set("z", "3")
	c.Set("w", "4")
	if _, ok := c.Get("x"); ok {
		t.Error("expected 'x' to be evicted after Clear and refill")
	}
}

func TestBounded_DeleteMiddleKeepsOrder(t *testing.T) {
	c := NewBounded(3, time.Hour)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")
	c.Delete("b")
	c.Set("d", "4")
	c.Set("e", "5")

	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a' to be evicted")
	}
	for _, key := range []string{"c", "d", "e"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %s to be present", key)
		}
	}
}

func TestBounded_Concurrency(t *testing.T) {
	const capacity = 64
	c := NewBounded(capacity, time.Hour)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("g%d-k%d", g, i%100)
				c.Set(key, key)
				c.Get(key)
				if i%50 == 0 {
					c.Delete(key)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > capacity {
		t.Errorf("len %d exceeds capacity %d", c.Len(), capacity)
	}
}

func BenchmarkBounded_SetGet(b *testing.B) {
	c := NewBounded(DefaultCapacity, DefaultTTL)
	keys := make([]string, 2048)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		c.Set(key, "value")
		c.Get(key)
	}
}

func TestBounded_PurgeExpired(t *testing.T) {
	clock := newFakeClock()
	c := NewBounded(10, time.Hour, WithClock(clock.Now))

	c.Set("old-1", "a")
	c.Set("old-2", "b")
	clock.Advance(30 * time.Minute)
	c.Set("fresh", "c")
	// rewriting refreshes the TTL without moving old-1 in the queue
	c.Set("old-1", "a2")
	clock.Advance(45 * time.Minute)

	if purged := c.PurgeExpired(); purged != 1 {
		t.Fatalf("expected 1 purged entry, got %d", purged)
	}
	if _, ok := c.Get("old-2"); ok {
		t.Error("expected old-2 to be purged")
	}
	if v, ok := c.Get("old-1"); !ok || v != "a2" {
		t.Errorf("expected rewritten old-1 to survive, got %q, %v", v, ok)
	}

	st := c.Stats()
	if st.Entries != 2 || st.Expirations != 1 {
		t.Errorf("expected 2 entries and 1 expiration, got %+v", st)
	}
}
