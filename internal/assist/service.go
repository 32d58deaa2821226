// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package assist

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/tomtom215/lenscape/internal/cache"
	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/logging"
	"github.com/tomtom215/lenscape/internal/metrics"
	"github.com/tomtom215/lenscape/internal/telemetry"
)

// cacheName labels the response cache in metrics.
const cacheName = "assist"

// Service answers assist requests from the response cache, falling back to
// the generator on a miss. Every call is recorded in telemetry.
type Service struct {
	generator Generator
	cache     cache.Store
	telemetry *telemetry.Aggregator
	breaker   *breaker
	limiter   *rate.Limiter
	group     singleflight.Group
	timeout   time.Duration

	// last published cumulative cache counters
	statsMu         sync.Mutex
	lastEvictions   int64
	lastExpirations int64
}

// Option configures a Service.
type Option func(*Service)

// WithCache replaces the response cache built from the config.
func WithCache(store cache.Store) Option {
	return func(s *Service) {
		s.cache = store
	}
}

// WithTelemetry replaces the telemetry aggregator.
func WithTelemetry(agg *telemetry.Aggregator) Option {
	return func(s *Service) {
		s.telemetry = agg
	}
}

// NewService creates an assist service around gen.
func NewService(gen Generator, cfg *config.AssistConfig, opts ...Option) *Service {
	s := &Service{
		generator: gen,
		breaker:   newBreaker(cfg),
		timeout:   cfg.Timeout,
	}
	if cfg.RatePerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.New(cache.Config{Capacity: cfg.CacheCapacity, TTL: cfg.CacheTTL})
	}
	if s.telemetry == nil {
		s.telemetry = telemetry.NewAggregator()
	}
	return s
}

// Assist returns content for req, from the cache when possible.
// Failed generations are never cached.
func (s *Service) Assist(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	key := req.Key()
	log := logging.Ctx(ctx)

	if content, ok := s.cache.Get(key); ok {
		s.record(req.Type, true, time.Since(start), false)
		log.Debug().Str("type", req.Type).Str("key", key).Msg("Assist cache hit")
		return Result{Type: req.Type, Content: content, Cached: true}, nil
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.generate(ctx, key, req)
	})
	out, _ := v.(flightResult) //nolint:errcheck // generate only returns flightResult
	if shared {
		metrics.RecordAssistCoalesced()
	}

	elapsed := time.Since(start)
	if err != nil {
		s.record(req.Type, false, elapsed, true)
		log.Warn().Err(err).Str("type", req.Type).Dur("elapsed", elapsed).Msg("Assist generation failed")
		return Result{}, err
	}

	s.record(req.Type, out.cached, elapsed, false)
	log.Debug().Str("type", req.Type).Dur("elapsed", elapsed).Bool("shared", shared).Bool("cached", out.cached).Msg("Assist cache miss served")
	return Result{Type: req.Type, Content: out.content, Cached: out.cached}, nil
}

// flightResult is what one singleflight call hands to every waiter.
type flightResult struct {
	content string
	cached  bool
}

// generate runs once per key across concurrent callers. The result is
// stored before the flight ends so later callers hit the cache.
func (s *Service) generate(ctx context.Context, key string, req Request) (flightResult, error) {
	// A flight for key may have finished between the caller's miss and now.
	if content, ok := s.cache.Get(key); ok {
		return flightResult{content: content, cached: true}, nil
	}

	if s.limiter != nil && !s.limiter.Allow() {
		metrics.RecordAssistRateLimited()
		return flightResult{}, ErrRateLimited
	}

	// Shared by followers: detached from the leader's cancellation.
	genCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(genCtx, s.timeout)
		defer cancel()
	}

	genStart := time.Now()
	content, err := s.breaker.execute(func() (string, error) {
		out, err := s.generator.Generate(genCtx, req)
		if err == nil && out == "" {
			err = ErrEmptyContent
		}
		return out, err
	})
	if err != nil {
		return flightResult{}, err
	}
	metrics.RecordAssistGeneration(req.Type, time.Since(genStart))

	s.cache.Set(key, content)
	s.publishCacheStats()
	return flightResult{content: content}, nil
}

// record updates telemetry and the call counter.
func (s *Service) record(callType string, hit bool, elapsed time.Duration, errored bool) {
	s.telemetry.Record(telemetry.CallRecord{
		Type:    callType,
		Hit:     hit,
		Errored: errored,
		Elapsed: elapsed,
	})
	metrics.RecordAssistCall(callType, hit, errored)
}

// publishCacheStats pushes cache occupancy and counter deltas to metrics.
func (s *Service) publishCacheStats() {
	st := s.cache.Stats()

	s.statsMu.Lock()
	evictions := st.Evictions - s.lastEvictions
	expirations := st.Expirations - s.lastExpirations
	s.lastEvictions = st.Evictions
	s.lastExpirations = st.Expirations
	s.statsMu.Unlock()

	metrics.UpdateCacheStats(cacheName, st.Entries, evictions, expirations)
}

// purger is implemented by stores that can sweep expired entries eagerly.
type purger interface {
	PurgeExpired() int
}

// Maintain sweeps expired responses from the cache, when the store supports
// it, and republishes cache metrics. It returns the number of purged entries.
func (s *Service) Maintain() int {
	purged := 0
	if p, ok := s.cache.(purger); ok {
		purged = p.PurgeExpired()
	}
	s.publishCacheStats()
	return purged
}

// ClearCache drops every cached response.
func (s *Service) ClearCache() {
	s.cache.Clear()
	s.publishCacheStats()
}

// ResetStats zeroes the telemetry counters.
func (s *Service) ResetStats() {
	s.telemetry.Reset()
}

// BreakerState returns "closed", "half-open" or "open".
func (s *Service) BreakerState() string {
	return s.breaker.state()
}
