// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package assist serves generated photography content (captions, critiques,
tags, answers, lessons and contest briefs) through a response cache.

A call is fingerprinted from its type and ordered parameters. Hits are
answered from the bounded cache. Misses for the same fingerprint are
coalesced with singleflight, then pass a token bucket limiter and a circuit
breaker before reaching the Generator. Only successful generations are
cached.

Every call, hit or miss, is recorded in a telemetry.Aggregator and in the
Prometheus assist_* collectors. Stats returns the admin view with rates
rounded to two decimals.

# Errors

  - ErrUnknownType: the request type is not supported
  - ErrRateLimited: the limiter had no token for a miss
  - ErrUnavailable: the breaker is open
  - ErrEmptyContent: the provider replied without content
  - ErrNotConfigured: no provider endpoint is set

Any other error comes from the provider call itself.
*/
package assist
