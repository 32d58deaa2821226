// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package assist

import "errors"

var (
	// ErrUnknownType is returned for a request type outside the supported set.
	ErrUnknownType = errors.New("unknown assist type")

	// ErrRateLimited is returned when the upstream limiter has no token for a miss.
	ErrRateLimited = errors.New("assist rate limit exceeded")

	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("assist provider unavailable")

	// ErrEmptyContent is returned when the provider answers with no content.
	ErrEmptyContent = errors.New("assist provider returned empty content")

	// ErrNotConfigured is returned when no provider endpoint is set.
	ErrNotConfigured = errors.New("assist provider not configured")
)
