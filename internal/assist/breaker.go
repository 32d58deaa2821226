// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package assist

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/logging"
	"github.com/tomtom215/lenscape/internal/metrics"
)

// breakerName labels the provider breaker in logs and metrics.
const breakerName = "assist-provider"

// breaker wraps a Generator with a circuit breaker.
//
// gobreaker runs on wall time, so tests drive it with request counts and a
// short timeout rather than a fake clock.
type breaker struct {
	cb   *gobreaker.CircuitBreaker[string]
	name string
}

// newBreaker opens the circuit once at least BreakerMinRequests calls were
// seen in the interval and the failure ratio reaches BreakerFailureRatio.
func newBreaker(cfg *config.AssistConfig) *breaker {
	name := breakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	minRequests := cfg.BreakerMinRequests
	ratio := cfg.BreakerFailureRatio

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= ratio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// A caller giving up or a missing endpoint says nothing about
		// provider health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, ErrNotConfigured)
		},
	})

	return &breaker{cb: cb, name: name}
}

// execute runs fn through the breaker. Rejections are returned as
// ErrUnavailable.
func (b *breaker) execute(fn func() (string, error)) (string, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return "", ErrUnavailable
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// state returns the breaker state as a label.
func (b *breaker) state() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
