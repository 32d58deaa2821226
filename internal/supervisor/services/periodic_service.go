// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package services

import (
	"context"
	"time"

	"github.com/tomtom215/lenscape/internal/logging"
)

// Task is one run of a periodic maintenance job.
type Task func(ctx context.Context) error

// PeriodicService runs a task on a fixed interval until its context ends.
//
// A failing run is logged and retried on the next tick rather than returned,
// so a flaky task never triggers supervisor backoff. The task receives the
// service context and should honour its cancellation.
//
// Example usage:
//
//	svc := services.NewPeriodicService("db-checkpoint", 5*time.Minute, db.Checkpoint)
//	tree.AddDataService(svc)
type PeriodicService struct {
	name     string
	interval time.Duration
	task     Task
}

// NewPeriodicService creates a periodic service. A non-positive interval
// defaults to one minute.
func NewPeriodicService(name string, interval time.Duration, task Task) *PeriodicService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicService{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *PeriodicService) runOnce(ctx context.Context) {
	start := time.Now()
	if err := p.task(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Warn().Err(err).Str("service", p.name).Msg("Periodic task failed")
		return
	}
	logging.Debug().Str("service", p.name).Dur("duration", time.Since(start)).Msg("Periodic task completed")
}

// String implements fmt.Stringer for suture log messages.
func (p *PeriodicService) String() string {
	return p.name
}
