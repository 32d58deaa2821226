// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

func TestNewPeriodicService_DefaultInterval(t *testing.T) {
	svc := NewPeriodicService("sweep", 0, func(context.Context) error { return nil })
	if svc.interval != time.Minute {
		t.Errorf("expected default interval 1m, got %v", svc.interval)
	}
	if svc.String() != "sweep" {
		t.Errorf("expected name 'sweep', got %q", svc.String())
	}
}

func TestPeriodicService_RunsOnInterval(t *testing.T) {
	var runs atomic.Int32
	svc := NewPeriodicService("counter", 10*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if runs.Load() < 3 {
		t.Errorf("expected at least 3 runs, got %d", runs.Load())
	}
}

func TestPeriodicService_TaskErrorDoesNotStopService(t *testing.T) {
	var runs atomic.Int32
	svc := NewPeriodicService("flaky", 10*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return errors.New("checkpoint failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	time.Sleep(80 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if runs.Load() < 2 {
		t.Errorf("expected failing task to keep running, got %d runs", runs.Load())
	}
}

func TestPeriodicService_WithSupervisor(t *testing.T) {
	ran := make(chan struct{}, 1)
	svc := NewPeriodicService("supervised", 5*time.Millisecond, func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	sup := suture.New("test-sup", suture.Spec{Timeout: time.Second})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("periodic task did not run under supervisor")
	}

	cancel()
	<-errCh
}
