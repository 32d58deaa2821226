// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.root == nil || tree.data == nil || tree.api == nil {
			t.Error("expected root, data and api supervisors")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("expected defaults %+v, got %+v", DefaultTreeConfig(), tree.config)
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   100 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		dataSvc := newMockService("mock-data")
		apiSvc := newMockService("mock-api")
		tree.AddDataService(dataSvc)
		tree.AddAPIService(apiSvc)

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- tree.Serve(ctx)
		}()

		time.Sleep(100 * time.Millisecond)

		if dataSvc.StartCount() < 1 {
			t.Error("data service was not started")
		}
		if apiSvc.StartCount() < 1 {
			t.Error("api service was not started")
		}

		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("tree did not shut down in time")
		}

		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Errorf("unexpected report error: %v", err)
		}
		if len(report) != 0 {
			t.Errorf("expected no unstopped services, got %v", report)
		}
	})

	t.Run("ServeBackground returns channel", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		errCh := tree.ServeBackground(ctx)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(time.Second):
			t.Error("did not receive from error channel")
		}
	})
}

func TestSupervisorTreeFailureIsolation(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failing := newMockService("failing")
	failing.maxFails = 2
	stable := newMockService("stable")

	tree.AddDataService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	go tree.Serve(ctx)
	time.Sleep(200 * time.Millisecond)

	if failing.StartCount() < 3 {
		t.Errorf("expected at least 3 starts for failing service, got %d", failing.StartCount())
	}
	if stable.StartCount() != 1 {
		t.Errorf("expected api service to start once, got %d", stable.StartCount())
	}
}
