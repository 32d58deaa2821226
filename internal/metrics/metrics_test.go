// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramCount extracts the sample count from a Prometheus histogram
func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantLabel string
	}{
		{
			name:      "successful select",
			operation: "select",
			table:     "works",
		},
		{
			name:      "short error",
			operation: "update",
			table:     "works",
			err:       errors.New("connection refused"),
			wantLabel: "connection refused",
		},
		{
			name:      "long error truncated to 50 chars",
			operation: "insert",
			table:     "works",
			err:       errors.New(strings.Repeat("x", 80)),
			wantLabel: strings.Repeat("x", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)

			if tt.err == nil {
				return
			}
			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantLabel))
			if got < 1 {
				t.Errorf("expected error counter with label %q to be incremented", tt.wantLabel)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/feed", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/feed", "200", 12*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected %f, got %f", before+1, got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("expected %f active requests, got %f", before+2, got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected %f active requests, got %f", before, got)
	}
}

func TestRecordAssistCall_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		hit     bool
		errored bool
		outcome string
	}{
		{"hit", true, false, OutcomeHit},
		{"miss", false, false, OutcomeMiss},
		{"error", false, true, OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := AssistCallsTotal.WithLabelValues("critique", tt.outcome)
			before := testutil.ToFloat64(counter)

			RecordAssistCall("critique", tt.hit, tt.errored)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("expected %s counter %f, got %f", tt.outcome, before+1, got)
			}
		})
	}
}

func TestUpdateCacheStats(t *testing.T) {
	evictions := CacheEvictions.WithLabelValues("test-cache")
	before := testutil.ToFloat64(evictions)

	UpdateCacheStats("test-cache", 42, 3, 0)
	UpdateCacheStats("test-cache", 40, 0, 2)
	UpdateCacheStats("test-cache", 40, -1, 0)

	if got := testutil.ToFloat64(CacheEntries.WithLabelValues("test-cache")); got != 40 {
		t.Errorf("expected 40 entries, got %f", got)
	}
	if got := testutil.ToFloat64(evictions); got != before+3 {
		t.Errorf("expected evictions %f, got %f", before+3, got)
	}
	if got := testutil.ToFloat64(CacheExpirations.WithLabelValues("test-cache")); got < 2 {
		t.Errorf("expected at least 2 expirations, got %f", got)
	}
}

func TestRecordFeedRank(t *testing.T) {
	before := histogramCount(t, FeedRankDuration)

	RecordFeedRank(200*time.Microsecond, 25)

	if got := histogramCount(t, FeedRankDuration); got != before+1 {
		t.Errorf("expected %d observations, got %d", before+1, got)
	}
}

func TestRecordLoginAttempt(t *testing.T) {
	success := AuthLoginAttempts.WithLabelValues("success")
	failure := AuthLoginAttempts.WithLabelValues("failure")
	s0, f0 := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	RecordLoginAttempt(true)
	RecordLoginAttempt(false)
	RecordLoginAttempt(false)

	if got := testutil.ToFloat64(success); got != s0+1 {
		t.Errorf("expected %f successes, got %f", s0+1, got)
	}
	if got := testutil.ToFloat64(failure); got != f0+2 {
		t.Errorf("expected %f failures, got %f", f0+2, got)
	}
}

func TestMetricsConcurrentAccess(t *testing.T) {
	counter := AssistCallsTotal.WithLabelValues("concurrent", OutcomeHit)
	before := testutil.ToFloat64(counter)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				RecordAssistCall("concurrent", true, false)
				RecordAssistGeneration("concurrent", time.Millisecond)
				RecordRateLimitHit("/api/v1/assist")
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(counter); got != before+1000 {
		t.Errorf("expected %f, got %f", before+1000, got)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAssistCoalesced()
	RecordAssistRateLimited()

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, p := range problems {
		if strings.HasPrefix(p.Metric, "assist_") || strings.HasPrefix(p.Metric, "feed_") || strings.HasPrefix(p.Metric, "response_cache_") {
			t.Errorf("lint problem on %s: %s", p.Metric, p.Text)
		}
	}
}
