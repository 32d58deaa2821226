// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// restoreLogger resets the global logger after a test that reconfigures it.
func restoreLogger(t *testing.T) {
	t.Helper()
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit_JSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	Init(Config{Level: "debug", Format: "json", Output: &buf})
	Info().Str("type", "caption").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, `"message":"test message"`) {
		t.Errorf("expected message field, got: %s", output)
	}
	if !strings.Contains(output, `"type":"caption"`) {
		t.Errorf("expected type field, got: %s", output)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	Init(Config{Level: "warn", Output: &buf})
	Info().Msg("hidden")
	Warn().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("expected warn message, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestCtx_AddsRequestFields(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	ctx = ContextWithCorrelationID(ctx, "abc12345")
	ctx = ContextWithUser(ctx, "ansel")
	Ctx(ctx).Info().Msg("handled")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-123"`) {
		t.Errorf("expected request_id, got: %s", output)
	}
	if !strings.Contains(output, `"correlation_id":"abc12345"`) {
		t.Errorf("expected correlation_id, got: %s", output)
	}
	if !strings.Contains(output, `"user":"ansel"`) {
		t.Errorf("expected user, got: %s", output)
	}
}

func TestCtx_EmptyContext(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	Ctx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in output: %s", buf.String())
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b || len(a) != 36 {
		t.Errorf("expected two distinct UUIDs, got %q and %q", a, b)
	}
}

func TestGenerateCorrelationID_Short(t *testing.T) {
	t.Parallel()

	if id := GenerateCorrelationID(); len(id) != 8 {
		t.Errorf("expected 8 character correlation ID, got %q", id)
	}
}

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	restoreLogger(t)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer

	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))
	logger.With("service", "http").WithGroup("event").Warn("service restarted", "attempt", 2, "ok", false)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"http"`,
		`"event.attempt":2`,
		`"event.ok":false`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	restoreLogger(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	handler := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}
