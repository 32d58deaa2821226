// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package assist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lenscape/internal/cache"
	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/logging"
)

// maxErrorBody caps how much of an error response is kept in the error text.
const maxErrorBody = 512

// Generator produces content for a request. Implementations must be safe
// for concurrent use.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Ensure HTTPGenerator implements Generator
var _ Generator = (*HTTPGenerator)(nil)

// HTTPGenerator calls a JSON content generation endpoint.
type HTTPGenerator struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

type generateRequest struct {
	Model  string       `json:"model"`
	Type   string       `json:"type"`
	Params cache.Params `json:"params"`
}

type generateResponse struct {
	Content string `json:"content"`
}

// NewHTTPGenerator creates a generator from the assist settings.
// An empty endpoint yields a generator that always returns ErrNotConfigured.
func NewHTTPGenerator(cfg *config.AssistConfig) *HTTPGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPGenerator{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate posts the request and returns the content field of the reply.
func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if g.endpoint == "" {
		return "", ErrNotConfigured
	}

	params := req.Params
	if params == nil {
		params = cache.Params{}
	}
	body, err := json.Marshal(generateRequest{Model: g.model, Type: req.Type, Params: params})
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		httpReq.Header.Set("X-Correlation-ID", id)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			return "", fmt.Errorf("generate returned status %d (failed to read body)", resp.StatusCode)
		}
		return "", fmt.Errorf("generate returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}
	if strings.TrimSpace(out.Content) == "" {
		return "", ErrEmptyContent
	}
	return out.Content, nil
}
