// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lenscape/internal/cache"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// AssistRequest is the body of POST /api/v1/assist/{type}. Params keep the
// field order of the request body.
type AssistRequest struct {
	Params cache.Params `json:"params"`
}

// FeedQuery holds the validated feed query parameters. Zero values mean
// "use the configured default".
type FeedQuery struct {
	Limit  int `query:"limit" validate:"min=0,max=1000"`
	Offset int `query:"offset" validate:"min=0,max=100000"`
	Days   int `query:"days" validate:"min=0,max=365"`
}

// CreateWorkRequest is the body of POST /api/v1/works.
type CreateWorkRequest struct {
	UserID int64  `json:"user_id" validate:"required,min=1"`
	Title  string `json:"title" validate:"required,notblank,max=200"`
}

var (
	// errInvalidNumber marks a query parameter that is not an integer.
	errInvalidNumber = errors.New("must be an integer")

	errEmptyBody = errors.New("request body is empty")
)

// parseFeedQuery reads limit, offset and days from the query string.
func parseFeedQuery(r *http.Request) (FeedQuery, string, error) {
	var q FeedQuery
	values := r.URL.Query()
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"limit", &q.Limit},
		{"offset", &q.Offset},
		{"days", &q.Days},
	} {
		raw := values.Get(field.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, field.name, errInvalidNumber
		}
		*field.dst = n
	}
	return q, "", nil
}

// decodeJSONBody decodes a size-limited JSON body into dst. An empty body
// leaves dst untouched when allowEmpty is set.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if allowEmpty {
			return nil
		}
		return errEmptyBody
	}
	return json.Unmarshal(data, dst)
}
