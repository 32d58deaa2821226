// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package api

import (
	"context"
	"time"

	"github.com/tomtom215/lenscape/internal/assist"
	"github.com/tomtom215/lenscape/internal/auth"
	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/database"
	"github.com/tomtom215/lenscape/internal/feed"
)

// WorkStore is the subset of the works database the handlers use.
type WorkStore interface {
	Ping(ctx context.Context) error
	CreateWork(ctx context.Context, w *database.Work) (*database.Work, error)
	GetWork(ctx context.Context, id int64) (*database.Work, error)
	IncrementLikes(ctx context.Context, id int64) error
	IncrementComments(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	FeedCandidates(ctx context.Context, since time.Time, limit int) ([]feed.Item, error)
}

// Ensure the DuckDB store satisfies WorkStore
var _ WorkStore = (*database.DB)(nil)

// Dependencies groups what NewHandler needs.
type Dependencies struct {
	Config      *config.Config
	DB          WorkStore
	Assist      *assist.Service
	Ranker      *feed.Ranker
	JWTManager  *auth.JWTManager
	Credentials *auth.AdminCredentials
}

// Handler serves every API endpoint.
type Handler struct {
	config      *config.Config
	db          WorkStore
	assist      *assist.Service
	ranker      *feed.Ranker
	jwtManager  *auth.JWTManager
	credentials *auth.AdminCredentials
	startTime   time.Time
}

// NewHandler creates a handler. A nil ranker defaults to wall-clock ranking.
func NewHandler(deps Dependencies) *Handler {
	ranker := deps.Ranker
	if ranker == nil {
		ranker = feed.NewRanker(nil)
	}
	return &Handler{
		config:      deps.Config,
		db:          deps.DB,
		assist:      deps.Assist,
		ranker:      ranker,
		jwtManager:  deps.JWTManager,
		credentials: deps.Credentials,
		startTime:   time.Now(),
	}
}
