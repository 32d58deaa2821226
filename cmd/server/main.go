// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/lenscape/internal/api"
	"github.com/tomtom215/lenscape/internal/assist"
	"github.com/tomtom215/lenscape/internal/auth"
	"github.com/tomtom215/lenscape/internal/config"
	"github.com/tomtom215/lenscape/internal/database"
	"github.com/tomtom215/lenscape/internal/feed"
	"github.com/tomtom215/lenscape/internal/logging"
	"github.com/tomtom215/lenscape/internal/supervisor"
	"github.com/tomtom215/lenscape/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting Lenscape")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	jwtManager, credentials := initAuth(cfg)

	assistService := assist.NewService(assist.NewHTTPGenerator(&cfg.Assist), &cfg.Assist)
	if cfg.Assist.Endpoint == "" {
		logging.Warn().Msg("ASSIST_ENDPOINT is not set, assist requests will return 503 until configured")
	}

	handler := api.NewHandler(api.Dependencies{
		Config:      cfg,
		DB:          db,
		Assist:      assistService,
		Ranker:      feed.NewRanker(nil),
		JWTManager:  jwtManager,
		Credentials: credentials,
	})
	authMiddleware := auth.NewMiddleware(jwtManager, cfg.AuthEnabled(), api.WriteError)
	router := api.NewRouter(handler, authMiddleware)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewPeriodicService("assist-cache-sweeper", cfg.Assist.SweepInterval,
		func(context.Context) error {
			if purged := assistService.Maintain(); purged > 0 {
				logging.Debug().Int("purged", purged).Msg("Expired assist responses purged")
			}
			return nil
		}))
	if cfg.Database.Path != database.MemoryPath {
		tree.AddDataService(services.NewPeriodicService("db-checkpoint", cfg.Database.CheckpointInterval, db.Checkpoint))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// initAuth builds the token manager and admin credentials for JWT mode.
// Both are nil when authentication is disabled.
func initAuth(cfg *config.Config) (*auth.JWTManager, *auth.AdminCredentials) {
	if !cfg.AuthEnabled() {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  Every request runs as the admin role.")
		logging.Warn().Msg("  Use this mode for local development only.")
		logging.Warn().Msg("============================================================")
		return nil, nil
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}

	credentials, err := auth.NewAdminCredentials(cfg.Security.AdminUsername, cfg.Security.AdminPassword, bcrypt.DefaultCost)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize admin credentials")
	}

	logging.Info().Dur("session_timeout", jwtManager.Timeout()).Msg("JWT authentication enabled")
	return jwtManager, credentials
}
