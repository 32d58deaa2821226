// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package logging provides centralized zerolog-based structured logging.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Msg("Server starting")
	logging.Error().Err(err).Msg("Operation failed")

	// Request-scoped fields (request_id, user)
	logging.Ctx(ctx).Info().Str("type", "caption").Msg("Assist request")

# Configuration

The level and format come from the logging section of the application
config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER environment variables).

# slog Bridge

The supervisor tree logs through sutureslog, which needs an *slog.Logger.
NewSlogLogger returns one that writes through zerolog so all output shares
one format.

# Best Practices

Always terminate log chains with .Msg() or .Send():

	logging.Info().Str("key", "value").Msg("message")  // Correct
	logging.Info().Str("key", "value")                 // WRONG - log not emitted
*/
package logging
