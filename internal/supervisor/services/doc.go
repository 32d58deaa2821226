// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package services provides suture.Service wrappers for Lenscape components.

  - HTTPServerService runs the API server and shuts it down gracefully.
  - PeriodicService runs maintenance tasks (cache sweep, DuckDB checkpoint)
    on a ticker.

Each wrapper implements Serve(ctx) error and String() so the supervisor can
name it in log events. Serve returns ctx.Err() on a requested shutdown.
*/
package services
