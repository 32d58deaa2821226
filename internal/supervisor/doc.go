// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

/*
Package supervisor provides process supervision for Lenscape using suture v4.

The tree separates background maintenance from request serving:

	RootSupervisor ("lenscape")
	├── DataSupervisor ("data-layer")
	│   ├── PeriodicService "assist-cache-sweeper"
	│   └── PeriodicService "db-checkpoint" (file-backed databases only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with exponential backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
