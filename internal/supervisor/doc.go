// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package supervisor provides Suture-based process supervision for MovieRec.

The server runs as a tree of supervised services:

	movierec (root)
	├── data-layer
	│   ├── engine-warm        collaborative sections for the active user
	│   └── enrich-store-gc    badger value log GC (only with enrich.cache_dir)
	└── api-layer
	    └── http-server

Each layer restarts its failed services with exponential backoff
independently, so a warm-up failure never takes the HTTP server down.

Events (service panics, restarts, backoff) are logged through sutureslog.
The slog logger is backed by zerolog via logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewWarmService(engine, warmCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 30*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err = tree.Serve(ctx)

See Also:

  - internal/supervisor/services: service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
