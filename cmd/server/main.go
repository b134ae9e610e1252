// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/tomtom215/movierec/docs" // registers the OpenAPI document
	"github.com/tomtom215/movierec/internal/api"
	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/supervisor"
	"github.com/tomtom215/movierec/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logging.Info().
		Str("version", version).
		Str("movies", cfg.Data.MoviesPath).
		Str("ratings", cfg.Data.RatingsPath).
		Msg("Starting MovieRec with supervisor tree")
	metrics.SetAppInfo(version, runtime.Version())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := initRecommend(ctx, cfg, logger)
	if err != nil {
		return err
	}

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}

	handlerCfg := api.HandlerConfig{
		Version:     version,
		SearchLimit: cfg.Recommend.SearchLimit,
	}
	var enricher api.Enricher
	enrichment, err := initEnrich(cfg, tree, logger)
	if err != nil {
		return err
	}
	if enrichment != nil {
		defer func() {
			if err := enrichment.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing enrichment store")
			}
		}()
		enricher = enrichment.Enricher
		handlerCfg.EnrichmentStatus = enrichment.Breaker.State
	}

	handler := api.NewHandler(engine, enricher, handlerCfg)
	chiMiddleware := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree.AddDataService(services.NewWarmService(engine, services.WarmServiceConfig{
		WarmOnStartup: cfg.Recommend.WarmOnStartup,
	}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logger))

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
		}
	}
	logging.Info().Msg("MovieRec stopped")
	return nil
}
