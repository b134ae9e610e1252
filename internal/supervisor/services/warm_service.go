// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// WarmEngine is the part of recommend.Engine the warm service drives.
type WarmEngine interface {
	// Warm computes and stores every collaborative section.
	Warm(ctx context.Context) error

	// IsWarm reports whether Warm has completed at least once.
	IsWarm() bool
}

// WarmServiceConfig holds configuration for the warm service.
type WarmServiceConfig struct {
	// WarmOnStartup computes the collaborative sections when the service
	// starts. When false the sections are computed on first request.
	WarmOnStartup bool
}

// WarmService warms the engine's collaborative sections under suture.
//
// A failed warm-up returns an error so suture restarts the service with
// backoff. After one success the service idles until shutdown; the
// snapshot is immutable so there is nothing to refresh.
type WarmService struct {
	engine WarmEngine
	config WarmServiceConfig
	logger zerolog.Logger
	name   string
}

// NewWarmService creates a new warm service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewWarmService(engine WarmEngine, cfg WarmServiceConfig, logger zerolog.Logger) *WarmService {
	return &WarmService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "engine-warm").Logger(),
		name:   "engine-warm",
	}
}

// Serve implements the suture.Service interface.
func (s *WarmService) Serve(ctx context.Context) error {
	if s.config.WarmOnStartup && !s.engine.IsWarm() {
		start := time.Now()
		s.logger.Info().Msg("warming collaborative sections")

		if err := s.engine.Warm(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("engine warm-up failed: %w", err)
		}

		s.logger.Info().
			Dur("duration", time.Since(start)).
			Msg("engine warm")
	}

	<-ctx.Done()
	return ctx.Err()
}

// String returns the service name for logging.
func (s *WarmService) String() string {
	return s.name
}
