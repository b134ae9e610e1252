// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GCStore is satisfied by *enrich.BadgerStore.
type GCStore interface {
	RunGC(ratio float64) error
}

// StoreGCConfig holds configuration for the store GC service.
type StoreGCConfig struct {
	// Interval between GC runs. Default: 10m.
	Interval time.Duration

	// DiscardRatio is the reclaimable fraction a value log file needs
	// before it is rewritten. Default: 0.5.
	DiscardRatio float64
}

// StoreGCService periodically reclaims value log space of the persistent
// enrichment store. Expired lookups otherwise keep their space on disk.
type StoreGCService struct {
	store  GCStore
	config StoreGCConfig
	logger zerolog.Logger
	name   string
}

// NewStoreGCService creates a new store GC service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreGCService(store GCStore, cfg StoreGCConfig, logger zerolog.Logger) *StoreGCService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.DiscardRatio <= 0 || cfg.DiscardRatio >= 1 {
		cfg.DiscardRatio = 0.5
	}
	return &StoreGCService{
		store:  store,
		config: cfg,
		logger: logger.With().Str("service", "enrich-store-gc").Logger(),
		name:   "enrich-store-gc",
	}
}

// Serve implements the suture.Service interface. GC failures are logged
// and retried on the next tick.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(s.config.DiscardRatio); err != nil {
				s.logger.Warn().Err(err).Msg("store GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("store GC complete")
		}
	}
}

// String returns the service name for logging.
func (s *StoreGCService) String() string {
	return s.name
}
