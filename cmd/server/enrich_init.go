// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/enrich"
	"github.com/tomtom215/movierec/internal/supervisor"
	"github.com/tomtom215/movierec/internal/supervisor/services"
)

// EnrichComponents holds the enrichment pipeline and its backing store.
type EnrichComponents struct {
	Enricher *enrich.Enricher
	Breaker  *enrich.BreakerClient
	Store    enrich.Store
}

// Close releases the store.
func (c *EnrichComponents) Close() error {
	return c.Store.Close()
}

// initEnrich builds the OMDb enrichment pipeline. It returns nil when
// enrichment is disabled or no API key is set. A configured cache_dir
// selects the persistent Badger store, whose value log GC then runs in
// the data layer of tree.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initEnrich(cfg *config.Config, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*EnrichComponents, error) {
	ec := cfg.Enrich
	if !ec.Active() {
		logger.Info().Bool("enabled", ec.Enabled).Msg("enrichment disabled")
		return nil, nil
	}

	client := enrich.NewClient(enrich.ClientConfig{
		BaseURL:       ec.BaseURL,
		APIKey:        ec.APIKey,
		Timeout:       ec.Timeout,
		RatePerSecond: ec.RatePerSecond,
		Burst:         ec.Burst,
	})
	breaker := enrich.NewBreakerClient(client)

	var store enrich.Store
	if ec.CacheDir != "" {
		badgerStore, err := enrich.OpenBadgerStore(ec.CacheDir, ec.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("open enrichment cache: %w", err)
		}
		tree.AddDataService(services.NewStoreGCService(badgerStore, services.StoreGCConfig{}, logger))
		store = badgerStore
	} else {
		store = enrich.NewMemoryStore(ec.CacheTTL)
	}

	logger.Info().
		Str("cache_dir", ec.CacheDir).
		Dur("cache_ttl", ec.CacheTTL).
		Int("max_concurrency", ec.MaxConcurrency).
		Msg("enrichment enabled")

	return &EnrichComponents{
		Enricher: enrich.NewEnricher(breaker, store, ec.MaxConcurrency, logger),
		Breaker:  breaker,
		Store:    store,
	}, nil
}
