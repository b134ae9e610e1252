// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package enrich attaches external movie details (poster, plot, IMDb data)
// from the OMDb API to recommended titles.
//
// # Components
//
//   - Client: rate limited OMDb HTTP client (golang.org/x/time/rate)
//   - BreakerClient: Client behind a sony/gobreaker circuit breaker
//   - Store: lookup cache, in memory (internal/cache) or on disk (Badger)
//   - Enricher: bounded-concurrency fan-out over a list of titles
//
// A title OMDb does not know is cached as a miss, so it is not looked up
// again until the entry expires. Failed lookups are logged and skipped;
// they never fail a recommendation response.
//
// # Usage
//
//	client := enrich.NewBreakerClient(enrich.NewClient(enrich.ClientConfig{
//	    BaseURL: "https://www.omdbapi.com/",
//	    APIKey:  key,
//	}))
//	store := enrich.NewMemoryStore(24 * time.Hour)
//	enricher := enrich.NewEnricher(client, store, 4, logger)
//
//	details := enricher.Enrich(ctx, []string{"Jurassic Park", "Titanic"})
package enrich
