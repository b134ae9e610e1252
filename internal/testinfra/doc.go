// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package testinfra provides test doubles for external services.
//
// MockOMDbServer answers title lookups from canned bodies and records
// each request, so enrichment tests can assert on caching and rate
// behavior without network access:
//
//	srv := testinfra.NewMockOMDbServer(t, map[string]string{
//	    "Jurassic Park": testinfra.MovieBody("Jurassic Park", "1993", "tt0107290", "8.2"),
//	})
//	client := enrich.NewClient(enrich.ClientConfig{BaseURL: srv.URL(), APIKey: "k"})
//
// This package imports testing and must only be used from tests.
package testinfra
