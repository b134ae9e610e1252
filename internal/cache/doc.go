// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package cache provides a generic in-memory TTL cache.
//
// It backs the in-memory enrichment store, so repeated OMDb lookups for the
// same title within the TTL are served locally. Expired entries are removed
// lazily on Get and by a background sweep every five minutes.
//
//	c := cache.New[string](time.Hour)
//	defer c.Close()
//	c.Set("omdb:jurassic park", "tt0107290")
package cache
