// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package enrich

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/movierec/internal/metrics"
)

// Lookup results recorded in metrics.
const (
	resultHit      = "cache_hit"
	resultFound    = "found"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Enricher resolves titles to details through a store and a Lookuper.
// A nil *Enricher is valid and enriches nothing.
type Enricher struct {
	lookup      Lookuper
	store       Store
	concurrency int
	logger      zerolog.Logger
	now         func() time.Time
}

// NewEnricher creates an enricher that runs at most concurrency lookups
// at once.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEnricher(lookup Lookuper, store Store, concurrency int, logger zerolog.Logger) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		lookup:      lookup,
		store:       store,
		concurrency: concurrency,
		logger:      logger.With().Str("component", "enrich").Logger(),
		now:         time.Now,
	}
}

// Enrich returns details aligned with titles. Positions whose title is
// unknown or whose lookup failed are nil.
func (e *Enricher) Enrich(ctx context.Context, titles []string) []*Details {
	out := make([]*Details, len(titles))
	if e == nil || e.lookup == nil || len(titles) == 0 {
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, title := range titles {
		g.Go(func() error {
			details, err := e.Detail(ctx, title)
			if err != nil && !errors.Is(err, ErrNotFound) {
				e.logger.Warn().Err(err).Str("title", title).Msg("enrichment lookup failed")
				return nil
			}
			out[i] = details
			return nil
		})
	}
	_ = g.Wait() // lookups never return errors

	return out
}

// Detail resolves one title, consulting the store first. Unknown titles
// return ErrNotFound.
func (e *Enricher) Detail(ctx context.Context, title string) (*Details, error) {
	if e == nil || e.lookup == nil {
		return nil, ErrNotFound
	}

	if e.store != nil {
		entry, ok, err := e.store.Get(title)
		if err != nil {
			e.logger.Debug().Err(err).Str("title", title).Msg("store read failed")
		}
		if ok {
			metrics.RecordEnrichLookup(resultHit)
			if entry.NotFound {
				return nil, ErrNotFound
			}
			return entry.Details, nil
		}
	}

	details, err := e.lookup.Lookup(ctx, title)
	switch {
	case errors.Is(err, ErrNotFound):
		metrics.RecordEnrichLookup(resultNotFound)
		e.put(title, Entry{NotFound: true, FetchedAt: e.now()})
		return nil, ErrNotFound
	case err != nil:
		metrics.RecordEnrichLookup(resultError)
		return nil, err
	}

	metrics.RecordEnrichLookup(resultFound)
	e.put(title, Entry{Details: details, FetchedAt: e.now()})
	return details, nil
}

func (e *Enricher) put(title string, entry Entry) {
	if e.store == nil {
		return
	}
	if err := e.store.Put(title, entry); err != nil {
		e.logger.Debug().Err(err).Str("title", title).Msg("store write failed")
	}
}
