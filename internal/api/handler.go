// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/movierec/internal/enrich"
	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend"
)

// Enricher attaches external details to titles. The result is aligned
// with titles; a nil entry means no details.
type Enricher interface {
	Enrich(ctx context.Context, titles []string) []*enrich.Details
}

// HandlerConfig carries the handler settings that are not part of the
// engine configuration.
type HandlerConfig struct {
	// Version is reported by the health endpoint.
	Version string

	// SearchLimit caps the titles returned by /search. Zero returns all.
	SearchLimit int

	// EnrichmentStatus reports the enrichment state for health checks.
	// Nil reports "disabled".
	EnrichmentStatus func() string
}

// Handler serves the recommendation endpoints.
type Handler struct {
	engine    *recommend.Engine
	enricher  Enricher
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a handler. enricher may be nil, in which case no
// details are attached.
func NewHandler(engine *recommend.Engine, enricher Enricher, cfg HandlerConfig) *Handler {
	return &Handler{
		engine:    engine,
		enricher:  enricher,
		config:    cfg,
		startTime: time.Now(),
	}
}

// details enriches the titles of entries, or returns nil when enrichment
// is off.
func (h *Handler) details(ctx context.Context, entries []recommend.Presented) []*enrich.Details {
	if h.enricher == nil || len(entries) == 0 {
		return nil
	}
	return h.enricher.Enrich(ctx, models.Titles(entries))
}
