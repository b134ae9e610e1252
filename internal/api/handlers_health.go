// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/movierec/internal/models"
)

// rootMessage is the plain text liveness answer of GET /.
const rootMessage = "MovieRec is running"

// Root answers a plain text liveness message.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rootMessage))
}

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns catalog and rating index sizes, warm state, enrichment state and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse}
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()
	requests, errs := h.engine.Counters()

	enrichment := "disabled"
	if h.config.EnrichmentStatus != nil {
		enrichment = h.config.EnrichmentStatus()
	}

	// An empty catalog means ingestion found nothing to serve.
	status := "healthy"
	if stats.Movies == 0 {
		status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, r, start, models.HealthResponse{
		Status:       status,
		Version:      h.config.Version,
		Movies:       stats.Movies,
		Vocabulary:   stats.Vocabulary,
		Users:        stats.Users,
		RatedMovies:  stats.RatedMovies,
		ActiveUserID: stats.ActiveUserID,
		ActiveRated:  stats.ActiveRated,
		Warm:         stats.Warm,
		Enrichment:   enrichment,
		Requests:     requests,
		Errors:       errs,
		UptimeSec:    time.Since(h.startTime).Seconds(),
	})
}
