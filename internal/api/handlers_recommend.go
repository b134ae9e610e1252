// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend"
)

// Predict handles GET /predict
//
// @Summary Get all recommendation sections
// @Description Content matches for q plus both collaborative sections for the active user. Search entries carry OMDb details when enrichment is enabled.
// @Tags Recommendations
// @Produce json
// @Param q query string false "Exact movie title"
// @Param limit query int false "Entries per section (0 = default)"
// @Param title_only query bool false "Project entries to titles"
// @Success 200 {object} models.APIResponse{data=models.PredictResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown title"
// @Router /predict [get]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	params, apiErr := parsePredictParams(r, h.engine.Config().TitleOnly)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	prediction, err := h.engine.Predict(r.Context(), recommend.PredictRequest{
		Query:     params.Query,
		Limit:     params.Limit,
		TitleOnly: params.TitleOnly,
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, start, h.predictResponse(r, params.Query, prediction))
}

// Demo handles GET /demo with a fixed prediction.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, start, h.predictResponse(r, demoQuery, demoPrediction()))
}

func (h *Handler) predictResponse(r *http.Request, query string, p *recommend.Prediction) models.PredictResponse {
	return models.PredictResponse{
		Query:       query,
		Search:      models.Items(p.Search, h.details(r.Context(), p.Search)),
		PeopleLiked: models.Items(p.PeopleLiked, nil),
		YouMayLike:  models.Items(p.YouMayLike, nil),
	}
}

// Search handles GET /search
//
// @Summary List catalog titles
// @Description Returns the first search_limit titles in catalog order for autocomplete
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SearchResponse}
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	catalog := h.engine.Catalog()
	respondSuccess(w, r, start, models.SearchResponse{
		Titles: catalog.Titles(h.config.SearchLimit),
		Total:  catalog.Len(),
	})
}

// Content handles GET /api/v1/recommendations/content
//
// @Summary Content similarity for one title
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact movie title"
// @Param limit query int false "Entries (0 = default)"
// @Param title_only query bool false "Project entries to titles"
// @Success 200 {object} models.APIResponse{data=models.SectionResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown title"
// @Router /api/v1/recommendations/content [get]
func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := h.engine.Config()
	params, apiErr := parseContentParams(r, cfg.TitleOnly)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	result, err := h.engine.Similar(r.Context(), params.Title)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	entries := recommend.Format(result, h.engine.Catalog().ByID, cfg.ClampLimit(params.Limit), params.TitleOnly)
	respondSuccess(w, r, start, models.SectionResponse{
		Section:   recommend.SectionSearch,
		Algorithm: h.engine.Algorithm(recommend.SectionSearch),
		Query:     params.Title,
		Items:     models.Items(entries, h.details(r.Context(), entries)),
	})
}

// Users handles GET /api/v1/recommendations/users with the user-based
// section for the active user.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	h.section(w, r, recommend.SectionPeopleLiked)
}

// Items handles GET /api/v1/recommendations/items with the item-based
// section for the active user.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	h.section(w, r, recommend.SectionYouMayLike)
}

func (h *Handler) section(w http.ResponseWriter, r *http.Request, section string) {
	start := time.Now()
	cfg := h.engine.Config()
	params, apiErr := parseSectionParams(r, cfg.TitleOnly)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	result, err := h.engine.Section(r.Context(), section)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	userID := cfg.ActiveUserID
	entries := recommend.Format(result, h.engine.Catalog().ByID, cfg.ClampLimit(params.Limit), params.TitleOnly)
	respondSuccess(w, r, start, models.SectionResponse{
		Section:   section,
		Algorithm: h.engine.Algorithm(section),
		UserID:    &userID,
		Items:     models.Items(entries, nil),
	})
}
