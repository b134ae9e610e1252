// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"context"
	"errors"
	"hash/fnv"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if etag := generateETag(response); etag != "" {
		w.Header().Set("ETag", etag)
	}
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope timed from start.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError writes an error envelope. err, when set, is logged but
// never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", apiErr.Code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status: models.StatusError,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}

// respondEngineError maps recommendation errors onto HTTP statuses.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *recommend.NotFoundError
	switch {
	case errors.As(err, &notFound):
		respondAPIError(w, r, http.StatusNotFound, &models.APIError{
			Code:    models.ErrCodeNotFound,
			Message: notFound.Error(),
			Details: map[string]interface{}{"title": notFound.Title},
		}, nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, models.ErrCodeTimeout, "Recommendation timed out", err)
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
		logging.Ctx(r.Context()).Debug().Msg("request canceled")
	case errors.Is(err, recommend.ErrUnknownSection), errors.Is(err, recommend.ErrNoContentAlgorithm):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUnavailable, "Recommendation section not available", err)
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to compute recommendations", err)
	}
}

// generateETag creates a weak validator from the FNV-1a hash of the
// response payload. Metadata is left out, so the tag is stable across
// responses that differ only in timestamp or timing.
func generateETag(response *models.APIResponse) string {
	payload, err := json.Marshal(struct {
		Status string           `json:"status"`
		Data   interface{}      `json:"data,omitempty"`
		Error  *models.APIError `json:"error,omitempty"`
	}{response.Status, response.Data, response.Error})
	if err != nil {
		return ""
	}
	h := fnv.New32a()
	_, _ = h.Write(payload)
	return `W/"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}
