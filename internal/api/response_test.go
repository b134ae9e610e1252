// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend"
)

func TestRespondEngineError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", &recommend.NotFoundError{Title: "X"}, http.StatusNotFound, models.ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("search: %w", &recommend.NotFoundError{Title: "X"}), http.StatusNotFound, models.ErrCodeNotFound},
		{"timeout", fmt.Errorf("warm: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, models.ErrCodeTimeout},
		{"unknown section", recommend.ErrUnknownSection, http.StatusServiceUnavailable, models.ErrCodeUnavailable},
		{"no content", recommend.ErrNoContentAlgorithm, http.StatusServiceUnavailable, models.ErrCodeUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, models.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondEngineError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			env := decode(t, rec, nil)
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if env.Status != models.StatusError {
				t.Errorf("status = %q, want %q", env.Status, models.StatusError)
			}
		})
	}
}

func TestRespondEngineError_InternalDetailsHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	respondEngineError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret path /var/data"))

	env := decode(t, rec, nil)
	if env.Error.Message != "Failed to compute recommendations" {
		t.Errorf("message = %q, want generic message", env.Error.Message)
	}
}

func TestRespondJSON_ETag(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	body := &models.APIResponse{Status: models.StatusSuccess, Data: "same"}

	first := httptest.NewRecorder()
	respondJSON(first, req, http.StatusOK, body)
	second := httptest.NewRecorder()
	respondJSON(second, req, http.StatusOK, body)

	if first.Header().Get("ETag") == "" {
		t.Fatal("ETag missing")
	}
	if first.Header().Get("ETag") != second.Header().Get("ETag") {
		t.Error("ETag differs for identical bodies")
	}
	if got := first.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
}

func TestRespondJSON_ETagIgnoresMetadata(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	respond := func(data interface{}, ts time.Time, took int64) string {
		rec := httptest.NewRecorder()
		respondJSON(rec, req, http.StatusOK, &models.APIResponse{
			Status:   models.StatusSuccess,
			Data:     data,
			Metadata: models.Metadata{Timestamp: ts, QueryTimeMS: took},
		})
		return rec.Header().Get("ETag")
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := respond("same", base, 1)
	later := respond("same", base.Add(time.Hour), 42)
	other := respond("different", base, 1)

	if !strings.HasPrefix(first, `W/"`) {
		t.Errorf("ETag = %q, want weak validator", first)
	}
	if first != later {
		t.Errorf("ETag changed with metadata: %q != %q", first, later)
	}
	if first == other {
		t.Errorf("ETag = %q for different data, want distinct", other)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"Солярис", "Солярис"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
