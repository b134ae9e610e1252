// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/validation"
)

// predictParams are the query parameters of /predict.
type predictParams struct {
	Query     string `query:"q" validate:"omitempty,max=300,title"`
	Limit     int    `query:"limit" validate:"gte=0"`
	TitleOnly bool   `query:"title_only"`
}

// contentParams are the query parameters of the content endpoint.
type contentParams struct {
	Title     string `query:"title" validate:"required,max=300,title"`
	Limit     int    `query:"limit" validate:"gte=0"`
	TitleOnly bool   `query:"title_only"`
}

// sectionParams are the query parameters of the collaborative endpoints.
type sectionParams struct {
	Limit     int  `query:"limit" validate:"gte=0"`
	TitleOnly bool `query:"title_only"`
}

func parsePredictParams(r *http.Request, titleOnly bool) (predictParams, *models.APIError) {
	var p predictParams
	var apiErr *models.APIError
	p.Query = r.URL.Query().Get("q")
	if p.Limit, apiErr = getIntParam(r, "limit"); apiErr != nil {
		return p, apiErr
	}
	if p.TitleOnly, apiErr = getBoolParam(r, "title_only", titleOnly); apiErr != nil {
		return p, apiErr
	}
	return p, validateRequest(&p)
}

func parseContentParams(r *http.Request, titleOnly bool) (contentParams, *models.APIError) {
	var p contentParams
	var apiErr *models.APIError
	p.Title = r.URL.Query().Get("title")
	if p.Limit, apiErr = getIntParam(r, "limit"); apiErr != nil {
		return p, apiErr
	}
	if p.TitleOnly, apiErr = getBoolParam(r, "title_only", titleOnly); apiErr != nil {
		return p, apiErr
	}
	return p, validateRequest(&p)
}

func parseSectionParams(r *http.Request, titleOnly bool) (sectionParams, *models.APIError) {
	var p sectionParams
	var apiErr *models.APIError
	if p.Limit, apiErr = getIntParam(r, "limit"); apiErr != nil {
		return p, apiErr
	}
	if p.TitleOnly, apiErr = getBoolParam(r, "title_only", titleOnly); apiErr != nil {
		return p, apiErr
	}
	return p, validateRequest(&p)
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a VALIDATION_ERROR otherwise.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter. A missing parameter is
// zero; a malformed one is a validation error.
func getIntParam(r *http.Request, key string) (int, *models.APIError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, paramError(key, value, "integer")
	}
	return n, nil
}

// getBoolParam extracts a boolean query parameter with a default value.
func getBoolParam(r *http.Request, key string, defaultValue bool) (bool, *models.APIError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, paramError(key, value, "boolean")
	}
	return b, nil
}

func paramError(key, value, kind string) *models.APIError {
	return &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: fmt.Sprintf("%s must be a valid %s", key, kind),
		Details: map[string]interface{}{
			"field": key,
			"value": sanitizeLogValue(value),
		},
	}
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
