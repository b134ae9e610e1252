// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the API handlers and the
// configuration loader. Fields are reported by their query, koanf or json
// tag name, so messages match what the caller actually typed:
//
//	type predictQuery struct {
//	    Query string `query:"q" validate:"omitempty,max=500,title"`
//	    Limit int    `query:"limit" validate:"min=0,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
//
// # Custom Tags
//
//   - title: printable text, surrounding spaces kept for exact matching
package validation
