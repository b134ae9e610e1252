// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("movie not found")

	// ErrEmptyInput marks a computation that had nothing to work on.
	// Engines treat it as an empty result rather than a failure.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedField matches every *MalformedFieldError via errors.Is.
	ErrMalformedField = errors.New("malformed field")

	// ErrNoContentAlgorithm is returned when no content algorithm is registered.
	ErrNoContentAlgorithm = errors.New("no content algorithm registered")

	// ErrUnknownSection is returned for a section with no registered algorithm.
	ErrUnknownSection = errors.New("unknown section")
)

// NotFoundError reports a query title with no exact match in the catalog.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie not found: %q", e.Title)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedFieldError reports a structured list field that failed to parse.
type MalformedFieldError struct {
	Field  string
	Offset int
	Reason string
}

func (e *MalformedFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed list at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed %s at offset %d: %s", e.Field, e.Offset, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedField) hold.
func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}
