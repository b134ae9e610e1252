// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package ingest

import (
	"database/sql"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/movierec/internal/recommend"
)

// movieRecord converts one text row in movieColumns order. Rows without an
// integer id are rejected; other numeric cells fall back to zero.
func movieRecord(cells []sql.NullString) (recommend.MovieRecord, bool) {
	id, ok := parseInt(cells[0].String)
	if !ok {
		return recommend.MovieRecord{}, false
	}

	return recommend.MovieRecord{
		ID:          id,
		Title:       cells[1].String,
		Overview:    cells[2].String,
		Genres:      cells[3].String,
		Studios:     cells[4].String,
		Language:    cells[5].String,
		ReleaseDate: cells[6].String,
		Runtime:     parseFloat(cells[7].String),
		Popularity:  parseFloat(cells[8].String),
		VoteAverage: parseFloat(cells[9].String),
		VoteCount:   int(parseFloat(cells[10].String)),
		Budget:      int64(parseFloat(cells[11].String)),
		Revenue:     int64(parseFloat(cells[12].String)),
		Adult:       strings.EqualFold(strings.TrimSpace(cells[13].String), "true"),
		Homepage:    cells[14].String,
	}, true
}

// rating converts one ratings row. Every field must parse and the value
// must be finite.
func rating(user, movie, value string) (recommend.Rating, bool) {
	userID, ok := parseInt(user)
	if !ok {
		return recommend.Rating{}, false
	}
	movieID, ok := parseInt(movie)
	if !ok {
		return recommend.Rating{}, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return recommend.Rating{}, false
	}
	return recommend.Rating{UserID: userID, MovieID: movieID, Value: v}, true
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
