// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package models

import (
	"github.com/tomtom215/movierec/internal/enrich"
	"github.com/tomtom215/movierec/internal/recommend"
)

// RecommendationItem is one ranked entry. With title_only the Movie field
// is omitted; Details is present only when enrichment found the title.
type RecommendationItem struct {
	Rank    int              `json:"rank"`
	Title   string           `json:"title"`
	Score   float64          `json:"score"`
	Movie   *recommend.Movie `json:"movie,omitempty"`
	Details *enrich.Details  `json:"details,omitempty"`
}

// PredictResponse is the payload of /predict and /demo.
type PredictResponse struct {
	Query       string               `json:"query,omitempty"`
	Search      []RecommendationItem `json:"search"`
	PeopleLiked []RecommendationItem `json:"people_liked"`
	YouMayLike  []RecommendationItem `json:"you_may_like"`
}

// SectionResponse is the payload of a single-section endpoint.
type SectionResponse struct {
	Section   string               `json:"section"`
	Algorithm string               `json:"algorithm"`
	Query     string               `json:"query,omitempty"`
	UserID    *int                 `json:"user_id,omitempty"`
	Items     []RecommendationItem `json:"items"`
}

// SearchResponse lists catalog titles for client-side autocomplete.
type SearchResponse struct {
	Titles []string `json:"titles"`
	Total  int      `json:"total"`
}

// HealthResponse reports the loaded snapshot.
type HealthResponse struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	Movies       int     `json:"movies"`
	Vocabulary   int     `json:"vocabulary"`
	Users        int     `json:"users"`
	RatedMovies  int     `json:"rated_movies"`
	ActiveUserID int     `json:"active_user_id"`
	ActiveRated  int     `json:"active_rated"`
	Warm         bool    `json:"warm"`
	Enrichment   string  `json:"enrichment"`
	Requests     int64   `json:"requests"`
	Errors       int64   `json:"errors"`
	UptimeSec    float64 `json:"uptime_seconds"`
}

// Items converts formatted entries into ranked response items. details,
// when non-nil, is aligned with entries.
func Items(entries []recommend.Presented, details []*enrich.Details) []RecommendationItem {
	items := make([]RecommendationItem, len(entries))
	for i, p := range entries {
		title := p.Title
		if p.Movie != nil {
			title = p.Movie.Title
		}
		items[i] = RecommendationItem{
			Rank:  i + 1,
			Title: title,
			Score: p.Score,
			Movie: p.Movie,
		}
		if i < len(details) {
			items[i].Details = details[i]
		}
	}
	return items
}

// Titles returns the titles of entries in order.
func Titles(entries []recommend.Presented) []string {
	titles := make([]string, len(entries))
	for i, p := range entries {
		titles[i] = p.Title
		if p.Movie != nil {
			titles[i] = p.Movie.Title
		}
	}
	return titles
}
