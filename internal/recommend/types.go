// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"context"
)

// MovieRecord is a raw catalog row as delivered by ingestion.
//
// Genres and Studios hold the stringified list-of-records literal from the
// source file, e.g. "[{'id': 18, 'name': 'Drama'}]". They are parsed by
// Build, which tolerates malformed values.
type MovieRecord struct {
	ID          int
	Title       string
	Overview    string
	Genres      string
	Studios     string
	Language    string
	ReleaseDate string
	Homepage    string
	Adult       bool
	Runtime     float64
	Popularity  float64
	VoteAverage float64
	VoteCount   int
	Budget      int64
	Revenue     int64
}

// Movie is an immutable catalog entry.
type Movie struct {
	// ID is the stable external key of the movie.
	ID int `json:"id"`

	// Title is the exact title used for query resolution.
	Title string `json:"title"`

	Overview    string   `json:"overview,omitempty"`
	Genres      []string `json:"genres"`
	Studios     []string `json:"studios"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Adult       bool     `json:"adult"`
	Runtime     float64  `json:"runtime"`
	Popularity  float64  `json:"popularity"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int      `json:"vote_count"`
	Budget      int64    `json:"budget"`
	Revenue     int64    `json:"revenue"`
}

// Rating is an explicit (user, movie, value) fact.
type Rating struct {
	UserID  int     `json:"user_id"`
	MovieID int     `json:"movie_id"`
	Value   float64 `json:"value"`
}

// ScoredMovie is one entry of a ranked result.
type ScoredMovie struct {
	MovieID int     `json:"movie_id"`
	Score   float64 `json:"score"`
}

// RankedResult is an ordered, duplicate-free list of scored movies,
// non-increasing by score.
type RankedResult []ScoredMovie

// MovieIDs returns the ids of the result in rank order.
func (r RankedResult) MovieIDs() []int {
	ids := make([]int, len(r))
	for i, s := range r {
		ids[i] = s.MovieID
	}
	return ids
}

// Presented is a formatted result entry.
// Exactly one of Title or Movie is set, depending on the titleOnly flag.
type Presented struct {
	Title string  `json:"title,omitempty"`
	Movie *Movie  `json:"movie,omitempty"`
	Score float64 `json:"score"`
}

// Section names of a prediction.
const (
	SectionSearch      = "search"
	SectionPeopleLiked = "people_liked"
	SectionYouMayLike  = "you_may_like"
)

// ContentAlgorithm ranks catalog movies against a query title.
type ContentAlgorithm interface {
	// Name returns the algorithm identifier used in logs and metrics.
	Name() string

	// Recommend returns every other movie ranked by similarity to the movie
	// titled exactly title. It returns a *NotFoundError if no movie matches.
	Recommend(ctx context.Context, catalog *Catalog, title string) (RankedResult, error)
}

// CollaborativeAlgorithm predicts unrated movies for a user.
type CollaborativeAlgorithm interface {
	// Name returns the algorithm identifier used in logs and metrics.
	Name() string

	// Recommend returns movies the user has not rated, ranked by predicted
	// score. An unknown user yields an empty result.
	Recommend(ctx context.Context, index *RatingIndex, userID int) (RankedResult, error)
}

// PredictRequest parameterizes Engine.Predict.
type PredictRequest struct {
	// Query is the exact title for the content section. Empty skips it.
	Query string

	// Limit truncates each section. Zero uses the engine default.
	Limit int

	// TitleOnly projects entries to titles instead of full movies.
	TitleOnly bool
}

// Prediction holds the formatted sections of one prediction.
type Prediction struct {
	Search      []Presented `json:"search"`
	PeopleLiked []Presented `json:"people_liked"`
	YouMayLike  []Presented `json:"you_may_like"`
}

// Stats describes the loaded snapshot.
type Stats struct {
	Movies       int  `json:"movies"`
	Vocabulary   int  `json:"vocabulary"`
	Users        int  `json:"users"`
	RatedMovies  int  `json:"rated_movies"`
	ActiveUserID int  `json:"active_user_id"`
	ActiveRated  int  `json:"active_rated"`
	Warm         bool `json:"warm"`
}
