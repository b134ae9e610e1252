// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"math"
	"sort"
)

// RatingIndex groups ratings by user and by movie.
//
// ByUser[u][m] and ByMovie[m][u] hold the same value. The index is
// immutable after Group returns.
type RatingIndex struct {
	ByUser  map[int]map[int]float64
	ByMovie map[int]map[int]float64

	userNorms  map[int]float64
	movieNorms map[int]float64
}

// Group indexes ratings in a single pass. For a repeated (user, movie)
// pair the later rating overwrites the earlier one in both views.
func Group(ratings []Rating) *RatingIndex {
	idx := &RatingIndex{
		ByUser:  make(map[int]map[int]float64),
		ByMovie: make(map[int]map[int]float64),
	}

	for _, r := range ratings {
		byUser, ok := idx.ByUser[r.UserID]
		if !ok {
			byUser = make(map[int]float64)
			idx.ByUser[r.UserID] = byUser
		}
		byUser[r.MovieID] = r.Value

		byMovie, ok := idx.ByMovie[r.MovieID]
		if !ok {
			byMovie = make(map[int]float64)
			idx.ByMovie[r.MovieID] = byMovie
		}
		byMovie[r.UserID] = r.Value
	}

	idx.userNorms = vectorNorms(idx.ByUser)
	idx.movieNorms = vectorNorms(idx.ByMovie)
	return idx
}

// UserNorm returns the Euclidean norm of the user's full rating vector.
func (idx *RatingIndex) UserNorm(userID int) float64 {
	return idx.userNorms[userID]
}

// MovieNorm returns the Euclidean norm of the movie's full rating column.
func (idx *RatingIndex) MovieNorm(movieID int) float64 {
	return idx.movieNorms[movieID]
}

// Len returns the number of distinct (user, movie) pairs.
func (idx *RatingIndex) Len() int {
	n := 0
	for _, movies := range idx.ByUser {
		n += len(movies)
	}
	return n
}

// vectorNorms sums squares in ascending key order so norms are bit-stable.
func vectorNorms(vectors map[int]map[int]float64) map[int]float64 {
	norms := make(map[int]float64, len(vectors))
	for id, vec := range vectors {
		var sum float64
		for _, k := range SortedKeys(vec) {
			sum += vec[k] * vec[k]
		}
		norms[id] = math.Sqrt(sum)
	}
	return norms
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
