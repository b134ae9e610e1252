// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"

	"github.com/tomtom215/movierec/internal/recommend"
)

// ========== User-Based Collaborative Filtering ==========

// UserBasedCF recommends movies that users with similar taste rated.
//
// For a target user u and an unrated movie m:
//
//	score(u, m) = sum_{v != u, v rated m} sim(u, v) * r(v, m)
//
// where sim is the cosine of the two users' rating vectors. The sum is not
// divided by the similarity mass.
type UserBasedCF struct {
	BaseAlgorithm
}

// NewUserBasedCF creates a user-based collaborative filtering algorithm.
func NewUserBasedCF() *UserBasedCF {
	return &UserBasedCF{BaseAlgorithm: NewBaseAlgorithm("user_cf")}
}

// Recommend returns the unrated movies of userID ranked by score.
// A user without ratings yields an empty result.
func (a *UserBasedCF) Recommend(ctx context.Context, idx *recommend.RatingIndex, userID int) (recommend.RankedResult, error) {
	sims, err := a.neighbors(ctx, idx, userID)
	if err != nil {
		return nil, err
	}
	if len(sims) == 0 {
		return recommend.RankedResult{}, nil
	}

	target := idx.ByUser[userID]
	scores := make(map[int]float64)
	for i, v := range recommend.SortedKeys(sims) {
		if err := checkContext(ctx, i); err != nil {
			return nil, err
		}
		sim := sims[v]
		for movieID, rating := range idx.ByUser[v] {
			if _, rated := target[movieID]; rated {
				continue
			}
			scores[movieID] += sim * rating
		}
	}
	return rankByScore(scores), nil
}

// neighbors computes the non-zero cosine similarity between userID and
// every other user sharing at least one rated movie.
func (a *UserBasedCF) neighbors(ctx context.Context, idx *recommend.RatingIndex, userID int) (map[int]float64, error) {
	target := idx.ByUser[userID]
	targetNorm := idx.UserNorm(userID)
	if len(target) == 0 || targetNorm == 0 {
		return nil, nil
	}

	// Dot products over co-rated movies, accumulated in movie order.
	dots := make(map[int]float64)
	for i, movieID := range recommend.SortedKeys(target) {
		if err := checkContext(ctx, i); err != nil {
			return nil, err
		}
		rating := target[movieID]
		for v, other := range idx.ByMovie[movieID] {
			if v == userID {
				continue
			}
			dots[v] += rating * other
		}
	}

	sims := make(map[int]float64, len(dots))
	for v, dot := range dots {
		norm := idx.UserNorm(v)
		if norm == 0 {
			continue
		}
		if sim := dot / (targetNorm * norm); sim != 0 {
			sims[v] = sim
		}
	}
	return sims, nil
}

// ========== Item-Based Collaborative Filtering ==========

// ItemBasedCF recommends movies that are rated like the movies the target
// user rated.
//
// For a target user u and an unrated candidate c:
//
//	score(u, c) = sum_{r rated by u} sim(c, r) * r(u, r)
//
// where sim is the cosine of the two movies' rating columns over users.
type ItemBasedCF struct {
	BaseAlgorithm
}

// NewItemBasedCF creates an item-based collaborative filtering algorithm.
func NewItemBasedCF() *ItemBasedCF {
	return &ItemBasedCF{BaseAlgorithm: NewBaseAlgorithm("item_cf")}
}

// Recommend returns the unrated movies of userID ranked by score.
// A user without ratings yields an empty result.
func (a *ItemBasedCF) Recommend(ctx context.Context, idx *recommend.RatingIndex, userID int) (recommend.RankedResult, error) {
	target := idx.ByUser[userID]
	if len(target) == 0 {
		return recommend.RankedResult{}, nil
	}

	scores := make(map[int]float64)
	for i, ratedID := range recommend.SortedKeys(target) {
		if err := checkContext(ctx, i); err != nil {
			return nil, err
		}
		sims := a.similarTo(idx, ratedID, target)
		weight := target[ratedID]
		for _, candidate := range recommend.SortedKeys(sims) {
			scores[candidate] += sims[candidate] * weight
		}
	}
	return rankByScore(scores), nil
}

// similarTo computes the non-zero cosine similarity between movieID and
// every co-rated movie outside exclude.
func (a *ItemBasedCF) similarTo(idx *recommend.RatingIndex, movieID int, exclude map[int]float64) map[int]float64 {
	column := idx.ByMovie[movieID]
	norm := idx.MovieNorm(movieID)
	if len(column) == 0 || norm == 0 {
		return nil
	}

	// Dot products over co-rating users, accumulated in user order.
	dots := make(map[int]float64)
	for _, userID := range recommend.SortedKeys(column) {
		rating := column[userID]
		for candidate, other := range idx.ByUser[userID] {
			if _, skip := exclude[candidate]; skip {
				continue
			}
			dots[candidate] += rating * other
		}
	}

	sims := make(map[int]float64, len(dots))
	for candidate, dot := range dots {
		candidateNorm := idx.MovieNorm(candidate)
		if candidateNorm == 0 {
			continue
		}
		if sim := dot / (norm * candidateNorm); sim != 0 {
			sims[candidate] = sim
		}
	}
	return sims
}
