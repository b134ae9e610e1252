// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package algorithms implements the recommendation algorithms registered
// on a recommend.Engine.
//
// # Algorithms
//
// Content-Based Filtering:
//   - ContentBased: cosine similarity of bag-of-terms feature rows
//
// Collaborative Filtering:
//   - UserBasedCF: user-user cosine over co-rated movies
//   - ItemBasedCF: movie-movie cosine over co-rating users
//
// # Similarity
//
// Every cosine divides the dot product over the shared coordinates by the
// norms of the full vectors. A zero norm yields similarity 0.
//
// # Scores
//
// Collaborative scores are unnormalized similarity-weighted sums of
// ratings. They rank well but are not predicted ratings.
//
// # Ordering
//
//   - ContentBased: descending score, ties in catalog order
//   - UserBasedCF, ItemBasedCF: descending score, ties by ascending movie id
//
// Sums are accumulated in a fixed key order so that repeated runs over the
// same snapshot return bit-identical scores.
//
// # Thread Safety
//
// The algorithms hold no per-run state and are safe for concurrent use.
package algorithms
