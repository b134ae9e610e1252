// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"
	"sort"

	"github.com/tomtom215/movierec/internal/recommend"
)

// ContentBased ranks movies by cosine similarity of their feature rows to
// the row of a query movie.
type ContentBased struct {
	BaseAlgorithm
}

// NewContentBased creates a content-based similarity algorithm.
func NewContentBased() *ContentBased {
	return &ContentBased{BaseAlgorithm: NewBaseAlgorithm("content")}
}

// Recommend resolves title exactly and scores every other catalog movie.
//
// The query movie is excluded. Equal scores keep catalog order. A movie id
// that appears on several rows is reported once, at its best rank.
func (c *ContentBased) Recommend(ctx context.Context, catalog *recommend.Catalog, title string) (recommend.RankedResult, error) {
	query, ok := catalog.IndexOf(title)
	if !ok {
		return nil, &recommend.NotFoundError{Title: title}
	}
	queryID := catalog.Movies[query].ID

	result := make(recommend.RankedResult, 0, catalog.Len())
	for i, movie := range catalog.Movies {
		if err := checkContext(ctx, i); err != nil {
			return nil, err
		}
		if i == query || movie.ID == queryID {
			continue
		}
		result = append(result, recommend.ScoredMovie{
			MovieID: movie.ID,
			Score:   catalog.Matrix.Cosine(query, i),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	return dedupe(result), nil
}

// dedupe drops later occurrences of a movie id, preserving order.
func dedupe(result recommend.RankedResult) recommend.RankedResult {
	seen := make(map[int]struct{}, len(result))
	out := result[:0]
	for _, s := range result {
		if _, dup := seen[s.MovieID]; dup {
			continue
		}
		seen[s.MovieID] = struct{}{}
		out = append(out, s)
	}
	return out
}
