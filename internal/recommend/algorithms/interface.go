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

// cancelCheckInterval is how many loop iterations pass between context checks.
const cancelCheckInterval = 256

// BaseAlgorithm provides common functionality for all algorithms.
type BaseAlgorithm struct {
	name string
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the algorithm identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// checkContext returns the context error every cancelCheckInterval iterations.
func checkContext(ctx context.Context, i int) error {
	if i%cancelCheckInterval != 0 {
		return nil
	}
	return ctx.Err()
}

// rankByScore orders scores descending, breaking ties by ascending movie id.
func rankByScore(scores map[int]float64) recommend.RankedResult {
	result := make(recommend.RankedResult, 0, len(scores))
	for id, score := range scores {
		result = append(result, recommend.ScoredMovie{MovieID: id, Score: score})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].MovieID < result[j].MovieID
	})
	return result
}
