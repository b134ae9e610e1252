// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

// Format projects a ranked result for presentation.
//
// Entries whose movie id is missing from lookup are dropped silently. The
// survivors keep their order and are truncated to limit; a limit <= 0
// yields an empty list. With titleOnly each entry carries only the title,
// otherwise the full movie.
func Format(result RankedResult, lookup map[int]*Movie, limit int, titleOnly bool) []Presented {
	out := make([]Presented, 0, min(len(result), max(limit, 0)))
	for _, scored := range result {
		if len(out) >= limit {
			break
		}
		movie, ok := lookup[scored.MovieID]
		if !ok || movie == nil {
			continue
		}
		if titleOnly {
			out = append(out, Presented{Title: movie.Title, Score: scored.Score})
		} else {
			out = append(out, Presented{Movie: movie, Score: scored.Score})
		}
	}
	return out
}
