// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/movierec/internal/recommend"
)

// denseCosine is the textbook cosine of two equal-length dense vectors.
func denseCosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// denseRow expands a sparse feature row to the full vocabulary width.
func denseRow(m *recommend.FeatureMatrix, i int) []float64 {
	out := make([]float64, len(m.Vocabulary))
	row := m.Rows[i]
	for k, col := range row.Cols {
		out[col] = row.Counts[k]
	}
	return out
}

func TestDenseCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, want: 1},
		{name: "scaled", a: []float64{1, 2}, b: []float64{2, 4}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 1}, want: 0},
		{name: "both zero", a: []float64{0, 0}, b: []float64{0, 0}, want: 0},
		{name: "partial overlap", a: []float64{1, 1, 0}, b: []float64{0, 1, 1}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := denseCosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("denseCosine() = %v, want %v", got, tt.want)
			}
			if rev := denseCosine(tt.b, tt.a); rev != got {
				t.Errorf("denseCosine(b, a) = %v, want %v", rev, got)
			}
		})
	}
}

func TestRankByScore(t *testing.T) {
	got := rankByScore(map[int]float64{5: 1, 3: 2, 9: 1, 1: 1})
	want := recommend.RankedResult{
		{MovieID: 3, Score: 2},
		{MovieID: 1, Score: 1},
		{MovieID: 5, Score: 1},
		{MovieID: 9, Score: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rankByScore() = %v, want %v", got, want)
	}
}

func TestBaseAlgorithm_Name(t *testing.T) {
	b := NewBaseAlgorithm("custom")
	if got := b.Name(); got != "custom" {
		t.Errorf("Name() = %q, want %q", got, "custom")
	}
}

// assertNonIncreasing fails if scores ever increase along the result.
func assertNonIncreasing(t *testing.T, result recommend.RankedResult) {
	t.Helper()
	for i := 1; i < len(result); i++ {
		if result[i].Score > result[i-1].Score {
			t.Fatalf("result not sorted at %d: %v > %v", i, result[i].Score, result[i-1].Score)
		}
	}
}
