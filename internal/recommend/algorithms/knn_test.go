// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/movierec/internal/recommend"
)

const (
	activeUser = 0
	titanic    = 597
	avatar     = 19995
)

func TestNewCollaborative(t *testing.T) {
	if got := NewUserBasedCF().Name(); got != "user_cf" {
		t.Errorf("UserBasedCF.Name() = %q, want %q", got, "user_cf")
	}
	if got := NewItemBasedCF().Name(); got != "item_cf" {
		t.Errorf("ItemBasedCF.Name() = %q, want %q", got, "item_cf")
	}
}

func TestUserBasedCF_SingleNeighbor(t *testing.T) {
	idx := recommend.Group([]recommend.Rating{
		{UserID: activeUser, MovieID: titanic, Value: 1},
		{UserID: 5, MovieID: titanic, Value: 1},
		{UserID: 5, MovieID: avatar, Value: 5},
	})

	result, err := NewUserBasedCF().Recommend(context.Background(), idx, activeUser)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	sim := 1 / (1 * math.Sqrt(26))
	want := recommend.RankedResult{{MovieID: avatar, Score: sim * 5}}
	if len(result) != 1 || result[0].MovieID != avatar {
		t.Fatalf("Recommend() = %v, want %v", result, want)
	}
	if math.Abs(result[0].Score-want[0].Score) > 1e-12 {
		t.Errorf("score = %v, want %v", result[0].Score, want[0].Score)
	}
}

func TestUserBasedCF_UnnormalizedSum(t *testing.T) {
	idx := recommend.Group([]recommend.Rating{
		{UserID: activeUser, MovieID: 1, Value: 5},
		{UserID: 1, MovieID: 1, Value: 5},
		{UserID: 1, MovieID: 2, Value: 4},
		{UserID: 2, MovieID: 1, Value: 1},
		{UserID: 2, MovieID: 2, Value: 2},
		{UserID: 2, MovieID: 3, Value: 3},
		// No overlap with the active user: contributes nothing.
		{UserID: 3, MovieID: 4, Value: 5},
	})

	result, err := NewUserBasedCF().Recommend(context.Background(), idx, activeUser)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	sim1 := 25 / (5 * math.Sqrt(41))
	sim2 := 5 / (5 * math.Sqrt(14))
	want := map[int]float64{
		2: sim1*4 + sim2*2,
		3: sim2 * 3,
	}

	if len(result) != len(want) {
		t.Fatalf("Recommend() = %v, want movies 2 and 3", result)
	}
	assertNonIncreasing(t, result)
	for _, s := range result {
		if math.Abs(s.Score-want[s.MovieID]) > 1e-12 {
			t.Errorf("score(%d) = %v, want %v", s.MovieID, s.Score, want[s.MovieID])
		}
	}
}

func TestItemBasedCF_Recommend(t *testing.T) {
	idx := recommend.Group([]recommend.Rating{
		{UserID: activeUser, MovieID: 1, Value: 4},
		{UserID: 1, MovieID: 1, Value: 2},
		{UserID: 1, MovieID: 2, Value: 3},
		{UserID: 2, MovieID: 2, Value: 1},
		{UserID: 2, MovieID: 3, Value: 5},
	})

	result, err := NewItemBasedCF().Recommend(context.Background(), idx, activeUser)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// Movie 3 shares no user with movie 1 and gets no score.
	sim := 6 / (math.Sqrt(20) * math.Sqrt(10))
	if len(result) != 1 || result[0].MovieID != 2 {
		t.Fatalf("Recommend() = %v, want only movie 2", result)
	}
	if math.Abs(result[0].Score-sim*4) > 1e-12 {
		t.Errorf("score = %v, want %v", result[0].Score, sim*4)
	}
}

func TestItemBasedCF_SumsOverRatedMovies(t *testing.T) {
	idx := recommend.Group([]recommend.Rating{
		{UserID: activeUser, MovieID: 1, Value: 5},
		{UserID: activeUser, MovieID: 2, Value: 1},
		{UserID: 1, MovieID: 1, Value: 4},
		{UserID: 1, MovieID: 3, Value: 4},
		{UserID: 2, MovieID: 2, Value: 4},
		{UserID: 2, MovieID: 4, Value: 4},
	})

	result, err := NewItemBasedCF().Recommend(context.Background(), idx, activeUser)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := result.MovieIDs(); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Fatalf("MovieIDs() = %v, want [3 4]", got)
	}
	if result[0].Score <= result[1].Score {
		t.Errorf("scores = %v, want movie 3 (liked neighbor) above movie 4", result)
	}
}

func TestCollaborative_ExcludesRated(t *testing.T) {
	ratings := []recommend.Rating{
		{UserID: activeUser, MovieID: 1, Value: 5},
		{UserID: activeUser, MovieID: 2, Value: 3},
	}
	for u := 1; u <= 5; u++ {
		for m := 1; m <= 6; m++ {
			ratings = append(ratings, recommend.Rating{UserID: u, MovieID: m, Value: float64((u*m)%5 + 1)})
		}
	}
	idx := recommend.Group(ratings)

	algs := []recommend.CollaborativeAlgorithm{NewUserBasedCF(), NewItemBasedCF()}
	for _, alg := range algs {
		t.Run(alg.Name(), func(t *testing.T) {
			result, err := alg.Recommend(context.Background(), idx, activeUser)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(result) != 4 {
				t.Errorf("len(result) = %d, want 4", len(result))
			}
			seen := map[int]bool{}
			for _, s := range result {
				if s.MovieID == 1 || s.MovieID == 2 {
					t.Errorf("result contains rated movie %d", s.MovieID)
				}
				if seen[s.MovieID] {
					t.Errorf("duplicate movie %d", s.MovieID)
				}
				seen[s.MovieID] = true
			}
			assertNonIncreasing(t, result)

			again, err := alg.Recommend(context.Background(), idx, activeUser)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if !reflect.DeepEqual(result, again) {
				t.Error("repeated runs differ")
			}
		})
	}
}

func TestCollaborative_TiesByMovieID(t *testing.T) {
	idx := recommend.Group([]recommend.Rating{
		{UserID: activeUser, MovieID: 1, Value: 3},
		{UserID: 1, MovieID: 1, Value: 3},
		{UserID: 1, MovieID: 9, Value: 4},
		{UserID: 1, MovieID: 7, Value: 4},
		{UserID: 1, MovieID: 8, Value: 4},
	})

	result, err := NewUserBasedCF().Recommend(context.Background(), idx, activeUser)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := result.MovieIDs(); !reflect.DeepEqual(got, []int{7, 8, 9}) {
		t.Errorf("MovieIDs() = %v, want [7 8 9]", got)
	}
}

func TestCollaborative_EmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		ratings []recommend.Rating
	}{
		{name: "no ratings", ratings: nil},
		{name: "unknown user", ratings: []recommend.Rating{{UserID: 1, MovieID: 1, Value: 4}}},
		{name: "no overlap", ratings: []recommend.Rating{
			{UserID: activeUser, MovieID: 1, Value: 4},
			{UserID: 1, MovieID: 2, Value: 4},
		}},
	}

	algs := []recommend.CollaborativeAlgorithm{NewUserBasedCF(), NewItemBasedCF()}
	for _, tt := range tests {
		for _, alg := range algs {
			t.Run(tt.name+"/"+alg.Name(), func(t *testing.T) {
				result, err := alg.Recommend(context.Background(), recommend.Group(tt.ratings), activeUser)
				if err != nil {
					t.Fatalf("Recommend() error = %v", err)
				}
				if result == nil || len(result) != 0 {
					t.Errorf("Recommend() = %#v, want empty non-nil result", result)
				}
			})
		}
	}
}

func TestCollaborative_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	idx := recommend.Group([]recommend.Rating{
		{UserID: activeUser, MovieID: 1, Value: 4},
		{UserID: 1, MovieID: 1, Value: 4},
		{UserID: 1, MovieID: 2, Value: 4},
	})

	algs := []recommend.CollaborativeAlgorithm{NewUserBasedCF(), NewItemBasedCF()}
	for _, alg := range algs {
		if _, err := alg.Recommend(ctx, idx, activeUser); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: Recommend() error = %v, want context.Canceled", alg.Name(), err)
		}
	}
}
