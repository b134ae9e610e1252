// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// FeatureRow is one sparse bag-of-terms count vector.
// Cols is strictly ascending and parallel to Counts.
type FeatureRow struct {
	Cols   []int
	Counts []float64
	Norm   float64
}

// FeatureMatrix holds one row per catalog movie over a sorted vocabulary.
type FeatureMatrix struct {
	Vocabulary []string
	Rows       []FeatureRow
}

// Cosine returns the cosine similarity of rows i and j, or 0 when either
// row is all zero.
func (m *FeatureMatrix) Cosine(i, j int) float64 {
	a, b := m.Rows[i], m.Rows[j]
	if a.Norm == 0 || b.Norm == 0 {
		return 0
	}
	var dot float64
	for x, y := 0, 0; x < len(a.Cols) && y < len(b.Cols); {
		switch {
		case a.Cols[x] == b.Cols[y]:
			dot += a.Counts[x] * b.Counts[y]
			x++
			y++
		case a.Cols[x] < b.Cols[y]:
			x++
		default:
			y++
		}
	}
	return dot / (a.Norm * b.Norm)
}

// BuildStats counts what Build recovered from.
type BuildStats struct {
	Movies           int `json:"movies"`
	Vocabulary       int `json:"vocabulary"`
	MalformedGenres  int `json:"malformed_genres"`
	MalformedStudios int `json:"malformed_studios"`
	DuplicateIDs     int `json:"duplicate_ids"`
}

// Catalog is the ordered movie list with its feature matrix.
// Matrix.Rows[i] always describes Movies[i].
type Catalog struct {
	Movies []*Movie
	ByID   map[int]*Movie
	Matrix *FeatureMatrix
	Stats  BuildStats

	titles map[string]int
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.Movies)
}

// IndexOf resolves an exact, case-sensitive title to the position of its
// first occurrence.
func (c *Catalog) IndexOf(title string) (int, bool) {
	i, ok := c.titles[title]
	return i, ok
}

// Titles returns up to limit titles in catalog order. A limit <= 0 returns
// every title.
func (c *Catalog) Titles(limit int) []string {
	n := len(c.Movies)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = c.Movies[i].Title
	}
	return out
}

// Build turns raw records into the ordered catalog and its feature matrix.
//
// Every record produces exactly one movie and one row, in input order. A
// genre or studio field that fails to parse is treated as empty and
// counted in Stats. Zero records produce an empty catalog.
func Build(records []MovieRecord, keywordsByID map[int][]string) *Catalog {
	c := &Catalog{
		Movies: make([]*Movie, 0, len(records)),
		ByID:   make(map[int]*Movie, len(records)),
		titles: make(map[string]int, len(records)),
	}

	bags := make([]map[string]int, len(records))
	terms := make(map[string]struct{})

	for i := range records {
		movie := c.newMovie(&records[i], keywordsByID[records[i].ID])

		if _, dup := c.ByID[movie.ID]; dup {
			c.Stats.DuplicateIDs++
		}
		c.ByID[movie.ID] = movie
		if _, seen := c.titles[movie.Title]; !seen {
			c.titles[movie.Title] = len(c.Movies)
		}
		c.Movies = append(c.Movies, movie)

		bag := termBag(movie)
		for term := range bag {
			terms[term] = struct{}{}
		}
		bags[i] = bag
	}

	vocabulary := make([]string, 0, len(terms))
	for term := range terms {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	column := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		column[term] = i
	}

	matrix := &FeatureMatrix{
		Vocabulary: vocabulary,
		Rows:       make([]FeatureRow, len(bags)),
	}
	for i, bag := range bags {
		matrix.Rows[i] = newFeatureRow(bag, column)
	}

	c.Matrix = matrix
	c.Stats.Movies = len(c.Movies)
	c.Stats.Vocabulary = len(vocabulary)
	return c
}

func (c *Catalog) newMovie(rec *MovieRecord, keywords []string) *Movie {
	genres, err := ParseNamedList("genres", rec.Genres)
	if err != nil {
		c.Stats.MalformedGenres++
		genres = nil
	}
	studios, err := ParseNamedList("production_companies", rec.Studios)
	if err != nil {
		c.Stats.MalformedStudios++
		studios = nil
	}

	return &Movie{
		ID:          rec.ID,
		Title:       rec.Title,
		Overview:    rec.Overview,
		Genres:      nonNil(genres),
		Studios:     nonNil(studios),
		Keywords:    append([]string{}, keywords...),
		Language:    rec.Language,
		ReleaseDate: rec.ReleaseDate,
		Homepage:    rec.Homepage,
		Adult:       rec.Adult,
		Runtime:     rec.Runtime,
		Popularity:  rec.Popularity,
		VoteAverage: rec.VoteAverage,
		VoteCount:   rec.VoteCount,
		Budget:      rec.Budget,
		Revenue:     rec.Revenue,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// termBag counts the descriptive terms of a movie. Genre, studio and
// keyword names are whole lowercased terms; the overview contributes its
// lowercased alphanumeric words.
func termBag(m *Movie) map[string]int {
	bag := make(map[string]int)
	for _, group := range [][]string{m.Genres, m.Studios, m.Keywords} {
		for _, name := range group {
			if term := strings.ToLower(strings.TrimSpace(name)); term != "" {
				bag[term]++
			}
		}
	}
	for _, word := range overviewWords(m.Overview) {
		bag[word]++
	}
	return bag
}

func overviewWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func newFeatureRow(bag map[string]int, column map[string]int) FeatureRow {
	counts := make(map[int]float64, len(bag))
	cols := make([]int, 0, len(bag))
	for term, n := range bag {
		col := column[term]
		counts[col] = float64(n)
		cols = append(cols, col)
	}
	sort.Ints(cols)

	row := FeatureRow{Cols: cols, Counts: make([]float64, len(cols))}
	var sumSquares float64
	for k, col := range cols {
		row.Counts[k] = counts[col]
		sumSquares += counts[col] * counts[col]
	}
	row.Norm = math.Sqrt(sumSquares)
	return row
}
