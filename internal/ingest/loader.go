// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/recommend"
)

// Source names used in logs and metrics.
const (
	SourceMovies   = "movies"
	SourceKeywords = "keywords"
	SourceRatings  = "ratings"
)

// movieColumns are read from the movies file, in scan order.
var movieColumns = []string{
	"id", "original_title", "overview", "genres", "production_companies",
	"original_language", "release_date", "runtime", "popularity",
	"vote_average", "vote_count", "budget", "revenue", "adult", "homepage",
}

// Paths locates the three input files. Keywords is optional.
type Paths struct {
	Movies   string
	Keywords string
	Ratings  string
}

// Stats counts what each source produced.
type Stats struct {
	Movies            int `json:"movies"`
	SkippedMovies     int `json:"skipped_movies"`
	DuplicateMovies   int `json:"duplicate_movies"`
	Keywords          int `json:"keywords"`
	SkippedKeywords   int `json:"skipped_keywords"`
	MalformedKeywords int `json:"malformed_keywords"`
	Ratings           int `json:"ratings"`
	SkippedRatings    int `json:"skipped_ratings"`
}

// Dataset is everything the recommendation core is built from.
type Dataset struct {
	Records  []recommend.MovieRecord
	Keywords map[int][]string
	Ratings  []recommend.Rating
	Stats    Stats
}

// Loader reads CSV inputs through an in-memory DuckDB database.
type Loader struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewLoader opens the in-memory database.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(logger zerolog.Logger) (*Loader, error) {
	db, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	// One connection keeps the in-memory database shared across queries.
	db.SetMaxOpenConns(1)

	return &Loader{
		db:     db,
		logger: logger.With().Str("component", "ingest").Logger(),
	}, nil
}

// Close releases the database.
func (l *Loader) Close() error {
	return l.db.Close()
}

// Load reads all three sources. A missing movies or ratings file is an
// error; a missing keywords path yields no keywords.
func (l *Loader) Load(ctx context.Context, paths Paths) (*Dataset, error) {
	ds := &Dataset{Keywords: make(map[int][]string)}

	if err := l.loadMovies(ctx, paths.Movies, ds); err != nil {
		return nil, err
	}
	if paths.Keywords != "" {
		if err := l.loadKeywords(ctx, paths.Keywords, ds); err != nil {
			return nil, err
		}
	}
	if err := l.loadRatings(ctx, paths.Ratings, ds); err != nil {
		return nil, err
	}

	l.logger.Info().
		Int("movies", ds.Stats.Movies).
		Int("keywords", ds.Stats.Keywords).
		Int("ratings", ds.Stats.Ratings).
		Int("skipped_movies", ds.Stats.SkippedMovies).
		Int("skipped_ratings", ds.Stats.SkippedRatings).
		Msg("dataset loaded")
	return ds, nil
}

// Load opens a temporary loader and reads paths with it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, paths Paths, logger zerolog.Logger) (*Dataset, error) {
	loader, err := NewLoader(logger)
	if err != nil {
		return nil, err
	}
	defer loader.Close()
	return loader.Load(ctx, paths)
}

func (l *Loader) loadMovies(ctx context.Context, path string, ds *Dataset) error {
	start := time.Now()
	rows, err := l.query(ctx, path, movieColumns)
	if err != nil {
		return fmt.Errorf("read %s: %w", SourceMovies, err)
	}
	defer rows.Close()

	positions := make(map[int]int)
	cells := make([]sql.NullString, len(movieColumns))
	dest := scanTargets(cells)
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan %s: %w", SourceMovies, err)
		}
		rec, ok := movieRecord(cells)
		if !ok {
			ds.Stats.SkippedMovies++
			continue
		}
		if pos, dup := positions[rec.ID]; dup {
			ds.Records[pos] = rec
			ds.Stats.DuplicateMovies++
			continue
		}
		positions[rec.ID] = len(ds.Records)
		ds.Records = append(ds.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", SourceMovies, err)
	}

	ds.Stats.Movies = len(ds.Records)
	l.finish(SourceMovies, path, start, ds.Stats.Movies, ds.Stats.SkippedMovies)
	if ds.Stats.DuplicateMovies > 0 {
		l.logger.Warn().Int("duplicates", ds.Stats.DuplicateMovies).Msg("duplicate movie ids, last record kept")
	}
	return nil
}

func (l *Loader) loadKeywords(ctx context.Context, path string, ds *Dataset) error {
	start := time.Now()
	rows, err := l.query(ctx, path, []string{"id", "keywords"})
	if err != nil {
		return fmt.Errorf("read %s: %w", SourceKeywords, err)
	}
	defer rows.Close()

	var rawID, rawKeywords sql.NullString
	for rows.Next() {
		if err := rows.Scan(&rawID, &rawKeywords); err != nil {
			return fmt.Errorf("scan %s: %w", SourceKeywords, err)
		}
		id, ok := parseInt(rawID.String)
		if !ok {
			ds.Stats.SkippedKeywords++
			continue
		}
		names, err := recommend.ParseNamedList("keywords", rawKeywords.String)
		if err != nil {
			ds.Stats.MalformedKeywords++
			l.logger.Debug().Err(err).Int("movie_id", id).Msg("malformed keywords")
			names = nil
		}
		ds.Keywords[id] = names
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", SourceKeywords, err)
	}

	ds.Stats.Keywords = len(ds.Keywords)
	l.finish(SourceKeywords, path, start, ds.Stats.Keywords, ds.Stats.SkippedKeywords)
	return nil
}

func (l *Loader) loadRatings(ctx context.Context, path string, ds *Dataset) error {
	start := time.Now()
	rows, err := l.query(ctx, path, []string{"userId", "movieId", "rating"})
	if err != nil {
		return fmt.Errorf("read %s: %w", SourceRatings, err)
	}
	defer rows.Close()

	var rawUser, rawMovie, rawValue sql.NullString
	for rows.Next() {
		if err := rows.Scan(&rawUser, &rawMovie, &rawValue); err != nil {
			return fmt.Errorf("scan %s: %w", SourceRatings, err)
		}
		r, ok := rating(rawUser.String, rawMovie.String, rawValue.String)
		if !ok {
			ds.Stats.SkippedRatings++
			continue
		}
		ds.Ratings = append(ds.Ratings, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", SourceRatings, err)
	}

	ds.Stats.Ratings = len(ds.Ratings)
	l.finish(SourceRatings, path, start, ds.Stats.Ratings, ds.Stats.SkippedRatings)
	return nil
}

// query selects columns from a CSV file as text.
func (l *Loader) query(ctx context.Context, path string, columns []string) (*sql.Rows, error) {
	if path == "" {
		return nil, errors.New("path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	q := fmt.Sprintf(
		"SELECT %s FROM read_csv(%s, header=true, all_varchar=true, ignore_errors=true, delim=',', quote='\"', escape='\"')",
		strings.Join(quoted, ", "), quoteLiteral(path))

	return l.db.QueryContext(ctx, q)
}

func (l *Loader) finish(source, path string, start time.Time, loaded, skipped int) {
	duration := time.Since(start)
	metrics.RecordIngest(source, duration, loaded, skipped)
	l.logger.Debug().
		Str("source", source).
		Str("path", path).
		Int("loaded", loaded).
		Int("skipped", skipped).
		Dur("duration", duration).
		Msg("source read")
}

func scanTargets(cells []sql.NullString) []any {
	dest := make([]any, len(cells))
	for i := range cells {
		dest[i] = &cells[i]
	}
	return dest
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
