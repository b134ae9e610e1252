// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package ingest loads the movie catalog, keyword lists and ratings from
// CSV files through an embedded, in-memory DuckDB connection.
//
// Every column is read as text (all_varchar) and converted here, so a bad
// cell degrades one field or skips one row instead of failing the load.
// Rows DuckDB cannot split into the right number of columns are dropped by
// read_csv itself (ignore_errors).
//
// # Inputs
//
//   - movies_metadata.csv: id, original_title, overview, genres,
//     production_companies, original_language, release_date, runtime,
//     popularity, vote_average, vote_count, budget, revenue, adult, homepage
//   - keywords.csv: id, keywords
//   - ratings_small.csv: userId, movieId, rating
//
// # Usage
//
//	loader, err := ingest.NewLoader(logger)
//	if err != nil { ... }
//	defer loader.Close()
//
//	dataset, err := loader.Load(ctx, ingest.Paths{
//	    Movies:   "data/movies_metadata.csv",
//	    Keywords: "data/keywords.csv",
//	    Ratings:  "data/ratings_small.csv",
//	})
//	catalog := recommend.Build(dataset.Records, dataset.Keywords)
package ingest
