// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package recommend implements the movie recommendation core.
//
// # Architecture
//
// The core turns a catalog snapshot into three ranked signal sources:
//
//   - Content similarity: cosine over bag-of-terms feature rows
//   - User-based CF: similarity-weighted sums of other users' ratings
//   - Item-based CF: similarity-weighted sums over the user's own ratings
//
// Data flows leaf-first:
//
//	records + keywords -> Build -> Catalog (ordered movies, feature matrix)
//	ratings            -> Group -> RatingIndex (by user, by movie)
//	Catalog/RatingIndex -> algorithms -> RankedResult -> Format
//
// The algorithms live in the algorithms subpackage and are registered on
// an Engine explicitly. Nothing in this package reads process-wide state.
//
// # Determinism
//
// Building the catalog twice from the same records produces identical
// feature matrices. Content results break ties by catalog order. CF results
// break ties by ascending movie id.
//
// # Scores
//
// CF scores are raw similarity-weighted sums. They are not on the rating
// scale and are only meaningful as a ranking key.
//
// # Usage
//
//	catalog := recommend.Build(records, keywords)
//	profile := recommend.ResolveProfile(catalog, 0, entries)
//	index := recommend.Group(recommend.WithProfile(profile, ratings))
//
//	engine, err := recommend.NewEngine(cfg, catalog, index, logger)
//	engine.SetContent(algorithms.NewContentBased())
//	engine.RegisterCollaborative(recommend.SectionPeopleLiked, algorithms.NewUserBasedCF())
//	engine.RegisterCollaborative(recommend.SectionYouMayLike, algorithms.NewItemBasedCF())
//
//	if err := engine.Warm(ctx); err != nil { ... }
//	prediction, err := engine.Predict(ctx, recommend.PredictRequest{Query: "Jurassic Park"})
//
// # Thread Safety
//
// Catalog and RatingIndex are immutable after construction. The engine
// guards its warmed results with a RWMutex and is safe for concurrent use.
package recommend
