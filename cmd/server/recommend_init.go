// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/ingest"
	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

// initRecommend loads the dataset and builds an engine with the content
// and both collaborative algorithms registered. The engine is not warmed.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	ds, err := ingest.Load(ctx, ingest.Paths{
		Movies:   cfg.Data.MoviesPath,
		Keywords: cfg.Data.KeywordsPath,
		Ratings:  cfg.Data.RatingsPath,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	catalog := recommend.Build(ds.Records, ds.Keywords)
	metrics.RecordCatalog(catalog.Len(), len(catalog.Matrix.Vocabulary), len(ds.Ratings))
	metrics.RecordMalformedFields("genres", catalog.Stats.MalformedGenres)
	metrics.RecordMalformedFields("production_companies", catalog.Stats.MalformedStudios)
	metrics.RecordMalformedFields("keywords", ds.Stats.MalformedKeywords)

	engineCfg := cfg.Recommend.Engine()
	profile := recommend.ResolveProfile(catalog, engineCfg.ActiveUserID, engineCfg.Profile)
	if len(profile.Unresolved) > 0 {
		logger.Warn().
			Strs("titles", profile.Unresolved).
			Msg("profile titles not found in catalog")
	}
	index := recommend.Group(recommend.WithProfile(profile, ds.Ratings))

	engine, err := recommend.NewEngine(engineCfg, catalog, index, logger)
	if err != nil {
		return nil, err
	}
	engine.SetContent(algorithms.NewContentBased())
	engine.RegisterCollaborative(recommend.SectionPeopleLiked, algorithms.NewUserBasedCF())
	engine.RegisterCollaborative(recommend.SectionYouMayLike, algorithms.NewItemBasedCF())
	engine.SetObserver(func(algorithm string, duration time.Duration, results int, err error) {
		metrics.RecordRecommendation(algorithm, duration, results, err, metrics.ErrorType(err, recommend.ErrNotFound))
	})

	stats := engine.Stats()
	logger.Info().
		Int("movies", stats.Movies).
		Int("vocabulary", stats.Vocabulary).
		Int("users", stats.Users).
		Int("active_rated", stats.ActiveRated).
		Msg("recommendation engine ready")
	return engine, nil
}
