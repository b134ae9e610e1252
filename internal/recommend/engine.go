// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Note: This package has no dependencies on other internal packages.
// Metrics reach the outside through a RunObserver.

// RunObserver is notified after every algorithm run.
type RunObserver func(algorithm string, duration time.Duration, results int, err error)

// Engine serves recommendations from one immutable snapshot.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *Catalog
	index   *RatingIndex

	algMu         sync.RWMutex
	content       ContentAlgorithm
	sections      []string
	collaborative map[string]CollaborativeAlgorithm

	warmMu   sync.RWMutex
	warmed   map[string]RankedResult
	warmedAt time.Time

	observer     RunObserver
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine over a built catalog and rating index.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog *Catalog, index *RatingIndex, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil || index == nil {
		return nil, errors.New("catalog and rating index are required")
	}

	return &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		catalog:       catalog,
		index:         index,
		collaborative: make(map[string]CollaborativeAlgorithm),
		warmed:        make(map[string]RankedResult),
	}, nil
}

// SetObserver installs the run observer. It must be called before the
// engine is used concurrently.
func (e *Engine) SetObserver(obs RunObserver) {
	e.observer = obs
}

// SetContent registers the content similarity algorithm.
func (e *Engine) SetContent(alg ContentAlgorithm) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	e.content = alg
	e.logger.Info().
		Str("algorithm", alg.Name()).
		Str("section", SectionSearch).
		Msg("registered algorithm")
}

// RegisterCollaborative registers a collaborative algorithm under a
// section name. Registering a section twice replaces the algorithm.
func (e *Engine) RegisterCollaborative(section string, alg CollaborativeAlgorithm) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	if _, exists := e.collaborative[section]; !exists {
		e.sections = append(e.sections, section)
	}
	e.collaborative[section] = alg
	e.logger.Info().
		Str("algorithm", alg.Name()).
		Str("section", section).
		Msg("registered algorithm")
}

// Algorithm returns the name of the algorithm serving section, or ""
// when nothing is registered for it.
func (e *Engine) Algorithm(section string) string {
	e.algMu.RLock()
	defer e.algMu.RUnlock()

	if section == SectionSearch {
		if e.content == nil {
			return ""
		}
		return e.content.Name()
	}
	if alg, ok := e.collaborative[section]; ok {
		return alg.Name()
	}
	return ""
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Warm computes every collaborative section for the active user in
// parallel and stores the results. On error the previous results stay.
func (e *Engine) Warm(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.config.WarmTimeout)
	defer cancel()

	start := time.Now()
	e.algMu.RLock()
	sections := append([]string(nil), e.sections...)
	algs := make([]CollaborativeAlgorithm, len(sections))
	for i, s := range sections {
		algs[i] = e.collaborative[s]
	}
	e.algMu.RUnlock()

	results := make([]RankedResult, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	for i := range sections {
		g.Go(func() error {
			result, err := e.runCollaborative(gctx, algs[i])
			if err != nil {
				return fmt.Errorf("warm %s: %w", sections[i], err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.errorCount.Add(1)
		return err
	}

	e.warmMu.Lock()
	for i, s := range sections {
		e.warmed[s] = results[i]
	}
	e.warmedAt = time.Now()
	e.warmMu.Unlock()

	e.logger.Info().
		Strs("sections", sections).
		Int("active_user_id", e.config.ActiveUserID).
		Dur("duration", time.Since(start)).
		Msg("collaborative sections warmed")
	return nil
}

// IsWarm reports whether Warm has completed at least once.
func (e *Engine) IsWarm() bool {
	e.warmMu.RLock()
	defer e.warmMu.RUnlock()
	return !e.warmedAt.IsZero()
}

// Section returns the ranked result of a collaborative section for the
// active user, computing it when it has not been warmed.
func (e *Engine) Section(ctx context.Context, section string) (RankedResult, error) {
	e.warmMu.RLock()
	result, ok := e.warmed[section]
	e.warmMu.RUnlock()
	if ok {
		return result, nil
	}

	e.algMu.RLock()
	alg, ok := e.collaborative[section]
	e.algMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	return e.runCollaborative(ctx, alg)
}

// Similar ranks every other movie by content similarity to title.
func (e *Engine) Similar(ctx context.Context, title string) (RankedResult, error) {
	e.algMu.RLock()
	alg := e.content
	e.algMu.RUnlock()
	if alg == nil {
		return nil, ErrNoContentAlgorithm
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.PredictionTimeout)
	defer cancel()

	start := time.Now()
	result, err := alg.Recommend(ctx, e.catalog, title)
	e.observe(alg.Name(), start, len(result), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Predict returns the formatted search, people_liked and you_may_like
// sections. The three are computed concurrently. An unknown query title
// fails the whole prediction with a *NotFoundError.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Predict(ctx context.Context, req PredictRequest) (*Prediction, error) {
	e.requestCount.Add(1)
	limit := e.config.ClampLimit(req.Limit)
	logger := e.logger.With().Str("query", req.Query).Int("limit", limit).Logger()

	var search, people, items RankedResult
	g, gctx := errgroup.WithContext(ctx)
	if req.Query != "" {
		g.Go(func() error {
			var err error
			search, err = e.Similar(gctx, req.Query)
			return err
		})
	}
	g.Go(func() error {
		var err error
		people, err = e.optionalSection(gctx, SectionPeopleLiked)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = e.optionalSection(gctx, SectionYouMayLike)
		return err
	})
	if err := g.Wait(); err != nil {
		e.errorCount.Add(1)
		logger.Debug().Err(err).Msg("prediction failed")
		return nil, err
	}

	lookup := e.catalog.ByID
	prediction := &Prediction{
		Search:      Format(search, lookup, limit, req.TitleOnly),
		PeopleLiked: Format(people, lookup, limit, req.TitleOnly),
		YouMayLike:  Format(items, lookup, limit, req.TitleOnly),
	}

	logger.Debug().
		Int("search", len(prediction.Search)).
		Int("people_liked", len(prediction.PeopleLiked)).
		Int("you_may_like", len(prediction.YouMayLike)).
		Msg("prediction complete")
	return prediction, nil
}

// optionalSection treats an unregistered section as empty.
func (e *Engine) optionalSection(ctx context.Context, section string) (RankedResult, error) {
	result, err := e.Section(ctx, section)
	if errors.Is(err, ErrUnknownSection) {
		return nil, nil
	}
	return result, err
}

// Stats describes the snapshot the engine serves.
func (e *Engine) Stats() Stats {
	return Stats{
		Movies:       e.catalog.Len(),
		Vocabulary:   len(e.catalog.Matrix.Vocabulary),
		Users:        len(e.index.ByUser),
		RatedMovies:  len(e.index.ByMovie),
		ActiveUserID: e.config.ActiveUserID,
		ActiveRated:  len(e.index.ByUser[e.config.ActiveUserID]),
		Warm:         e.IsWarm(),
	}
}

// Counters returns the request and error counts since start.
func (e *Engine) Counters() (requests, errs int64) {
	return e.requestCount.Load(), e.errorCount.Load()
}

func (e *Engine) runCollaborative(ctx context.Context, alg CollaborativeAlgorithm) (RankedResult, error) {
	start := time.Now()
	result, err := alg.Recommend(ctx, e.index, e.config.ActiveUserID)
	e.observe(alg.Name(), start, len(result), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) observe(algorithm string, start time.Time, results int, err error) {
	duration := time.Since(start)
	if err != nil && !errors.Is(err, ErrNotFound) {
		e.logger.Warn().Err(err).Str("algorithm", algorithm).Msg("algorithm run failed")
	}
	if e.observer != nil {
		e.observer(algorithm, duration, results, err)
	}
}
