// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Enrich    EnrichConfig    `koanf:"enrich"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// DataConfig points at the three CSV inputs.
type DataConfig struct {
	MoviesPath   string `koanf:"movies_path" validate:"required"`
	KeywordsPath string `koanf:"keywords_path"`
	RatingsPath  string `koanf:"ratings_path" validate:"required"`
}

// RecommendConfig holds engine settings and the active user profile.
type RecommendConfig struct {
	ActiveUserID      int                      `koanf:"active_user_id"`
	Profile           []recommend.ProfileEntry `koanf:"profile" validate:"dive"`
	DefaultLimit      int                      `koanf:"default_limit" validate:"min=1"`
	MaxLimit          int                      `koanf:"max_limit" validate:"gtefield=DefaultLimit"`
	TitleOnly         bool                     `koanf:"title_only"`
	SearchLimit       int                      `koanf:"search_limit" validate:"min=1"`
	WarmOnStartup     bool                     `koanf:"warm_on_startup"`
	WarmTimeout       time.Duration            `koanf:"warm_timeout" validate:"gt=0"`
	PredictionTimeout time.Duration            `koanf:"prediction_timeout" validate:"gt=0"`
}

// Engine maps the section onto the engine configuration.
func (r *RecommendConfig) Engine() *recommend.Config {
	return &recommend.Config{
		ActiveUserID:      r.ActiveUserID,
		Profile:           append([]recommend.ProfileEntry(nil), r.Profile...),
		DefaultLimit:      r.DefaultLimit,
		MaxLimit:          r.MaxLimit,
		TitleOnly:         r.TitleOnly,
		WarmTimeout:       r.WarmTimeout,
		PredictionTimeout: r.PredictionTimeout,
	}
}

// EnrichConfig holds OMDb lookup settings. Enrichment is skipped when
// disabled or when no API key is configured.
type EnrichConfig struct {
	Enabled        bool          `koanf:"enabled"`
	BaseURL        string        `koanf:"base_url" validate:"omitempty,http_url"`
	APIKey         string        `koanf:"api_key"`
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxConcurrency int           `koanf:"max_concurrency" validate:"min=1,max=64"`
	RatePerSecond  float64       `koanf:"rate_per_second" validate:"gt=0"`
	Burst          int           `koanf:"burst" validate:"min=1"`
	CacheTTL       time.Duration `koanf:"cache_ttl" validate:"gt=0"`
	CacheDir       string        `koanf:"cache_dir"`
}

// Active reports whether lookups should be made.
func (e *EnrichConfig) Active() bool {
	return e.Enabled && e.APIKey != ""
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Validate checks every section and reports all invalid fields at once.
func (c *Config) Validate() error {
	var errs []error

	sections := []struct {
		name  string
		value interface{}
	}{
		{"server", &c.Server},
		{"logging", &c.Logging},
		{"data", &c.Data},
		{"recommend", &c.Recommend},
		{"enrich", &c.Enrich},
		{"security", &c.Security},
	}
	for _, s := range sections {
		if verr := validation.ValidateStruct(s.value); verr != nil {
			for _, fe := range verr.Errors() {
				errs = append(errs, fmt.Errorf("%s.%s", s.name, fe.Error()))
			}
		}
	}

	if c.Enrich.Enabled && c.Enrich.BaseURL == "" {
		errs = append(errs, errors.New("enrich.base_url is required when enrichment is enabled"))
	}

	for i, entry := range c.Recommend.Profile {
		if entry.Title == "" {
			errs = append(errs, fmt.Errorf("recommend.profile[%d].title must not be empty", i))
		}
	}

	return errors.Join(errs...)
}
