// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/movierec/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movierec/config.yaml",
	"/etc/movierec/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Data: DataConfig{
			MoviesPath:   "data/movies_metadata.csv",
			KeywordsPath: "data/keywords.csv",
			RatingsPath:  "data/ratings_small.csv",
		},
		Recommend: RecommendConfig{
			ActiveUserID:      engine.ActiveUserID,
			Profile:           engine.Profile,
			DefaultLimit:      engine.DefaultLimit,
			MaxLimit:          engine.MaxLimit,
			TitleOnly:         engine.TitleOnly,
			SearchLimit:       2000,
			WarmOnStartup:     true,
			WarmTimeout:       engine.WarmTimeout,
			PredictionTimeout: engine.PredictionTimeout,
		},
		Enrich: EnrichConfig{
			Enabled:        false, // opt-in, requires an OMDb API key
			BaseURL:        "https://www.omdbapi.com/",
			Timeout:        10 * time.Second,
			MaxConcurrency: 4,
			RatePerSecond:  5,
			Burst:          5,
			CacheTTL:       24 * time.Hour,
			CacheDir:       "",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or empty string.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated env values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Data
	"movies_path":   "data.movies_path",
	"keywords_path": "data.keywords_path",
	"ratings_path":  "data.ratings_path",

	// Recommend
	"active_user_id":       "recommend.active_user_id",
	"recommend_limit":      "recommend.default_limit",
	"recommend_max_limit":  "recommend.max_limit",
	"recommend_title_only": "recommend.title_only",
	"search_limit":         "recommend.search_limit",
	"warm_on_startup":      "recommend.warm_on_startup",
	"warm_timeout":         "recommend.warm_timeout",
	"prediction_timeout":   "recommend.prediction_timeout",

	// Enrich
	"omdb_enabled":         "enrich.enabled",
	"omdb_url":             "enrich.base_url",
	"omdb_api_key":         "enrich.api_key",
	"omdb_timeout":         "enrich.timeout",
	"omdb_max_concurrency": "enrich.max_concurrency",
	"omdb_rate":            "enrich.rate_per_second",
	"omdb_burst":           "enrich.burst",
	"omdb_cache_ttl":       "enrich.cache_ttl",
	"omdb_cache_dir":       "enrich.cache_dir",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unknown variables map to "" and are ignored.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - OMDB_API_KEY -> enrich.api_key
//   - RATINGS_PATH -> data.ratings_path
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
