// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// ActiveUserID is the user the collaborative sections are computed for.
	// Default: 0.
	ActiveUserID int `json:"active_user_id"`

	// Profile lists the active user's ratings by exact title.
	Profile []ProfileEntry `json:"profile"`

	// DefaultLimit truncates each section when a request gives no limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps any requested limit.
	// Default: 100.
	MaxLimit int `json:"max_limit"`

	// TitleOnly is the default projection of formatted entries.
	// Default: true.
	TitleOnly bool `json:"title_only"`

	// WarmTimeout bounds one warm-up of the collaborative sections.
	// Default: 10m.
	WarmTimeout time.Duration `json:"warm_timeout"`

	// PredictionTimeout bounds one content similarity run.
	// Default: 10s.
	PredictionTimeout time.Duration `json:"prediction_timeout"`
}

// DefaultProfile is the built-in active user profile.
func DefaultProfile() []ProfileEntry {
	return []ProfileEntry{
		{Title: "Terminator 3: Rise of the Machines", Rating: 5.0},
		{Title: "Jarhead", Rating: 4.0},
		{Title: "The Avengers", Rating: 4.0},
		{Title: "Back to the Future Part II", Rating: 3.0},
		{Title: "Jurassic Park", Rating: 4.0},
		{Title: "Reservoir Dogs", Rating: 3.0},
		{Title: "Men in Black II", Rating: 3.0},
		{Title: "Bad Boys II", Rating: 5.0},
		{Title: "Sissi", Rating: 1.0},
		{Title: "Titanic", Rating: 1.0},
	}
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		ActiveUserID:      0,
		Profile:           DefaultProfile(),
		DefaultLimit:      10,
		MaxLimit:          100,
		TitleOnly:         true,
		WarmTimeout:       10 * time.Minute,
		PredictionTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit, got %d < %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.WarmTimeout <= 0 {
		return fmt.Errorf("warm_timeout must be positive, got %v", c.WarmTimeout)
	}
	if c.PredictionTimeout <= 0 {
		return fmt.Errorf("prediction_timeout must be positive, got %v", c.PredictionTimeout)
	}
	for i, e := range c.Profile {
		if e.Title == "" {
			return fmt.Errorf("profile[%d].title must not be empty", i)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Profile = append([]ProfileEntry(nil), c.Profile...)
	return &clone
}

// ClampLimit resolves a requested limit against the defaults.
// Zero means the default; anything above MaxLimit is capped.
func (c *Config) ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return c.DefaultLimit
	case limit > c.MaxLimit:
		return c.MaxLimit
	default:
		return limit
	}
}
