// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.ActiveUserID != 0 {
		t.Errorf("ActiveUserID = %d, want 0", cfg.ActiveUserID)
	}
	if len(cfg.Profile) != 10 {
		t.Errorf("len(Profile) = %d, want 10", len(cfg.Profile))
	}
	if cfg.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.DefaultLimit)
	}
	if !cfg.TitleOnly {
		t.Error("TitleOnly = false, want true")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{name: "zero default limit", modify: func(c *Config) { c.DefaultLimit = 0 }, wantErr: "default_limit"},
		{name: "max below default", modify: func(c *Config) { c.MaxLimit = 5 }, wantErr: "max_limit"},
		{name: "zero warm timeout", modify: func(c *Config) { c.WarmTimeout = 0 }, wantErr: "warm_timeout"},
		{name: "negative prediction timeout", modify: func(c *Config) { c.PredictionTimeout = -time.Second }, wantErr: "prediction_timeout"},
		{name: "empty profile title", modify: func(c *Config) { c.Profile = []ProfileEntry{{Rating: 3}} }, wantErr: "profile[0].title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Profile[0].Title = "changed"
	clone.DefaultLimit = 50

	if cfg.Profile[0].Title == "changed" {
		t.Error("Clone shares the profile slice")
	}
	if cfg.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.DefaultLimit)
	}
}

func TestConfig_ClampLimit(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		in, want int
	}{
		{0, 10},
		{5, 5},
		{1000, 100},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := cfg.ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
