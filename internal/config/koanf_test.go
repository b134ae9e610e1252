// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/movierec/internal/recommend"
)

// clearConfigEnv unsets every mapped variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for key := range envMappings {
		name := strings.ToUpper(key)
		if old, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, old) })
		}
	}
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Recommend.DefaultLimit != 10 {
		t.Errorf("Recommend.DefaultLimit = %d, want 10", cfg.Recommend.DefaultLimit)
	}
	if cfg.Recommend.SearchLimit != 2000 {
		t.Errorf("Recommend.SearchLimit = %d, want 2000", cfg.Recommend.SearchLimit)
	}
	if len(cfg.Recommend.Profile) != 10 {
		t.Errorf("len(Recommend.Profile) = %d, want 10", len(cfg.Recommend.Profile))
	}
	if cfg.Enrich.Enabled {
		t.Error("Enrich.Enabled should be false by default")
	}
	if cfg.Enrich.MaxConcurrency != 4 {
		t.Errorf("Enrich.MaxConcurrency = %d, want 4", cfg.Enrich.MaxConcurrency)
	}
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"LOG_LEVEL", "logging.level"},
		{"MOVIES_PATH", "data.movies_path"},
		{"RATINGS_PATH", "data.ratings_path"},
		{"ACTIVE_USER_ID", "recommend.active_user_id"},
		{"SEARCH_LIMIT", "recommend.search_limit"},
		{"OMDB_API_KEY", "enrich.api_key"},
		{"OMDB_CACHE_DIR", "enrich.cache_dir"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"omdb_enabled", "enrich.enabled"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATINGS_PATH", "/tmp/ratings.csv")
	t.Setenv("WARM_TIMEOUT", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Data.RatingsPath != "/tmp/ratings.csv" {
		t.Errorf("Data.RatingsPath = %q, want /tmp/ratings.csv", cfg.Data.RatingsPath)
	}
	if cfg.Recommend.WarmTimeout != 90*time.Second {
		t.Errorf("Recommend.WarmTimeout = %v, want 90s", cfg.Recommend.WarmTimeout)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != wantOrigins[0] || cfg.Security.CORSOrigins[1] != wantOrigins[1] {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}

	// Defaults survive for unset values.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if len(cfg.Recommend.Profile) != 10 {
		t.Errorf("len(Recommend.Profile) = %d, want 10 (default)", len(cfg.Recommend.Profile))
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
recommend:
  active_user_id: 7
  default_limit: 5
  profile:
    - title: Jurassic Park
      rating: 4.5
    - title: Titanic
      rating: 1
enrich:
  enabled: true
  api_key: abc123
  cache_ttl: 1h
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.ActiveUserID != 7 {
		t.Errorf("Recommend.ActiveUserID = %d, want 7", cfg.Recommend.ActiveUserID)
	}
	if len(cfg.Recommend.Profile) != 2 {
		t.Fatalf("len(Recommend.Profile) = %d, want 2", len(cfg.Recommend.Profile))
	}
	if cfg.Recommend.Profile[0].Title != "Jurassic Park" || cfg.Recommend.Profile[0].Rating != 4.5 {
		t.Errorf("Recommend.Profile[0] = %+v, want Jurassic Park/4.5", cfg.Recommend.Profile[0])
	}
	if !cfg.Enrich.Active() {
		t.Error("Enrich.Active() = false, want true")
	}
	if cfg.Enrich.CacheTTL != time.Hour {
		t.Errorf("Enrich.CacheTTL = %v, want 1h", cfg.Enrich.CacheTTL)
	}

	engine := cfg.Recommend.Engine()
	if engine.ActiveUserID != 7 || engine.DefaultLimit != 5 {
		t.Errorf("Engine() = %+v, want active user 7 and limit 5", engine)
	}
	if err := engine.Validate(); err != nil {
		t.Errorf("Engine().Validate() = %v", err)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env wins)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "server.port"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "logging.level"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "logging.format"},
		{"max below default", map[string]string{"RECOMMEND_LIMIT": "20", "RECOMMEND_MAX_LIMIT": "10"}, "recommend.max_limit"},
		{"zero concurrency", map[string]string{"OMDB_MAX_CONCURRENCY": "0"}, "enrich.max_concurrency"},
		{"bad omdb url", map[string]string{"OMDB_URL": "not a url"}, "enrich.base_url"},
		{"empty ratings path", map[string]string{"RATINGS_PATH": ""}, "data.ratings_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Port = 0
	cfg.Recommend.DefaultLimit = 0
	cfg.Recommend.Profile = append(cfg.Recommend.Profile, recommend.ProfileEntry{Title: "", Rating: 3})

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"server.port", "recommend.default_limit", "recommend.profile[10].title"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err.Error(), want)
		}
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 3000}
	if got := s.Addr(); got != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:3000", got)
	}
}
