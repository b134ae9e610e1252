// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/movierec/internal/testinfra"
)

func newTestServer(t *testing.T) *testinfra.MockOMDbServer {
	t.Helper()
	srv := testinfra.NewMockOMDbServer(t, map[string]string{
		"Jurassic Park": `{"Title":"Jurassic Park","Year":"1993","Director":"Steven Spielberg","imdbRating":"8.2","imdbID":"tt0107290","Poster":"https://example.com/jp.jpg","Response":"True"}`,
		"Broken":        `{"Title":`,
		"Limit":         `{"Response":"False","Error":"Request limit reached!"}`,
	})
	srv.APIKey = "test-key"
	return srv
}

func newTestClient(t *testing.T, key string) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		BaseURL:       newTestServer(t).URL(),
		APIKey:        key,
		Timeout:       2 * time.Second,
		RatePerSecond: 1000,
		Burst:         100,
	})
}

func TestClientLookup(t *testing.T) {
	client := newTestClient(t, "test-key")

	details, err := client.Lookup(context.Background(), "Jurassic Park")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if details.Title != "Jurassic Park" || details.Year != "1993" {
		t.Errorf("Lookup() = %q/%q, want Jurassic Park/1993", details.Title, details.Year)
	}
	if details.IMDbID != "tt0107290" || details.IMDbRating != "8.2" {
		t.Errorf("IMDb fields = %q/%q, want tt0107290/8.2", details.IMDbID, details.IMDbRating)
	}
}

func TestClientLookup_Errors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		title    string
		notFound bool
		contains string
	}{
		{"unknown title", "test-key", "Nope", true, ""},
		{"bad api key", "wrong", "Jurassic Park", false, "status 401"},
		{"truncated body", "test-key", "Broken", false, "decode"},
		{"omdb error", "test-key", "Limit", false, "Request limit reached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.key)
			_, err := client.Lookup(context.Background(), tt.title)
			if err == nil {
				t.Fatal("Lookup() error = nil, want error")
			}
			if got := errors.Is(err, ErrNotFound); got != tt.notFound {
				t.Errorf("errors.Is(err, ErrNotFound) = %v, want %v (err = %v)", got, tt.notFound, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestClientLookup_EncodesTitle(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(ClientConfig{BaseURL: srv.URL(), APIKey: "test-key", RatePerSecond: 1000, Burst: 10})

	const title = "Terminator 3: Rise of the Machines & more"
	_, _ = client.Lookup(context.Background(), title)

	captures := srv.Captures()
	if len(captures) != 1 || captures[0].Title != title || captures[0].APIKey != "test-key" {
		t.Errorf("server saw %+v, want one request for %q", captures, title)
	}
}

func TestClientLookup_CancelledWhileWaiting(t *testing.T) {
	client := newTestClient(t, "test-key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Lookup(ctx, "Jurassic Park"); err == nil {
		t.Error("Lookup() with cancelled context error = nil, want error")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "https://www.omdbapi.com/"})
	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", client.httpClient.Timeout)
	}
	if client.limiter.Burst() != 5 {
		t.Errorf("Burst() = %d, want 5", client.limiter.Burst())
	}
}
