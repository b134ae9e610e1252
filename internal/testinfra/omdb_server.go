// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// NotFoundBody is what OMDb returns for an unknown title.
const NotFoundBody = `{"Response":"False","Error":"Movie not found!"}`

// OMDbCapture is one request seen by the mock server.
type OMDbCapture struct {
	Title  string
	APIKey string
}

// MockOMDbServer serves canned OMDb title lookups and records every
// request it receives.
type MockOMDbServer struct {
	Server *httptest.Server

	// APIKey is the only key accepted. Empty accepts any key.
	APIKey string

	// Bodies maps a title to the raw JSON body returned for it.
	// Unknown titles get NotFoundBody.
	Bodies map[string]string

	// ResponseFunc, when set, replaces the canned responses.
	ResponseFunc func(w http.ResponseWriter, r *http.Request)

	mu       sync.Mutex
	captures []OMDbCapture
}

// NewMockOMDbServer starts a mock server that is closed with the test.
func NewMockOMDbServer(t *testing.T, bodies map[string]string) *MockOMDbServer {
	t.Helper()

	m := &MockOMDbServer{Bodies: bodies}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Server.Close)
	return m
}

func (m *MockOMDbServer) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m.mu.Lock()
	m.captures = append(m.captures, OMDbCapture{Title: q.Get("t"), APIKey: q.Get("apikey")})
	m.mu.Unlock()

	if m.ResponseFunc != nil {
		m.ResponseFunc(w, r)
		return
	}

	if m.APIKey != "" && q.Get("apikey") != m.APIKey {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	body, ok := m.Bodies[q.Get("t")]
	if !ok {
		body = NotFoundBody
	}
	_, _ = w.Write([]byte(body))
}

// URL returns the base URL to configure the client with.
func (m *MockOMDbServer) URL() string {
	return m.Server.URL + "/"
}

// Captures returns a copy of the requests seen so far.
func (m *MockOMDbServer) Captures() []OMDbCapture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OMDbCapture(nil), m.captures...)
}

// Count returns how many requests asked for title.
func (m *MockOMDbServer) Count(title string) int {
	n := 0
	for _, c := range m.Captures() {
		if c.Title == title {
			n++
		}
	}
	return n
}

// WaitForCaptures waits until at least n requests arrived or timeout
// elapses.
func (m *MockOMDbServer) WaitForCaptures(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if len(m.Captures()) >= n {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return len(m.Captures()) >= n
}

// MovieBody builds a successful lookup body.
func MovieBody(title, year, imdbID, rating string) string {
	return `{"Title":"` + title + `","Year":"` + year + `","imdbID":"` + imdbID +
		`","imdbRating":"` + rating + `","Response":"True"}`
}
