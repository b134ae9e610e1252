// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/movierec/internal/metrics"
)

// ErrNotFound is returned when OMDb has no movie with the given title.
var ErrNotFound = errors.New("omdb: movie not found")

// maxResponseBytes bounds the body read from OMDb.
const maxResponseBytes = 1 << 20

// Details is the subset of an OMDb record exposed by the API.
type Details struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated,omitempty"`
	Released   string `json:"Released,omitempty"`
	Runtime    string `json:"Runtime,omitempty"`
	Genre      string `json:"Genre,omitempty"`
	Director   string `json:"Director,omitempty"`
	Actors     string `json:"Actors,omitempty"`
	Plot       string `json:"Plot,omitempty"`
	Language   string `json:"Language,omitempty"`
	Country    string `json:"Country,omitempty"`
	Poster     string `json:"Poster,omitempty"`
	IMDbRating string `json:"imdbRating,omitempty"`
	IMDbID     string `json:"imdbID,omitempty"`
}

// omdbResponse is the raw envelope; Response is "True" or "False".
type omdbResponse struct {
	Details
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Lookuper resolves a title to external details.
type Lookuper interface {
	Lookup(ctx context.Context, title string) (*Details, error)
}

// ClientConfig configures the OMDb client.
type ClientConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

// Client queries OMDb by exact title.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Lookuper = (*Client)(nil)

// NewClient creates an OMDb client. Zero timeout, rate and burst fall back
// to 10s, 5 requests per second and a burst of 5.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
	}
}

// Lookup fetches the details of title. It waits for the rate limiter and
// honors ctx cancellation while waiting.
func (c *Client) Lookup(ctx context.Context, title string) (*Details, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	defer func() { metrics.RecordEnrichFetch(time.Since(start)) }()

	endpoint, err := c.lookupURL(title)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("omdb request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out omdbResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !strings.EqualFold(out.Response, "true") {
		if strings.Contains(strings.ToLower(out.Error), "not found") {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("omdb error: %s", out.Error)
	}

	details := out.Details
	return &details, nil
}

func (c *Client) lookupURL(title string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
