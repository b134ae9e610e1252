// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingestion Metrics
	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_duration_seconds",
			Help:    "Duration of dataset file loads in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source"}, // "movies", "keywords", "ratings"
	)

	IngestRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_rows_total",
			Help: "Total number of dataset rows read",
		},
		[]string{"source", "result"}, // result: "loaded", "skipped"
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_vocabulary_terms",
			Help: "Number of distinct terms in the feature vocabulary",
		},
	)

	MalformedFields = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_malformed_fields_total",
			Help: "Total number of list fields replaced by an empty list",
		},
		[]string{"field"}, // "genres", "production_companies", "keywords"
	)

	RatingsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ratings_indexed",
			Help: "Number of distinct (user, movie) ratings in the index",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation algorithm runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"algorithm"},
	)

	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of ranked movies returned per algorithm run",
			Buckets: []float64{0, 10, 100, 1000, 5000, 10000, 50000},
		},
		[]string{"algorithm"},
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_errors_total",
			Help: "Total number of failed recommendation algorithm runs",
		},
		[]string{"algorithm", "error_type"}, // "not_found", "timeout", "canceled", "other"
	)

	// Enrichment Metrics
	EnrichLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrich_lookups_total",
			Help: "Total number of title enrichment lookups",
		},
		[]string{"result"}, // "hit", "fetched", "not_found", "error"
	)

	EnrichLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrich_lookup_duration_seconds",
			Help:    "Duration of external title lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordIngest records one dataset file load.
func RecordIngest(source string, duration time.Duration, loaded, skipped int) {
	IngestDuration.WithLabelValues(source).Observe(duration.Seconds())
	IngestRows.WithLabelValues(source, "loaded").Add(float64(loaded))
	IngestRows.WithLabelValues(source, "skipped").Add(float64(skipped))
}

// RecordCatalog publishes the size of a freshly built snapshot.
func RecordCatalog(movies, vocabulary, ratings int) {
	CatalogMovies.Set(float64(movies))
	CatalogVocabulary.Set(float64(vocabulary))
	RatingsIndexed.Set(float64(ratings))
}

// RecordMalformedFields adds recovered parse failures for a field.
func RecordMalformedFields(field string, count int) {
	if count > 0 {
		MalformedFields.WithLabelValues(field).Add(float64(count))
	}
}

// RecordRecommendation records one algorithm run. errorType classifies a
// failed run and is ignored when err is nil.
func RecordRecommendation(algorithm string, duration time.Duration, results int, err error, errorType string) {
	RecommendDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if err != nil {
		RecommendErrors.WithLabelValues(algorithm, errorType).Inc()
		return
	}
	RecommendResults.WithLabelValues(algorithm).Observe(float64(results))
}

// RecordEnrichLookup records the outcome of one enrichment lookup.
func RecordEnrichLookup(result string) {
	EnrichLookups.WithLabelValues(result).Inc()
}

// RecordEnrichFetch records the latency of one external lookup.
func RecordEnrichFetch(duration time.Duration) {
	EnrichLookupDuration.Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCircuitBreakerRequest counts a call through a named breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a state change of a named breaker.
// state is the numeric encoding of to (0=closed, 1=half-open, 2=open).
func RecordCircuitBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// SetAppInfo publishes the build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// ErrorType buckets an error into a low-cardinality label value. Errors
// matching notFound are reported as "not_found".
func ErrorType(err error, notFound error) string {
	switch {
	case err == nil:
		return ""
	case notFound != nil && errors.Is(err, notFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "other"
	}
}
