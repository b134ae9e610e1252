// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package middleware provides HTTP middleware components for the application.

All middleware has the chi signature func(http.Handler) http.Handler and is
installed with r.Use in internal/api.

Key Components:

  - RequestID: request and correlation ids in headers and logging context
  - RequestLogger: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Middleware Stack:

	r.Use(middleware.RequestID)         // ids first so later logs carry them
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)

The metrics endpoint label is the chi route pattern ("/api/v1/recommendations/content"),
so path parameters and unknown paths do not grow label cardinality.

Thread Safety:

All middleware is stateless per request and safe for concurrent use.

See Also:

  - internal/api: the router installing this middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
