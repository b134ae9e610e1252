// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are updated through the Record* helpers, so callers never touch label values
directly.

# Overview

The package provides metrics for:
  - Dataset ingestion (duration, loaded and skipped rows)
  - Catalog snapshot size and recovered malformed fields
  - Recommendation algorithm latency, result sizes and failures
  - Title enrichment lookups and circuit breaker state
  - HTTP request latency and throughput

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3000/metrics

# Label Cardinality

Endpoint labels use chi route patterns, never raw paths. Error labels are
bucketed by ErrorType.
*/
package metrics
