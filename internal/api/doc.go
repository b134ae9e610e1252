// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package api serves the recommendation engine over HTTP using the chi router.

Endpoints:

	GET /                                    plain text liveness message
	GET /predict?q=&limit=&title_only=       all three sections, search enriched
	GET /demo                                fixed demo prediction, search enriched
	GET /search                              first search_limit catalog titles
	GET /api/v1/recommendations/content      content section for ?title=
	GET /api/v1/recommendations/users        user-based section for the active user
	GET /api/v1/recommendations/items        item-based section for the active user
	GET /api/v1/health                       snapshot sizes, warm and enrichment state
	GET /metrics                             Prometheus exposition
	GET /swagger/*                           Swagger UI and doc.json

Every JSON response uses the models.APIResponse envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","query_time_ms":3}}
	{"status":"error","metadata":{...},"error":{"code":"MOVIE_NOT_FOUND","message":"..."}}

Error Mapping:

  - invalid query parameters: 400 VALIDATION_ERROR
  - unknown title: 404 MOVIE_NOT_FOUND
  - engine timeout: 504 TIMEOUT
  - unregistered section: 503 SERVICE_UNAVAILABLE
  - rate limit: 429 RATE_LIMIT_EXCEEDED

Middleware order: request id, real IP, request log, panic recovery, CORS and
compression globally; rate limiting, security headers and Prometheus metrics
per route group.
*/
package api
