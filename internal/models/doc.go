// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package models defines the JSON shapes served by the MovieRec HTTP API.

Every endpoint except the root banner and /metrics wraps its payload in
APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 12}
	}

Failures carry an APIError with a machine-readable code instead of data.
*/
package models
