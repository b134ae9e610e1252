// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package services provides suture.Service wrappers for MovieRec components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and identifies itself through fmt.Stringer for supervisor logs.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve

Engine Warm-up (WarmService):
  - Computes the collaborative sections once at startup
  - Returns the warm-up error so suture retries with backoff

Store GC (StoreGCService):
  - Periodic Badger value log GC for the enrichment store

# Error Handling

A returned error makes suture restart the service. Returning ctx.Err()
after cancellation signals a clean stop.
*/
package services
