// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package main is the entry point for the MovieRec server.

MovieRec loads a movie catalog and a ratings table, builds content and
collaborative recommenders over them, and serves the results over HTTP.

# Application Architecture

	RootSupervisor ("movierec")
	├── DataSupervisor ("data-layer")
	│   ├── Engine warm-up (collaborative sections for the active user)
	│   └── Enrichment store GC (only with OMDB_CACHE_DIR)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON or console output
 3. Ingestion: CSV files read through an in-memory DuckDB
 4. Catalog and rating index, with the active profile merged in
 5. Engine: content, user-based and item-based algorithms registered
 6. Enrichment (optional): OMDb client behind a rate limiter and breaker
 7. Supervisor Tree: Suture v4 with the services above

# Configuration

	Priority: Environment variables > Config file > Defaults

	# Data
	MOVIES_PATH=data/movies_metadata.csv
	KEYWORDS_PATH=data/keywords.csv
	RATINGS_PATH=data/ratings_small.csv

	# Server
	HTTP_PORT=3000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Recommendations
	ACTIVE_USER_ID=0
	RECOMMEND_LIMIT=10
	WARM_ON_STARTUP=true

	# Enrichment
	OMDB_ENABLED=true
	OMDB_API_KEY=<key>
	OMDB_CACHE_DIR=/var/lib/movierec/omdb

The config file is config.yaml in the working directory,
/etc/movierec/config.yaml, or the path in CONFIG_PATH.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the enrichment
store is closed.
*/
package main
