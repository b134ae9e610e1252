// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package config loads MovieRec configuration with Koanf v2.

Sources are layered, later ones winning:

  - Built-in defaults (defaultConfig)
  - A YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/movierec/config.yaml, /etc/movierec/config.yml
  - Environment variables, through an explicit name mapping

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 0.0.0.0:3000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Data:
  - MOVIES_PATH, KEYWORDS_PATH, RATINGS_PATH

Recommend:
  - ACTIVE_USER_ID, RECOMMEND_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_TITLE_ONLY
  - SEARCH_LIMIT, WARM_ON_STARTUP, WARM_TIMEOUT, PREDICTION_TIMEOUT

Enrich (OMDb):
  - OMDB_ENABLED, OMDB_URL, OMDB_API_KEY, OMDB_TIMEOUT, OMDB_MAX_CONCURRENCY
  - OMDB_RATE, OMDB_BURST, OMDB_CACHE_TTL, OMDB_CACHE_DIR

Security:
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT

The active user profile is a list of title and rating pairs and can only be
set in the YAML file:

	recommend:
	  profile:
	    - title: Jurassic Park
	      rating: 4
	    - title: Titanic
	      rating: 1
*/
package config
