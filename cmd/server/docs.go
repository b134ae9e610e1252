// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package main provides the MovieRec HTTP server
//
// @title MovieRec API
// @version 1.0
// @description Content-based and collaborative movie recommendations.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "MOVIE_NOT_FOUND",
// @description     "message": "Movie not found",
// @description     "details": {"title": "Unknown"}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-01T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/movierec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and service status
//
// @tag.name Recommendations
// @tag.description Content similarity and collaborative filtering sections
package main
