// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package logging provides zerolog-based structured logging for MovieRec.
//
// JSON output is the default; console output is available for development.
// Request-scoped loggers pick up the correlation and request IDs placed on
// the context by the API middleware.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", path).Msg("catalog loaded")
//
//	logger := logging.WithComponent("ingest")
//	logger.Debug().Int("rows", n).Msg("ratings read")
//
// # Suture Integration
//
// Suture v4 logs through slog. NewSlogLogger bridges it to zerolog:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//	supervisor := suture.New("root", suture.Spec{EventHook: handler.MustHook()})
package logging
