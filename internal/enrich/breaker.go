// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package enrich

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/metrics"
)

// breakerName labels the OMDb breaker in logs and metrics.
const breakerName = "omdb-api"

// BreakerClient wraps a Lookuper with a circuit breaker.
//
// Circuit breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 1 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
//
// ErrNotFound and context cancellation do not count as failures.
type BreakerClient struct {
	next Lookuper
	cb   *gobreaker.CircuitBreaker[*Details]
}

var _ Lookuper = (*BreakerClient)(nil)

// NewBreakerClient wraps next with the OMDb circuit breaker.
func NewBreakerClient(next Lookuper) *BreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(stateToFloat(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[*Details](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening omdb circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, fromStr, toStr, stateToFloat(to))
		},

		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &BreakerClient{next: next, cb: cb}
}

// Lookup calls the wrapped Lookuper unless the circuit is open.
func (b *BreakerClient) Lookup(ctx context.Context, title string) (*Details, error) {
	details, err := b.cb.Execute(func() (*Details, error) {
		return b.next.Lookup(ctx, title)
	})

	switch {
	case err == nil:
		metrics.RecordCircuitBreakerRequest(breakerName, "success")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(breakerName, "rejected")
	case errors.Is(err, ErrNotFound):
		metrics.RecordCircuitBreakerRequest(breakerName, "success")
	default:
		metrics.RecordCircuitBreakerRequest(breakerName, "failure")
	}
	return details, err
}

// State returns the current breaker state name.
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
