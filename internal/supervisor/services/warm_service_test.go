// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeWarmEngine fails its first failures warm-ups.
type fakeWarmEngine struct {
	failures int32
	calls    atomic.Int32
	warm     atomic.Bool
}

func (f *fakeWarmEngine) Warm(context.Context) error {
	if n := f.calls.Add(1); n <= f.failures {
		return errors.New("index unavailable")
	}
	f.warm.Store(true)
	return nil
}

func (f *fakeWarmEngine) IsWarm() bool { return f.warm.Load() }

func runFor(t *testing.T, svc suture.Service, d time.Duration) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return svc.Serve(ctx)
}

func TestWarmService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       WarmServiceConfig
		preWarmed bool
		wantCalls int32
	}{
		{"warms on startup", WarmServiceConfig{WarmOnStartup: true}, false, 1},
		{"skips when disabled", WarmServiceConfig{WarmOnStartup: false}, false, 0},
		{"skips when already warm", WarmServiceConfig{WarmOnStartup: true}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeWarmEngine{}
			engine.warm.Store(tt.preWarmed)
			svc := NewWarmService(engine, tt.cfg, zerolog.Nop())

			err := runFor(t, svc, 50*time.Millisecond)
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() error = %v, want deadline exceeded", err)
			}
			if got := engine.calls.Load(); got != tt.wantCalls {
				t.Errorf("Warm calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestWarmService_FailureReturnsError(t *testing.T) {
	engine := &fakeWarmEngine{failures: 1}
	svc := NewWarmService(engine, WarmServiceConfig{WarmOnStartup: true}, zerolog.Nop())

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve() error = nil, want warm-up failure")
	}
	if svc.String() != "engine-warm" {
		t.Errorf("String() = %q, want engine-warm", svc.String())
	}
}

func TestWarmService_RetriedBySupervisor(t *testing.T) {
	engine := &fakeWarmEngine{failures: 2}
	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewWarmService(engine, WarmServiceConfig{WarmOnStartup: true}, zerolog.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	<-sup.ServeBackground(ctx)

	if !engine.IsWarm() {
		t.Error("engine not warm after supervised retries")
	}
	if got := engine.calls.Load(); got != 3 {
		t.Errorf("Warm calls = %d, want 3", got)
	}
}
