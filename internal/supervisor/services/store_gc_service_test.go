// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package services

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeGCStore struct {
	runs  atomic.Int32
	ratio atomic.Value
	err   error
}

func (f *fakeGCStore) RunGC(ratio float64) error {
	f.runs.Add(1)
	f.ratio.Store(ratio)
	return f.err
}

func TestNewStoreGCService_Defaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  StoreGCConfig
		want StoreGCConfig
	}{
		{"zero", StoreGCConfig{}, StoreGCConfig{Interval: 10 * time.Minute, DiscardRatio: 0.5}},
		{"ratio out of range", StoreGCConfig{Interval: time.Minute, DiscardRatio: 1.5}, StoreGCConfig{Interval: time.Minute, DiscardRatio: 0.5}},
		{"explicit", StoreGCConfig{Interval: time.Minute, DiscardRatio: 0.7}, StoreGCConfig{Interval: time.Minute, DiscardRatio: 0.7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStoreGCService(&fakeGCStore{}, tt.cfg, zerolog.Nop())
			if svc.config != tt.want {
				t.Errorf("config = %+v, want %+v", svc.config, tt.want)
			}
		})
	}
}

func TestStoreGCService_RunsPeriodically(t *testing.T) {
	for name, storeErr := range map[string]error{"healthy": nil, "failing": errors.New("rejected")} {
		t.Run(name, func(t *testing.T) {
			store := &fakeGCStore{err: storeErr}
			svc := NewStoreGCService(store, StoreGCConfig{Interval: 10 * time.Millisecond, DiscardRatio: 0.6}, zerolog.Nop())

			_ = runFor(t, svc, 100*time.Millisecond)

			if got := store.runs.Load(); got < 2 {
				t.Errorf("GC runs = %d, want >= 2", got)
			}
			if got := store.ratio.Load(); got != 0.6 {
				t.Errorf("ratio = %v, want 0.6", got)
			}
		})
	}
}
