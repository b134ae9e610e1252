// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestEnricher_PreservesOrder(t *testing.T) {
	stub := newStubLookuper("Heat", "Alien", "Fargo")
	e := NewEnricher(stub, NewMemoryStore(time.Hour), 2, zerolog.Nop())

	titles := []string{"Fargo", "Unknown", "Heat", "Alien"}
	got := e.Enrich(context.Background(), titles)

	if len(got) != len(titles) {
		t.Fatalf("len(Enrich()) = %d, want %d", len(got), len(titles))
	}
	for i, title := range titles {
		if title == "Unknown" {
			if got[i] != nil {
				t.Errorf("Enrich()[%d] = %+v, want nil", i, got[i])
			}
			continue
		}
		if got[i] == nil || got[i].Title != title {
			t.Errorf("Enrich()[%d] = %+v, want %s", i, got[i], title)
		}
	}
}

func TestEnricher_CachesHitsAndMisses(t *testing.T) {
	stub := newStubLookuper("Heat")
	e := NewEnricher(stub, NewMemoryStore(time.Hour), 4, zerolog.Nop())

	for i := 0; i < 3; i++ {
		e.Enrich(context.Background(), []string{"Heat", "Unknown"})
	}

	if got := stub.Calls("Heat"); got != 1 {
		t.Errorf("lookups for Heat = %d, want 1", got)
	}
	if got := stub.Calls("Unknown"); got != 1 {
		t.Errorf("lookups for Unknown = %d, want 1 (misses are cached)", got)
	}
	if _, err := e.Detail(context.Background(), "Unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Detail(Unknown) error = %v, want ErrNotFound", err)
	}
}

func TestEnricher_FailuresAreSkipped(t *testing.T) {
	stub := newStubLookuper("Heat")
	stub.err = errors.New("upstream down")
	e := NewEnricher(stub, NewMemoryStore(time.Hour), 2, zerolog.Nop())

	got := e.Enrich(context.Background(), []string{"Heat", "Alien"})
	if got[0] != nil || got[1] != nil {
		t.Errorf("Enrich() = %v, want all nil on failure", got)
	}

	// Failures are not cached.
	stub.mu.Lock()
	stub.err = nil
	stub.mu.Unlock()
	if d, err := e.Detail(context.Background(), "Heat"); err != nil || d.Title != "Heat" {
		t.Errorf("Detail(Heat) after recovery = %v, %v", d, err)
	}
}

// gateLookuper tracks the peak number of concurrent lookups.
type gateLookuper struct {
	mu      sync.Mutex
	active  int
	peak    int
	entered atomic.Int32
}

func (g *gateLookuper) Lookup(_ context.Context, title string) (*Details, error) {
	g.mu.Lock()
	g.active++
	if g.active > g.peak {
		g.peak = g.active
	}
	g.mu.Unlock()
	g.entered.Add(1)

	time.Sleep(5 * time.Millisecond)

	g.mu.Lock()
	g.active--
	g.mu.Unlock()
	return &Details{Title: title}, nil
}

func TestEnricher_BoundedConcurrency(t *testing.T) {
	gate := &gateLookuper{}
	e := NewEnricher(gate, nil, 3, zerolog.Nop())

	titles := make([]string, 12)
	for i := range titles {
		titles[i] = string(rune('A' + i))
	}
	e.Enrich(context.Background(), titles)

	if gate.peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", gate.peak)
	}
	if got := gate.entered.Load(); got != 12 {
		t.Errorf("lookups = %d, want 12", got)
	}
}

func TestEnricher_NilIsDisabled(t *testing.T) {
	var e *Enricher
	got := e.Enrich(context.Background(), []string{"Heat", "Alien"})
	if len(got) != 2 || got[0] != nil || got[1] != nil {
		t.Errorf("nil Enrich() = %v, want two nils", got)
	}
	if _, err := e.Detail(context.Background(), "Heat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("nil Detail() error = %v, want ErrNotFound", err)
	}
}
