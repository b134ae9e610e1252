// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package enrich

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/movierec/internal/cache"
)

// storeKeyPrefix namespaces lookup entries.
const storeKeyPrefix = "omdb:"

// Entry is a cached lookup outcome. A nil Details with NotFound set records
// that OMDb has no such title.
type Entry struct {
	Details   *Details  `json:"details,omitempty"`
	NotFound  bool      `json:"not_found"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store caches lookup outcomes by title.
type Store interface {
	Get(title string) (Entry, bool, error)
	Put(title string, entry Entry) error
	Close() error
}

// StoreKey normalizes a title into a store key.
func StoreKey(title string) string {
	return storeKeyPrefix + strings.ToLower(strings.TrimSpace(title))
}

// MemoryStore keeps entries in an in-process TTL cache.
type MemoryStore struct {
	cache *cache.Cache[Entry]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store whose entries live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New[Entry](ttl)}
}

// Get returns the entry for title.
func (s *MemoryStore) Get(title string) (Entry, bool, error) {
	entry, ok := s.cache.Get(StoreKey(title))
	return entry, ok, nil
}

// Put stores entry for title.
func (s *MemoryStore) Put(title string, entry Entry) error {
	s.cache.Set(StoreKey(title), entry)
	return nil
}

// Stats returns the underlying cache statistics.
func (s *MemoryStore) Stats() cache.Stats {
	return s.cache.GetStats()
}

// Close stops the cache sweep.
func (s *MemoryStore) Close() error {
	s.cache.Close()
	return nil
}

// BadgerStore persists entries in BadgerDB with a per-entry TTL, so lookups
// survive restarts.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

var _ Store = (*BadgerStore)(nil)

// OpenBadgerStore opens (or creates) a store in dir. An empty dir opens an
// in-memory database.
func OpenBadgerStore(dir string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return NewBadgerStore(db, ttl), nil
}

// NewBadgerStore wraps an open database.
func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

// Get returns the entry for title. Expired entries are not returned.
func (s *BadgerStore) Get(title string) (Entry, bool, error) {
	var entry Entry

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StoreKey(title)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("get %q: %w", title, err)
	}
	return entry, true, nil
}

// Put stores entry for title with the store TTL.
func (s *BadgerStore) Put(title string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(StoreKey(title)), data).WithTTL(s.ttl)
		return txn.SetEntry(e)
	})
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// RunGC rewrites value log files until no file has at least ratio of
// reclaimable space. In-memory stores have nothing to collect.
func (s *BadgerStore) RunGC(ratio float64) error {
	for {
		err := s.db.RunValueLogGC(ratio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}
