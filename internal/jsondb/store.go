// Package jsondb implements a concurrency-safe keyed collection with
// write-through persistence to a single JSON document. The in-memory
// collection is the read-of-record for the whole process lifetime: the
// sink is read once at startup and only ever written after that.
package jsondb

import (
	"sync"

	"go.uber.org/zap"
)

// Cloner is implemented by record types that carry reference fields
// (pointers, slices, maps). The store deep-copies such records at every
// boundary so that no caller ever holds an alias into store state.
type Cloner[T any] interface {
	Clone() T
}

// Store is a synchronized keyed collection over a Sink. Mutations are
// single-writer: exactly one Put, Delete or Mutate runs at a time, and
// each one rewrites the full backing document before releasing the
// lock. Readers interleave freely with each other and only ever
// observe a fully pre- or post-write state.
//
// Sink failures are logged, never returned: once a record is accepted
// in memory it stays authoritative even if the disk write failed.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
	sink  Sink[T]
	log   *zap.Logger
}

// New creates a store whose records are identified by the key extractor.
func New[T any](sink Sink[T], key func(T) string, log *zap.Logger) *Store[T] {
	return &Store[T]{key: key, sink: sink, log: log}
}

// Load reads the sink into memory. A read or decode failure is logged
// and the store starts empty rather than crashing the process. If the
// collection is empty after the load and a seed is given, its records
// are installed and persisted.
func (s *Store[T]) Load(seed func() []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.sink.ReadAll()
	if err != nil {
		s.log.Error("collection load failed, starting empty", zap.Error(err))
		items = nil
	}
	s.items = items

	if len(s.items) == 0 && seed != nil {
		if seeded := seed(); len(seeded) > 0 {
			s.items = seeded
			s.log.Info("seeded empty collection", zap.Int("records", len(s.items)))
			s.persistLocked()
			return
		}
	}
	s.log.Info("collection loaded", zap.Int("records", len(s.items)))
}

// All returns a snapshot copy of the collection in insertion order.
// Mutating the result never affects store state.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	for i, v := range s.items {
		out[i] = clone(v)
	}
	return out
}

// Get returns the record with the given key, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.items {
		if s.key(v) == id {
			return clone(v), true
		}
	}
	var zero T
	return zero, false
}

// Count returns the number of records.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Put removes any record sharing v's key, inserts v and rewrites the
// backing document.
func (s *Store[T]) Put(v T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	v = clone(v)
	s.items = append(removeKey(s.items, s.key, s.key(v)), v)
	s.persistLocked()
	return clone(v)
}

// Delete removes the record with the given key. When nothing was
// removed the backing document is left untouched.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := removeKey(s.items, s.key, id)
	if len(next) == len(s.items) {
		return false
	}
	s.items = next
	s.persistLocked()
	return true
}

// Mutate runs fn on a copy of the collection inside the write-lock
// critical section. When fn reports a change, its result replaces the
// collection and is persisted. This is the multi-record section used
// for check-and-decrement style updates; the live collection itself is
// never handed out.
func (s *Store[T]) Mutate(fn func(items []T) ([]T, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := make([]T, len(s.items))
	for i, v := range s.items {
		work[i] = clone(v)
	}
	next, changed := fn(work)
	if !changed {
		return
	}
	s.items = next
	s.persistLocked()
}

func (s *Store[T]) persistLocked() {
	if err := s.sink.WriteAll(s.items); err != nil {
		// In-memory state stays authoritative; the loss window lasts
		// until the next successful write.
		s.log.Error("collection write failed", zap.Error(err))
	}
}

func removeKey[T any](items []T, key func(T) string, id string) []T {
	out := items[:0:len(items)]
	for _, v := range items {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out
}

func clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
