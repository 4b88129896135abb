// Package store holds the in-memory record collections backing every
// entity service. Each Store owns its slice exclusively; callers only
// ever see copies.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Replace and Remove when no record matches
// the given id.
var ErrNotFound = errors.New("record not found")

// Record is the contract every stored entity satisfies. Clone must
// return a copy sharing no mutable state with the receiver.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// Store is an ordered in-memory collection of one entity kind.
// Insertion order is preserved; every mutation bumps a monotonic
// revision counter that caches use as their staleness signal.
type Store[T Record[T]] struct {
	mu       sync.RWMutex
	records  []T
	revision uint64
}

// New creates a store seeded with the given records. The seed slice is
// copied; later appends by the caller do not leak in.
func New[T Record[T]](seed []T) *Store[T] {
	s := &Store[T]{records: make([]T, 0, len(seed))}
	for _, r := range seed {
		s.records = append(s.records, r.Clone())
	}
	return s
}

// All returns a snapshot of the collection in store order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out
}

// Find returns a copy of the record with the given id, or false if absent.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.RecordID() == id {
			return r.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Append adds the record to the end of the collection and returns a copy.
func (s *Store[T]) Append(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec.Clone())
	s.revision++
	return rec.Clone()
}

// Replace locates the record by id, applies merge to a copy, stores the
// result in place and returns a copy of it. The merged record keeps its
// position in store order.
func (s *Store[T]) Replace(id string, merge func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.RecordID() == id {
			merged := merge(r.Clone())
			s.records[i] = merged.Clone()
			s.revision++
			return merged, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Remove deletes the record by id and returns a copy of it.
func (s *Store[T]) Remove(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.RecordID() == id {
			removed := r.Clone()
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.revision++
			return removed, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Len reports the current collection size.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Revision reports the monotonic mutation counter. Unlike a length
// check it also moves on same-size updates.
func (s *Store[T]) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
