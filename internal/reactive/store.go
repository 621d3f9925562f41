package reactive

import (
	"log"
	"reflect"
)

// Key names a source value in a Store
type Key string

// maxFlushPasses bounds how many times queued updates may re-trigger a flush
const maxFlushPasses = 16

type update struct {
	key   Key
	value any
}

// refresher is the part of a memo the store drives during a flush
type refresher interface {
	refresh()
}

// Store holds source values with a version per key. It is not safe for
// concurrent use.
type Store struct {
	values   map[Key]any
	versions map[Key]uint64
	memos    []refresher
	flushing bool
	pending  []update
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		values:   make(map[Key]any),
		versions: make(map[Key]uint64),
	}
}

// Set records a source value. A value deeply equal to the current one keeps
// the version unchanged. During a flush the update is queued and applied once
// the pass completes.
func (s *Store) Set(key Key, value any) {
	if s.flushing {
		s.pending = append(s.pending, update{key: key, value: value})
		return
	}
	s.apply(key, value)
}

// Update sets a source value and flushes
func (s *Store) Update(key Key, value any) {
	s.Set(key, value)
	s.Flush()
}

func (s *Store) apply(key Key, value any) bool {
	if old, ok := s.values[key]; ok && reflect.DeepEqual(old, value) {
		return false
	}
	s.values[key] = value
	s.versions[key]++
	return true
}

// Value returns the current value of a source, nil when never set
func (s *Store) Value(key Key) any {
	return s.values[key]
}

// Version returns how many times a source changed
func (s *Store) Version(key Key) uint64 {
	return s.versions[key]
}

// Flush recomputes every memo whose sources moved and notifies its
// listeners. Calling Flush from a listener is a no-op.
func (s *Store) Flush() {
	if s.flushing {
		return
	}

	for pass := 0; pass < maxFlushPasses; pass++ {
		s.flushing = true
		for _, m := range s.memos {
			m.refresh()
		}
		s.flushing = false

		if len(s.pending) == 0 {
			return
		}
		queued := s.pending
		s.pending = nil
		for _, u := range queued {
			s.apply(u.key, u.value)
		}
	}
	log.Printf("Warning: reactive store did not settle after %d passes", maxFlushPasses)
}

func (s *Store) register(m refresher) {
	s.memos = append(s.memos, m)
}
