package reactive

import "reflect"

// Snapshot is the read-only view of a store handed to a compute function.
// Only the keys the memo declared are visible.
type Snapshot struct {
	store *Store
	deps  []Key
}

// Value returns a declared source value, nil when unset or undeclared
func (s Snapshot) Value(key Key) any {
	for _, dep := range s.deps {
		if dep == key {
			return s.store.values[key]
		}
	}
	return nil
}

// Lookup returns a declared source value as T
func Lookup[T any](s Snapshot, key Key) (T, bool) {
	v, ok := s.Value(key).(T)
	return v, ok
}

// Memo caches the result of a compute function over declared sources
type Memo[T any] struct {
	store     *Store
	compute   func(Snapshot) T
	deps      []Key
	seen      []uint64
	value     T
	computed  bool
	runs      int
	listeners []func(T)

	published    T
	hasPublished bool
}

// NewMemo registers a memo over the given source keys. The memo is computed
// lazily on the first Get or Flush.
func NewMemo[T any](s *Store, compute func(Snapshot) T, deps ...Key) *Memo[T] {
	m := &Memo[T]{
		store:   s,
		compute: compute,
		deps:    append([]Key(nil), deps...),
		seen:    make([]uint64, len(deps)),
	}
	s.register(m)
	return m
}

// Get returns the cached value, recomputing first if a source moved
func (m *Memo[T]) Get() T {
	if m.dirty() {
		m.recompute()
	}
	return m.value
}

// OnChange registers a listener called after a flush recomputes a new value
func (m *Memo[T]) OnChange(fn func(T)) {
	m.listeners = append(m.listeners, fn)
}

// Computations returns how many times the compute function ran
func (m *Memo[T]) Computations() int {
	return m.runs
}

func (m *Memo[T]) dirty() bool {
	if !m.computed {
		return true
	}
	for i, dep := range m.deps {
		if m.store.versions[dep] != m.seen[i] {
			return true
		}
	}
	return false
}

func (m *Memo[T]) recompute() {
	for i, dep := range m.deps {
		m.seen[i] = m.store.versions[dep]
	}
	m.value = m.compute(Snapshot{store: m.store, deps: m.deps})
	m.computed = true
	m.runs++
}

// refresh brings the memo up to date and notifies listeners when the value
// differs from the one they last received. A value already pulled by Get is
// still published on the next flush.
func (m *Memo[T]) refresh() {
	if m.dirty() {
		m.recompute()
	}
	if m.hasPublished && reflect.DeepEqual(m.published, m.value) {
		return
	}
	m.published = m.value
	m.hasPublished = true
	for _, fn := range m.listeners {
		fn(m.value)
	}
}
