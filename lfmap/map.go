// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import (
	"math/bits"
	"sync/atomic"

	"github.com/concurrentmap/lfmap/logger"
)

const (
	// DefaultInitialCapacity is the default used when New is called
	// without WithInitialCapacity.
	DefaultInitialCapacity = 128

	// DefaultLoadFactor is the default used when New is called without
	// WithLoadFactor.
	DefaultLoadFactor = 0.65

	minCapacity = 16
	minLoadFactor = 0.5
	maxLoadFactor = 1.0
)

// Map is a lock-free, concurrent, dynamically resizable hash map from
// keys of type K to values of type V. Any number of goroutines may call
// its methods concurrently; no method ever blocks another on a mutex.
//
// K and V are compared using the hash and equal functions supplied to
// New, not necessarily by identity. A nil key or nil value (for K/V
// instantiated with a pointer, interface, map, slice, channel or
// function type) is rejected by every write operation and treated as
// absent by every read operation; see isNilArg.
type Map[K any, V any] struct {
	data    atomic.Pointer[bucketArray[K, V]]
	dataNew atomic.Pointer[bucketArray[K, V]]

	size         atomic.Int64
	resizeLock   atomic.Bool
	resizeThresh atomic.Int64
	resizeCount  atomic.Int64
	casRetries   atomic.Int64
	initialCap   int
	loadFactor   float64
	resizable    bool

	hash     func(K) uint32
	keyEqual func(K, K) bool
	valEqual func(V, V) bool

	log logger.Logger
}

// Option configures a Map constructed by New.
type Option[K any, V any] func(*Map[K, V])

// WithInitialCapacity overrides DefaultInitialCapacity. The value is
// rounded up to the next power of two, floored at 16.
func WithInitialCapacity[K any, V any](capacity int) Option[K, V] {
	return func(m *Map[K, V]) { m.initialCap = capacity }
}

// WithLoadFactor overrides DefaultLoadFactor. Values outside [0.5, 1.0]
// are clamped into that range.
func WithLoadFactor[K any, V any](loadFactor float64) Option[K, V] {
	return func(m *Map[K, V]) { m.loadFactor = loadFactor }
}

// WithResizable controls whether the map grows automatically once
// NextResize reaches zero. Disabling it is useful for benchmarks that
// want a fixed-size table, or tests pinning down chaining behavior (see
// the S1 scenario this package's tests are modeled on).
func WithResizable[K any, V any](resizable bool) Option[K, V] {
	return func(m *Map[K, V]) { m.resizable = resizable }
}

// WithValueEqual supplies the equality function used by ContainsValue,
// RemoveValue and ReplaceValue. Without it those methods fall back to
// reflect.DeepEqual, which New installs when no function is supplied.
func WithValueEqual[K any, V any](equal func(V, V) bool) Option[K, V] {
	return func(m *Map[K, V]) { m.valEqual = equal }
}

// WithLogger supplies a logger.Logger used to report resize lifecycle
// events (start, completion, and the rare contended retrigger). Nothing
// on the hot put/get/remove path ever logs; only the resize controller,
// which runs at most once per doubling, does.
func WithLogger[K any, V any](log logger.Logger) Option[K, V] {
	return func(m *Map[K, V]) { m.log = log }
}

// New constructs a Map keyed by K, hashed with hash and compared with
// keyEqual. hash need not be collision-free; it is passed through an
// internal avalanche mixer (mix) before being used to pick a bucket.
func New[K any, V any](hash func(K) uint32, keyEqual func(K, K) bool, opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		initialCap: DefaultInitialCapacity,
		loadFactor: DefaultLoadFactor,
		resizable:  true,
		hash:       hash,
		keyEqual:   keyEqual,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.loadFactor < minLoadFactor {
		m.loadFactor = minLoadFactor
	} else if m.loadFactor > maxLoadFactor {
		m.loadFactor = maxLoadFactor
	}

	capacity := roundUpCapacity(m.initialCap)
	m.initialCap = capacity
	if m.valEqual == nil {
		m.valEqual = reflectDeepEqual[V]
	}

	m.data.Store(newBucketArray[K, V](capacity))
	m.resizeThresh.Store(int64(float64(capacity) * m.loadFactor))

	return m
}

func roundUpCapacity(c int) int {
	if c < minCapacity {
		return minCapacity
	}
	return 1 << bits.Len(uint(c-1))
}

// currentArray returns the array a mutator or reader should operate on:
// data_new while a resize is in flight (resizeLock held and dataNew
// populated), data otherwise.
func (m *Map[K, V]) currentArray() *bucketArray[K, V] {
	if m.resizeLock.Load() {
		if dn := m.dataNew.Load(); dn != nil {
			return dn
		}
	}
	return m.data.Load()
}

// Get returns the value associated with key, or the zero value and false
// if key is absent or nil.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if isNilArg(key) {
		return zero, false
	}
	return m.lookup(key)
}

// ContainsKey reports whether key maps to some value.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue scans the current array for a live entry equal to value
// under the map's value-equality function. Its cost is linear in the
// array length and the number of entries, not in a single bucket's
// chain length.
func (m *Map[K, V]) ContainsValue(value V) bool {
	if isNilArg(value) {
		return false
	}
	a := m.data.Load()
	for i := 0; i < a.length(); i++ {
		for e := a.head(i).Load(); e != nil; e = e.next.Load() {
			if !e.isDeleted() && m.valEqual(e.value, value) {
				return true
			}
		}
	}
	return false
}

// Len returns the approximate number of live entries. Under concurrent
// mutation this is a snapshot that may already be stale by the time the
// caller observes it; in a quiescent state it is exact.
func (m *Map[K, V]) Len() int {
	return int(m.size.Load())
}

// IsEmpty reports whether Len() == 0.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// NextResize returns how many more successful inserts are expected
// before a resize triggers, or 0 if the threshold has already been
// reached.
func (m *Map[K, V]) NextResize() int64 {
	remaining := m.resizeThresh.Load() - m.size.Load()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear replaces the current array with a fresh, empty one of the
// configured initial capacity and resets size to zero. It does not
// coordinate with in-flight mutators or an in-flight resize: concurrent
// inserts may survive into the new array or be silently lost, and
// clearing during a resize is undefined (callers should quiesce first).
func (m *Map[K, V]) Clear() {
	m.data.Store(newBucketArray[K, V](m.initialCap))
	m.resizeThresh.Store(int64(float64(m.initialCap) * m.loadFactor))
	for {
		cur := m.size.Load()
		if cur == 0 {
			return
		}
		if m.size.CompareAndSwap(cur, 0) {
			return
		}
	}
}

// Pair is a key/value pair, the element type of PutAll's input.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// PutAll inserts every pair from pairs via Put, in order. Each insertion
// is independently linearized; the bulk operation itself is not atomic.
func (m *Map[K, V]) PutAll(pairs []Pair[K, V]) {
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
}

// ForEach invokes fn for every live entry visible to a fresh snapshot
// iterator, stopping early if fn returns false. fn must not call back
// into m in a way that blocks; the iteration itself never blocks.
func (m *Map[K, V]) ForEach(fn func(K, V) bool) {
	it := m.newSnapshotIterator()
	for it.advance() {
		e := it.lastReturned()
		if !fn(e.key, e.value) {
			return
		}
	}
}
