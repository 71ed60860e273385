// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

// snapshotIterator walks the live entries of a single bucketArray,
// skipping buckets and chain nodes whose deleted flag is set. It never
// crosses a resize boundary on its own; the resize controller and the
// public Iterator both wrap one instance bound to a single array.
//
// It is weakly consistent: a concurrent mutation may cause a given entry
// to be visited, skipped, or both, but the walk always terminates and
// never revisits the same entry twice.
type snapshotIterator[K any, V any] struct {
	array   *bucketArray[K, V]
	bucket  int
	cur     *entry[K, V]
	lastRet *entry[K, V]
}

func (m *Map[K, V]) newSnapshotIteratorOn(a *bucketArray[K, V]) *snapshotIterator[K, V] {
	return &snapshotIterator[K, V]{array: a, bucket: -1}
}

func (m *Map[K, V]) newSnapshotIterator() *snapshotIterator[K, V] {
	return m.newSnapshotIteratorOn(m.data.Load())
}

// advance moves the iterator to the next live entry and reports whether
// one was found.
func (it *snapshotIterator[K, V]) advance() bool {
	if it.cur != nil {
		if n := it.cur.next.Load(); n != nil {
			if next := it.firstLiveFrom(n); next != nil {
				it.cur = next
				it.lastRet = next
				return true
			}
		}
	}

	for it.bucket++; it.bucket < it.array.length(); it.bucket++ {
		head := it.array.head(it.bucket).Load()
		if head == nil {
			continue
		}
		if live := it.firstLiveFrom(head); live != nil {
			it.cur = live
			it.lastRet = live
			return true
		}
	}

	it.cur = nil
	return false
}

// firstLiveFrom returns e itself if it is live, or the first live node
// reachable from e via next, or nil if the rest of the chain is
// exhausted without a live node.
func (it *snapshotIterator[K, V]) firstLiveFrom(e *entry[K, V]) *entry[K, V] {
	for e != nil {
		if !e.isDeleted() {
			return e
		}
		e = e.next.Load()
	}
	return nil
}

func (it *snapshotIterator[K, V]) lastReturned() *entry[K, V] {
	return it.lastRet
}

// Iterator is the public, error-reporting wrapper around
// snapshotIterator returned by Map.Iterator and by the views in
// views.go. Unlike a Java-style iterator it never panics or throws; Next
// reports exhaustion via its boolean return, and the accessors report
// misuse via the sentinel errors in errors.go.
type Iterator[K any, V any] struct {
	m    *Map[K, V]
	snap *snapshotIterator[K, V]
}

// Iterator returns a live, weakly-consistent iterator over the map's
// current entries.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, snap: m.newSnapshotIterator()}
}

// Next advances the iterator, returning false once exhausted.
func (it *Iterator[K, V]) Next() bool {
	return it.snap.advance()
}

// Key returns the key of the entry last returned by Next.
func (it *Iterator[K, V]) Key() (K, error) {
	var zero K
	e := it.currentOrErr()
	if e == nil {
		return zero, it.stateErr()
	}
	return e.key, nil
}

// Value returns the value of the entry last returned by Next.
func (it *Iterator[K, V]) Value() (V, error) {
	var zero V
	e := it.currentOrErr()
	if e == nil {
		return zero, it.stateErr()
	}
	return e.value, nil
}

func (it *Iterator[K, V]) currentOrErr() *entry[K, V] {
	e := it.snap.cur
	if e == nil || e.isDeleted() {
		return nil
	}
	return e
}

// stateErr distinguishes "iterator never advanced, or ran off the end"
// (NoSuchElement) from "the last-returned entry was concurrently
// removed" (IllegalState).
func (it *Iterator[K, V]) stateErr() error {
	e := it.snap.cur
	if e != nil && e.isDeleted() {
		return ErrIllegalState
	}
	return ErrNoSuchElement
}

// Remove deletes the entry last returned by Next from the underlying
// map. It fails with ErrIllegalState if Next has not been called, or if
// the last-returned entry was already removed (by this call or by a
// concurrent goroutine).
func (it *Iterator[K, V]) Remove() error {
	e := it.snap.lastReturned()
	if e == nil {
		return ErrIllegalState
	}
	if !it.m.RemoveValue(e.key, e.value) {
		return ErrIllegalState
	}
	return nil
}
