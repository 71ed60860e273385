// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

// KeySet is a live, non-copying projection of a Map's keys. Size,
// emptiness and containment delegate to the map; Remove removes the
// key's whole mapping (not just "the key").
type KeySet[K any, V any] struct{ m *Map[K, V] }

// Keys returns a live key view of m.
func (m *Map[K, V]) Keys() *KeySet[K, V] { return &KeySet[K, V]{m: m} }

func (k *KeySet[K, V]) Len() int                { return k.m.Len() }
func (k *KeySet[K, V]) IsEmpty() bool           { return k.m.IsEmpty() }
func (k *KeySet[K, V]) Contains(key K) bool     { return k.m.ContainsKey(key) }
func (k *KeySet[K, V]) Remove(key K) (V, bool)  { return k.m.Remove(key) }
func (k *KeySet[K, V]) Clear()                  { k.m.Clear() }
func (k *KeySet[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{base: k.m.Iterator()}
}

// KeyIterator specializes Iterator to yield only keys.
type KeyIterator[K any, V any] struct{ base *Iterator[K, V] }

func (it *KeyIterator[K, V]) Next() bool    { return it.base.Next() }
func (it *KeyIterator[K, V]) Key() (K, error) { return it.base.Key() }
func (it *KeyIterator[K, V]) Remove() error { return it.base.Remove() }

// ValueCollection is a live, non-copying projection of a Map's values.
// Unlike KeySet it is not a set: the same value may legitimately appear
// for more than one key, and Contains uses the map's value-equality
// function via ContainsValue.
type ValueCollection[K any, V any] struct{ m *Map[K, V] }

// Values returns a live value view of m.
func (m *Map[K, V]) Values() *ValueCollection[K, V] { return &ValueCollection[K, V]{m: m} }

func (v *ValueCollection[K, V]) Len() int            { return v.m.Len() }
func (v *ValueCollection[K, V]) IsEmpty() bool        { return v.m.IsEmpty() }
func (v *ValueCollection[K, V]) Contains(value V) bool { return v.m.ContainsValue(value) }
func (v *ValueCollection[K, V]) Clear()               { v.m.Clear() }
func (v *ValueCollection[K, V]) Iterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{base: v.m.Iterator()}
}

// ValueIterator specializes Iterator to yield only values.
type ValueIterator[K any, V any] struct{ base *Iterator[K, V] }

func (it *ValueIterator[K, V]) Next() bool      { return it.base.Next() }
func (it *ValueIterator[K, V]) Value() (V, error) { return it.base.Value() }
func (it *ValueIterator[K, V]) Remove() error   { return it.base.Remove() }

// EntrySet is a live, non-copying projection of a Map's (key, value)
// pairs. Membership is defined as (k,v) ∈ EntrySet iff Get(k) returns v.
type EntrySet[K any, V any] struct{ m *Map[K, V] }

// Entries returns a live entry view of m.
func (m *Map[K, V]) Entries() *EntrySet[K, V] { return &EntrySet[K, V]{m: m} }

func (s *EntrySet[K, V]) Len() int      { return s.m.Len() }
func (s *EntrySet[K, V]) IsEmpty() bool { return s.m.IsEmpty() }

func (s *EntrySet[K, V]) Contains(key K, value V) bool {
	v, ok := s.m.Get(key)
	return ok && s.m.valEqual(v, value)
}

func (s *EntrySet[K, V]) Clear() { s.m.Clear() }

func (s *EntrySet[K, V]) Iterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{base: s.m.Iterator()}
}

// EntryIterator yields MapEntry snapshots. A MapEntry returned from one
// Next() call becomes stale (IllegalState on Key/Value) once the
// underlying entry is concurrently removed; this mirrors Iterator's own
// Key/Value contract.
type EntryIterator[K any, V any] struct{ base *Iterator[K, V] }

func (it *EntryIterator[K, V]) Next() bool { return it.base.Next() }

func (it *EntryIterator[K, V]) Entry() *MapEntry[K, V] {
	return &MapEntry[K, V]{e: it.base.snap.cur}
}

func (it *EntryIterator[K, V]) Remove() error { return it.base.Remove() }

// MapEntry is a read-only snapshot of a single (key, value) pair handed
// out by an EntryIterator. SetValue always fails: the underlying
// insertion protocol never mutates a published entry's value in place,
// so there is no in-place update to perform.
type MapEntry[K any, V any] struct {
	e *entry[K, V]
}

func (e *MapEntry[K, V]) Key() (K, error) {
	var zero K
	if err := e.stateErr(); err != nil {
		return zero, err
	}
	return e.e.key, nil
}

func (e *MapEntry[K, V]) Value() (V, error) {
	var zero V
	if err := e.stateErr(); err != nil {
		return zero, err
	}
	return e.e.value, nil
}

func (e *MapEntry[K, V]) stateErr() error {
	if e.e == nil {
		return ErrNoSuchElement
	}
	if e.e.isDeleted() {
		return ErrIllegalState
	}
	return nil
}

// SetValue always returns ErrUnsupported.
func (e *MapEntry[K, V]) SetValue(V) error { return ErrUnsupported }
