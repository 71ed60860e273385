// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import (
	"reflect"
	"sync/atomic"
)

// entry is a single node of a bucket's collision chain. hash, key and
// value are immutable once the entry is constructed; next and deleted
// are the only mutable fields and are always touched through atomics.
//
// Replacing a value never mutates an existing entry: the insertion
// protocol publishes a fresh entry ahead of logically deleting the old
// one, so a concurrent reader always observes at least one live copy of
// the key.
type entry[K any, V any] struct {
	hash  uint32
	key   K
	value V

	next    atomic.Pointer[entry[K, V]]
	deleted atomic.Bool
}

func newEntry[K any, V any](hash uint32, key K, value V) *entry[K, V] {
	e := &entry[K, V]{hash: hash, key: key, value: value}
	return e
}

func (e *entry[K, V]) isDeleted() bool {
	return e.deleted.Load()
}

// markDeleted flips the deleted flag 0 -> 1 by CAS. It returns true if
// this call performed the transition, false if the entry was already
// deleted by another goroutine (a benign race).
func (e *entry[K, V]) markDeleted() bool {
	return e.deleted.CompareAndSwap(false, true)
}

// reflectDeepEqual is the fallback value-equality function used when a
// Map is constructed without WithValueEqual.
func reflectDeepEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

// isNilArg reports whether v is a nil-able value that is actually nil:
// a nil pointer, map, slice, channel, function, interface, or unsafe
// pointer. Non-nilable concrete types (ints, strings, structs, etc.)
// never satisfy this and so are never rejected as "nil" input.
func isNilArg[T any](v T) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
