// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

// Remove deletes key's mapping and returns its previous value, or the
// zero value and false if key was absent.
//
// Removal operates only on the current data array, never data_new, even
// while a resize is in flight. This is a deliberate asymmetry with the
// reader-side probe order in lookup: a key that has already migrated to
// data_new but whose source-array copy has not yet been marked deleted
// by the resize controller can race a concurrent remove. Routing removes
// through the same array-selection logic as writes would close the
// window, at the cost of complicating the single-array removal CAS;
// this package preserves the asymmetry rather than silently closing it.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	if isNilArg(key) {
		return zero, false
	}
	return m.removeOn(m.data.Load(), key, false, zero)
}

// RemoveValue deletes key's mapping only if its current value equals
// value, returning whether it did.
func (m *Map[K, V]) RemoveValue(key K, value V) bool {
	if isNilArg(key) || isNilArg(value) {
		return false
	}
	_, ok := m.removeOn(m.data.Load(), key, true, value)
	return ok
}

func (m *Map[K, V]) removeOn(a *bucketArray[K, V], key K, checkValue bool, expected V) (V, bool) {
	var zero V
	h := m.hash(key)
	offset := bucketIndex(h, a.length())

	for e := a.head(offset).Load(); e != nil; e = e.next.Load() {
		if e.isDeleted() || e.hash != h || !m.keyEqual(e.key, key) {
			continue
		}
		if checkValue && !m.valEqual(e.value, expected) {
			return zero, false
		}
		if e.markDeleted() {
			m.bumpSize(-1)
			return e.value, true
		}
		// Someone else removed it first; this is reported as absent
		// rather than retried.
		return zero, false
	}
	return zero, false
}
