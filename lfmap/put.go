// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

// putFlags parameterizes the single insertion routine that implements
// every write-side public operation, per the operation table:
//
//	Put              : onlyIfAbsent=false onlyReplace=false expectedOld=none
//	PutIfAbsent      : onlyIfAbsent=true  onlyReplace=false expectedOld=none
//	Replace(k,v)     : onlyIfAbsent=false onlyReplace=true  expectedOld=none
//	ReplaceValue     : onlyIfAbsent=false onlyReplace=true  expectedOld=set
type putFlags[V any] struct {
	onlyIfAbsent bool
	onlyReplace  bool
	hasExpected  bool
	expectedOld  V
	isResize     bool // suppress size increment; caller already accounted for it
}

// Put associates value with key, returning the previous value (if any).
// A nil key or nil value is rejected and returns the zero value, false.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	var zero V
	if isNilArg(key) || isNilArg(value) {
		return zero, false
	}
	return m.putOn(m.selectForWrite(), key, value, putFlags[V]{})
}

// PutIfAbsent inserts value for key only if key is not already present,
// returning the existing value when it was (and leaving the map
// unchanged), or the zero value, false on a fresh insert.
func (m *Map[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	var zero V
	if isNilArg(key) || isNilArg(value) {
		return zero, false
	}
	return m.putOn(m.selectForWrite(), key, value, putFlags[V]{onlyIfAbsent: true})
}

// Replace updates key's value to value only if key is already present,
// returning the previous value, or the zero value and false if key was
// absent.
func (m *Map[K, V]) Replace(key K, value V) (V, bool) {
	var zero V
	if isNilArg(key) || isNilArg(value) {
		return zero, false
	}
	return m.putOn(m.selectForWrite(), key, value, putFlags[V]{onlyReplace: true})
}

// ReplaceValue updates key's value to newValue only if its current value
// equals oldValue, returning true iff the replacement happened. When key
// is absent, the inner insertion routine returns (zero, false), which
// compares unequal to oldValue unless oldValue is itself the zero value
// and hadOld reports that absence explicitly.
func (m *Map[K, V]) ReplaceValue(key K, oldValue, newValue V) bool {
	if isNilArg(key) || isNilArg(newValue) {
		return false
	}
	prev, hadOld := m.putOn(m.selectForWrite(), key, newValue, putFlags[V]{
		onlyReplace: true,
		hasExpected: true,
		expectedOld: oldValue,
	})
	return hadOld && m.valEqual(prev, oldValue)
}

// selectForWrite is the mutator-side array selection: check whether a
// resize must begin, then operate on data_new if a resize is in flight,
// else data.
func (m *Map[K, V]) selectForWrite() *bucketArray[K, V] {
	if m.resizable {
		m.checkResize()
	}
	return m.currentArray()
}

// putOn runs the unified Phase 1 / Phase 2 / Phase 3 insertion protocol
// against array a. It returns the value the new entry logically
// replaced (the "old value"), and whether such an old value existed.
//
// Phase 1 and Phase 2 are expressed as a single loop over a predecessor
// slot: predPtr starts as the bucket head slot and is reassigned to
// &cur.next as the walk advances past a node, which is what lets the
// same code implement both "insert/replace at the bucket head" and
// "insert/replace mid-chain" without duplicating the CAS logic.
func (m *Map[K, V]) putOn(a *bucketArray[K, V], key K, value V, flags putFlags[V]) (V, bool) {
	var zero V
	h := m.hash(key)
	offset := bucketIndex(h, a.length())
	predPtr := a.head(offset)

	var oldEntry *entry[K, V]
	s := newSpinner(&m.casRetries)

	// predPtr always names the slot currently under examination: the
	// bucket head on the first iteration, &cur.next on every iteration
	// thereafter. Treating "the bucket head is empty" and "the chain
	// walk reached its end" as the same case (predPtr's slot is nil)
	// is what lets this one loop implement both Phase 1 and Phase 2.
	for {
		cur := predPtr.Load()

		if cur == nil {
			if flags.onlyReplace && oldEntry == nil {
				return zero, false
			}
			ne := newEntry(h, key, value)
			if predPtr.CompareAndSwap(nil, ne) {
				if oldEntry == nil && !flags.isResize {
					m.bumpSize(1)
				}
				break
			}
			s.wait()
			continue
		}

		if cur.isDeleted() {
			succ := cur.next.Load()
			// Opportunistic unlink, at the head or mid-chain alike;
			// failure is benign, another goroutine already made
			// progress here and the retry picks up from predPtr.
			predPtr.CompareAndSwap(cur, succ)
			continue
		}

		if cur.hash == h && m.keyEqual(cur.key, key) {
			oldEntry = cur
			if flags.onlyIfAbsent {
				return cur.value, true
			}
			if flags.hasExpected && !m.valEqual(cur.value, flags.expectedOld) {
				return cur.value, true
			}
		}

		predPtr = &cur.next
	}

	// Phase 3: logical replace of the superseded entry, if any.
	if oldEntry != nil {
		oldEntry.markDeleted()
		return oldEntry.value, true
	}
	return zero, false
}

func (m *Map[K, V]) bumpSize(delta int64) {
	for {
		cur := m.size.Load()
		if m.size.CompareAndSwap(cur, cur+delta) {
			return
		}
	}
}

// lookup is the three-probe read protocol: check data_new if a resize is
// in flight (else data, and stop there), then data, then data_new once
// more if it is set, tolerating a resize that commits (data <- data_new)
// mid-lookup.
func (m *Map[K, V]) lookup(key K) (V, bool) {
	var zero V
	h := m.hash(key)

	resizing := m.resizeLock.Load() && m.dataNew.Load() != nil
	a := m.data.Load()
	if resizing {
		if dn := m.dataNew.Load(); dn != nil {
			a = dn
		}
	}

	if v, ok := m.scan(a, h, key); ok {
		return v, true
	}
	if !resizing {
		return zero, false
	}

	a = m.data.Load()
	if v, ok := m.scan(a, h, key); ok {
		return v, true
	}

	if dn := m.dataNew.Load(); dn != nil {
		a = dn
	}
	if v, ok := m.scan(a, h, key); ok {
		return v, true
	}
	return zero, false
}

func (m *Map[K, V]) scan(a *bucketArray[K, V], h uint32, key K) (V, bool) {
	var zero V
	offset := bucketIndex(h, a.length())
	for e := a.head(offset).Load(); e != nil; e = e.next.Load() {
		if !e.isDeleted() && e.hash == h && m.keyEqual(e.key, key) {
			return e.value, true
		}
	}
	return zero, false
}
