// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import "testing"

func TestIteratorVisitsAllLiveEntries(t *testing.T) {
	m := newIntMap()
	want := map[int]int{}
	for i := 0; i < 30; i++ {
		m.Put(i, i*2)
		want[i] = i * 2
	}
	m.Remove(5)
	delete(want, 5)

	got := map[int]int{}
	it := m.Iterator()
	for it.Next() {
		k, err := it.Key()
		if err != nil {
			t.Fatalf("Key() returned error: %v", err)
		}
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value() returned error: %v", err)
		}
		got[k] = v
	}
	if len(got) != len(want) {
		t.Fatalf("iterator visited %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("entry %d = %d, want %d", k, got[k], v)
		}
	}
}

func TestIteratorExhaustionIsNoSuchElement(t *testing.T) {
	m := newIntMap()
	m.Put(1, 10)

	it := m.Iterator()
	if !it.Next() {
		t.Fatalf("Next() = false on first call, want true")
	}
	if it.Next() {
		t.Fatalf("Next() = true on second call, want false (only one entry)")
	}
	if _, err := it.Key(); err != ErrNoSuchElement {
		t.Errorf("Key() after exhaustion = %v, want ErrNoSuchElement", err)
	}
	if _, err := it.Value(); err != ErrNoSuchElement {
		t.Errorf("Value() after exhaustion = %v, want ErrNoSuchElement", err)
	}
}

func TestIteratorKeyBeforeNextIsNoSuchElement(t *testing.T) {
	m := newIntMap()
	m.Put(1, 10)

	it := m.Iterator()
	if _, err := it.Key(); err != ErrNoSuchElement {
		t.Errorf("Key() before Next() = %v, want ErrNoSuchElement", err)
	}
}

func TestIteratorRemove(t *testing.T) {
	m := newIntMap()
	m.Put(1, 10)
	m.Put(2, 20)

	it := m.Iterator()
	removed := 0
	for it.Next() {
		k, _ := it.Key()
		if k == 1 {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove() = %v, want nil", err)
			}
			removed++
		}
	}
	if removed != 1 {
		t.Fatalf("removed %d entries, want 1", removed)
	}
	if _, ok := m.Get(1); ok {
		t.Errorf("Get(1) found after iterator Remove()")
	}
	if v, ok := m.Get(2); !ok || v != 20 {
		t.Errorf("Get(2) = (%d, %v), want (20, true)", v, ok)
	}
}

func TestIteratorRemoveWithoutNextIsIllegalState(t *testing.T) {
	m := newIntMap()
	m.Put(1, 10)

	it := m.Iterator()
	if err := it.Remove(); err != ErrIllegalState {
		t.Errorf("Remove() before Next() = %v, want ErrIllegalState", err)
	}
}

func TestIteratorKeyAfterConcurrentRemovalIsIllegalState(t *testing.T) {
	m := newIntMap()
	m.Put(1, 10)

	it := m.Iterator()
	if !it.Next() {
		t.Fatalf("Next() = false, want true")
	}
	m.Remove(1)

	if _, err := it.Key(); err != ErrIllegalState {
		t.Errorf("Key() after concurrent removal = %v, want ErrIllegalState", err)
	}
}
