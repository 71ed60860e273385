// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import "testing"

// TestResizeTransparency covers S4: construct with (16, 0.8, true);
// resize_threshold == 12. Insert 12 distinct keys: next_resize() == 0.
// Insert one more: resize_threshold becomes 25, capacity becomes 32,
// and every prior key is still readable.
func TestResizeTransparency(t *testing.T) {
	m := newIntMap(WithInitialCapacity[int, int](16), WithLoadFactor[int, int](0.8))

	if got := m.data.Load().length(); got != 16 {
		t.Fatalf("initial capacity = %d, want 16", got)
	}
	if got := m.NextResize(); got != 12 {
		t.Fatalf("initial NextResize() = %d, want 12", got)
	}

	for i := 0; i < 12; i++ {
		m.Put(i, i*10)
	}
	if got := m.NextResize(); got != 0 {
		t.Fatalf("NextResize() after 12 inserts = %d, want 0", got)
	}
	if got := m.data.Load().length(); got != 16 {
		t.Fatalf("capacity after 12 inserts = %d, want 16 (resize triggers on 13th insert)", got)
	}

	m.Put(12, 120)

	if got := m.data.Load().length(); got != 32 {
		t.Fatalf("capacity after 13th insert = %d, want 32", got)
	}
	if got := m.resizeThresh.Load(); got != 25 {
		t.Fatalf("resize threshold after growth = %d, want 25", got)
	}

	for i := 0; i <= 12; i++ {
		v, ok := m.Get(i)
		if !ok || v != i*10 {
			t.Errorf("Get(%d) after resize = (%d, %v), want (%d, true)", i, v, ok, i*10)
		}
	}
	if got := m.Len(); got != 13 {
		t.Errorf("Len() after resize = %d, want 13", got)
	}
}

func TestResizeDisabled(t *testing.T) {
	m := newIntMap(WithInitialCapacity[int, int](16), WithLoadFactor[int, int](0.5), WithResizable[int, int](false))
	for i := 0; i < 64; i++ {
		m.Put(i, i)
	}
	if got := m.data.Load().length(); got != 16 {
		t.Errorf("capacity with resizing disabled = %d, want 16", got)
	}
	for i := 0; i < 64; i++ {
		if v, ok := m.Get(i); !ok || v != i {
			t.Errorf("Get(%d) = (%d, %v), want (%d, true)", i, v, ok, i)
		}
	}
}
