// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrentMonotoneWrites covers S5: N goroutines race to read the
// current value of a single key, increment a shared counter, and write
// the counter back; every read must be at most the counter value at the
// time of the read, which holds regardless of how goroutines interleave
// since the counter only ever increases.
func TestConcurrentMonotoneWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping contention-heavy test in -short mode")
	}
	const goroutines = 10
	const iterations = 2000

	m := newIntMap()
	m.Put(1, 0)
	var counter int64

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v, _ := m.Get(1)
				n := atomic.AddInt64(&counter, 1)
				m.Put(1, int(n))
				if v > int(n) {
					t.Errorf("observed value %d exceeds counter %d", v, n)
				}
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentCreateUpdateDeleteMix covers S6: many goroutines issue
// put/get/remove against a shared key space, each key guarded by its own
// lock so that at most one goroutine touches a given key at a time; every
// read or remove that observes a key as present must see the value this
// test always assigns it, key*10.
func TestConcurrentCreateUpdateDeleteMix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping contention-heavy test in -short mode")
	}
	const keySpace = 256
	const goroutines = 20
	const opsPerGoroutine = 2000

	m := newIntMap()
	locks := make([]sync.Mutex, keySpace)
	present := make([]bool, keySpace)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		seed := uint32(g + 1)
		go func(seed uint32) {
			defer wg.Done()
			for i := 0; i < opsPerGoroutine; i++ {
				seed = seed*1664525 + 1013904223
				key := int(seed % keySpace)

				locks[key].Lock()
				switch i % 3 {
				case 0:
					m.Put(key, key*10)
					present[key] = true
				case 1:
					if v, ok := m.Get(key); ok && v != key*10 {
						t.Errorf("Get(%d) = %d, want %d", key, v, key*10)
					} else if ok != present[key] {
						t.Errorf("Get(%d) presence = %v, want %v", key, ok, present[key])
					}
				case 2:
					v, ok := m.Remove(key)
					if ok && v != key*10 {
						t.Errorf("Remove(%d) = %d, want %d", key, v, key*10)
					}
					if ok != present[key] {
						t.Errorf("Remove(%d) presence = %v, want %v", key, ok, present[key])
					}
					present[key] = false
				}
				locks[key].Unlock()
			}
		}(seed)
	}
	wg.Wait()
}

// TestConcurrentResizeTransparency exercises property 9: a resize
// triggered concurrently with reads must not cause a get on a key
// present before the resize began (and never removed) to return absent.
func TestConcurrentResizeTransparency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping contention-heavy test in -short mode")
	}
	const preloaded = 100
	m := newIntMap(WithInitialCapacity[int, int](16), WithLoadFactor[int, int](0.75))
	for i := 0; i < preloaded; i++ {
		m.Put(i, i*10)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(4)
	for r := 0; r < 4; r++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				for i := 0; i < preloaded; i++ {
					if v, ok := m.Get(i); !ok || v != i*10 {
						t.Errorf("Get(%d) during resize = (%d, %v), want (%d, true)", i, v, ok, i*10)
						return
					}
				}
			}
		}()
	}

	for i := preloaded; i < preloaded+500; i++ {
		m.Put(i, i*10)
	}
	close(stop)
	wg.Wait()
}
