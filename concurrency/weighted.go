// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package concurrency holds small concurrency-control helpers used by
// lfmap's load-generator command; the map itself never takes a lock.
package concurrency

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Weighted is a wrapper around golang.org/x/sync/semaphore that also
// tracks the currently available weight, so a caller (cmd/lfmapd's load
// generator) can report how many workers it is allowed to have in flight
// without racing a second counter of its own.
type Weighted struct {
	sem           *semaphore.Weighted
	maxWeight     int64
	currentWeight int64
	mu            sync.Mutex
}

// NewWeighted initializes a new weighted semaphore with a given capacity.
func NewWeighted(maxWeight int64) *Weighted {
	return &Weighted{
		sem:           semaphore.NewWeighted(maxWeight),
		maxWeight:     maxWeight,
		currentWeight: maxWeight,
	}
}

// Acquire tries to acquire the specified weight.
func (w *Weighted) Acquire(ctx context.Context, weight int64) error {
	err := w.sem.Acquire(ctx, weight)
	if err == nil {
		w.mu.Lock()
		w.currentWeight -= weight
		w.mu.Unlock()
	}

	return err
}

// Release releases the specified weight back to the semaphore.
func (w *Weighted) Release(weight int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sem.Release(weight)
	w.currentWeight += weight
}

// Available returns the current available weight.
func (w *Weighted) Available() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.currentWeight
}
