// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

import "errors"

// Sentinel errors returned by the iterator and entry-view types. Rejected
// input (a nil key or nil value passed to a write operation, or a nil key
// passed to a read operation) is never reported as an error: those calls
// silently return a zero value / false, matching the map's own contract.
var (
	// ErrNoSuchElement is returned by an Iterator's Key/Value/Entry methods
	// once the iterator has been exhausted, or before its first Next call.
	ErrNoSuchElement = errors.New("lfmap: no such element")

	// ErrIllegalState is returned by Iterator.Remove when called without a
	// prior successful Next, or twice in a row without an intervening
	// Next; it is also returned by an entry view's Key/Value accessors
	// once the underlying entry has been concurrently removed.
	ErrIllegalState = errors.New("lfmap: illegal iterator state")

	// ErrUnsupported is returned by MapEntry.SetValue: entries handed out
	// by views are read-only snapshots, consistent with the map's
	// insert-then-delete replacement protocol, which never mutates a
	// published entry's value in place.
	ErrUnsupported = errors.New("lfmap: unsupported operation")
)
