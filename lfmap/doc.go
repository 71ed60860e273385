// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package lfmap implements a lock-free, concurrent, dynamically resizable
// hash map. Any number of goroutines may call its operations in parallel;
// no operation ever blocks another on a mutex. Progress relies entirely on
// atomic compare-and-swap on bucket slots, chain links, entry deletion
// flags, and the map's size counter.
//
// The map is polymorphic over a key type K (via a caller-supplied 32-bit
// hash function and equality function) and a value type V (via an
// optional equality function, used by ContainsValue and the conditional
// operations). Keys and values are compared by caller-provided equality,
// not necessarily by identity.
//
// Per-key operations that do not straddle a concurrent resize are
// linearizable with respect to one another. A lookup that straddles a
// resize may observe a value that only transiently coexisted with
// another value for the same key; Len is an approximate count under
// concurrency and exact only in a quiescent state.
package lfmap
