// Copyright (c) 2024 lfmap Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package lfmap

// mix runs a Wang/Jenkins-style 32-bit avalanche transform over a caller
// hash so that keys whose raw hashes differ only in a few bits still land
// in well-separated buckets. The result is masked to 31 bits so it is
// always usable as a non-negative bucket offset after a mod/mask.
func mix(h uint32) uint32 {
	h += (h << 15) ^ 0xffffcd7d
	h ^= h >> 10
	h += h << 3
	h ^= h >> 6
	h += (h << 2) + (h << 14)
	h ^= h >> 16
	return h & 0x7fffffff
}

// bucketIndex returns the offset of the bucket that owns the chain for a
// key whose caller-supplied raw hash is h, within an array of length l (a
// power of two).
func bucketIndex(h uint32, l int) int {
	return int(mix(h)) % l
}
