// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

import (
	"encoding/binary"
	"math/bits"
)

// extractCompact256 writes, in ascending order, the 0..255 index of every set
// bit in the 32-byte bucket src to dst, and returns the number of indices
// written.
//
// dst must have at least 32 bytes of room past the logical end of the
// output stream for the final bucket of a run; a vectorized port of this
// function is permitted to write up to 64 bytes per 64-bit word regardless
// of that word's population count, provided the next word's compacted
// prefix begins at cursor+popcount(word) (see Context, which reserves
// exactly that slack). This scalar port never overruns, but keeps the same
// word-at-a-time structure so a SIMD replacement slots in without changing
// callers.
func extractCompact256(src, dst []byte) int {
	_ = src[bucketSizeU8-1]
	n := 0
	for w := 0; w < 4; w++ {
		word := binary.LittleEndian.Uint64(src[8*w : 8*w+8])
		base := byte(64 * w)
		for word != 0 {
			k := bits.TrailingZeros64(word)
			dst[n] = base + byte(k)
			n++
			word &= word - 1 // clear lowest set bit
		}
	}
	return n
}

// expandScatter256 zeroes dst and sets a bit at each of the indices listed in
// idx. Duplicate indices are tolerated (setting a bit twice is idempotent).
func expandScatter256(idx []byte, dst []byte) {
	_ = dst[bucketSizeU8-1]
	for i := range dst {
		dst[i] = 0
	}
	for _, v := range idx {
		mask := &expandMaskTable[v]
		for i := range dst {
			dst[i] |= mask[i]
		}
	}
}

// invert256 writes the bitwise complement of the 32-byte bucket src into dst.
// src and dst may be the same slice.
func invert256(src, dst []byte) {
	_ = src[bucketSizeU8-1]
	_ = dst[bucketSizeU8-1]
	for w := 0; w < 4; w++ {
		word := binary.LittleEndian.Uint64(src[8*w : 8*w+8])
		binary.LittleEndian.PutUint64(dst[8*w:8*w+8], ^word)
	}
}
