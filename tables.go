// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

// expandMaskTable maps a bit position 0..255 to the 256-bit bucket mask with
// exactly that bit set. expandScatter256 combines these with bitwise OR
// instead of computing byte/shift pairs per index, per the acceleration
// sketched for expand-and-scatter: a precomputed one-hot mask per index,
// OR'd into the destination bucket.
var expandMaskTable [256][bucketSize]byte

func init() {
	for idx := range expandMaskTable {
		expandMaskTable[idx][idx>>3] = 1 << (uint(idx) & 7)
	}
}
