// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

// Category tags for the high two bits of a descriptor byte.
const (
	catSparsePositive = 0x00
	catSparseInverted = 0x40
	catRaw            = 0x80
)

// encodedSize returns the number of bytes encodeBucket would write for src,
// without writing anything. The context's worst-case bound is content-
// independent (always 1+bucketSizeU8 per bucket), so it never calls this;
// encodedSize exists for callers, such as tests, that want the exact size
// encodeBucket would produce for one specific bucket's content.
func encodedSize(src []byte) int {
	p := popcount256(src)
	switch {
	case p < bucketSizeU8:
		return 1 + p
	case bucketSize-p < bucketSizeU8:
		return 1 + (bucketSize - p)
	default:
		return 1 + bucketSizeU8
	}
}

// encodeBucket encodes the 32-byte bucket src into dst, returning the number
// of bytes written. scratch must be a 32-byte buffer used for the
// sparse-inverted path; it may be reused across calls. dst must have room
// for the worst case (1 + bucketSizeU8 bytes) plus whatever extract-and-
// compact tail slack the caller has reserved (see Context).
func encodeBucket(src, dst, scratch []byte) int {
	p := popcount256(src)

	switch {
	case p < bucketSizeU8:
		dst[0] = byte(p) | catSparsePositive
		extractCompact256(src, dst[1:])
		return 1 + p

	case bucketSize-p < bucketSizeU8:
		q := bucketSize - p
		dst[0] = byte(q) | catSparseInverted
		invert256(src, scratch)
		extractCompact256(scratch, dst[1:])
		return 1 + q

	default:
		dst[0] = bucketSizeU8 | catRaw
		copy(dst[1:1+bucketSizeU8], src[:bucketSizeU8])
		return 1 + bucketSizeU8
	}
}
