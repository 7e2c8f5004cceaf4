// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

// decodeBucket decodes one bucket record from src (which must begin at the
// descriptor byte) into the 32-byte dst, returning the number of bytes of
// src consumed. It returns ErrCorrupted if the descriptor carries the
// reserved category 0b11 or if the claimed payload length runs past the end
// of src.
func decodeBucket(src, dst []byte) (int, error) {
	if len(src) < 1 {
		return 0, ErrCorrupted
	}
	d := src[0]
	length := int(d & 0x3f)
	cat := d & 0xc0

	switch cat {
	case catSparsePositive:
		if 1+length > len(src) {
			return 0, ErrCorrupted
		}
		payload := src[1 : 1+length]
		for i := range dst[:bucketSizeU8] {
			dst[i] = 0
		}
		for _, v := range payload {
			dst[v>>3] |= 1 << (v & 7)
		}
		return 1 + length, nil

	case catSparseInverted:
		if 1+length > len(src) {
			return 0, ErrCorrupted
		}
		payload := src[1 : 1+length]
		expandScatter256(payload, dst)
		invert256(dst, dst)
		return 1 + length, nil

	case catRaw:
		if length != bucketSizeU8 || 1+bucketSizeU8 > len(src) {
			return 0, ErrCorrupted
		}
		copy(dst[:bucketSizeU8], src[1:1+bucketSizeU8])
		return 1 + bucketSizeU8, nil

	default:
		return 0, ErrCorrupted
	}
}
