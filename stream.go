// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

import "encoding/binary"

// lengthPrefixSize is the size of the stream's leading length field.
const lengthPrefixSize = 4

// numBuckets returns ceil(n/bucketSizeU8).
func numBuckets(n int) int {
	return divCeil(n, bucketSizeU8)
}

func divCeil(n, m int) int {
	return (n + m - 1) / m
}

// ExtractSizes reads the 4-byte length prefix of a compressed stream and
// reports the original (pre-padding) input length dataSize and the buffer
// size a caller must allocate to Decompress into (a multiple of 32).
//
// It returns ErrCorrupted if compressed is shorter than the length prefix.
func ExtractSizes(compressed []byte) (dataSize, bufferSize int, err error) {
	if len(compressed) < lengthPrefixSize {
		return 0, 0, ErrCorrupted
	}
	n := int(binary.LittleEndian.Uint32(compressed[:lengthPrefixSize]))
	return n, numBuckets(n) * bucketSizeU8, nil
}

// Decompress decodes the compressed stream into out, which must be at least
// as large as the bufferSize ExtractSizes would report. It returns the
// number of bytes written to out (always a multiple of 32) and, on success,
// a nil error. Only the first dataSize bytes (see ExtractSizes) of that
// output are semantically meaningful; the remainder reflects whatever
// padding was encoded for the final bucket and must be ignored by callers.
func Decompress(compressed []byte, out []byte) (int, error) {
	dataSize, bufSize, err := ExtractSizes(compressed)
	if err != nil {
		return 0, err
	}
	if len(out) < bufSize {
		return 0, ErrBufferTooSmall
	}

	nb := numBuckets(dataSize)
	src := compressed[lengthPrefixSize:]
	off := 0
	for i := 0; i < nb; i++ {
		if off > len(src) {
			return 0, ErrCorrupted
		}
		consumed, err := decodeBucket(src[off:], out[i*bucketSizeU8:(i+1)*bucketSizeU8])
		if err != nil {
			return 0, err
		}
		off += consumed
	}
	return bufSize, nil
}
