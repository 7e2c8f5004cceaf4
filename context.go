// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

import "encoding/binary"

// tailSlack is the extra bucket of output room extract-and-compact is
// allowed to overrun into for the last bucket of a run (see
// extractCompact256).
const tailSlack = bucketSizeU8

// Context is the owning container for a series of Compress calls bounded by
// some upper input size. It holds the input, output, and scratch buffers so
// repeated compressions of inputs up to that bound allocate nothing.
//
// A Context is not safe for concurrent use; separate contexts may be used
// in parallel by independent callers.
type Context struct {
	// Input is where the caller places the bytes to compress, up to
	// MaxInputSize.
	Input []byte
	// Output receives the compressed stream produced by Compress.
	Output []byte

	scratch [bucketSizeU8]byte

	// MaxInputSize is the largest size argument Compress will accept:
	// Create's upperSize rounded up to a multiple of 32.
	MaxInputSize int
	// MaxOutputSize is the capacity of Output.
	MaxOutputSize int
}

// Create allocates a Context sized for inputs up to upperSize bytes.
// upperSize of 0 is permitted and yields a zero-bucket context whose
// Compress call produces a 4-byte stream containing N=0.
func Create(upperSize int) *Context {
	nb := numBuckets(upperSize)
	c := &Context{
		MaxInputSize: nb * bucketSizeU8,
	}
	c.MaxOutputSize = lengthPrefixSize + nb*(1+bucketSizeU8) + tailSlack
	c.Input = make([]byte, c.MaxInputSize)
	c.Output = make([]byte, c.MaxOutputSize)
	return c
}

// Destroy releases the context's buffers. It is idempotent.
func (c *Context) Destroy() {
	c.Input = nil
	c.Output = nil
	c.MaxInputSize = 0
	c.MaxOutputSize = 0
}

// Compress compresses the first size bytes of c.Input into c.Output and
// returns the number of valid bytes written to c.Output.
//
// size must not exceed c.MaxInputSize, or ErrBufferTooSmall is returned.
func (c *Context) Compress(size int) (int, error) {
	if size > c.MaxInputSize {
		return 0, ErrBufferTooSmall
	}

	binary.LittleEndian.PutUint32(c.Output[:lengthPrefixSize], uint32(size))
	out := c.Output[lengthPrefixSize:]

	nb := numBuckets(size)
	off := 0
	for i := 0; i < nb; i++ {
		off += encodeBucket(c.Input[i*bucketSizeU8:(i+1)*bucketSizeU8], out[off:], c.scratch[:])
	}
	return lengthPrefixSize + off, nil
}
