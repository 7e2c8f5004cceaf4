// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bitbucket-selftest runs a small, named sequence of sanity checks
// against the bucket codec and prints a pass/fail transcript, independent
// of `go test`. It exists for environments where only the built binary is
// available.
package main

import (
	"bytes"
	"os"

	"github.com/dsnet/bitbucket"
	"github.com/dsnet/bitbucket/internal/bbtestrunner"
)

func main() {
	r := bbtestrunner.New()
	r.Register("single bitmap bucket", testSingleBitmapBucket)
	r.Register("multiple bitmap buckets", testMultipleBitmapBuckets)
	r.Register("sparse bucket round trip", testSparseBucketRoundTrip)
	r.Register("all-ones bucket round trip", testAllOnesRoundTrip)

	if !r.Run(os.Stdout) {
		os.Exit(1)
	}
}

func testSingleBitmapBucket() bool {
	c := bitbucket.Create(32)
	defer c.Destroy()
	for i := range c.Input {
		c.Input[i] = 0b10101010
	}
	n, err := c.Compress(32)
	if err != nil {
		return false
	}

	out := make([]byte, 32)
	if _, err := bitbucket.Decompress(c.Output[:n], out); err != nil {
		return false
	}
	return bytes.Equal(out, c.Input)
}

func testMultipleBitmapBuckets() bool {
	const numBuckets = 100
	size := numBuckets * 32

	c := bitbucket.Create(size)
	defer c.Destroy()
	for i := range c.Input[:size] {
		c.Input[i] = 0b10101010
	}
	n, err := c.Compress(size)
	if err != nil {
		return false
	}

	out := make([]byte, size)
	if _, err := bitbucket.Decompress(c.Output[:n], out); err != nil {
		return false
	}
	return bytes.Equal(out, c.Input[:size])
}

func testSparseBucketRoundTrip() bool {
	c := bitbucket.Create(32)
	defer c.Destroy()
	c.Input[0] = 0x01 // single bit set

	n, err := c.Compress(32)
	if err != nil {
		return false
	}

	out := make([]byte, 32)
	if _, err := bitbucket.Decompress(c.Output[:n], out); err != nil {
		return false
	}
	return bytes.Equal(out, c.Input)
}

func testAllOnesRoundTrip() bool {
	c := bitbucket.Create(32)
	defer c.Destroy()
	for i := range c.Input {
		c.Input[i] = 0xff
	}

	n, err := c.Compress(32)
	if err != nil {
		return false
	}

	out := make([]byte, 32)
	if _, err := bitbucket.Decompress(c.Output[:n], out); err != nil {
		return false
	}
	return bytes.Equal(out, c.Input)
}
