// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitbucket implements a population-adaptive bitmap codec.
//
// The codec partitions a bitstream into fixed-width 256-bit buckets and
// picks, per bucket, one of three representations based on the bucket's
// population count: a sparse list of set-bit positions, a sparse list of
// clear-bit positions, or the raw 32 bytes. Encoding and decoding are
// single-pass and single-threaded; there is no support for streaming across
// buffer boundaries, random access into a compressed artifact, or
// concurrent encoding of a single input.
//
// A Context owns the input, output, and scratch buffers for a series of
// Compress calls sized to some upper bound. Decompress does not require a
// Context; it operates directly on caller-supplied slices.
package bitbucket
