// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bbbench compares bitbucket's bucket codec against general-purpose
// compressors on bitmap-shaped inputs, aggregating repeated trials into a
// mean and a 95% confidence interval the way a single-shot timing never can.
package bbbench

import (
	"math"
	"runtime"
	"time"
)

// Codec identifies one of the competing implementations a Result belongs to.
type Codec int

const (
	CodecBitbucket Codec = iota
	CodecFlate
	CodecZstd
	CodecXZ
)

func (c Codec) String() string {
	switch c {
	case CodecBitbucket:
		return "bitbucket"
	case CodecFlate:
		return "flate"
	case CodecZstd:
		return "zstd"
	case CodecXZ:
		return "xz"
	default:
		return "unknown"
	}
}

// Encoder compresses input into some implementation-specific wire format.
type Encoder func(input []byte) ([]byte, error)

// Decoder reverses an Encoder's output, reporting the number of bytes
// recovered.
type Decoder func(input []byte, out []byte) (int, error)

var (
	encoders = make(map[Codec]Encoder)
	decoders = make(map[Codec]Decoder)
)

// RegisterEncoder installs enc as the Encoder for c. Called from each
// codec's init, mirroring how independent implementations register
// themselves without the comparison harness importing them directly.
func RegisterEncoder(c Codec, enc Encoder) { encoders[c] = enc }

// RegisterDecoder installs dec as the Decoder for c.
func RegisterDecoder(c Codec, dec Decoder) { decoders[c] = dec }

// Registered reports which codecs have both an encoder and a decoder
// available, in a stable order.
func Registered() []Codec {
	var cs []Codec
	for c := range encoders {
		if _, ok := decoders[c]; ok {
			cs = append(cs, c)
		}
	}
	// Stable, deterministic order regardless of map iteration.
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && cs[j] < cs[j-1]; j-- {
			cs[j], cs[j-1] = cs[j-1], cs[j]
		}
	}
	return cs
}

// AggregatedResult is the mean and 95% confidence-interval margin of a
// benchmark run over a fixed number of iterations, following the same
// aggregation as the C benchmarking harness this package's methodology is
// grounded on: mean +/- 1.96*stddev/sqrt(n).
type AggregatedResult struct {
	Codec Codec

	OutputSize int // bytes; constant across iterations for a given input

	AvgCompressNanos   float64
	CompressCIMargin   float64
	AvgDecompressNanos float64
	DecompressCIMargin float64

	Verified bool // every iteration round-tripped correctly
}

// NumIterations is the number of timed trials aggregated into each
// AggregatedResult.
const NumIterations = 100

// Run benchmarks c's registered encoder and decoder against input,
// aggregating NumIterations timed trials into a single AggregatedResult.
// It returns an error if c has no registered encoder or decoder, or if any
// trial fails to encode.
func Run(c Codec, input []byte) (AggregatedResult, error) {
	enc, ok := encoders[c]
	if !ok {
		return AggregatedResult{}, errNoCodec(c, "encoder")
	}
	dec, ok := decoders[c]
	if !ok {
		return AggregatedResult{}, errNoCodec(c, "decoder")
	}

	compTimes := make([]float64, NumIterations)
	decompTimes := make([]float64, NumIterations)
	verified := true
	var outputSize int

	out := make([]byte, len(input))
	for i := 0; i < NumIterations; i++ {
		runtime.GC()

		t0 := time.Now()
		compressed, err := enc(input)
		compTimes[i] = float64(time.Since(t0).Nanoseconds())
		if err != nil {
			return AggregatedResult{}, err
		}
		outputSize = len(compressed)

		if len(out) < len(input) {
			out = make([]byte, len(input))
		}
		t1 := time.Now()
		n, err := dec(compressed, out)
		decompTimes[i] = float64(time.Since(t1).Nanoseconds())
		if err != nil || n != len(input) || !bytesEqual(out[:n], input) {
			verified = false
		}
	}

	compMean, compStdDev := meanStdDev(compTimes)
	decompMean, decompStdDev := meanStdDev(decompTimes)
	sqrtN := math.Sqrt(float64(NumIterations))

	return AggregatedResult{
		Codec:              c,
		OutputSize:         outputSize,
		AvgCompressNanos:   compMean,
		CompressCIMargin:   1.96 * (compStdDev / sqrtN),
		AvgDecompressNanos: decompMean,
		DecompressCIMargin: 1.96 * (decompStdDev / sqrtN),
		Verified:           verified,
	}, nil
}

func meanStdDev(xs []float64) (mean, stdDev float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n

	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	stdDev = math.Sqrt(sumSq / (n - 1))
	return mean, stdDev
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type codecError struct {
	c    Codec
	kind string
}

func (e codecError) Error() string {
	return "bbbench: no " + e.kind + " registered for codec " + e.c.String()
}

func errNoCodec(c Codec, kind string) error { return codecError{c, kind} }
