// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

import (
	"encoding/binary"
	"math/bits"

	"github.com/klauspost/cpuid"
)

// bucketSize is the number of bits in a bucket: the atomic encoding unit.
const bucketSize = 256

// bucketSizeU8 is the number of bytes in a bucket (256 / 8).
const bucketSizeU8 = bucketSize / 8

// hardwarePopcount records whether the host CPU advertises a native POPCNT
// unit. math/bits.OnesCount64 already lowers to that instruction on amd64
// and arm64 when the target supports it, so this flag changes no code path
// here; it exists purely so the benchmark harness can annotate its report
// with "hardware popcount" vs "software popcount fallback", the same distinction the
// original C implementation made explicit by hand-picking AVX2
// _mm256_popcnt_epi64.
var hardwarePopcount = cpuid.CPU.POPCNT()

// HardwarePopcount reports whether the running process has a hardware
// population-count instruction available to it.
func HardwarePopcount() bool {
	return hardwarePopcount
}

// popcount256 returns the number of set bits in the 32-byte bucket b.
func popcount256(b []byte) int {
	_ = b[bucketSizeU8-1] // bounds check hint, eliminated for the 4 reads below
	var n int
	n += bits.OnesCount64(binary.LittleEndian.Uint64(b[0:8]))
	n += bits.OnesCount64(binary.LittleEndian.Uint64(b[8:16]))
	n += bits.OnesCount64(binary.LittleEndian.Uint64(b[16:24]))
	n += bits.OnesCount64(binary.LittleEndian.Uint64(b[24:32]))
	return n
}
