// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bbtest is a small collection of test helpers for bitbucket: a
// deterministic pseudo-random generator and corpus-loading utilities.
// Adapted from github.com/dsnet/compress's internal/testutil package.
package bbtest

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator. This
// differs from math/rand in that the exact output sequence is stable across
// Go versions, which matters for tests that pin exact byte vectors.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a Rand keyed by seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

// Int returns the next pseudo-random int in the sequence.
func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

// Intn returns a pseudo-random int in [0, n).
func (r *Rand) Intn(n int) int {
	x := r.Int()
	if x < 0 {
		x = -x
	}
	return x % n
}

// Bytes returns n pseudo-random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := 0; i < n; i++ {
		j := r.Intn(i + 1)
		m[i] = m[j]
		m[j] = i
	}
	return m
}

// BucketWithPopulation returns a 32-byte bucket with exactly p bits set,
// chosen as a pseudo-random subset of the 256 bit positions, for tests that
// need buckets with a precise population count rather than an arbitrary one.
func (r *Rand) BucketWithPopulation(p int) []byte {
	if p < 0 || p > 256 {
		panic("bbtest: population out of range")
	}
	buf := make([]byte, 32)
	perm := r.Perm(256)
	for _, pos := range perm[:p] {
		buf[pos/8] |= 1 << uint(pos%8)
	}
	return buf
}
