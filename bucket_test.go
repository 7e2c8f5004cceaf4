// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

import (
	"bytes"
	"testing"

	"github.com/dsnet/bitbucket/internal/bbtest"
)

func TestExtractCompact256(t *testing.T) {
	var vectors = []struct {
		input []byte
		want  []byte
	}{{
		input: make([]byte, 32),
		want:  nil,
	}, {
		input: func() []byte { b := make([]byte, 32); b[0] = 0x01; return b }(),
		want:  []byte{0},
	}, {
		input: func() []byte {
			b := make([]byte, 32)
			b[0] = 0xaa   // bits 1,3,5,7
			b[2] = 0x10   // bit 20
			b[3] = 0x04   // bit 26
			b[31] = 0x01  // bit 248
			return b
		}(),
		want: []byte{1, 3, 5, 7, 20, 26, 248},
	}}

	for i, v := range vectors {
		dst := make([]byte, 64) // extra tail slack
		n := extractCompact256(v.input, dst)
		got := dst[:n]
		if !bytes.Equal(got, v.want) {
			t.Errorf("test %d: extractCompact256 = %v, want %v", i, got, v.want)
		}
	}
}

func TestExpandScatter256(t *testing.T) {
	idx := []byte{0, 3, 5, 255}
	dst := make([]byte, 32)
	expandScatter256(idx, dst)

	want := make([]byte, 32)
	want[0] = 1<<0 | 1<<3 | 1<<5
	want[31] = 1 << 7

	if !bytes.Equal(dst, want) {
		t.Errorf("expandScatter256(%v) = %v, want %v", idx, dst, want)
	}
}

func TestExpandScatter256DuplicateIndices(t *testing.T) {
	dst := make([]byte, 32)
	expandScatter256([]byte{5, 5, 5}, dst)

	want := make([]byte, 32)
	want[0] = 1 << 5

	if !bytes.Equal(dst, want) {
		t.Errorf("expandScatter256 with duplicates = %v, want %v", dst, want)
	}
}

func TestInvert256(t *testing.T) {
	src := make([]byte, 32)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 32)
	invert256(src, dst)
	for i := range src {
		if dst[i] != ^src[i] {
			t.Errorf("invert256: byte %d = %#x, want %#x", i, dst[i], ^src[i])
		}
	}

	// src and dst may alias.
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	orig := append([]byte(nil), buf...)
	invert256(buf, buf)
	for i := range buf {
		if buf[i] != ^orig[i] {
			t.Errorf("invert256 in place: byte %d = %#x, want %#x", i, buf[i], ^orig[i])
		}
	}
}

func TestExtractThenScatterIdempotent(t *testing.T) {
	r := bbtest.NewRand(2)
	for trial := 0; trial < 64; trial++ {
		src := r.Bytes(32)
		idx := make([]byte, 64)
		n := extractCompact256(src, idx)

		dst := make([]byte, 32)
		expandScatter256(idx[:n], dst)
		if !bytes.Equal(src, dst) {
			t.Errorf("trial %d: scatter(extract(B)) != B\nB    = %v\ngot  = %v", trial, src, dst)
		}
	}
}

func TestInversionSymmetry(t *testing.T) {
	r := bbtest.NewRand(3)
	for trial := 0; trial < 64; trial++ {
		b := r.Bytes(32)
		notB := make([]byte, 32)
		invert256(b, notB)

		// Encoding notB with sparse-positive must match encoding b with
		// sparse-inverted, modulo the descriptor's category bits.
		dst1 := make([]byte, 64)
		p1 := extractCompact256(notB, dst1)

		scratch := make([]byte, 32)
		invert256(b, scratch)
		dst2 := make([]byte, 64)
		p2 := extractCompact256(scratch, dst2)

		if p1 != p2 || !bytes.Equal(dst1[:p1], dst2[:p2]) {
			t.Errorf("trial %d: inversion symmetry violated", trial)
		}
	}
}
