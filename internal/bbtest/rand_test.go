// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bbtest

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42).Bytes(64)
	b := NewRand(42).Bytes(64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different output at byte %d: %v vs %v", i, a, b)
		}
	}
}

func TestRandDiffersBySeed(t *testing.T) {
	a := NewRand(1).Bytes(64)
	b := NewRand(2).Bytes(64)
	equal := true
	for i := range a {
		if a[i] != b[i] {
			equal = false
			break
		}
	}
	if equal {
		t.Fatalf("different seeds produced identical output")
	}
}

func TestPermIsAPermutation(t *testing.T) {
	r := NewRand(7)
	p := r.Perm(256)
	seen := make([]bool, 256)
	for _, v := range p {
		if v < 0 || v >= 256 || seen[v] {
			t.Fatalf("Perm(256) is not a valid permutation: %v", p)
		}
		seen[v] = true
	}
}

func TestBucketWithPopulationExactCount(t *testing.T) {
	r := NewRand(9)
	for _, p := range []int{0, 1, 31, 128, 255, 256} {
		b := r.BucketWithPopulation(p)
		n := 0
		for _, v := range b {
			for v != 0 {
				n += int(v & 1)
				v >>= 1
			}
		}
		if n != p {
			t.Errorf("BucketWithPopulation(%d) has popcount %d", p, n)
		}
	}
}

func TestBucketWithPopulationOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("BucketWithPopulation(257) did not panic")
		}
	}()
	NewRand(1).BucketWithPopulation(257)
}
