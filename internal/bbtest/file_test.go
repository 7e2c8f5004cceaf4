// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bbtest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileReplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.bin")
	seed := []byte{0x01, 0x02, 0x03}
	if err := os.WriteFile(path, seed, 0644); err != nil {
		t.Fatal(err)
	}

	got := MustLoadFile(path, 10)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	// The first repetition is unmasked.
	if got[0] != seed[0] || got[1] != seed[1] || got[2] != seed[2] {
		t.Errorf("first repetition = %v, want %v", got[:3], seed)
	}
	// The second repetition is XORed with mask 1, so it must differ from
	// the seed.
	if got[3] == seed[0] && got[4] == seed[1] && got[5] == seed[2] {
		t.Errorf("second repetition identical to seed, replication mask not applied")
	}
}

func TestLoadFileExactSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exact.bin")
	if err := os.WriteFile(path, []byte{0xaa, 0xbb}, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != 0xaa || got[1] != 0xbb {
		t.Errorf("got %v, want [0xaa 0xbb]", got)
	}
}

func TestLoadFileNegativeSizeReturnsWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "whole.bin")
	data := []byte{1, 2, 3, 4, 5}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(data) {
		t.Errorf("len = %d, want %d", len(got), len(data))
	}
}

func TestMustLoadFilePanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustLoadFile on missing file did not panic")
		}
	}()
	MustLoadFile(filepath.Join(t.TempDir(), "does-not-exist"), 10)
}
