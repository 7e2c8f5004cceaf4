// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bbtest

import (
	"io"
	"os"
)

// LoadFile loads the first n bytes of file. If n is negative, the whole file
// is returned. If the file is smaller than n, its contents are replicated
// (each copy XORed with an incrementing mask, to avoid manufacturing a
// degenerate all-identical-buckets corpus out of a short seed file) until
// the result has length n.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := os.ReadFile(file)
	switch {
	case err != nil:
		return nil, err
	case n < 0:
		return input, nil
	case len(input) >= n:
		return input[:n], nil
	case len(input) == 0:
		return nil, io.ErrNoProgress
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output, nil
}

// MustLoadFile loads file or panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}
