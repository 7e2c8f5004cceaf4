// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bbbench

import (
	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterEncoder(CodecZstd, func(input []byte) ([]byte, error) {
		w, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer w.Close()
		return w.EncodeAll(input, nil), nil
	})
	RegisterDecoder(CodecZstd, func(input []byte, out []byte) (int, error) {
		d, err := zstd.NewReader(nil)
		if err != nil {
			return 0, err
		}
		defer d.Close()
		decoded, err := d.DecodeAll(input, nil)
		if err != nil {
			return 0, err
		}
		return copy(out, decoded), nil
	})
}
