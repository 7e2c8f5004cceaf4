// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bbbench

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder(CodecXZ, func(input []byte) ([]byte, error) {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(input); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	RegisterDecoder(CodecXZ, func(input []byte, out []byte) (int, error) {
		r, err := xz.NewReader(bytes.NewReader(input))
		if err != nil {
			return 0, err
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			return 0, err
		}
		return copy(out, buf.Bytes()), nil
	})
}
