// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bbbench

import "github.com/dsnet/bitbucket"

func init() {
	RegisterEncoder(CodecBitbucket, func(input []byte) ([]byte, error) {
		c := bitbucket.Create(len(input))
		defer c.Destroy()
		copy(c.Input, input)
		n, err := c.Compress(len(input))
		if err != nil {
			return nil, err
		}
		out := make([]byte, n)
		copy(out, c.Output[:n])
		return out, nil
	})
	RegisterDecoder(CodecBitbucket, func(input []byte, out []byte) (int, error) {
		dataSize, bufSize, err := bitbucket.ExtractSizes(input)
		if err != nil {
			return 0, err
		}
		scratch := make([]byte, bufSize)
		if _, err := bitbucket.Decompress(input, scratch); err != nil {
			return 0, err
		}
		return copy(out, scratch[:dataSize]), nil
	})
}
