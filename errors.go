// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbucket

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bitbucket: " + string(e) }

var (
	// ErrBufferTooSmall is returned when a supplied buffer cannot hold the
	// requested data: a compress call whose size exceeds the context's
	// MaxInputSize, or a decompress call whose destination is shorter than
	// the size ExtractSizes reports.
	ErrBufferTooSmall error = Error("buffer too small")

	// ErrCorrupted is returned by Decompress when the compressed stream is
	// malformed: a descriptor byte carries the reserved category 0b11, a
	// payload length runs past the end of the compressed slice, or the
	// stream is shorter than its own 4-byte length prefix.
	ErrCorrupted error = Error("stream is corrupted")
)
