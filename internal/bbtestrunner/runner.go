// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bbtestrunner is a named, sequential self-test runner: each test
// is a named boolean-returning function, registered once and run in
// registration order, stopping at the first failure and reporting a
// pass/fail summary. It exists for the selftest binary, which needs a
// human-readable pass/fail transcript independent of `go test`.
package bbtestrunner

import (
	"fmt"
	"io"
)

// TestFunc reports whether a single named test passed.
type TestFunc func() bool

type testCase struct {
	name string
	fn   TestFunc
}

// Runner sequences a fixed list of named tests.
type Runner struct {
	cases []testCase
}

// New returns an empty Runner.
func New() *Runner {
	return &Runner{}
}

// Register appends a named test to the runner's sequence.
func (r *Runner) Register(name string, fn TestFunc) {
	r.cases = append(r.cases, testCase{name, fn})
}

// Run executes every registered test in registration order, printing a
// transcript to w. It stops at the first failing test and reports false;
// it reports true only if every test passed.
func (r *Runner) Run(w io.Writer) bool {
	fmt.Fprintln(w, "======================================")
	fmt.Fprintln(w, "             Running Tests")
	fmt.Fprintln(w, "======================================")
	fmt.Fprintf(w, "\nTotal tests: %d\n\n", len(r.cases))

	for i, tc := range r.cases {
		fmt.Fprintf(w, "Test %d: %s\n", i+1, tc.name)
		if !tc.fn() {
			fmt.Fprintln(w, "FAILED")
			fmt.Fprintln(w, "\n======================================")
			fmt.Fprintln(w, "Test suite failed!")
			fmt.Fprintln(w, "======================================")
			return false
		}
		fmt.Fprintln(w, "PASSED")
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "======================================")
	fmt.Fprintln(w, "All tests passed successfully!")
	fmt.Fprintln(w, "======================================")
	return true
}
