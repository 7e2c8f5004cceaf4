// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bitbucket-bench compares the bucket codec against the
// general-purpose compressors registered in internal/bbbench on one or
// more input files, printing aggregated timing and a 95% confidence
// interval for each.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/bitbucket"
	"github.com/dsnet/bitbucket/internal/bbbench"
	"github.com/dsnet/bitbucket/internal/bbtest"
)

func main() {
	log.SetFlags(0)
	sizeFlag := flag.String("size", "", "replicate each file up to this size, e.g. 1e6 or 10MB, before benchmarking")
	flag.Parse()

	popcntKind := "software popcount fallback"
	if bitbucket.HardwarePopcount() {
		popcntKind = "hardware popcount"
	}
	fmt.Printf("popcount: %s\n\n", popcntKind)

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bitbucket-bench [-size=1e6] <file>...")
		os.Exit(1)
	}

	var size int = -1
	if *sizeFlag != "" {
		n, err := strconv.ParsePrefix(*sizeFlag, strconv.AutoParse)
		if err != nil {
			log.Fatalf("invalid -size: %v", err)
		}
		size = int(n)
	}

	for _, f := range files {
		input, err := bbtest.LoadFile(f, size)
		if err != nil {
			log.Fatalf("reading %s: %v", f, err)
		}

		fmt.Printf("%s (%d bytes)\n", f, len(input))
		for _, c := range bbbench.Registered() {
			res, err := bbbench.Run(c, input)
			if err != nil {
				fmt.Printf("  %-10s  error: %v\n", c, err)
				continue
			}
			ratio := float64(len(input)) / float64(res.OutputSize)
			fmt.Printf("  %-10s  ratio %6.2fx  comp %9.0f ns (+/-%6.0f)  decomp %9.0f ns (+/-%6.0f)  verified=%v\n",
				c, ratio,
				res.AvgCompressNanos, res.CompressCIMargin,
				res.AvgDecompressNanos, res.DecompressCIMargin,
				res.Verified)
		}
		fmt.Println()
	}
}
