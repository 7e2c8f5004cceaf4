// Copyright 2024, Alexis Schlomer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bitbucket compresses or decompresses a file using the bucket
// codec, reporting input/output size, ratio, and elapsed time.
//
// Usage:
//
//	bitbucket -mode=c|d -in=<path> -out=<path> [-upper-size=<n>]
//	bitbucket <in> <out> <c|d>
//
// The second form is the original three-positional-argument contract this
// tool's C ancestor used; both are accepted so existing scripts keep
// working under either invocation style.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/bitbucket"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitbucket: ")

	modeFlag := flag.String("mode", "", "c to compress, d to decompress")
	inFlag := flag.String("in", "", "input file path")
	outFlag := flag.String("out", "", "output file path")
	upperSizeFlag := flag.String("upper-size", "", "size the compression context for inputs up to this bound, e.g. 1e6 or 10MB (raised to the input length if smaller)")
	colorFlag := flag.Bool("color", false, "colorize stats output")
	flag.Parse()

	in, out, mode := *inFlag, *outFlag, *modeFlag
	if in == "" && out == "" && mode == "" {
		if flag.NArg() != 3 {
			fmt.Fprintln(os.Stderr, "Usage: bitbucket [input_file] [output_file] [mode]")
			fmt.Fprintln(os.Stderr, "Mode: c for compress, d for decompress")
			os.Exit(1)
		}
		in, out, mode = flag.Arg(0), flag.Arg(1), flag.Arg(2)
	}
	if mode != "c" && mode != "d" {
		log.Fatal("invalid mode: must be \"c\" or \"d\"")
	}

	input, err := os.ReadFile(in)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	var upperSize int
	if *upperSizeFlag != "" {
		n, err := strconv.ParsePrefix(*upperSizeFlag, strconv.AutoParse)
		if err != nil {
			log.Fatalf("invalid -upper-size: %v", err)
		}
		upperSize = int(n)
	}

	start := time.Now()
	var output []byte
	var label string
	switch mode {
	case "c":
		label = "Compression Statistics"
		output, err = compressFile(input, upperSize)
	case "d":
		label = "Decompression Statistics"
		output, err = decompressFile(input)
	}
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}

	if err := os.WriteFile(out, output, 0644); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	printStats(label, len(input), len(output), elapsed, *colorFlag)
}

func compressFile(input []byte, upperSize int) ([]byte, error) {
	if upperSize < len(input) {
		upperSize = len(input)
	}
	c := bitbucket.Create(upperSize)
	defer c.Destroy()
	copy(c.Input, input)
	n, err := c.Compress(len(input))
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.Output[:n])
	return out, nil
}

func decompressFile(input []byte) ([]byte, error) {
	dataSize, bufSize, err := bitbucket.ExtractSizes(input)
	if err != nil {
		return nil, err
	}
	out := make([]byte, bufSize)
	if _, err := bitbucket.Decompress(input, out); err != nil {
		return nil, err
	}
	return out[:dataSize], nil
}

func printStats(operation string, inputSize, outputSize int, elapsed time.Duration, color bool) {
	ratio := 0.0
	if inputSize > 0 {
		if operation[0] == 'C' {
			ratio = (1 - float64(outputSize)/float64(inputSize)) * 100
		} else {
			ratio = (float64(outputSize)/float64(inputSize) - 1) * 100
		}
	}

	w := os.Stdout
	if color {
		fmt.Fprint(w, "\x1b[33m")
	}
	fmt.Fprintf(w, "%s\n", operation)
	fmt.Fprintf(w, "  Input size:    %10d bytes\n", inputSize)
	fmt.Fprintf(w, "  Output size:   %10d bytes\n", outputSize)
	fmt.Fprintf(w, "  Ratio:         %10.2f%%\n", ratio)
	fmt.Fprintf(w, "  Time elapsed:  %10.2f ms\n", float64(elapsed.Nanoseconds())/1e6)
	if color {
		fmt.Fprint(w, "\x1b[0m")
	}
}
