// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwytable generates the lossless pair table of package hwy and
// prints the capability and conversion matrices of a target.
//
// Usage:
//
//	hwytable -lossless zz_lossless_table.go   # regenerate the table
//	hwytable -matrix avx2                     # native (op, width, kind) cells
//	hwytable -conversions sse4                # conversion routes
//
// Or via go:generate in package hwy:
//
//	//go:generate go run ../cmd/hwytable -lossless zz_lossless_table.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	losslessOut = flag.String("lossless", "", "Write the lossless pair table to this file")
	matrixLevel = flag.String("matrix", "", "Print the capability matrix of a dispatch level ('current' for this machine)")
	convLevel   = flag.String("conversions", "", "Print the conversion routes of a dispatch level ('current' for this machine)")
)

func main() {
	flag.Parse()

	if *losslessOut == "" && *matrixLevel == "" && *convLevel == "" {
		fmt.Fprintf(os.Stderr, "Error: one of -lossless, -matrix or -conversions is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if *losslessOut != "" {
		src, err := generateLossless(*losslessOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*losslessOut, src, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *losslessOut, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s\n", *losslessOut)
	}

	if *matrixLevel != "" {
		t, err := targetFor(*matrixLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := writeMatrix(os.Stdout, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *convLevel != "" {
		t, err := targetFor(*convLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := writeConversions(os.Stdout, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
