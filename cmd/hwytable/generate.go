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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ajroetker/hwyarith/hwy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

var title = cases.Title(language.English)

// kindIdent returns the hwy identifier of a kind, e.g. KindUint16.
func kindIdent(k hwy.Kind) string {
	return "Kind" + title.String(k.String())
}

// generateLossless renders the lossless pair table from hwy.LosslessRule.
func generateLossless(filename string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by hwytable. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package hwy\n\n")
	fmt.Fprintf(&buf, "// losslessTable[a][b] is LosslessRule(a, b) for every pair of lane kinds.\n")
	fmt.Fprintf(&buf, "var losslessTable = [numKinds][numKinds]Kind{\n")
	for _, a := range hwy.AllKinds {
		fmt.Fprintf(&buf, "\t%s: {\n", kindIdent(a))
		for _, b := range hwy.AllKinds {
			r := hwy.LosslessRule(a, b)
			if !r.Valid() {
				return nil, fmt.Errorf("no lossless kind for %s and %s", a, b)
			}
			fmt.Fprintf(&buf, "\t\t%s: %s,\n", kindIdent(b), kindIdent(r))
		}
		fmt.Fprintf(&buf, "\t},\n")
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return formatted, nil
}

func targetFor(level string) (*hwy.Target, error) {
	if level == "current" {
		return hwy.CurrentTarget(), nil
	}
	l, err := hwy.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return hwy.TargetFor(l), nil
}

// writeMatrix prints one table per available width: a row per operation,
// a column per kind, "x" where the target has a native path.
func writeMatrix(w io.Writer, t *hwy.Target) error {
	fmt.Fprintf(w, "target %s\n", t)
	for _, width := range t.Widths() {
		fmt.Fprintf(w, "\n%s\n", width)
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "op")
		for _, k := range hwy.AllKinds {
			fmt.Fprintf(tw, "\t%s", k)
		}
		fmt.Fprintf(tw, "\n")
		for _, op := range hwy.AllOps {
			fmt.Fprintf(tw, "%s", op)
			for _, k := range hwy.AllKinds {
				cell := "."
				if t.Native(op, width, k) {
					cell = "x"
				}
				fmt.Fprintf(tw, "\t%s", cell)
			}
			fmt.Fprintf(tw, "\n")
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// writeConversions prints the route of every kind pair, or the reason the
// pair is rejected.
func writeConversions(w io.Writer, t *hwy.Target) error {
	fmt.Fprintf(w, "target %s\n\n", t)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, from := range hwy.AllKinds {
		for _, to := range hwy.AllKinds {
			if from == to {
				continue
			}
			p, err := hwy.PlanConversion(t, from, to)
			if err != nil {
				var cerr *hwy.ConversionError
				if !errors.As(err, &cerr) {
					return err
				}
				status := "unavailable"
				if cerr.Static {
					status = "rejected"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", from, to, status, cerr.Reason)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\troute\t%s\n", from, to, p)
		}
	}
	return tw.Flush()
}
