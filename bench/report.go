// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteTable prints results as a two-column table with numbers grouped
// for the given language, e.g. "1,234.56" for English.
func WriteTable(w io.Writer, results []Result, tag language.Tag) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%8s  %14s  %10s\n", "size", "MFlop/s", "iters"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := p.Fprintf(w, "%8d  %14.2f  %10d\n", r.Size, r.MFlops, r.Iterations); err != nil {
			return err
		}
	}
	return nil
}
