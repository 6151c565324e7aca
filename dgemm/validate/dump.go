// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package validate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Names of the files written by DumpFiles.
const (
	OurFile  = "dump_our.txt"
	RefFile  = "dump_ref.txt"
	DiffFile = "dump_diff.txt"
)

// Dump writes three row-per-line grids for the m x m product already in C:
// the kernel output, the recomputed reference and their signed difference.
func Dump(m int, a, b, c []float64, our, ref, diff io.Writer) error {
	ow, rw, dw := bufio.NewWriter(our), bufio.NewWriter(ref), bufio.NewWriter(diff)
	for i := range m {
		for j := range m {
			dot, _ := DotBound(m, a, b, i, j)
			got := c[j*m+i]
			fmt.Fprintf(ow, " %g", got)
			fmt.Fprintf(rw, " %g", dot)
			fmt.Fprintf(dw, " % .0e", got-dot)
		}
		ow.WriteByte('\n')
		rw.WriteByte('\n')
		dw.WriteByte('\n')
	}
	return errors.Join(ow.Flush(), rw.Flush(), dw.Flush())
}

// DumpFiles writes the Dump grids to OurFile, RefFile and DiffFile in dir.
func DumpFiles(dir string, m int, a, b, c []float64) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("validate: dump dir: %w", err)
	}
	var files [3]*os.File
	for i, name := range []string{OurFile, RefFile, DiffFile} {
		f, ferr := os.Create(filepath.Join(dir, name))
		if ferr != nil {
			return fmt.Errorf("validate: %w", ferr)
		}
		files[i] = f
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
	}
	return Dump(m, a, b, c, files[0], files[1], files[2])
}
