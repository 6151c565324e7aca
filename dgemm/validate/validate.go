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

// Package validate checks a dgemm.Kernel against an independent
// recomputation of every output element.
//
// A floating point dot product of length m satisfies
//
//	fl(sum a_p*b_p) = sum a_p*b_p*(1 + d_p),  |d_p| <= m*eps
//
// so each element of C may differ from the recomputed dot product by at
// most sum |a_p*b_p| * m * eps. Check allows three times that bound: one
// for the kernel under test, one for the recomputation and one for the
// rounding in the bound itself.
package validate

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-dgemm/dgemm"
)

// Epsilon is the float64 machine epsilon, 2^-52.
const Epsilon = 0x1p-52

// Slack is the multiple of the error bound an element may deviate by.
const Slack = 3

// MismatchError reports the first element of C outside the error bound.
type MismatchError struct {
	Row, Col int
	Expected float64 // recomputed dot product
	Actual   float64 // kernel output
	Err      float64 // |Actual - Expected|
	Limit    float64 // Slack * error bound
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("validate: C(%d,%d) should be %g, was %g: error of %g, acceptable limit %g",
		e.Row, e.Col, e.Expected, e.Actual, e.Err, e.Limit)
}

// Check clears C, runs k on the m x m problem and verifies every element
// of C against an independent dot product.
//
// It returns the kernel's error unchanged, a *MismatchError for the first
// element (row-major scan) outside Slack times its error bound, or nil.
func Check(k dgemm.Kernel, m int, a, b, c []float64) error {
	if m > 0 {
		clear(c[:m*m])
	}
	if err := k.SquareDGEMM(m, a, b, c); err != nil {
		return err
	}
	return Compare(m, a, b, c)
}

// Compare verifies an already computed C = A*B without running a kernel.
func Compare(m int, a, b, c []float64) error {
	for i := range m {
		for j := range m {
			dot, bound := DotBound(m, a, b, i, j)
			got := c[j*m+i]
			err := math.Abs(got - dot)
			// Written so that a NaN in C fails the check.
			if !(err <= Slack*bound) {
				return &MismatchError{
					Row:      i,
					Col:      j,
					Expected: dot,
					Actual:   got,
					Err:      err,
					Limit:    Slack * bound,
				}
			}
		}
	}
	return nil
}

// DotBound returns the dot product of row i of A with column j of B and its
// rounding error bound sum |A[i,p]*B[p,j]| * m * Epsilon.
func DotBound(m int, a, b []float64, i, j int) (dot, bound float64) {
	for p := range m {
		prod := a[p*m+i] * b[j*m+p]
		dot += prod
		bound += math.Abs(prod)
	}
	bound *= float64(m) * Epsilon
	return dot, bound
}
