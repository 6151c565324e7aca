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

package dgemm

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned by SquareDGEMM when the matrix order is negative.
var ErrInvalidDimension = errors.New("dgemm: invalid dimension")

// Kernel is a square double-precision matrix multiply.
//
// SquareDGEMM accumulates A*B into C for m x m column-major matrices:
//
//	C[i,j] += sum(A[i,p] * B[p,j]) for p in 0..m-1
//
// C is not cleared; callers that want C = A*B must zero it first.
// A and B are only read. Each buffer must hold at least m*m elements;
// shorter buffers are a programming error and cause a panic.
// m == 0 is a no-op that touches no memory, so nil buffers are accepted.
type Kernel interface {
	SquareDGEMM(m int, a, b, c []float64) error

	// Description is a human-readable name for reports.
	Description() string
}

// checkSquare validates the arguments shared by every kernel.
// It returns false when there is nothing to do.
func checkSquare(m int, a, b, c []float64) (bool, error) {
	if m < 0 {
		return false, fmt.Errorf("%w: m=%d", ErrInvalidDimension, m)
	}
	if m == 0 {
		return false, nil
	}
	size := m * m
	if len(a) < size {
		panic("dgemm: A slice too short")
	}
	if len(b) < size {
		panic("dgemm: B slice too short")
	}
	if len(c) < size {
		panic("dgemm: C slice too short")
	}
	return true, nil
}

// CheckSquare is checkSquare for kernels implemented outside this package.
func CheckSquare(m int, a, b, c []float64) (bool, error) {
	return checkSquare(m, a, b, c)
}

// Flops returns the floating point operation count of one m x m multiply.
func Flops(m int) float64 {
	fm := float64(m)
	return 2 * fm * fm * fm
}
