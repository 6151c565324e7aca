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

// Package reference provides a BLAS-backed dgemm.Kernel used as a trusted
// oracle and as the performance baseline.
//
// The default backend is gonum's pure Go BLAS. Builds with cgo on darwin
// switch to Accelerate, and builds with the netlib tag switch to the
// system CBLAS through gonum.org/v1/netlib.
package reference

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/ajroetker/go-dgemm/dgemm"
)

// colMajorDgemm computes C += A*B for m x m column-major matrices.
type colMajorDgemm func(m int, a, b, c []float64)

// Active backend. Overridden from init() by the cgo builds.
var (
	backend     colMajorDgemm = viaRowMajor(gonum.Implementation{})
	description               = "Gonum BLAS dgemm."
)

// viaRowMajor adapts a row-major gonum BLAS to column-major data.
//
// A column-major buffer read as row-major is the transpose, so
// C^T += B^T * A^T is the same product with the operands swapped.
func viaRowMajor(impl blas.Float64Level3) colMajorDgemm {
	return func(m int, a, b, c []float64) {
		impl.Dgemm(blas.NoTrans, blas.NoTrans, m, m, m,
			1, b, m,
			a, m,
			1, c, m)
	}
}

// Kernel calls BLAS dgemm with alpha = beta = 1.
type Kernel struct {
	dgemm colMajorDgemm
	desc  string
}

// New returns a kernel bound to the backend selected at build time.
func New() *Kernel {
	return &Kernel{dgemm: backend, desc: description}
}

// NewWith returns a kernel on an explicit gonum-compatible BLAS.
func NewWith(impl blas.Float64Level3, desc string) *Kernel {
	return &Kernel{dgemm: viaRowMajor(impl), desc: desc}
}

// Description implements dgemm.Kernel.
func (k *Kernel) Description() string { return k.desc }

// SquareDGEMM implements dgemm.Kernel.
func (k *Kernel) SquareDGEMM(m int, a, b, c []float64) error {
	ok, err := dgemm.CheckSquare(m, a, b, c)
	if !ok {
		return err
	}
	size := m * m
	k.dgemm(m, a[:size], b[:size], c[:size])
	return nil
}
