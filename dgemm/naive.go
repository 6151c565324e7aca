// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package dgemm

// Naive is the untiled triple loop: the whole matrix as a single tile.
// It is the baseline the blocked kernel is measured against.
type Naive struct{}

// NewNaive returns the naive kernel.
func NewNaive() Naive { return Naive{} }

// Description implements Kernel.
func (Naive) Description() string { return "Naive, three-loop dgemm." }

// SquareDGEMM implements Kernel.
func (Naive) SquareDGEMM(m int, a, b, c []float64) error {
	ok, err := checkSquare(m, a, b, c)
	if !ok {
		return err
	}
	mulAddTile(NewView(a, m), NewView(b, m), NewView(c, m))
	return nil
}
