// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package dgemm

import "testing"

func TestViewAddressing(t *testing.T) {
	const ld = 5
	data := make([]float64, ld*ld)
	for i := range data {
		data[i] = float64(i)
	}
	v := NewView(data, ld)

	// Column-major: (row, col) -> col*ld + row.
	if got := v.At(3, 2); got != 13 {
		t.Errorf("At(3,2) = %v, want 13", got)
	}

	sub := v.Sub(1, 2, 3, 2)
	if sub.Rows() != 3 || sub.Cols() != 2 || sub.LD() != ld {
		t.Fatalf("Sub shape = %dx%d ld %d", sub.Rows(), sub.Cols(), sub.LD())
	}
	// sub(0,0) = full(1,2), sub(2,1) = full(3,3).
	if got := sub.At(0, 0); got != 11 {
		t.Errorf("sub.At(0,0) = %v, want 11", got)
	}
	if got := sub.At(2, 1); got != 18 {
		t.Errorf("sub.At(2,1) = %v, want 18", got)
	}

	nested := sub.Sub(1, 1, 1, 1)
	nested.Set(0, 0, -1)
	if data[3*ld+2] != -1 {
		t.Errorf("nested Set wrote to the wrong element")
	}
}

func TestViewSubOutOfRange(t *testing.T) {
	v := NewView(make([]float64, 16), 4)
	cases := []struct{ row, col, rows, cols int }{
		{0, 0, 5, 1},
		{3, 0, 2, 1},
		{0, 3, 1, 2},
		{-1, 0, 1, 1},
	}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Sub(%d,%d,%d,%d) did not panic", tc.row, tc.col, tc.rows, tc.cols)
				}
			}()
			v.Sub(tc.row, tc.col, tc.rows, tc.cols)
		}()
	}
}

func TestMulAddTileEdge(t *testing.T) {
	// 3x3 matrices, multiply the 2x1 * 1x2 tile in the bottom-right corner.
	const ld = 3
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	c := make([]float64, ld*ld)

	av, bv, cv := NewView(a, ld), NewView(b, ld), NewView(c, ld)
	// C(1:3, 1:3) += A(1:3, 2:3) * B(2:3, 1:3)
	mulAddTile(av.Sub(1, 2, 2, 1), bv.Sub(2, 1, 1, 2), cv.Sub(1, 1, 2, 2))

	// A(1,2)=8, A(2,2)=9; B(2,1)=0, B(2,2)=1.
	want := []float64{0, 0, 0, 0, 0, 0, 0, 8, 9}
	for i := range want {
		if c[i] != want[i] {
			t.Fatalf("c = %v, want %v", c, want)
		}
	}
}
