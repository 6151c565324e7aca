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

// View is a rectangular window onto a column-major matrix.
//
// The window keeps the leading dimension of the full matrix, so element
// (i, j) of the view lives at data[(col+j)*ld + row+i] regardless of how
// small the window is. Views are values; Sub never copies the data.
type View struct {
	data       []float64
	ld         int
	row, col   int
	rows, cols int
}

// NewView returns a view covering the whole ld x ld matrix stored in data.
func NewView(data []float64, ld int) View {
	if ld < 0 {
		panic("dgemm: negative leading dimension")
	}
	if len(data) < ld*ld {
		panic("dgemm: view data too short")
	}
	return View{data: data, ld: ld, rows: ld, cols: ld}
}

// Sub returns the rows x cols window starting at (row, col) of v.
// It panics if the window does not fit inside v.
func (v View) Sub(row, col, rows, cols int) View {
	if row < 0 || col < 0 || rows < 0 || cols < 0 ||
		row+rows > v.rows || col+cols > v.cols {
		panic("dgemm: sub-view out of range")
	}
	return View{
		data: v.data,
		ld:   v.ld,
		row:  v.row + row,
		col:  v.col + col,
		rows: rows,
		cols: cols,
	}
}

// Rows returns the number of rows in the view.
func (v View) Rows() int { return v.rows }

// Cols returns the number of columns in the view.
func (v View) Cols() int { return v.cols }

// LD returns the leading dimension of the underlying matrix.
func (v View) LD() int { return v.ld }

// At returns element (i, j) of the view.
func (v View) At(i, j int) float64 {
	return v.data[v.offset(i, j)]
}

// Set stores x at element (i, j) of the view.
func (v View) Set(i, j int, x float64) {
	v.data[v.offset(i, j)] = x
}

// offset is the index of element (i, j) in the underlying buffer.
func (v View) offset(i, j int) int {
	return (v.col+j)*v.ld + v.row + i
}
