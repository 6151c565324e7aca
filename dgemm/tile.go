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

// mulAddTile computes C += A * B on views:
//
//   - a is M x K
//   - b is K x N
//   - c is M x N
//
// Each output element is loaded once, accumulated over p in increasing
// order and stored back. The explicit float64 conversion keeps the
// product rounded before the add so the compiler never fuses the two into
// an FMA; rounding is then the same on every architecture and for every
// tiling of the reduction axis.
//
// Extents are not checked here beyond what Sub already guarantees.
func mulAddTile(a, b, c View) {
	m, n, k := c.rows, c.cols, a.cols
	ld := a.ld
	ad, bd, cd := a.data, b.data, c.data

	aBase := a.offset(0, 0)
	for j := range n {
		bCol := b.offset(0, j)
		cCol := c.offset(0, j)
		for i := range m {
			cij := cd[cCol+i]
			aIdx := aBase + i
			for p := range k {
				cij += float64(ad[aIdx] * bd[bCol+p])
				aIdx += ld
			}
			cd[cCol+i] = cij
		}
	}
}
