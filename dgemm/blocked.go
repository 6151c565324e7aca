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

import "fmt"

// DefaultBlockSize is the tile edge used when none is configured.
// 3 tiles of 16x16 float64 = 6KB, comfortably inside a 32KB L1.
const DefaultBlockSize = 16

// Blocked is the cache-tiled kernel.
//
// The m x m problem is cut into BlockSize x BlockSize tiles along the row,
// column and reduction axes. Tiles on the high edge are truncated to
// m - offset. For each output tile (i, j) every reduction tile k is applied
// in increasing order, so the floating point result does not depend on
// BlockSize.
type Blocked struct {
	blockSize int
}

// NewBlocked returns a blocked kernel with the given tile edge.
// Non-positive sizes select DefaultBlockSize.
func NewBlocked(blockSize int) *Blocked {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Blocked{blockSize: blockSize}
}

// BlockSize returns the tile edge.
func (k *Blocked) BlockSize() int { return k.blockSize }

// Description implements Kernel.
func (k *Blocked) Description() string {
	return fmt.Sprintf("Simple blocked dgemm (block size %d).", k.blockSize)
}

// SquareDGEMM implements Kernel.
func (k *Blocked) SquareDGEMM(m int, a, b, c []float64) error {
	ok, err := checkSquare(m, a, b, c)
	if !ok {
		return err
	}

	av, bv, cv := NewView(a, m), NewView(b, m), NewView(c, m)
	bs := k.blockSize

	// i (rows of C) outer, j (columns of C), k (reduction) innermost.
	for i := 0; i < m; i += bs {
		mb := min(bs, m-i)
		for j := 0; j < m; j += bs {
			nb := min(bs, m-j)
			cTile := cv.Sub(i, j, mb, nb)
			for p := 0; p < m; p += bs {
				kb := min(bs, m-p)
				mulAddTile(av.Sub(i, p, mb, kb), bv.Sub(p, j, kb, nb), cTile)
			}
		}
	}
	return nil
}
