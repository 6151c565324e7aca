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

// Package dgemm provides square double-precision matrix multiply kernels.
//
// All matrices are dense, square and column-major: element (row, col) of an
// m x m matrix is stored at buf[col*m+row]. Every kernel implements the
// same accumulate contract:
//
//	C += A * B
//
// Available kernels:
//
//   - Blocked: cache-tiled loop nest with a configurable tile edge
//   - Naive: the untiled triple loop
//
// A BLAS-backed kernel with the same contract lives in dgemm/reference, and
// dgemm/validate checks any Kernel against an independent recomputation.
//
// Example:
//
//	k := dgemm.NewBlocked(dgemm.DefaultBlockSize)
//	clear(c[:m*m])
//	if err := k.SquareDGEMM(m, a, b, c); err != nil {
//	    return err
//	}
package dgemm
