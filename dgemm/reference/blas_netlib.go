// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && netlib

package reference

// Uses the system CBLAS (OpenBLAS, MKL, ...) through netlib's cgo bindings.
// Link flags come from CGO_LDFLAGS, e.g. CGO_LDFLAGS="-lopenblas".

import "gonum.org/v1/netlib/blas/netlib"

func init() {
	backend = viaRowMajor(netlib.Implementation{})
	description = "System CBLAS dgemm."
}
