// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin && !netlib

package reference

/*
#cgo LDFLAGS: -framework Accelerate
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#include <Accelerate/Accelerate.h>
*/
import "C"
import "unsafe"

func init() {
	backend = func(m int, a, b, c []float64) {
		C.cblas_dgemm(C.CblasColMajor, C.CblasNoTrans, C.CblasNoTrans,
			C.int(m), C.int(m), C.int(m),
			1.0, (*C.double)(unsafe.Pointer(&a[0])), C.int(m),
			(*C.double)(unsafe.Pointer(&b[0])), C.int(m),
			1.0, (*C.double)(unsafe.Pointer(&c[0])), C.int(m))
	}
	description = "Accelerate CBLAS dgemm."
}
