// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"

	"github.com/ajroetker/go-dgemm/config"
	"github.com/ajroetker/go-dgemm/dgemm"
	"github.com/ajroetker/go-dgemm/dgemm/reference"
)

// KernelNames lists the names accepted by SelectKernel.
var KernelNames = []string{config.KernelBlocked, config.KernelNaive, config.KernelBLAS}

// SelectKernel returns the kernel registered under name.
// blockSize only applies to the blocked kernel.
func SelectKernel(name string, blockSize int) (dgemm.Kernel, error) {
	switch name {
	case config.KernelBlocked:
		return dgemm.NewBlocked(blockSize), nil
	case config.KernelNaive:
		return dgemm.NewNaive(), nil
	case config.KernelBLAS:
		return reference.New(), nil
	default:
		return nil, fmt.Errorf("bench: unknown kernel %q (want one of %v)", name, KernelNames)
	}
}
