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

// Package main provides a diagnostic tool to print CPU features detected by
// Go and the dgemm kernels available in this build.
package main

import (
	"fmt"
	"runtime"

	"github.com/ajroetker/go-dgemm/bench"
	"github.com/ajroetker/go-dgemm/dgemm"
	"github.com/ajroetker/go-dgemm/internal/sysinfo"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Printf("Go: %s\n", runtime.Version())
	fmt.Println()

	fmt.Println("=== golang.org/x/sys/cpu ===")
	for _, f := range sysinfo.Features() {
		if f.Note != "" {
			fmt.Printf("  %-10s %v (%s)\n", f.Name+":", f.Has, f.Note)
		} else {
			fmt.Printf("  %-10s %v\n", f.Name+":", f.Has)
		}
	}
	fmt.Println()

	fmt.Println("=== kernels ===")
	for _, name := range bench.KernelNames {
		k, err := bench.SelectKernel(name, dgemm.DefaultBlockSize)
		if err != nil {
			fmt.Printf("  %-8s error: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-8s %s\n", name, k.Description())
	}
}
