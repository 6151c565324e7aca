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

// Package sysinfo describes the machine a benchmark runs on.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Feature is a named CPU capability.
type Feature struct {
	Name string
	Has  bool
	Note string
}

// Features returns the floating point relevant capabilities reported by
// golang.org/x/sys/cpu for the running architecture.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []Feature{
			{"sse2", cpu.X86.HasSSE2, ""},
			{"sse41", cpu.X86.HasSSE41, ""},
			{"sse42", cpu.X86.HasSSE42, ""},
			{"avx", cpu.X86.HasAVX, ""},
			{"avx2", cpu.X86.HasAVX2, ""},
			{"fma", cpu.X86.HasFMA, ""},
			{"avx512f", cpu.X86.HasAVX512F, ""},
			{"avx512bw", cpu.X86.HasAVX512BW, ""},
			{"avx512vl", cpu.X86.HasAVX512VL, ""},
		}
	case "arm64":
		return []Feature{
			{"fp", cpu.ARM64.HasFP, "Floating point"},
			{"asimd", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"fphp", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
			{"asimdhp", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
			{"asimdfhm", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
			{"sve", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
			{"sve2", cpu.ARM64.HasSVE2, "SVE2"},
		}
	}
	return nil
}

// Summary is a one-line description such as "linux/amd64 [sse2 avx avx2 fma]",
// listing only the features present.
func Summary() string {
	var present []string
	for _, f := range Features() {
		if f.Has {
			present = append(present, f.Name)
		}
	}
	return fmt.Sprintf("%s/%s [%s]", runtime.GOOS, runtime.GOARCH, strings.Join(present, " "))
}
