// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultSizes are the problem sizes of a full run. They cluster around
// powers of two, where cache associativity effects show up.
var DefaultSizes = []int{
	31, 32, 96, 97, 127, 128, 129, 191, 192, 229,
	255, 256, 257, 319, 320, 321, 417, 479, 480, 511, 512, 639, 640,
	767, 768, 769, 1023, 1024, 1025, 1525, 1526, 1527,
}

// DebugSizes is the short list for quick runs.
var DebugSizes = DefaultSizes[:10]

// Sizes returns the size list for a run.
func Sizes(debug bool) []int {
	if debug {
		return append([]int(nil), DebugSizes...)
	}
	return append([]int(nil), DefaultSizes...)
}

// ParseSizes parses a comma separated list such as "31,32,96".
// Duplicates are dropped, order is kept.
func ParseSizes(s string) ([]int, error) {
	fields := lo.Filter(strings.Split(s, ","), func(f string, _ int) bool {
		return strings.TrimSpace(f) != ""
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("bench: empty size list %q", s)
	}
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bench: size %q: %w", f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("bench: size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return lo.Uniq(sizes), nil
}
