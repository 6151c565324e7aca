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

// Package bench validates and times a dgemm.Kernel over a list of problem
// sizes and records the throughput as CSV.
package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ajroetker/go-dgemm/dgemm"
	"github.com/ajroetker/go-dgemm/dgemm/validate"
)

// Policy decides what happens when a size fails validation.
type Policy int

const (
	// Abort stops the run and returns the mismatch.
	Abort Policy = iota
	// Skip logs the mismatch and moves on to the next size.
	Skip
)

// ParsePolicy maps "abort" and "skip" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort":
		return Abort, nil
	case "skip":
		return Skip, nil
	}
	return Abort, fmt.Errorf("bench: unknown mismatch policy %q", s)
}

// Options configures a Harness.
type Options struct {
	Sizes      []int
	MinRuns    int           // iterations of the first timing round
	MinTime    time.Duration // a round shorter than this is repeated with twice the iterations
	Seed       uint64
	DumpDir    string // where mismatch grids are written; empty disables dumps
	OnMismatch Policy
}

// Result is the throughput of one problem size.
type Result struct {
	Size       int
	MFlops     float64
	Iterations int
	Elapsed    time.Duration
}

// Harness drives a kernel through validation and timing.
type Harness struct {
	kernel dgemm.Kernel
	opts   Options
	log    zerolog.Logger
	now    func() time.Time
}

// New returns a harness for k. It fails on an empty size list, a
// non-positive size or a non-positive MinRuns.
func New(k dgemm.Kernel, opts Options, log zerolog.Logger) (*Harness, error) {
	if len(opts.Sizes) == 0 {
		return nil, errors.New("bench: no sizes")
	}
	if lo.Min(opts.Sizes) <= 0 {
		return nil, fmt.Errorf("bench: sizes must be positive: %v", opts.Sizes)
	}
	if opts.MinRuns <= 0 {
		return nil, fmt.Errorf("bench: min runs must be positive, got %d", opts.MinRuns)
	}
	return &Harness{kernel: k, opts: opts, log: log, now: time.Now}, nil
}

// Run validates and times every size, writing "size,mflop" rows to out as
// each size completes.
//
// A, B and C are allocated once for the largest size; smaller sizes use
// their leading m*m elements. A and B hold uniform [0, 1) values drawn from
// Options.Seed. On a mismatch the grids are dumped (if DumpDir is set); with
// Abort the mismatch is returned, with Skip the size is left out.
// ctx is checked between sizes and between timing rounds.
func (h *Harness) Run(ctx context.Context, out io.Writer) ([]Result, error) {
	maxSize := lo.Max(h.opts.Sizes)
	a, b := h.randomMatrices(maxSize)
	c := make([]float64, maxSize*maxSize)

	w := csv.NewWriter(out)
	if err := w.Write([]string{"size", "mflop"}); err != nil {
		return nil, fmt.Errorf("bench: csv: %w", err)
	}

	results := make([]Result, 0, len(h.opts.Sizes))
	for _, m := range h.opts.Sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if err := h.validate(m, a, b, c); err != nil {
			var mismatch *validate.MismatchError
			if errors.As(err, &mismatch) && h.opts.OnMismatch == Skip {
				continue
			}
			return results, err
		}

		r, err := h.Time(ctx, m, a, b, c)
		if err != nil {
			return results, err
		}
		h.log.Info().
			Int("size", r.Size).
			Float64("mflops", r.MFlops).
			Int("iterations", r.Iterations).
			Dur("elapsed", r.Elapsed).
			Msg("timed")

		results = append(results, r)
		if err := w.Write([]string{strconv.Itoa(m), strconv.FormatFloat(r.MFlops, 'g', -1, 64)}); err != nil {
			return results, fmt.Errorf("bench: csv: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return results, fmt.Errorf("bench: csv: %w", err)
		}
	}
	return results, nil
}

// validate checks one size, logging and dumping a mismatch.
func (h *Harness) validate(m int, a, b, c []float64) error {
	err := validate.Check(h.kernel, m, a, b, c)
	var mismatch *validate.MismatchError
	if !errors.As(err, &mismatch) {
		if err != nil {
			return fmt.Errorf("bench: size %d: %w", m, err)
		}
		return nil
	}

	h.log.Error().
		Int("size", m).
		Int("row", mismatch.Row).
		Int("col", mismatch.Col).
		Float64("expected", mismatch.Expected).
		Float64("actual", mismatch.Actual).
		Float64("error", mismatch.Err).
		Float64("limit", mismatch.Limit).
		Msg("matrix multiply failed")

	if h.opts.DumpDir != "" {
		if derr := validate.DumpFiles(h.opts.DumpDir, m, a, b, c); derr != nil {
			h.log.Warn().Err(derr).Msg("could not write dump files")
		} else {
			h.log.Info().Str("dir", h.opts.DumpDir).Msg("wrote dump files")
		}
	}
	return fmt.Errorf("bench: size %d: %w", m, err)
}

// Time measures the MFlop/s of k on the m x m problem.
//
// C is cleared, then the kernel runs MinRuns times back to back; while a
// round takes less than MinTime the iteration count doubles and the round
// is repeated. The last round is reported.
func (h *Harness) Time(ctx context.Context, m int, a, b, c []float64) (Result, error) {
	iterations := h.opts.MinRuns
	for {
		clear(c[:m*m])
		start := h.now()
		for range iterations {
			if err := h.kernel.SquareDGEMM(m, a, b, c); err != nil {
				return Result{}, fmt.Errorf("bench: size %d: %w", m, err)
			}
		}
		elapsed := h.now().Sub(start)

		if elapsed >= h.opts.MinTime && elapsed > 0 {
			return Result{
				Size:       m,
				MFlops:     dgemm.Flops(m) * float64(iterations) / elapsed.Seconds() / 1e6,
				Iterations: iterations,
				Elapsed:    elapsed,
			}, nil
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		h.log.Debug().Int("size", m).Int("iterations", iterations).Dur("elapsed", elapsed).Msg("round too short")
		iterations *= 2
	}
}

// randomMatrices returns A and B filled with uniform [0, 1) values.
func (h *Harness) randomMatrices(n int) (a, b []float64) {
	rng := rand.New(rand.NewPCG(h.opts.Seed, h.opts.Seed^0x9e3779b97f4a7c15))
	a = make([]float64, n*n)
	b = make([]float64, n*n)
	for i := range a {
		a[i] = rng.Float64()
	}
	for i := range b {
		b[i] = rng.Float64()
	}
	return a, b
}
