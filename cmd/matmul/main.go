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

// Command matmul validates and times a dgemm kernel over a list of square
// problem sizes and writes the throughput to a CSV file.
//
// Usage:
//
//	matmul [csv] [flags]
//
// Without a csv argument the output goes to timing-<kernel>.csv.
// Settings default to the DGEMM_* environment variables (see package config),
// which may also come from a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-dgemm/bench"
	"github.com/ajroetker/go-dgemm/config"
	"github.com/ajroetker/go-dgemm/internal/sysinfo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var sizes string

	cmd := &cobra.Command{
		Use:   "matmul [csv]",
		Short: "Validate and time square dgemm kernels",
		Long: `matmul checks a dgemm kernel against an independent recomputation for
each problem size, then times it and records MFlop/s as CSV (size,mflop).
A numerically wrong kernel stops the run unless --on-mismatch=skip.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, sizes, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, fmt.Sprintf("kernel to run %v", bench.KernelNames))
	f.IntVar(&cfg.BlockSize, "block-size", cfg.BlockSize, "tile edge of the blocked kernel")
	f.IntVar(&cfg.MinRuns, "min-runs", cfg.MinRuns, "iterations of the first timing round")
	f.DurationVar(&cfg.MinTime, "min-time", cfg.MinTime, "minimum duration of a timing round")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "use the short size list")
	f.StringVar(&sizes, "sizes", "", "comma separated sizes, overrides --debug")
	f.StringVar(&cfg.DumpDir, "dump-dir", cfg.DumpDir, "directory for mismatch dumps, empty to disable")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random matrices")
	f.StringVar(&cfg.OnMismatch, "on-mismatch", cfg.OnMismatch, "abort or skip on a validation failure")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, sizeList string, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	sizes := bench.Sizes(cfg.Debug)
	if sizeList != "" {
		var err error
		if sizes, err = bench.ParseSizes(sizeList); err != nil {
			log.Error().Err(err).Msg("invalid --sizes")
			return err
		}
	}
	policy, err := bench.ParsePolicy(cfg.OnMismatch)
	if err != nil {
		return err
	}
	kernel, err := bench.SelectKernel(cfg.Kernel, cfg.BlockSize)
	if err != nil {
		log.Error().Err(err).Msg("invalid kernel")
		return err
	}

	csvPath := "timing-" + cfg.Kernel + ".csv"
	if len(args) == 1 {
		csvPath = args[0]
	}
	out, err := os.Create(csvPath)
	if err != nil {
		log.Error().Err(err).Msg("could not open output")
		return err
	}
	defer out.Close()

	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "Compiler:\t%s\nOptions:\t%s\nDescription:\t%s\n\n",
		runtime.Version(), sysinfo.Summary(), kernel.Description())

	h, err := bench.New(kernel, bench.Options{
		Sizes:      sizes,
		MinRuns:    cfg.MinRuns,
		MinTime:    cfg.MinTime,
		Seed:       cfg.Seed,
		DumpDir:    cfg.DumpDir,
		OnMismatch: policy,
	}, log)
	if err != nil {
		return err
	}

	results, runErr := h.Run(cmd.Context(), out)
	if err := bench.WriteTable(stdout, results, language.English); err != nil {
		return err
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("benchmark stopped")
		return runErr
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Info().Str("csv", csvPath).Int("sizes", len(results)).Msg("done")
	return nil
}
