// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package config holds the benchmark settings read from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Kernel names accepted by Config.Kernel.
const (
	KernelBlocked = "blocked"
	KernelNaive   = "naive"
	KernelBLAS    = "blas"
)

// Mismatch policies accepted by Config.OnMismatch.
const (
	MismatchAbort = "abort"
	MismatchSkip  = "skip"
)

// Environment variables read by Load.
const (
	EnvKernel     = "DGEMM_KERNEL"
	EnvBlockSize  = "DGEMM_BLOCK_SIZE"
	EnvMinRuns    = "DGEMM_MIN_RUNS"
	EnvMinTime    = "DGEMM_MIN_TIME"
	EnvDebug      = "DGEMM_DEBUG"
	EnvDumpDir    = "DGEMM_DUMP_DIR"
	EnvSeed       = "DGEMM_SEED"
	EnvOnMismatch = "DGEMM_ON_MISMATCH"
	EnvLogLevel   = "DGEMM_LOG_LEVEL"
)

// Config is the full set of benchmark knobs.
type Config struct {
	Kernel     string
	BlockSize  int
	MinRuns    int
	MinTime    time.Duration
	Debug      bool // shorter size list
	DumpDir    string
	Seed       uint64
	OnMismatch string
	LogLevel   string
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Kernel:     KernelBlocked,
		BlockSize:  16,
		MinRuns:    4,
		MinTime:    250 * time.Millisecond,
		DumpDir:    ".",
		Seed:       1,
		OnMismatch: MismatchAbort,
		LogLevel:   "info",
	}
}

// Load reads an optional .env file from the working directory or one of
// its parents, then overlays the DGEMM_* environment variables on Default.
// Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	_ = loadEnvFile()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.ToLower(strings.TrimSpace(v))
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	str(EnvKernel, &cfg.Kernel)
	num(EnvBlockSize, &cfg.BlockSize)
	num(EnvMinRuns, &cfg.MinRuns)
	str(EnvOnMismatch, &cfg.OnMismatch)
	str(EnvLogLevel, &cfg.LogLevel)

	if v, ok := lookup(EnvMinTime); ok && v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvMinTime, err))
		} else {
			cfg.MinTime = d
		}
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvDebug, err))
		} else {
			cfg.Debug = b
		}
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		s, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvSeed, err))
		} else {
			cfg.Seed = s
		}
	}
	if v, ok := lookup(EnvDumpDir); ok && v != "" {
		cfg.DumpDir = v
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings no kernel or harness can run with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Kernel {
	case KernelBlocked, KernelNaive, KernelBLAS:
	default:
		errs = append(errs, fmt.Errorf("config: unknown kernel %q", c.Kernel))
	}
	switch c.OnMismatch {
	case MismatchAbort, MismatchSkip:
	default:
		errs = append(errs, fmt.Errorf("config: unknown mismatch policy %q", c.OnMismatch))
	}
	if c.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("config: block size must be positive, got %d", c.BlockSize))
	}
	if c.MinRuns <= 0 {
		errs = append(errs, fmt.Errorf("config: min runs must be positive, got %d", c.MinRuns))
	}
	if c.MinTime < 0 {
		errs = append(errs, fmt.Errorf("config: min time must not be negative, got %v", c.MinTime))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: log level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the parsed zerolog level, InfoLevel if it does not parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// loadEnvFile looks for a .env file in the working directory and up to
// four parents.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for range 5 {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
