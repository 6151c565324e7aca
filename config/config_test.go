// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 16, cfg.BlockSize)
	assert.Equal(t, 4, cfg.MinRuns)
	assert.Equal(t, 250*time.Millisecond, cfg.MinTime)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupMap(map[string]string{
		EnvKernel:     " BLAS ",
		EnvBlockSize:  "32",
		EnvMinRuns:    "2",
		EnvMinTime:    "1s",
		EnvDebug:      "true",
		EnvDumpDir:    "/tmp/dumps",
		EnvSeed:       "99",
		EnvOnMismatch: "skip",
		EnvLogLevel:   "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, KernelBLAS, cfg.Kernel)
	assert.Equal(t, 32, cfg.BlockSize)
	assert.Equal(t, 2, cfg.MinRuns)
	assert.Equal(t, time.Second, cfg.MinTime)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/dumps", cfg.DumpDir)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, MismatchSkip, cfg.OnMismatch)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvParseErrors(t *testing.T) {
	_, err := FromEnv(lookupMap(map[string]string{
		EnvBlockSize: "sixteen",
		EnvMinTime:   "soon",
		EnvDebug:     "maybe",
		EnvSeed:      "-1",
	}))
	require.Error(t, err)
	for _, key := range []string{EnvBlockSize, EnvMinTime, EnvDebug, EnvSeed} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Kernel = "strassen"
	cfg.OnMismatch = "retry"
	cfg.BlockSize = 0
	cfg.MinRuns = -1
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"strassen", "retry", "block size", "min runs", "log level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "nope"
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte(EnvBlockSize+"=24\n"+EnvKernel+"=naive\n"), 0o644))

	// The environment wins over the file.
	t.Setenv(EnvKernel, "blocked")
	t.Setenv(EnvBlockSize, "")
	require.NoError(t, os.Unsetenv(EnvBlockSize))
	t.Chdir(sub)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.BlockSize)
	assert.Equal(t, KernelBlocked, cfg.Kernel)
}
