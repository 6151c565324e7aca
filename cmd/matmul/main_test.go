// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-dgemm/config"
)

func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := newRootCmd(config.Default())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMatmulWritesCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")

	for _, kernel := range []string{"blocked", "naive", "blas"} {
		stdout, err := execute(t, csvPath,
			"--kernel", kernel, "--sizes", "7,17", "--min-runs", "1", "--min-time", "0s",
			"--dump-dir", dir)
		require.NoError(t, err, kernel)
		assert.Contains(t, stdout, "Description:\t")

		data, err := os.ReadFile(csvPath)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "size,mflop", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "7,"))
		assert.True(t, strings.HasPrefix(lines[2], "17,"))
	}
}

func TestMatmulDefaultCSVName(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "--kernel", "naive", "--sizes", "3", "--min-runs", "1", "--min-time", "0s")
	require.NoError(t, err)
	_, err = os.Stat("timing-naive.csv")
	assert.NoError(t, err)
}

func TestMatmulRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "x.csv")
	cases := [][]string{
		{out, "--kernel", "strassen"},
		{out, "--block-size", "0"},
		{out, "--sizes", "4,-1"},
		{out, "--on-mismatch", "retry"},
		{out, "extra-arg"},
	}
	for _, args := range cases {
		_, err := execute(t, args...)
		assert.Error(t, err, args)
	}
}
