// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempMatrix(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func TestBackendCommand(t *testing.T) {
	out := runCommand(t, "backend")
	assert.Contains(t, out, "lapack backend: reference")
}

func TestDetCommand(t *testing.T) {
	a := writeTempMatrix(t, "a.txt", "2 1\n1 1\n")
	out := runCommand(t, "det", a)
	assert.Equal(t, "1\n", out)
}

func TestDetCommandSingular(t *testing.T) {
	a := writeTempMatrix(t, "a.txt", "1 2\n2 4\n")
	out := runCommand(t, "det", a)
	assert.Equal(t, "0\n", out)
}

func TestSolveCommand(t *testing.T) {
	a := writeTempMatrix(t, "a.txt", "2 1\n1 1\n")
	b := writeTempMatrix(t, "b.txt", "3\n2\n")
	out := runCommand(t, "solve", a, b)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "1", lines[1])
}

func TestSolveCommandLeastSquares(t *testing.T) {
	a := writeTempMatrix(t, "a.txt", "1 0\n0 1\n1 1\n")
	b := writeTempMatrix(t, "b.txt", "2\n0\n1\n")
	out := runCommand(t, "solve", a, b)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1.66666666667")
	assert.Contains(t, lines[1], "-0.333333333333")
}
