// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatrix(t *testing.T) {
	in := `
# coefficient matrix
2 1
1 1
`
	m, err := parseMatrix(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestParseMatrixErrors(t *testing.T) {
	_, err := parseMatrix(strings.NewReader("1 2\n3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = parseMatrix(strings.NewReader("1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)

	_, err = parseMatrix(strings.NewReader("# only comments\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matrix rows")
}

func TestWriteMatrixRoundTrip(t *testing.T) {
	in := "1 2.5\n-3 4\n"
	m, err := parseMatrix(strings.NewReader(in))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, writeMatrix(&sb, m))
	assert.Equal(t, "1 2.5\n-3 4\n", sb.String())
}
