// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

func TestAddSub(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := sum.At(1, 0)
	assert.Equal(t, 33.0, v)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	v, _ = diff.At(0, 1)
	assert.Equal(t, 18.0, v)

	// Shape mismatch fails fast.
	c := mustDense(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Add(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_FallbackMatchesFastPath(t *testing.T) {
	// Mixing a Dense with a structured variant exercises the interface
	// fallback; results must agree with the all-Dense fast path.
	a := mustDense(t, [][]float64{{1, 0}, {0, 2}})
	diag, err := matrix.NewDiagonalFrom([]float64{5, 7})
	require.NoError(t, err)

	mixed, err := matrix.Add(a, diag)
	require.NoError(t, err)

	dd, err := matrix.ToDense(diag)
	require.NoError(t, err)
	fast, err := matrix.Add(a, dd)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			x, _ := mixed.At(i, j)
			y, _ := fast.At(i, j)
			assert.Equal(t, y, x, "at (%d,%d)", i, j)
		}
	}
}

func TestMul(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())

	want := [][]float64{{58, 64}, {139, 154}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := p.At(i, j)
			assert.Equal(t, want[i][j], v, "at (%d,%d)", i, j)
		}
	}

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_WithTransposeView(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	// A * Aᵀ is symmetric with known entries.
	p, err := matrix.Mul(a, matrix.T(a))
	require.NoError(t, err)
	v00, _ := p.At(0, 0)
	v01, _ := p.At(0, 1)
	v10, _ := p.At(1, 0)
	v11, _ := p.At(1, 1)
	assert.Equal(t, 5.0, v00)
	assert.Equal(t, 11.0, v01)
	assert.Equal(t, v01, v10)
	assert.Equal(t, 25.0, v11)
}

func TestScale(t *testing.T) {
	a := mustDense(t, [][]float64{{1, -2}})
	s, err := matrix.Scale(-3, a)
	require.NoError(t, err)
	v, _ := s.At(0, 1)
	assert.Equal(t, 6.0, v)
}

func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestToDense_MaterializesImplicitEntries(t *testing.T) {
	l, err := matrix.NewTriangular(2, matrix.Lower, true)
	require.NoError(t, err)
	require.NoError(t, l.Set(1, 0, 9))

	d, err := matrix.ToDense(l)
	require.NoError(t, err)
	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v, "unit diagonal materializes as ones")
	v, _ = d.At(1, 0)
	assert.Equal(t, 9.0, v)
	v, _ = d.At(0, 1)
	assert.Zero(t, v)
}
