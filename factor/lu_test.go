// SPDX-License-Identifier: MIT

package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/factor"
	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

const tol = 1e-10

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// residual returns the max-norm of A*X - B.
func residual(t *testing.T, a, x, b matrix.Matrix) float64 {
	t.Helper()
	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	diff, err := matrix.Sub(ax, b)
	require.NoError(t, err)
	r, err := matrix.Norm(diff, matrix.NormMax)
	require.NoError(t, err)

	return r
}

func TestLUSolve(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
	b := mustDense(t, [][]float64{{5}, {-2}, {9}})

	f, err := factor.NewLU(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	v, err := x.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, tol)
	v, _ = x.At(1, 0)
	assert.InDelta(t, 1, v, tol)
	v, _ = x.At(2, 0)
	assert.InDelta(t, 2, v, tol)
	assert.Less(t, residual(t, a, x, b), tol)
}

func TestLUDet(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
	f, err := factor.NewLU(a)
	require.NoError(t, err)

	assert.InDelta(t, -16, factor.Det(f), tol)

	_, err = factor.LogDet(f)
	assert.Error(t, err) // negative determinant
}

func TestLUTransposeSolve(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {0, 3}})
	// Aᵀ x = b with x = (1, 1): b = (2, 4).
	b := mustDense(t, [][]float64{{2}, {4}})

	f, err := factor.NewLU(a)
	require.NoError(t, err)

	x, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, f.SolveTo(x, true, b))
	assert.Less(t, residual(t, matrix.T(a), x, b), tol)
}

func TestLUSingular(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {2, 4}})

	f, err := factor.NewLU(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, lapack.ErrSingular)
	require.NotNil(t, f)
	assert.False(t, f.Ok())

	logAbs, sign := f.LogAbsDet()
	assert.Equal(t, 0, sign)
	assert.True(t, math.IsInf(logAbs, -1))

	b := mustDense(t, [][]float64{{1}, {1}})
	dst, _ := matrix.NewDense(2, 1)
	assert.ErrorIs(t, f.SolveTo(dst, false, b), lapack.ErrSingular)
}

func TestLUUnpackReconstruction(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
	f, err := factor.NewLU(a)
	require.NoError(t, err)

	lu, err := matrix.Mul(f.UnpackL(), f.UnpackU())
	require.NoError(t, err)

	// Apply the recorded row interchanges to a copy of A.
	pa := a.Clone().(*matrix.Dense)
	for k, p := range f.Pivots() {
		if p == k {
			continue
		}
		for j := 0; j < 3; j++ {
			vk, _ := pa.At(k, j)
			vp, _ := pa.At(p, j)
			_ = pa.Set(k, j, vp)
			_ = pa.Set(p, j, vk)
		}
	}
	diff, err := matrix.Sub(lu, pa)
	require.NoError(t, err)
	n, err := matrix.Norm(diff, matrix.NormMax)
	require.NoError(t, err)
	assert.Less(t, n, tol)
}

func TestSolveMatrixRoutesThroughFactorize(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 1}})
	b := mustDense(t, [][]float64{{3}, {2}})

	x, err := factor.SolveMatrix(a, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, a, x, b), tol)
}
