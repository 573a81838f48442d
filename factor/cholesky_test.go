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

func TestCholeskySolveAndLogDet(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 2}, {2, 3}})
	b := mustDense(t, [][]float64{{6}, {5}})

	f, err := factor.NewCholesky(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, a, x, b), tol)

	logDet, err := factor.LogDet(f)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(8), logDet, tol)
	assert.InDelta(t, 8, factor.Det(f), tol)
}

func TestCholeskyUnpackL(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 2}, {2, 3}})
	f, err := factor.NewCholesky(a)
	require.NoError(t, err)

	l := f.UnpackL()
	llt, err := matrix.Mul(l, matrix.T(l))
	require.NoError(t, err)
	diff, err := matrix.Sub(llt, a)
	require.NoError(t, err)
	n, err := matrix.Norm(diff, matrix.NormMax)
	require.NoError(t, err)
	assert.Less(t, n, tol)
}

func TestCholeskyIndefinite(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {2, 1}})

	f, err := factor.NewCholesky(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, lapack.ErrNotPositiveDefinite)
	require.NotNil(t, f)
	assert.False(t, f.Ok())
}

func TestCholeskyRejectsAsymmetric(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := factor.NewCholesky(a)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestPivotedCholeskyRank(t *testing.T) {
	// Rank 1: outer product of (1, 2).
	a := mustDense(t, [][]float64{{1, 2}, {2, 4}})

	f, err := factor.NewPivotedCholesky(a, 0)
	require.NoError(t, err)
	assert.False(t, f.Ok())
	assert.Equal(t, 1, f.Rank())

	logAbs, sign := f.LogAbsDet()
	assert.Equal(t, 0, sign)
	assert.True(t, math.IsInf(logAbs, -1))
}

func TestPivotedCholeskyFullRankSolve(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 2}, {2, 3}})
	b := mustDense(t, [][]float64{{6}, {5}})

	f, err := factor.NewPivotedCholesky(a, 0)
	require.NoError(t, err)
	assert.True(t, f.Ok())
	assert.Equal(t, 2, f.Rank())

	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, a, x, b), tol)
}

func TestBunchKaufmanIndefiniteSolve(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {2, 1}})
	b := mustDense(t, [][]float64{{3}, {3}})

	f, err := factor.NewBunchKaufman(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, a, x, b), tol)

	logAbs, sign := f.LogAbsDet()
	assert.Equal(t, -1, sign)
	assert.InDelta(t, math.Log(3), logAbs, tol)
	assert.InDelta(t, -3, factor.Det(f), tol)
}

func TestBunchKaufmanLargerSystem(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, -1, 0, 3},
		{-1, 0, 4, 1},
		{0, 4, -2, 1},
		{3, 1, 1, 5},
	})
	b := mustDense(t, [][]float64{{4}, {4}, {3}, {10}})

	f, err := factor.NewBunchKaufman(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, a, x, b), 1e-8)
}
