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

func TestDiagonalSolver(t *testing.T) {
	d, err := matrix.NewDiagonalFrom([]float64{2, 4})
	require.NoError(t, err)

	f, err := factor.NewDiagonalSolver(d)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	b := mustDense(t, [][]float64{{2}, {4}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	v, _ := x.At(0, 0)
	assert.InDelta(t, 1, v, tol)
	v, _ = x.At(1, 0)
	assert.InDelta(t, 1, v, tol)

	assert.InDelta(t, 8, factor.Det(f), tol)
}

func TestDiagonalSolverSingular(t *testing.T) {
	d, err := matrix.NewDiagonalFrom([]float64{1, 0})
	require.NoError(t, err)

	f, err := factor.NewDiagonalSolver(d)
	require.Error(t, err)
	assert.ErrorIs(t, err, lapack.ErrSingular)
	assert.False(t, f.Ok())
}

func TestBidiagonalSolverLower(t *testing.T) {
	bd, err := matrix.NewBidiagonalFrom([]float64{1, 2, 3}, []float64{4, 5}, matrix.Lower)
	require.NoError(t, err)

	f, err := factor.NewBidiagonalSolver(bd)
	require.NoError(t, err)

	// B * (1, 1, 1) = (1, 6, 8).
	b := mustDense(t, [][]float64{{1}, {6}, {8}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, bd, x, b), tol)

	assert.InDelta(t, 6, factor.Det(f), tol)
}

func TestBidiagonalSolverTranspose(t *testing.T) {
	bd, err := matrix.NewBidiagonalFrom([]float64{1, 2, 3}, []float64{4, 5}, matrix.Lower)
	require.NoError(t, err)

	f, err := factor.NewBidiagonalSolver(bd)
	require.NoError(t, err)

	// Bᵀ * (1, 1, 1) = (5, 7, 3).
	b := mustDense(t, [][]float64{{5}, {7}, {3}})
	x, err := matrix.NewDense(3, 1)
	require.NoError(t, err)
	require.NoError(t, f.SolveTo(x, true, b))
	assert.Less(t, residual(t, matrix.T(bd), x, b), tol)
}

func TestTridiagonalSolver(t *testing.T) {
	td, err := matrix.NewTridiagonalFrom([]float64{1, 1}, []float64{2, 2, 2}, []float64{1, 1})
	require.NoError(t, err)

	f, err := factor.NewTridiagonalSolver(td)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	b := mustDense(t, [][]float64{{3}, {4}, {3}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, td, x, b), tol)

	assert.InDelta(t, 4, factor.Det(f), tol)
}

func TestTridiagonalSolverReusable(t *testing.T) {
	td, err := matrix.NewTridiagonalFrom([]float64{1, 1}, []float64{2, 2, 2}, []float64{1, 1})
	require.NoError(t, err)

	f, err := factor.NewTridiagonalSolver(td)
	require.NoError(t, err)

	for range [3]struct{}{} {
		b := mustDense(t, [][]float64{{3}, {4}, {3}})
		x, err := factor.Solve(f, b)
		require.NoError(t, err)
		assert.Less(t, residual(t, td, x, b), tol)
	}
}

func TestLDLTSolve(t *testing.T) {
	st, err := matrix.NewSymTridiagonalFrom([]float64{2, 2, 2}, []float64{1, 1})
	require.NoError(t, err)

	f, err := factor.NewLDLT(st)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	b := mustDense(t, [][]float64{{3}, {4}, {3}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, st, x, b), tol)

	logDet, err := factor.LogDet(f)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), logDet, tol)
}

func TestLDLTIndefinite(t *testing.T) {
	st, err := matrix.NewSymTridiagonalFrom([]float64{1, -2, 1}, []float64{0.5, 0.5})
	require.NoError(t, err)

	f, err := factor.NewLDLT(st)
	require.Error(t, err)
	assert.ErrorIs(t, err, lapack.ErrNotPositiveDefinite)
	assert.False(t, f.Ok())
}

func TestTriangularSolver(t *testing.T) {
	l, err := matrix.NewTriangular(2, matrix.Lower, false)
	require.NoError(t, err)
	require.NoError(t, l.Set(0, 0, 2))
	require.NoError(t, l.Set(1, 0, 1))
	require.NoError(t, l.Set(1, 1, 3))

	f, err := factor.NewTriangularSolver(l)
	require.NoError(t, err)

	b := mustDense(t, [][]float64{{2}, {4}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, l, x, b), tol)

	assert.InDelta(t, 6, factor.Det(f), tol)
}

func TestTriangularSolverUnitDiag(t *testing.T) {
	l, err := matrix.NewTriangular(2, matrix.Lower, true)
	require.NoError(t, err)
	require.NoError(t, l.Set(1, 0, 5))

	f, err := factor.NewTriangularSolver(l)
	require.NoError(t, err)

	logAbs, sign := f.LogAbsDet()
	assert.Equal(t, 1, sign)
	assert.Zero(t, logAbs)

	b := mustDense(t, [][]float64{{1}, {6}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	v, _ := x.At(0, 0)
	assert.InDelta(t, 1, v, tol)
	v, _ = x.At(1, 0)
	assert.InDelta(t, 1, v, tol)
}
