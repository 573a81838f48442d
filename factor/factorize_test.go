// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/factor"
	"github.com/faktorlab/faktor/matrix"
)

func TestFactorizeDispatch(t *testing.T) {
	diag, err := matrix.NewDiagonalFrom([]float64{1, 2})
	require.NoError(t, err)
	bidi, err := matrix.NewBidiagonalFrom([]float64{1, 2}, []float64{3}, matrix.Upper)
	require.NoError(t, err)
	trid, err := matrix.NewTridiagonalFrom([]float64{1}, []float64{4, 4}, []float64{1})
	require.NoError(t, err)
	symt, err := matrix.NewSymTridiagonalFrom([]float64{4, 4}, []float64{1})
	require.NoError(t, err)
	tri, err := matrix.NewTriangular(2, matrix.Upper, false)
	require.NoError(t, err)
	require.NoError(t, tri.Set(0, 0, 1))
	require.NoError(t, tri.Set(1, 1, 1))

	cases := []struct {
		name string
		in   matrix.Matrix
		want any
	}{
		{"diagonal", diag, (*factor.DiagonalSolver)(nil)},
		{"bidiagonal", bidi, (*factor.BidiagonalSolver)(nil)},
		{"tridiagonal", trid, (*factor.TridiagonalSolver)(nil)},
		{"sym tridiagonal", symt, (*factor.LDLT)(nil)},
		{"triangular", tri, (*factor.TriangularSolver)(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := factor.Factorize(tc.in)
			require.NoError(t, err)
			assert.IsType(t, tc.want, f)
		})
	}
}

func TestFactorizeDenseRouting(t *testing.T) {
	spd := mustDense(t, [][]float64{{4, 2}, {2, 3}})
	f, err := factor.Factorize(spd)
	require.NoError(t, err)
	assert.IsType(t, (*factor.Cholesky)(nil), f)

	indefinite := mustDense(t, [][]float64{{1, 2}, {2, 1}})
	f, err = factor.Factorize(indefinite)
	require.NoError(t, err)
	assert.IsType(t, (*factor.BunchKaufman)(nil), f)

	general := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	f, err = factor.Factorize(general)
	require.NoError(t, err)
	assert.IsType(t, (*factor.LU)(nil), f)

	tall := mustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	f, err = factor.Factorize(tall)
	require.NoError(t, err)
	assert.IsType(t, (*factor.QR)(nil), f)

	wide := mustDense(t, [][]float64{{1, 0, 1}, {0, 1, 1}})
	f, err = factor.Factorize(wide)
	require.NoError(t, err)
	assert.IsType(t, (*factor.LQ)(nil), f)
}

func TestFactorizeSymmetricType(t *testing.T) {
	s, err := matrix.NewSymmetric(2, matrix.Lower)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 0, 4))
	require.NoError(t, s.Set(1, 0, 2))
	require.NoError(t, s.Set(1, 1, 3))

	f, err := factor.Factorize(s)
	require.NoError(t, err)
	assert.IsType(t, (*factor.Cholesky)(nil), f)
}

func TestFactorizeIndefiniteSymTridiagonal(t *testing.T) {
	st, err := matrix.NewSymTridiagonalFrom([]float64{1, -2, 1}, []float64{0.5, 0.5})
	require.NoError(t, err)

	f, err := factor.Factorize(st)
	require.NoError(t, err)
	assert.IsType(t, (*factor.TridiagonalSolver)(nil), f)

	b := mustDense(t, [][]float64{{1.5}, {-1}, {1.5}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, st, x, b), tol)
}

func TestFactorizeZeroDiagonalSymTridiagonal(t *testing.T) {
	// [[0,1],[1,0]] is nonsingular but has no positive pivot at all;
	// the pivoted tridiagonal path must still solve it.
	st, err := matrix.NewSymTridiagonalFrom([]float64{0, 0}, []float64{1})
	require.NoError(t, err)

	f, err := factor.Factorize(st)
	require.NoError(t, err)
	assert.IsType(t, (*factor.TridiagonalSolver)(nil), f)

	b := mustDense(t, [][]float64{{3}, {7}})
	x, err := factor.Solve(f, b)
	require.NoError(t, err)
	assert.Less(t, residual(t, st, x, b), tol)

	logAbs, sign := f.LogAbsDet()
	assert.Equal(t, -1, sign)
	assert.InDelta(t, 0, logAbs, tol)
}

func TestSolveInPlace(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 1}})
	b := mustDense(t, [][]float64{{3}, {2}})
	want := b.Clone()

	f, err := factor.Factorize(a)
	require.NoError(t, err)
	require.NoError(t, factor.SolveInPlace(f, b))
	assert.Less(t, residual(t, a, b, want), tol)
}

func TestRSolve(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 0}, {0, 4}})
	b := mustDense(t, [][]float64{{2, 4}})

	f, err := factor.Factorize(a)
	require.NoError(t, err)

	x, err := factor.RSolve(f, b)
	require.NoError(t, err)
	require.Equal(t, 1, x.Rows())
	require.Equal(t, 2, x.Cols())
	v, _ := x.At(0, 0)
	assert.InDelta(t, 1, v, tol)
	v, _ = x.At(0, 1)
	assert.InDelta(t, 1, v, tol)
}

func TestRSolveInPlace(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {0, 3}})
	// X*A = B with X = [[1, 1]]: B = [[2, 4]].
	b := mustDense(t, [][]float64{{2, 4}})

	f, err := factor.Factorize(a)
	require.NoError(t, err)
	require.NoError(t, factor.RSolveInPlace(f, b))
	v, _ := b.At(0, 0)
	assert.InDelta(t, 1, v, tol)
	v, _ = b.At(0, 1)
	assert.InDelta(t, 1, v, tol)
}

func TestInverse(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 1}})

	inv, err := factor.Inverse(a)
	require.NoError(t, err)

	want := [][]float64{{1, -1}, {-1, 2}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := inv.At(i, j)
			assert.InDelta(t, want[i][j], v, tol)
		}
	}
}
