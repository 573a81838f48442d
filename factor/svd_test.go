// SPDX-License-Identifier: MIT

package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/factor"
	"github.com/faktorlab/faktor/matrix"
)

// svdResidual returns the max-norm of U*diag(s)*Vᵀ - A.
func svdResidual(t *testing.T, a matrix.Matrix, f *factor.SVD) float64 {
	t.Helper()
	s := f.Values(nil)
	d, err := matrix.NewDiagonalFrom(s)
	require.NoError(t, err)
	us, err := matrix.Mul(f.UnpackU(), d)
	require.NoError(t, err)
	usvt, err := matrix.Mul(us, f.UnpackVt())
	require.NoError(t, err)
	diff, err := matrix.Sub(usvt, a)
	require.NoError(t, err)
	n, err := matrix.Norm(diff, matrix.NormMax)
	require.NoError(t, err)

	return n
}

func TestSVDTall(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 0}, {0, 1}, {0, 0}})

	f, err := factor.NewSVD(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	s := f.Values(nil)
	require.Len(t, s, 2)
	assert.InDelta(t, 2, s[0], tol) // descending
	assert.InDelta(t, 1, s[1], tol)

	u := f.UnpackU()
	assert.Equal(t, 3, u.Rows())
	assert.Equal(t, 2, u.Cols())
	assert.Less(t, orthoResidual(t, u), tol)
	assert.Less(t, svdResidual(t, a, f), 1e-9)
}

func TestSVDWide(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 3, 0}, {1, 0, 0}})

	f, err := factor.NewSVD(a)
	require.NoError(t, err)

	s := f.Values(nil)
	require.Len(t, s, 2)
	assert.InDelta(t, 3, s[0], tol)
	assert.InDelta(t, 1, s[1], tol)

	vt := f.UnpackVt()
	assert.Equal(t, 2, vt.Rows())
	assert.Equal(t, 3, vt.Cols())
	assert.Less(t, svdResidual(t, a, f), 1e-9)
}

func TestSVDGeneralReconstruction(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2, 0},
		{-3, 1, 5},
		{2, 2, 2},
		{0, -1, 4},
	})

	f, err := factor.NewSVD(a)
	require.NoError(t, err)
	assert.Less(t, svdResidual(t, a, f), 1e-8)
	assert.Less(t, orthoResidual(t, f.UnpackU()), 1e-9)
	assert.Less(t, orthoResidual(t, matrix.T(f.UnpackVt())), 1e-9)
}

func TestSVDRankAndCond(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {2, 4}})

	f, err := factor.NewSVD(a)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Rank(0))
	assert.True(t, math.IsInf(f.Cond(), 1) || f.Cond() > 1e15)

	spd := mustDense(t, [][]float64{{3, 0}, {0, 2}})
	g, err := factor.NewSVD(spd)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rank(0))
	assert.InDelta(t, 1.5, g.Cond(), tol)
}

func TestSVDPseudoSolve(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	b := mustDense(t, [][]float64{{2}, {0}, {1}})

	f, err := factor.NewSVD(a)
	require.NoError(t, err)

	x, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, f.PseudoSolveTo(x, b, 0))
	v, _ := x.At(0, 0)
	assert.InDelta(t, 5.0/3.0, v, 1e-9)
	v, _ = x.At(1, 0)
	assert.InDelta(t, -1.0/3.0, v, 1e-9)
}

func TestGeneralizedSVD(t *testing.T) {
	// B = 2I halves every singular value of A.
	a := mustDense(t, [][]float64{{2, 0}, {0, 4}})
	b := mustDense(t, [][]float64{{2, 0}, {0, 2}})

	f, err := factor.NewGeneralizedSVD(a, b)
	require.NoError(t, err)

	s := f.Values(nil)
	require.Len(t, s, 2)
	assert.InDelta(t, 2, s[0], 1e-9)
	assert.InDelta(t, 1, s[1], 1e-9)
}
