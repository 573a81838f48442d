// SPDX-License-Identifier: MIT

package lapack_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/lapack"
)

func TestSyevValuesAndVectors(t *testing.T) {
	a := general([][]float64{{2, 1}, {1, 2}})
	w := make([]float64, 2)
	require.NoError(t, lapack.Syev(lapack.Lower, a, w, true))

	assert.InDelta(t, 1, w[0], tol) // ascending
	assert.InDelta(t, 3, w[1], tol)
	assert.Less(t, orthoError(a), tol)

	// Columns are eigenvectors of the original matrix.
	orig := general([][]float64{{2, 1}, {1, 2}})
	for k := 0; k < 2; k++ {
		for i := 0; i < 2; i++ {
			av := orig.At(i, 0)*a.At(0, k) + orig.At(i, 1)*a.At(1, k)
			assert.InDelta(t, w[k]*a.At(i, k), av, 1e-9)
		}
	}
}

func TestSyevValuesOnly(t *testing.T) {
	a := general([][]float64{{6, 2, 1}, {2, 5, 0}, {1, 0, 4}})
	w := make([]float64, 3)
	require.NoError(t, lapack.Syev(lapack.Lower, a, w, false))

	sum := 0.0
	for _, v := range w {
		sum += v
	}
	assert.InDelta(t, 15, sum, 1e-9) // trace
	assert.True(t, sort.Float64sAreSorted(w))
}

func TestGehrdHessenbergForm(t *testing.T) {
	a := general([][]float64{
		{4, 1, -2, 2},
		{1, 2, 0, 1},
		{-2, 0, 3, -2},
		{2, 1, -2, -1},
	})
	orig := cloneGeneral(a)
	tau := make([]float64, 3)
	require.NoError(t, lapack.Gehrd(a, tau))

	q := lapack.General[float64]{Rows: 4, Cols: 4, Stride: 4, Data: make([]float64, 16)}
	require.NoError(t, lapack.Orghr(a, tau, q))
	assert.Less(t, orthoError(q), tol)

	// Below the first subdiagonal the array holds reflector components,
	// not H; clear that storage before reconstructing.
	h := cloneGeneral(a)
	for i := 2; i < 4; i++ {
		for j := 0; j < i-1; j++ {
			h.SetAt(i, j, 0)
		}
	}
	qhqt := matmul(matmul(q, h), transposed(q))
	assert.Less(t, maxAbsDiff(qhqt, orig), 1e-9)
}

func TestHseqrEigenvalues(t *testing.T) {
	a := general([][]float64{{4, 1}, {2, 3}})
	tau := make([]float64, 1)
	require.NoError(t, lapack.Gehrd(a, tau))

	q := lapack.General[float64]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float64, 4)}
	require.NoError(t, lapack.Orghr(a, tau, q))

	wr := make([]float64, 2)
	wi := make([]float64, 2)
	require.NoError(t, lapack.Hseqr(a, q, wr, wi))

	sort.Float64s(wr)
	assert.InDelta(t, 2, wr[0], 1e-9)
	assert.InDelta(t, 5, wr[1], 1e-9)
	assert.Zero(t, wi[0])
	assert.Zero(t, wi[1])
	assert.Less(t, orthoError(q), 1e-9)
}

func TestHseqrComplexPair(t *testing.T) {
	a := general([][]float64{{0, -1}, {1, 0}})
	tau := make([]float64, 1)
	require.NoError(t, lapack.Gehrd(a, tau))

	noQ := lapack.General[float64]{}
	wr := make([]float64, 2)
	wi := make([]float64, 2)
	require.NoError(t, lapack.Hseqr(a, noQ, wr, wi))

	assert.InDelta(t, 0, wr[0], tol)
	assert.InDelta(t, 0, wr[1], tol)
	assert.InDelta(t, 1, math.Abs(wi[0]), tol)
	assert.InDelta(t, -wi[0], wi[1], tol)
}

func TestTrexcSwapsDiagonal(t *testing.T) {
	tt := general([][]float64{{3, 1}, {0, 7}})
	q := general([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, lapack.Trexc(tt, q, 1, 0))

	assert.InDelta(t, 7, tt.At(0, 0), tol)
	assert.InDelta(t, 3, tt.At(1, 1), tol)
	assert.InDelta(t, 0, tt.At(1, 0), tol)
	assert.Less(t, orthoError(q), tol)
}

func TestGesvdDiagonal(t *testing.T) {
	a := general([][]float64{{2, 0}, {0, 3}, {0, 0}})
	s := make([]float64, 2)
	u := lapack.General[float64]{Rows: 3, Cols: 2, Stride: 2, Data: make([]float64, 6)}
	vt := lapack.General[float64]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float64, 4)}
	require.NoError(t, lapack.Gesvd(a, s, u, vt))

	assert.InDelta(t, 3, s[0], tol) // descending
	assert.InDelta(t, 2, s[1], tol)
	assert.Less(t, orthoError(u), tol)
	assert.Less(t, orthoError(transposed(vt)), tol)
}

func TestGesvdReconstruction(t *testing.T) {
	a := general([][]float64{{1, 2}, {-3, 1}, {2, 2}})
	orig := cloneGeneral(a)
	s := make([]float64, 2)
	u := lapack.General[float64]{Rows: 3, Cols: 2, Stride: 2, Data: make([]float64, 6)}
	vt := lapack.General[float64]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float64, 4)}
	require.NoError(t, lapack.Gesvd(a, s, u, vt))

	us := cloneGeneral(u)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			us.SetAt(i, j, u.At(i, j)*s[j])
		}
	}
	assert.Less(t, maxAbsDiff(matmul(us, vt), orig), 1e-9)
}

func TestGesvdRejectsWide(t *testing.T) {
	a := general([][]float64{{1, 2, 3}, {4, 5, 6}})
	s := make([]float64, 2)
	noU := lapack.General[float64]{}
	err := lapack.Gesvd(a, s, noU, noU)
	assert.ErrorIs(t, err, lapack.ErrDimensionMismatch)
}
