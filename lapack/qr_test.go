// SPDX-License-Identifier: MIT

package lapack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/lapack"
)

// cloneGeneral deep-copies a descriptor.
func cloneGeneral(g lapack.General[float64]) lapack.General[float64] {
	out := g
	out.Data = append([]float64(nil), g.Data...)

	return out
}

// maxAbsDiff returns max |a(i,j) - b(i,j)| over the common shape.
func maxAbsDiff(a, b lapack.General[float64]) float64 {
	worst := 0.0
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			d := a.At(i, j) - b.At(i, j)
			if d < 0 {
				d = -d
			}
			if d > worst {
				worst = d
			}
		}
	}

	return worst
}

// matmul returns a*b as a fresh descriptor.
func matmul(a, b lapack.General[float64]) lapack.General[float64] {
	out := lapack.General[float64]{Rows: a.Rows, Cols: b.Cols, Stride: b.Cols, Data: make([]float64, a.Rows*b.Cols)}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			sum := 0.0
			for k := 0; k < a.Cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.SetAt(i, j, sum)
		}
	}

	return out
}

func transposed(g lapack.General[float64]) lapack.General[float64] {
	out := lapack.General[float64]{Rows: g.Cols, Cols: g.Rows, Stride: g.Rows, Data: make([]float64, g.Rows*g.Cols)}
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			out.SetAt(j, i, g.At(i, j))
		}
	}

	return out
}

// orthoError returns max |QᵀQ - I|.
func orthoError(q lapack.General[float64]) float64 {
	qtq := matmul(transposed(q), q)
	worst := 0.0
	for i := 0; i < qtq.Rows; i++ {
		for j := 0; j < qtq.Cols; j++ {
			v := qtq.At(i, j)
			if i == j {
				v -= 1
			}
			if v < 0 {
				v = -v
			}
			if v > worst {
				worst = v
			}
		}
	}

	return worst
}

func TestGeqrfOrgqrReconstruction(t *testing.T) {
	a := general([][]float64{{1, 2}, {3, 4}, {5, 6}})
	orig := cloneGeneral(a)
	tau := make([]float64, 2)
	require.NoError(t, lapack.Geqrf(a, tau))

	q := lapack.General[float64]{Rows: 3, Cols: 2, Stride: 2, Data: make([]float64, 6)}
	require.NoError(t, lapack.Orgqr(a, tau, q))
	assert.Less(t, orthoError(q), tol)

	r := lapack.General[float64]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float64, 4)}
	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			r.SetAt(i, j, a.At(i, j))
		}
	}
	assert.Less(t, maxAbsDiff(matmul(q, r), orig), tol)
}

func TestOrmqrAppliesQTranspose(t *testing.T) {
	a := general([][]float64{{1, 2}, {3, 4}, {5, 6}})
	tau := make([]float64, 2)
	require.NoError(t, lapack.Geqrf(a, tau))

	q := lapack.General[float64]{Rows: 3, Cols: 3, Stride: 3, Data: make([]float64, 9)}
	require.NoError(t, lapack.Orgqr(a, tau, q))

	// Applying Qᵀ via reflectors must agree with the explicit product.
	c := general([][]float64{{1}, {1}, {1}})
	byReflectors := cloneGeneral(c)
	require.NoError(t, lapack.Ormqr(lapack.Left, lapack.Transpose, a, tau, byReflectors))
	explicit := matmul(transposed(q), c)
	assert.Less(t, maxAbsDiff(byReflectors, explicit), tol)
}

func TestGeqp3Pivoting(t *testing.T) {
	// Third column dominates, so it must be pivoted first.
	a := general([][]float64{{1, 0, 10}, {0, 1, 10}, {0, 0, 10}})
	orig := cloneGeneral(a)
	jpvt := make([]int, 3)
	tau := make([]float64, 3)
	require.NoError(t, lapack.Geqp3(a, jpvt, tau))
	assert.Equal(t, 2, jpvt[0])

	q := lapack.General[float64]{Rows: 3, Cols: 3, Stride: 3, Data: make([]float64, 9)}
	require.NoError(t, lapack.Orgqr(a, tau, q))
	r := lapack.General[float64]{Rows: 3, Cols: 3, Stride: 3, Data: make([]float64, 9)}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			r.SetAt(i, j, a.At(i, j))
		}
	}
	qr := matmul(q, r)
	// Column k of Q*R is column jpvt[k] of the input.
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, orig.At(i, jpvt[k]), qr.At(i, k), tol)
		}
	}
}

func TestGelqfOrglqReconstruction(t *testing.T) {
	a := general([][]float64{{1, 2, 3}, {4, 5, 6}})
	orig := cloneGeneral(a)
	tau := make([]float64, 2)
	require.NoError(t, lapack.Gelqf(a, tau))

	q := lapack.General[float64]{Rows: 2, Cols: 3, Stride: 3, Data: make([]float64, 6)}
	require.NoError(t, lapack.Orglq(a, tau, q))
	// Rows of Q are orthonormal: Q*Qᵀ = I.
	assert.Less(t, orthoError(transposed(q)), tol)

	l := lapack.General[float64]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float64, 4)}
	for i := 0; i < 2; i++ {
		for j := 0; j <= i; j++ {
			l.SetAt(i, j, a.At(i, j))
		}
	}
	assert.Less(t, maxAbsDiff(matmul(l, q), orig), tol)
}
