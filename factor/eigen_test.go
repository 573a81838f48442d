// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/factor"
	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// eigenResidual returns the max-norm of A*v - λ*v for column k.
func eigenResidual(t *testing.T, a matrix.Matrix, vecs *matrix.Dense, k int, lambda float64) float64 {
	t.Helper()
	n := a.Rows()
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i], _ = vecs.At(i, k)
	}
	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)
	worst := 0.0
	for i := 0; i < n; i++ {
		r := av[i] - lambda*v[i]
		if r < 0 {
			r = -r
		}
		if r > worst {
			worst = r
		}
	}

	return worst
}

func TestEigenSymmetric(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})

	f, err := factor.NewEigen(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())
	assert.True(t, f.Symmetric())

	re, _ := f.Values(nil, nil)
	require.Len(t, re, 2)
	assert.InDelta(t, 1, re[0], tol) // ascending
	assert.InDelta(t, 3, re[1], tol)

	vecs, err := f.Vectors()
	require.NoError(t, err)
	assert.Less(t, orthoResidual(t, vecs), tol)
	for k, lambda := range re {
		assert.Less(t, eigenResidual(t, a, vecs, k, lambda), 1e-9)
	}
}

func TestEigenGeneralRealSpectrum(t *testing.T) {
	// Trace 7, determinant 10: eigenvalues 2 and 5.
	a := mustDense(t, [][]float64{{4, 1}, {2, 3}})

	f, err := factor.NewEigen(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())
	assert.False(t, f.Symmetric())

	re, im := f.Values(nil, nil)
	require.Len(t, re, 2)
	for _, v := range im {
		assert.Zero(t, v)
	}
	got := map[float64]bool{}
	for _, v := range re {
		if v > 4 {
			assert.InDelta(t, 5, v, 1e-9)
			got[5] = true
		} else {
			assert.InDelta(t, 2, v, 1e-9)
			got[2] = true
		}
	}
	assert.Len(t, got, 2)

	vecs, err := f.Vectors()
	require.NoError(t, err)
	for k, lambda := range re {
		assert.Less(t, eigenResidual(t, a, vecs, k, lambda), 1e-8)
	}
}

func TestEigenComplexSpectrum(t *testing.T) {
	// Plane rotation by 90 degrees: eigenvalues ±i.
	a := mustDense(t, [][]float64{{0, -1}, {1, 0}})

	f, err := factor.NewEigen(a)
	require.NoError(t, err)
	assert.True(t, f.Ok())

	// A nil im skips the imaginary parts, so hand in a slice to append to.
	re, im := f.Values(nil, make([]float64, 0, 2))
	require.Len(t, im, 2)
	assert.InDelta(t, 0, re[0], tol)
	assert.InDelta(t, 0, re[1], tol)
	assert.InDelta(t, 1, im[0]*im[0], tol)
	assert.InDelta(t, -1, im[0]*im[1], tol) // conjugate pair

	_, err = f.Vectors()
	assert.ErrorIs(t, err, lapack.ErrInvalidArgument)
}

func TestGeneralizedEigen(t *testing.T) {
	// B = 2I, so the pencil halves the eigenvalues of A.
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})
	b := mustDense(t, [][]float64{{2, 0}, {0, 2}})

	f, err := factor.NewGeneralizedEigen(a, b)
	require.NoError(t, err)

	re, _ := f.Values(nil, nil)
	require.Len(t, re, 2)
	assert.InDelta(t, 0.5, re[0], 1e-9)
	assert.InDelta(t, 1.5, re[1], 1e-9)
}

func TestGeneralizedEigenSingularB(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	b := mustDense(t, [][]float64{{1, 1}, {1, 1}})

	_, err := factor.NewGeneralizedEigen(a, b)
	assert.ErrorIs(t, err, lapack.ErrSingular)
}
