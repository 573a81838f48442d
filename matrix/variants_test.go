// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/matrix"
)

func TestDiagonal_StructureEnforced(t *testing.T) {
	d, err := matrix.NewDiagonalFrom([]float64{2, 3, 4})
	require.NoError(t, err)

	got, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	// Implicit zero off the diagonal.
	got, err = d.At(0, 2)
	require.NoError(t, err)
	assert.Zero(t, got)

	// Writes off the diagonal are structural violations.
	assert.ErrorIs(t, d.Set(0, 1, 5), matrix.ErrOutOfBand)
	assert.ErrorIs(t, d.Set(3, 3, 1), matrix.ErrOutOfRange)
}

func TestBidiagonal_SideSelectsBand(t *testing.T) {
	up, err := matrix.NewBidiagonalFrom([]float64{1, 2, 3}, []float64{7, 8}, matrix.Upper)
	require.NoError(t, err)

	v, err := up.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.ErrorIs(t, up.Set(1, 0, 1), matrix.ErrOutOfBand, "subdiagonal is not stored on an upper bidiagonal")

	lo, err := matrix.NewBidiagonal(3, matrix.Lower)
	require.NoError(t, err)
	require.NoError(t, lo.Set(2, 1, 5))
	v, err = lo.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.ErrorIs(t, lo.Set(0, 1, 1), matrix.ErrOutOfBand)
}

func TestTridiagonal_Band(t *testing.T) {
	m, err := matrix.NewTridiagonalFrom([]float64{4, 5}, []float64{1, 2, 3}, []float64{6, 7})
	require.NoError(t, err)

	cases := []struct {
		i, j int
		want float64
	}{
		{0, 0, 1}, {1, 1, 2}, {2, 2, 3},
		{1, 0, 4}, {2, 1, 5},
		{0, 1, 6}, {1, 2, 7},
		{0, 2, 0}, {2, 0, 0},
	}
	for _, tc := range cases {
		got, err := m.At(tc.i, tc.j)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "at (%d,%d)", tc.i, tc.j)
	}
	assert.ErrorIs(t, m.Set(0, 2, 9), matrix.ErrOutOfBand)
}

func TestSymTridiagonal_MirroredWrites(t *testing.T) {
	m, err := matrix.NewSymTridiagonal(3)
	require.NoError(t, err)

	// One write, two mirrored reads.
	require.NoError(t, m.Set(0, 1, 4))
	a, err := m.At(0, 1)
	require.NoError(t, err)
	b, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 4.0, a)

	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfBand)
}

func TestTriangular_UnitDiagonal(t *testing.T) {
	l, err := matrix.NewTriangular(3, matrix.Lower, true)
	require.NoError(t, err)

	// Implicit ones on the diagonal.
	v, err := l.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// The diagonal of a unit triangular is not writable.
	assert.ErrorIs(t, l.Set(1, 1, 5), matrix.ErrOutOfBand)
	// Neither is the opposite triangle.
	assert.ErrorIs(t, l.Set(0, 2, 5), matrix.ErrOutOfBand)

	require.NoError(t, l.Set(2, 0, 9))
	v, err = l.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestSymmetric_MirrorAndClone(t *testing.T) {
	s, err := matrix.NewSymmetric(3, matrix.Upper)
	require.NoError(t, err)

	// Writing the unstored triangle lands in the stored one.
	require.NoError(t, s.Set(2, 0, 6))
	v, err := s.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	c := s.Clone()
	require.IsType(t, &matrix.Symmetric{}, c)
	require.NoError(t, c.Set(0, 2, 1))
	v, _ = s.At(0, 2)
	assert.Equal(t, 6.0, v)
}

func TestHermitian_IsSymmetricOverReals(t *testing.T) {
	h, err := matrix.NewHermitian(2, matrix.Lower)
	require.NoError(t, err)
	require.NoError(t, h.Set(0, 1, 3))
	v, err := h.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	c := h.Clone()
	require.IsType(t, &matrix.Hermitian{}, c)
}

func TestTransposeView_LiveAndUnwrapping(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tv := matrix.T(d)
	assert.Equal(t, 3, tv.Rows())
	assert.Equal(t, 2, tv.Cols())

	v, err := tv.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	// The view is live: mutate the base, read through the view.
	require.NoError(t, d.Set(0, 2, 30))
	v, err = tv.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	// Double transpose unwraps to the base.
	assert.Same(t, d, matrix.T(tv))

	// Writes pass through transposed.
	require.NoError(t, tv.Set(0, 1, 40))
	v, err = d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, v)
}

func TestAdjointView_RealCoincidesWithTranspose(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	av := matrix.Adjoint(d)
	v, err := av.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	assert.Same(t, d, matrix.Adjoint(av))
}

func TestUniformScaling(t *testing.T) {
	s := matrix.Eye(2.5)
	assert.Equal(t, 2.5, s.At(7, 7))
	assert.Zero(t, s.At(0, 1))
	assert.Equal(t, 5.0, s.Scale(2).Value)

	d, err := matrix.NewDiagonalFrom([]float64{1, 2})
	require.NoError(t, err)
	shifted, err := matrix.AddUniform(d, s)
	require.NoError(t, err)
	// Structure preserved: still a Diagonal.
	require.IsType(t, &matrix.Diagonal{}, shifted)
	v, err := shifted.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = matrix.SubUniform(nil, s)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
