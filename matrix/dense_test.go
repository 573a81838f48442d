// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/matrix"
)

func TestNewDense_InvalidShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}, {2, -5}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSet_RoundTrip(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 4.5))
	got, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)

	// Untouched entries stay zero.
	got, err = d.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDense_OutOfRange(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 2, 1), matrix.ErrOutOfRange)
}

func TestDense_NumericPolicy(t *testing.T) {
	d, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	// Policy can be disabled per matrix.
	loose, err := matrix.NewDense(1, 1, matrix.WithNaNInfValidation(false))
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
}

func TestNewDenseFromRows(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	got, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromFlat_Aliasing(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	d, err := matrix.NewDenseFromFlat(2, 2, buf)
	require.NoError(t, err)

	// The backing slice is aliased both ways.
	buf[3] = 9
	got, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	require.NoError(t, d.Set(0, 0, 7))
	assert.Equal(t, 7.0, buf[0])

	_, err = matrix.NewDenseFromFlat(2, 2, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_CloneIndependence(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := d.Clone()
	require.IsType(t, &matrix.Dense{}, c)
	require.NoError(t, c.Set(0, 0, 100))

	orig, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig, "clone mutation must not leak into the base")
}

func TestDense_ErrorWrappingIsMatchable(t *testing.T) {
	d, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	_, err = d.At(5, 5)
	require.Error(t, err)
	// The context-tagged wrapper still matches the sentinel.
	assert.True(t, errors.Is(err, matrix.ErrOutOfRange))
	assert.Contains(t, err.Error(), "Dense.At(5,5)")
}
