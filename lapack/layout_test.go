// SPDX-License-Identifier: MIT

package lapack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faktorlab/faktor/lapack"
)

func TestCheckGeneral(t *testing.T) {
	ok := lapack.General[float64]{Rows: 2, Cols: 3, Stride: 3, Data: make([]float64, 6)}
	assert.NoError(t, lapack.CheckGeneral(ok))

	padded := lapack.General[float64]{Rows: 2, Cols: 3, Stride: 5, Data: make([]float64, 8)}
	assert.NoError(t, lapack.CheckGeneral(padded))

	narrow := lapack.General[float64]{Rows: 2, Cols: 3, Stride: 2, Data: make([]float64, 6)}
	assert.ErrorIs(t, lapack.CheckGeneral(narrow), lapack.ErrLayout)

	short := lapack.General[float64]{Rows: 2, Cols: 3, Stride: 3, Data: make([]float64, 5)}
	assert.ErrorIs(t, lapack.CheckGeneral(short), lapack.ErrLayout)

	negative := lapack.General[float64]{Rows: -1, Cols: 3, Stride: 3}
	assert.ErrorIs(t, lapack.CheckGeneral(negative), lapack.ErrDimensionMismatch)
}

func TestCheckSquare(t *testing.T) {
	n, err := lapack.CheckSquare(lapack.General[float64]{Rows: 4, Cols: 4, Stride: 4, Data: make([]float64, 16)})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = lapack.CheckSquare(lapack.General[float64]{Rows: 4, Cols: 3, Stride: 3, Data: make([]float64, 12)})
	assert.ErrorIs(t, err, lapack.ErrDimensionMismatch)
}

func TestCheckSquareAll(t *testing.T) {
	a := lapack.General[float64]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float64, 4)}
	b := lapack.General[float64]{Rows: 3, Cols: 3, Stride: 3, Data: make([]float64, 9)}

	dims, err := lapack.CheckSquareAll(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, dims)

	rect := lapack.General[float64]{Rows: 2, Cols: 3, Stride: 3, Data: make([]float64, 6)}
	_, err = lapack.CheckSquareAll(a, rect)
	require.Error(t, err)
	assert.ErrorIs(t, err, lapack.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "argument 1")
}

func TestChkstride1(t *testing.T) {
	unit := lapack.Vector[float64]{N: 3, Inc: 1, Data: make([]float64, 3)}
	strided := lapack.Vector[float64]{N: 3, Inc: 2, Data: make([]float64, 6)}

	assert.NoError(t, lapack.Chkstride1(unit, unit))
	err := lapack.Chkstride1(unit, strided)
	require.Error(t, err)
	assert.ErrorIs(t, err, lapack.ErrLayout)
	assert.Contains(t, err.Error(), "argument 1")
}

func TestCharFlags(t *testing.T) {
	c, err := lapack.CharUplo(lapack.Lower)
	require.NoError(t, err)
	assert.Equal(t, byte('L'), c)
	_, err = lapack.CharUplo(lapack.Uplo('X'))
	assert.ErrorIs(t, err, lapack.ErrInvalidArgument)

	c, err = lapack.CharTrans(lapack.ConjTrans)
	require.NoError(t, err)
	assert.Equal(t, byte('C'), c)
	_, err = lapack.CharTrans(lapack.Trans('Q'))
	assert.ErrorIs(t, err, lapack.ErrInvalidArgument)

	c, err = lapack.CharDiag(lapack.Unit)
	require.NoError(t, err)
	assert.Equal(t, byte('U'), c)
	_, err = lapack.CharDiag(lapack.Diag(0))
	assert.ErrorIs(t, err, lapack.ErrInvalidArgument)

	c, err = lapack.CharSide(lapack.Right)
	require.NoError(t, err)
	assert.Equal(t, byte('R'), c)
	_, err = lapack.CharSide(lapack.Side('Z'))
	assert.ErrorIs(t, err, lapack.ErrInvalidArgument)
}
