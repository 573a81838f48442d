// SPDX-License-Identifier: MIT

// Package factor - LU factorization with partial pivoting.

package factor

import (
	"errors"
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// LU holds P*A = L*U of a square matrix: unit lower L and upper U packed
// in one buffer, the row interchanges in ipiv.
type LU struct {
	lu   lapack.General[float64]
	ipiv []int
	n    int
	ok   bool
}

var _ Factorization = (*LU)(nil)

// NewLU factors a square matrix with partial pivoting.
//
// A singular input still returns a complete factorization (usable for
// determinants) together with a wrapped lapack.ErrSingular; its Ok
// reports false and solving is refused.
//
// Errors: matrix.ErrNonSquare, lapack.ErrSingular.
// Complexity: O(n³).
func NewLU(a matrix.Matrix) (*LU, error) {
	const tag = "NewLU"
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &LU{lu: g, ipiv: make([]int, g.Rows), n: g.Rows, ok: true}

	if err = lapack.Getrf(f.lu, f.ipiv); err != nil {
		if !errors.Is(err, lapack.ErrSingular) {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Ok reports whether every pivot was nonzero.
func (f *LU) Ok() bool { return f.ok }

// Order returns (n, n).
func (f *LU) Order() (int, int) { return f.n, f.n }

// LogAbsDet returns log|det A| and its sign: the diagonal product of U,
// negated once per row interchange.
func (f *LU) LogAbsDet() (float64, int) {
	logAbs, sign := logAbsFromDiag(func(i int) float64 {
		return f.lu.At(i, i)
	}, f.n)
	if sign == 0 {
		return math.Inf(-1), 0
	}
	for k, p := range f.ipiv {
		if p != k {
			sign = -sign
		}
	}

	return logAbs, sign
}

// SolveTo writes the solution of A*X = B (Aᵀ*X = B when trans) into dst.
//
// Errors: lapack.ErrSingular on a factorization with Ok() == false,
// lapack.ErrDimensionMismatch on shape violations.
func (f *LU) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "LU.SolveTo"
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.n, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}

	x, err := denseCopyGeneral(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	tflag := lapack.NoTrans
	if trans {
		tflag = lapack.Transpose
	}
	if err = lapack.Getrs(tflag, f.lu, f.ipiv, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}

// UnpackL materializes the unit lower triangular factor.
func (f *LU) UnpackL() *matrix.Triangular {
	l, _ := matrix.NewTriangular(f.n, matrix.Lower, true)
	for i := 1; i < f.n; i++ {
		for j := 0; j < i; j++ {
			_ = l.Set(i, j, f.lu.At(i, j))
		}
	}

	return l
}

// UnpackU materializes the upper triangular factor.
func (f *LU) UnpackU() *matrix.Triangular {
	u, _ := matrix.NewTriangular(f.n, matrix.Upper, false, matrix.WithNaNInfValidation(false))
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			_ = u.Set(i, j, f.lu.At(i, j))
		}
	}

	return u
}

// Pivots returns the row interchange record: at step k, row k was swapped
// with row Pivots()[k]. The slice is aliased, treat it as read-only.
func (f *LU) Pivots() []int { return f.ipiv }
