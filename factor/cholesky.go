// SPDX-License-Identifier: MIT

// Package factor - Cholesky factorization, plain and diagonally pivoted.

package factor

import (
	"errors"
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// symTolerance is the asymmetry tolerance accepted when a plain Dense is
// offered to a symmetric factorization.
const symTolerance = 0.0

// Cholesky holds A = L*Lᵀ of a symmetric positive definite matrix; only
// the lower triangle of the buffer is meaningful.
type Cholesky struct {
	chol lapack.General[float64]
	n    int
	ok   bool
}

var _ Factorization = (*Cholesky)(nil)

// NewCholesky factors a symmetric positive definite matrix. The input may
// be a *matrix.Symmetric, *matrix.Hermitian or any square Matrix that is
// exactly symmetric.
//
// A non-positive-definite input returns the partial factorization with
// Ok() == false and a wrapped lapack.ErrNotPositiveDefinite carrying the
// order of the offending leading minor; callers wanting an indefinite
// fallback route to NewBunchKaufman (Factorize does this automatically).
//
// Errors: matrix.ErrNonSquare, matrix.ErrAsymmetry,
// lapack.ErrNotPositiveDefinite. Complexity: O(n³).
func NewCholesky(a matrix.Matrix) (*Cholesky, error) {
	const tag = "NewCholesky"
	if err := matrix.ValidateSymmetric(a, symTolerance); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &Cholesky{chol: g, n: g.Rows, ok: true}

	if err = lapack.Potrf(lapack.Lower, f.chol); err != nil {
		if !errors.Is(err, lapack.ErrNotPositiveDefinite) {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Ok reports whether the matrix was positive definite.
func (f *Cholesky) Ok() bool { return f.ok }

// Order returns (n, n).
func (f *Cholesky) Order() (int, int) { return f.n, f.n }

// LogAbsDet returns 2·Σ log l_ii and sign +1: a positive definite
// determinant is always positive.
func (f *Cholesky) LogAbsDet() (float64, int) {
	if !f.ok {
		return math.Inf(-1), 0
	}
	logAbs, _ := logAbsFromDiag(func(i int) float64 {
		return f.chol.At(i, i)
	}, f.n)

	return 2 * logAbs, 1
}

// SolveTo writes the solution of A*X = B into dst. A is symmetric, so the
// trans flag is accepted and ignored.
func (f *Cholesky) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "Cholesky.SolveTo"
	_ = trans // Aᵀ == A
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrNotPositiveDefinite)
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
	// L*y = B, then Lᵀ*x = y.
	if err = lapack.Trtrs(lapack.Lower, lapack.NoTrans, lapack.NonUnit, f.chol, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Trtrs(lapack.Lower, lapack.Transpose, lapack.NonUnit, f.chol, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}

// UnpackL materializes the lower triangular Cholesky factor.
func (f *Cholesky) UnpackL() *matrix.Triangular {
	l, _ := matrix.NewTriangular(f.n, matrix.Lower, false, matrix.WithNaNInfValidation(false))
	for i := 0; i < f.n; i++ {
		for j := 0; j <= i; j++ {
			_ = l.Set(i, j, f.chol.At(i, j))
		}
	}

	return l
}

// PivotedCholesky holds Pᵀ*A*P = L*Lᵀ of a symmetric positive
// SEMIdefinite matrix, revealing its numerical rank.
type PivotedCholesky struct {
	chol lapack.General[float64]
	piv  []int
	n    int
	rank int
}

var _ Factorization = (*PivotedCholesky)(nil)

// NewPivotedCholesky factors a symmetric positive semidefinite matrix
// with greedy diagonal pivoting. tol <= 0 selects the default
// n·eps·max(diag) rank threshold.
//
// Rank deficiency is NOT an error here - it is the point of the pivoted
// variant. The returned factorization reports the rank; Ok() is true only
// for full rank, because only then is solving well posed.
func NewPivotedCholesky(a matrix.Matrix, tol float64) (*PivotedCholesky, error) {
	const tag = "NewPivotedCholesky"
	if err := matrix.ValidateSymmetric(a, symTolerance); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &PivotedCholesky{chol: g, piv: make([]int, g.Rows), n: g.Rows}

	rank, err := lapack.Pstrf(lapack.Lower, f.chol, f.piv, tol)
	f.rank = rank
	if err != nil && !errors.Is(err, lapack.ErrNotPositiveDefinite) {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Ok reports full numerical rank.
func (f *PivotedCholesky) Ok() bool { return f.rank == f.n }

// Order returns (n, n).
func (f *PivotedCholesky) Order() (int, int) { return f.n, f.n }

// Rank returns the numerical rank revealed by the pivoting.
func (f *PivotedCholesky) Rank() int { return f.rank }

// Pivot returns the permutation: position k of the factor corresponds to
// original index Pivot()[k]. The slice is aliased, treat it as read-only.
func (f *PivotedCholesky) Pivot() []int { return f.piv }

// LogAbsDet returns 2·Σ log l_ii over the revealed rank; a rank-deficient
// matrix has determinant zero (sign 0, log -Inf).
func (f *PivotedCholesky) LogAbsDet() (float64, int) {
	if f.rank < f.n {
		return math.Inf(-1), 0
	}
	logAbs, _ := logAbsFromDiag(func(i int) float64 {
		return f.chol.At(i, i)
	}, f.n)

	return 2 * logAbs, 1
}

// SolveTo writes the solution of A*X = B into dst, undoing the pivoting
// around the two triangular solves. Rank-deficient factorizations refuse
// with lapack.ErrNotPositiveDefinite.
func (f *PivotedCholesky) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "PivotedCholesky.SolveTo"
	_ = trans // Aᵀ == A
	if !f.Ok() {
		return fmt.Errorf("%s: rank %d < %d: %w", tag, f.rank, f.n, lapack.ErrNotPositiveDefinite)
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
	// Permute rows into pivot order: y_k = b_{piv[k]}.
	nrhs := x.Cols
	perm := make([]float64, f.n*nrhs)
	for k := 0; k < f.n; k++ {
		copy(perm[k*nrhs:(k+1)*nrhs], x.Data[f.piv[k]*x.Stride:f.piv[k]*x.Stride+nrhs])
	}
	px := lapack.General[float64]{Rows: f.n, Cols: nrhs, Stride: nrhs, Data: perm}
	if err = lapack.Trtrs(lapack.Lower, lapack.NoTrans, lapack.NonUnit, f.chol, px); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Trtrs(lapack.Lower, lapack.Transpose, lapack.NonUnit, f.chol, px); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	// Undo the permutation: x_{piv[k]} = y_k.
	for k := 0; k < f.n; k++ {
		copy(x.Data[f.piv[k]*x.Stride:f.piv[k]*x.Stride+nrhs], perm[k*nrhs:(k+1)*nrhs])
	}
	copyGeneralTo(dst, x)

	return nil
}
