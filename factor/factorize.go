// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// Factorize picks the cheapest suitable factorization for a by its
// concrete type:
//
//	*Diagonal                      → DiagonalSolver
//	*Bidiagonal                    → BidiagonalSolver
//	*Tridiagonal                   → TridiagonalSolver
//	*SymTridiagonal                → LDLT
//	*Triangular                    → TriangularSolver
//	*Symmetric, *Hermitian         → Cholesky, Bunch-Kaufman on indefinite
//	square Dense and views         → Cholesky when symmetric, else LU
//	rectangular, m > n             → QR
//	rectangular, m < n             → LQ
//
// On a numerical failure (singular, indefinite where definite was needed)
// the degraded factorization comes back with Ok() == false alongside the
// wrapped sentinel, as the individual constructors do.
func Factorize(a matrix.Matrix) (Factorization, error) {
	const tag = "Factorize"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	switch m := a.(type) {
	case *matrix.Diagonal:
		return NewDiagonalSolver(m)
	case *matrix.Bidiagonal:
		return NewBidiagonalSolver(m)
	case *matrix.Tridiagonal:
		return NewTridiagonalSolver(m)
	case *matrix.SymTridiagonal:
		f, err := NewLDLT(m)
		if err != nil && errors.Is(err, lapack.ErrNotPositiveDefinite) {
			// Indefinite symmetric tridiagonal still solves through the
			// general tridiagonal path.
			return newTridiagFromSymTri(m)
		}

		return f, err
	case *matrix.Triangular:
		return NewTriangularSolver(m)
	case *matrix.Symmetric, *matrix.Hermitian:
		return factorizeSymmetric(a)
	}

	if a.Rows() > a.Cols() {
		return NewQR(a)
	}
	if a.Rows() < a.Cols() {
		return NewLQ(a)
	}
	if matrix.ValidateSymmetric(a, symTolerance) == nil {
		return factorizeSymmetric(a)
	}

	return NewLU(a)
}

// factorizeSymmetric tries Cholesky first and falls back to Bunch-Kaufman
// when the matrix turns out indefinite.
func factorizeSymmetric(a matrix.Matrix) (Factorization, error) {
	f, err := NewCholesky(a)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, lapack.ErrNotPositiveDefinite) {
		return NewBunchKaufman(a)
	}

	return f, err
}

// newTridiagFromSymTri widens a symmetric tridiagonal matrix into the
// general tridiagonal solver for the indefinite case.
func newTridiagFromSymTri(m *matrix.SymTridiagonal) (Factorization, error) {
	d, e := m.Diags()
	t, err := matrix.NewTridiagonalFrom(e, d, e, matrix.WithNaNInfValidation(false))
	if err != nil {
		return nil, fmt.Errorf("Factorize: %w", err)
	}

	return NewTridiagonalSolver(t)
}
