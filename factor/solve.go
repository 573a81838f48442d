// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/faktorlab/faktor/matrix"
)

// Solve returns the solution of A*X = B for a previously factored A. The
// result is n x nrhs; for least-squares and minimum-norm factorizations
// that differs from the shape of b.
func Solve(f Factorization, b matrix.Matrix) (*matrix.Dense, error) {
	const tag = "Solve"
	if f == nil {
		return nil, fmt.Errorf("%s: %w", tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	_, n := f.Order()
	dst, err := matrix.NewDense(n, b.Cols(), matrix.WithNaNInfValidation(false))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err = f.SolveTo(dst, false, b); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return dst, nil
}

// SolveInPlace overwrites b with the solution of A*X = B. Only square
// factorizations keep the shape, so rectangular ones are rejected.
func SolveInPlace(f Factorization, b *matrix.Dense) error {
	const tag = "SolveInPlace"
	if f == nil {
		return fmt.Errorf("%s: %w", tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	m, n := f.Order()
	if m != n {
		return fmt.Errorf("%s: %dx%d factorization changes the solution shape: %w",
			tag, m, n, matrix.ErrDimensionMismatch)
	}

	return f.SolveTo(b, false, b)
}

// RSolve returns the solution of X*A = B, reduced to the transposed
// system Aᵀ*Xᵀ = Bᵀ. The factorization must be square.
func RSolve(f Factorization, b matrix.Matrix) (*matrix.Dense, error) {
	const tag = "RSolve"
	if f == nil {
		return nil, fmt.Errorf("%s: %w", tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	m, n := f.Order()
	if m != n {
		return nil, fmt.Errorf("%s: %dx%d factorization: %w", tag, m, n, matrix.ErrDimensionMismatch)
	}
	xt, err := matrix.NewDense(n, b.Rows(), matrix.WithNaNInfValidation(false))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err = f.SolveTo(xt, true, matrix.T(b)); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	x, err := matrix.ToDense(matrix.T(xt))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return x, nil
}

// RSolveInPlace overwrites b with the solution of X*A = B.
func RSolveInPlace(f Factorization, b *matrix.Dense) error {
	const tag = "RSolveInPlace"
	x, err := RSolve(f, b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			v, _ := x.At(i, j)
			_ = b.Set(i, j, v)
		}
	}

	return nil
}

// SolveMatrix factors a on the spot and solves A*X = B. Keep the
// Factorization and call Solve when the same matrix is solved against
// repeatedly.
func SolveMatrix(a, b matrix.Matrix) (*matrix.Dense, error) {
	const tag = "SolveMatrix"
	f, err := Factorize(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return Solve(f, b)
}

// RSolveMatrix factors a on the spot and solves X*A = B.
func RSolveMatrix(a, b matrix.Matrix) (*matrix.Dense, error) {
	const tag = "RSolveMatrix"
	f, err := Factorize(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return RSolve(f, b)
}

// Inverse factors a and solves against the identity. Prefer keeping the
// factorization and solving systems directly; the explicit inverse is for
// when the entries themselves are needed.
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	const tag = "Inverse"
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f, err := Factorize(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := a.Rows()
	eye, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	for i := 0; i < n; i++ {
		_ = eye.Set(i, i, 1)
	}
	if err = f.SolveTo(eye, false, eye.Clone()); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return eye, nil
}
