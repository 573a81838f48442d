// SPDX-License-Identifier: MIT

// Package factor - the Factorization contract and the matrix/lapack
// bridge helpers shared by every factorization in this package.

package factor

import (
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// Factorization is the solver contract every factorization of a full-rank
// system implements. Spectral results (Eigen, Schur, SVD, Hessenberg) are
// plain structs; only solvers carry this interface, which is what lets the
// solve surface reject raw matrices at compile time.
type Factorization interface {
	// Ok reports whether the factorization is usable for solving. A false
	// Ok means the factor itself is complete (determinants still work)
	// but solving would divide by zero or amplify garbage.
	Ok() bool

	// Order returns the (rows, cols) of the factored matrix.
	Order() (rows, cols int)

	// LogAbsDet returns log|det A| and the sign of det A (-1, 0 or +1).
	// A zero sign means the matrix is exactly singular; the log value is
	// then -Inf. Rectangular factorizations report the determinant of
	// their square triangular factor.
	LogAbsDet() (float64, int)

	// SolveTo writes into dst the solution of A*X = B (or Aᵀ*X = B when
	// trans is true). dst is reshaped by the callee via fresh allocation
	// in the package-level helpers; here it must already have the right
	// shape. B is any Matrix; dst must not alias b's storage.
	SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error
}

// denseCopyGeneral materializes any Matrix into a fresh float64 lapack
// descriptor (row-major, stride == cols).
func denseCopyGeneral(a matrix.Matrix) (lapack.General[float64], error) {
	d, err := matrix.ToDense(a)
	if err != nil {
		return lapack.General[float64]{}, err
	}

	return lapack.General[float64]{
		Rows:   d.Rows(),
		Cols:   d.Cols(),
		Stride: d.Cols(),
		Data:   d.Raw(),
	}, nil
}

// denseFromGeneral wraps a descriptor's backing slice as a Dense (no
// copy; requires Stride == Cols, which every descriptor built in this
// package satisfies).
func denseFromGeneral(g lapack.General[float64]) *matrix.Dense {
	d, _ := matrix.NewDenseFromFlat(g.Rows, g.Cols, g.Data, matrix.WithNaNInfValidation(false))

	return d
}

// checkRHS validates the right-hand side shape against the system order.
func checkRHS(tag string, n int, b matrix.Matrix) error {
	if err := matrix.ValidateNotNil(b); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if b.Rows() != n {
		return fmt.Errorf("%s: rhs has %d rows, want %d: %w",
			tag, b.Rows(), n, lapack.ErrDimensionMismatch)
	}

	return nil
}

// checkDst validates a destination shape.
func checkDst(tag string, dst *matrix.Dense, rows, cols int) error {
	if dst == nil {
		return fmt.Errorf("%s: nil destination: %w", tag, lapack.ErrInvalidArgument)
	}
	if dst.Rows() != rows || dst.Cols() != cols {
		return fmt.Errorf("%s: destination is %dx%d, want %dx%d: %w",
			tag, dst.Rows(), dst.Cols(), rows, cols, lapack.ErrDimensionMismatch)
	}

	return nil
}

// copyGeneralTo copies a solved descriptor into the destination Dense.
func copyGeneralTo(dst *matrix.Dense, g lapack.General[float64]) {
	raw := dst.Raw()
	for i := 0; i < g.Rows; i++ {
		copy(raw[i*g.Cols:(i+1)*g.Cols], g.Data[i*g.Stride:i*g.Stride+g.Cols])
	}
}

// epsFloat64 is the float64 machine epsilon, 2^-52.
const epsFloat64 = 2.220446049250313e-16

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// logAbsFromDiag accumulates log|d_i| and the product sign over a
// diagonal walk. Any exact zero short-circuits to (-Inf, 0).
func logAbsFromDiag(at func(i int) float64, n int) (float64, int) {
	logAbs := 0.0
	sign := 1
	for i := 0; i < n; i++ {
		v := at(i)
		if v == 0 {
			return math.Inf(-1), 0
		}
		if v < 0 {
			sign = -sign
			v = -v
		}
		logAbs += math.Log(v)
	}

	return logAbs, sign
}

// Det returns the determinant of the factored matrix, reconstructed from
// LogAbsDet. Exact zero propagates as zero.
func Det(f Factorization) float64 {
	logAbs, sign := f.LogAbsDet()
	if sign == 0 {
		return 0
	}

	return float64(sign) * math.Exp(logAbs)
}

// LogDet returns log(det A) for a factorization with a positive
// determinant, failing with lapack.ErrNotPositiveDefinite otherwise. Use
// LogAbsDet directly when the sign is part of the answer.
func LogDet(f Factorization) (float64, error) {
	logAbs, sign := f.LogAbsDet()
	if sign <= 0 {
		return 0, fmt.Errorf("LogDet: determinant sign %d: %w",
			sign, lapack.ErrNotPositiveDefinite)
	}

	return logAbs, nil
}
