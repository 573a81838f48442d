// SPDX-License-Identifier: MIT

// Package lapack: layout validation.
//
// Purpose:
//   - Provide a single, canonical source of truth for the memory-layout
//     checks gating every kernel call: contiguity, leading dimension,
//     squareness and flag well-formedness.
//   - Return plain sentinel errors wrapped with the validator tag so call
//     sites can match via errors.Is and still see which check fired.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.
//   - Every argument of a variadic check is inspected left-to-right; the
//     reported failure names the first offending position.

package lapack

import "fmt"

// Stride1 returns the unit-advance stride of v's first dimension. For
// contiguous storage this is 1 by construction; for strided views it is
// the view's step.
func Stride1[T Float](v Vector[T]) int { return v.Inc }

// Chkstride1 fails with ErrLayout unless every argument is contiguous
// (Inc == 1). All arguments are checked left-to-right; the error names the
// first failing position so the caller knows exactly which operand to fix.
func Chkstride1[T Float](vs ...Vector[T]) error {
	for i, v := range vs {
		if v.Inc != 1 {
			return fmt.Errorf("Chkstride1: argument %d has stride %d: %w", i, v.Inc, ErrLayout)
		}
	}

	return nil
}

// CheckGeneral validates a General descriptor: positive-or-zero dimensions,
// Stride >= max(1, Cols), and a backing slice large enough for the last
// element. Kernels assume these hold and index without bounds checks.
func CheckGeneral[T Float](g General[T]) error {
	if g.Rows < 0 || g.Cols < 0 {
		return fmt.Errorf("CheckGeneral: %dx%d: %w", g.Rows, g.Cols, ErrDimensionMismatch)
	}
	minStride := g.Cols
	if minStride < 1 {
		minStride = 1
	}
	if g.Stride < minStride {
		return fmt.Errorf("CheckGeneral: stride %d < cols %d: %w", g.Stride, g.Cols, ErrLayout)
	}
	if g.Rows > 0 && len(g.Data) < (g.Rows-1)*g.Stride+g.Cols {
		return fmt.Errorf("CheckGeneral: backing slice too short (%d): %w", len(g.Data), ErrLayout)
	}

	return nil
}

// CheckSquare returns the common dimension n when g is square, and fails
// with ErrDimensionMismatch reporting the actual (rows, cols) otherwise.
func CheckSquare[T Float](g General[T]) (int, error) {
	if g.Rows != g.Cols {
		return 0, fmt.Errorf("CheckSquare: (%d,%d): %w", g.Rows, g.Cols, ErrDimensionMismatch)
	}

	return g.Rows, nil
}

// CheckSquareAll validates a sequence of matrices and returns the sequence
// of their dimensions. It fails on the first non-square argument but the
// error identifies which one, so a multi-operand call site reports a
// precise diagnosis.
func CheckSquareAll[T Float](gs ...General[T]) ([]int, error) {
	dims := make([]int, len(gs))
	for i, g := range gs {
		n, err := CheckSquare(g)
		if err != nil {
			return nil, fmt.Errorf("CheckSquareAll: argument %d: %w", i, err)
		}
		dims[i] = n
	}

	return dims, nil
}

// CharUplo maps a symbolic upper/lower selector to the native
// single-character code, failing with ErrInvalidArgument for any other
// value.
func CharUplo(u Uplo) (byte, error) {
	switch u {
	case Upper, Lower:
		return byte(u), nil
	default:
		return 0, fmt.Errorf("CharUplo: %q: %w", byte(u), ErrInvalidArgument)
	}
}

// CharDiag maps a unit/non-unit diagonal selector to its native code.
func CharDiag(d Diag) (byte, error) {
	switch d {
	case NonUnit, Unit:
		return byte(d), nil
	default:
		return 0, fmt.Errorf("CharDiag: %q: %w", byte(d), ErrInvalidArgument)
	}
}

// CharSide maps a left/right multiplication selector to its native code.
func CharSide(s Side) (byte, error) {
	switch s {
	case Left, Right:
		return byte(s), nil
	default:
		return 0, fmt.Errorf("CharSide: %q: %w", byte(s), ErrInvalidArgument)
	}
}

// CharTrans maps a transpose selector to its native code. ConjTrans is
// accepted and collapses to Transpose over the real element kinds.
func CharTrans(t Trans) (byte, error) {
	switch t {
	case NoTrans, Transpose, ConjTrans:
		return byte(t), nil
	default:
		return 0, fmt.Errorf("CharTrans: %q: %w", byte(t), ErrInvalidArgument)
	}
}
