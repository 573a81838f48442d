// SPDX-License-Identifier: MIT

// Package matrix - public Matrix contract and shared enumerations.
//
// Purpose:
//   - Declare the minimal interface every storage variant implements.
//   - Keep the surface small: algorithms needing more (flat buffers, band
//     accessors) type-switch on the concrete variants.
//
// Notes:
//   - At/Set return errors instead of panicking; out-of-range access is a
//     user error, not a programmer error.
//   - Clone performs a deep copy preserving the concrete type, so a cloned
//     Triangular is still a Triangular.

package matrix

// Matrix is the public contract shared by every storage variant.
//
// Behavior highlights:
//   - At returns the mathematical element, including implicit zeros a
//     structured variant does not store and the implicit unit diagonal of
//     a unit Triangular.
//   - Set rejects writes the receiver cannot represent with ErrOutOfBand;
//     nothing densifies silently.
//
// Complexity: At/Set are O(1) for every variant in this package.
type Matrix interface {
	// Rows returns the number of rows (>= 0).
	Rows() int
	// Cols returns the number of columns (>= 0).
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
	// Set stores v at (i, j). Errors: ErrOutOfRange, ErrOutOfBand and,
	// when the numeric policy is active, ErrNaNInf.
	Set(i, j int, v float64) error
	// Clone returns a deep copy with the same concrete type.
	Clone() Matrix
}

// Triangle selects which triangle of a Triangular, Symmetric or Bidiagonal
// variant is stored (or, for Bidiagonal, which off-diagonal exists).
type Triangle int

const (
	// Lower selects the lower triangle / subdiagonal.
	Lower Triangle = iota
	// Upper selects the upper triangle / superdiagonal.
	Upper
)

// String returns "Lower" or "Upper" for diagnostics.
func (t Triangle) String() string {
	if t == Upper {
		return "Upper"
	}

	return "Lower"
}

// valid reports whether t is one of the two declared selectors.
func (t Triangle) valid() bool { return t == Lower || t == Upper }
