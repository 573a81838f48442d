// SPDX-License-Identifier: MIT

// Package lapack: argument descriptors and mode flags.
// This file defines ONLY the transient call-descriptor types handed to
// kernels (General, Vector) and the symbolic mode selectors (Uplo, Diag,
// Trans) together with their single-character native codes. Validation
// lives in layout.go; kernels live in the reference_*.go files.

package lapack

// Float is the constraint over the supported real element kinds.
// Kernels are generic over Float; the swappable Backend interface is fixed
// at float64 (the element width is a process-wide decision, see backend.go).
type Float interface {
	~float32 | ~float64
}

// General is a row-major rectangular matrix descriptor.
//   - Rows, Cols are the logical dimensions.
//   - Stride is the leading dimension: the distance between the first
//     elements of consecutive rows. Stride >= Cols always.
//   - Data holds at least (Rows-1)*Stride + Cols elements; element (i,j)
//     lives at Data[i*Stride+j].
//
// A General is a transient view: it never owns Data and is cheap to copy.
type General[T Float] struct {
	Rows, Cols int
	Stride     int
	Data       []T
}

// At returns element (i, j). No bounds check: descriptors are validated
// once at the entry point, not per element.
func (g General[T]) At(i, j int) T { return g.Data[i*g.Stride+j] }

// SetAt assigns element (i, j).
func (g General[T]) SetAt(i, j int, v T) { g.Data[i*g.Stride+j] = v }

// Vector is a strided vector descriptor: element i lives at Data[i*Inc].
// Inc must be positive; contiguity (Inc == 1) is a precondition of most
// kernels and is enforced by Chkstride1.
type Vector[T Float] struct {
	N    int
	Inc  int
	Data []T
}

// Uplo selects which triangle of a symmetric or triangular argument holds
// the meaningful data.
type Uplo byte

// Diag selects whether a triangular argument has an implicit unit diagonal.
type Diag byte

// Trans selects the operation applied to a matrix argument.
type Trans byte

// Side selects whether an orthogonal factor is applied from the left or
// the right.
type Side byte

// Native single-character mode codes. These are the exact bytes marshaled
// into kernel calls; CharUplo and friends reject anything else.
const (
	Upper Uplo = 'U'
	Lower Uplo = 'L'

	NonUnit Diag = 'N'
	Unit    Diag = 'U'

	NoTrans   Trans = 'N'
	Transpose Trans = 'T'
	ConjTrans Trans = 'C'

	Left  Side = 'L'
	Right Side = 'R'
)
