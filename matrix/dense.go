// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a
//     single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf attaches method context and coordinates to a sentinel error
// for diagnostics: "Dense.<method>(row,col): <sentinel>". The sentinel
// stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy
//     default from options.go).
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply options.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a rectangular slice of rows. Every
// row must have the same length; the input is copied, not aliased.
//
// Errors:
//   - ErrInvalidDimensions on an empty outer or inner slice.
//   - ErrDimensionMismatch on ragged rows.
//   - ErrNaNInf when the numeric policy rejects a value.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	d, err := NewDense(len(rows), c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d entries, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// NewDenseFromFlat wraps an existing row-major buffer of length rows*cols.
// The buffer is ALIASED, not copied: mutations through the Dense are
// visible to the caller and vice versa. Use Clone for an independent copy.
func NewDenseFromFlat(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromFlat: buffer length %d, want %d: %w",
			len(data), rows*cols, ErrDimensionMismatch)
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: cfg.validateNaNInf}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set stores v at (i, j).
//
// Errors:
//   - ErrOutOfRange on a bad index.
//   - ErrNaNInf when the numeric policy is active and v is not finite.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Clone returns an independent deep copy.
func (d *Dense) Clone() Matrix {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf, validateNaNInf: d.validateNaNInf}
}

// Raw exposes the backing row-major buffer (stride == Cols). The factor
// package feeds it to the lapack kernels without copying. Mutating the
// returned slice mutates the matrix.
func (d *Dense) Raw() []float64 { return d.data }

// String renders the matrix row by row: "[v, v, ...]\n" per row.
// Intended for diagnostics, not serialization.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
