// SPDX-License-Identifier: MIT

// Package matrix - Triangular variant: one stored triangle, optionally
// with an implicit unit diagonal.
//
// Purpose:
//   - Back the triangular solve path with a type whose structure cannot be
//     violated: the untouched triangle is a guaranteed zero, not a
//     convention.
//
// Complexity quicksheet:
//   - NewTriangular: O(n²); At/Set: O(1); Clone: O(n²).

package matrix

import "fmt"

// Triangular is an n×n matrix whose nonzeros live in one triangle. A unit
// Triangular additionally has an implicit all-ones diagonal that is
// neither stored nor writable.
type Triangular struct {
	n              int
	tri            Triangle
	unit           bool
	data           []float64 // full n×n row-major buffer, one triangle used
	validateNaNInf bool
}

var _ Matrix = (*Triangular)(nil)

// NewTriangular creates an n×n zero triangular matrix storing the given
// triangle. When unit is true the diagonal reads as 1 and rejects writes.
func NewTriangular(n int, tri Triangle, unit bool, opts ...Option) (*Triangular, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !tri.valid() {
		return nil, fmt.Errorf("NewTriangular: triangle %d: %w", tri, ErrOutOfBand)
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Triangular{
		n:              n,
		tri:            tri,
		unit:           unit,
		data:           make([]float64, n*n),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// Rows returns the order n.
func (m *Triangular) Rows() int { return m.n }

// Cols returns the order n.
func (m *Triangular) Cols() int { return m.n }

// Tri reports which triangle is stored.
func (m *Triangular) Tri() Triangle { return m.tri }

// Unit reports whether the diagonal is implicitly all ones.
func (m *Triangular) Unit() bool { return m.unit }

// inTriangle reports whether (i, j) belongs to the writable pattern.
func (m *Triangular) inTriangle(i, j int) bool {
	if i == j {
		return !m.unit
	}
	if m.tri == Lower {
		return i > j
	}

	return j > i
}

// At returns m[i,j]: stored entries inside the triangle, 1 on a unit
// diagonal, 0 everywhere else.
func (m *Triangular) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Triangular.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	if i == j && m.unit {
		return 1, nil
	}
	if m.inTriangle(i, j) {
		return m.data[i*m.n+j], nil
	}

	return 0, nil
}

// Set stores v inside the stored triangle. Writes to the opposite triangle
// or to a unit diagonal fail with ErrOutOfBand.
func (m *Triangular) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Triangular.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if !m.inTriangle(i, j) {
		return fmt.Errorf("Triangular.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfBand)
	}
	if err := checkFinite(m.validateNaNInf, v); err != nil {
		return fmt.Errorf("Triangular.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Triangular) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Triangular{
		n: m.n, tri: m.tri, unit: m.unit,
		data: buf, validateNaNInf: m.validateNaNInf,
	}
}

// Raw exposes the full row-major buffer (stride == n; only the stored
// triangle carries data). The factor package feeds it to the triangular
// solve kernels without copying.
func (m *Triangular) Raw() []float64 { return m.data }
