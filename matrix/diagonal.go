// SPDX-License-Identifier: MIT

// Package matrix - Diagonal variant: n×n matrix storing only its diagonal.
//
// Purpose:
//   - O(n) storage for diagonal operators; At synthesizes the implicit
//     zeros, Set refuses to break the structure.
//
// Complexity quicksheet:
//   - NewDiagonal: O(n); At/Set: O(1); Clone: O(n).

package matrix

import "fmt"

// Diagonal is an n×n matrix with nonzeros confined to the main diagonal.
type Diagonal struct {
	d              []float64
	validateNaNInf bool
}

var _ Matrix = (*Diagonal)(nil)

// NewDiagonal creates an n×n zero diagonal matrix.
func NewDiagonal(n int, opts ...Option) (*Diagonal, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Diagonal{d: make([]float64, n), validateNaNInf: cfg.validateNaNInf}, nil
}

// NewDiagonalFrom creates a diagonal matrix from the given diagonal
// entries. The slice is copied.
func NewDiagonalFrom(d []float64, opts ...Option) (*Diagonal, error) {
	m, err := NewDiagonal(len(d), opts...)
	if err != nil {
		return nil, err
	}
	copy(m.d, d)

	return m, nil
}

// Rows returns the order n.
func (m *Diagonal) Rows() int { return len(m.d) }

// Cols returns the order n.
func (m *Diagonal) Cols() int { return len(m.d) }

// At returns m[i,j]: the stored entry on the diagonal, zero elsewhere.
func (m *Diagonal) At(i, j int) (float64, error) {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Diagonal.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	if i != j {
		return 0, nil
	}

	return m.d[i], nil
}

// Set stores v at (i, j); off-diagonal writes fail with ErrOutOfBand.
func (m *Diagonal) Set(i, j int, v float64) error {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("Diagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if i != j {
		return fmt.Errorf("Diagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfBand)
	}
	if err := checkFinite(m.validateNaNInf, v); err != nil {
		return fmt.Errorf("Diagonal.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	m.d[i] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Diagonal) Clone() Matrix {
	buf := make([]float64, len(m.d))
	copy(buf, m.d)

	return &Diagonal{d: buf, validateNaNInf: m.validateNaNInf}
}

// Diag exposes the stored diagonal. Mutating the returned slice mutates
// the matrix; the factor package relies on this for copy-free solving.
func (m *Diagonal) Diag() []float64 { return m.d }
