// SPDX-License-Identifier: MIT

// Package matrix - Bidiagonal variant: diagonal plus one adjacent
// off-diagonal (Upper: superdiagonal, Lower: subdiagonal).
//
// Complexity quicksheet:
//   - NewBidiagonal: O(n); At/Set: O(1); Clone: O(n).

package matrix

import "fmt"

// Bidiagonal is an n×n matrix with nonzeros on the main diagonal and on
// one adjacent off-diagonal selected at construction.
type Bidiagonal struct {
	side           Triangle
	d              []float64 // main diagonal, len n
	e              []float64 // off-diagonal, len n-1
	validateNaNInf bool
}

var _ Matrix = (*Bidiagonal)(nil)

// NewBidiagonal creates an n×n zero bidiagonal matrix whose off-diagonal
// sits above (Upper) or below (Lower) the main diagonal.
func NewBidiagonal(n int, side Triangle, opts ...Option) (*Bidiagonal, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !side.valid() {
		return nil, fmt.Errorf("NewBidiagonal: side %d: %w", side, ErrOutOfBand)
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bidiagonal{
		side:           side,
		d:              make([]float64, n),
		e:              make([]float64, n-1),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// NewBidiagonalFrom creates a bidiagonal matrix from its diagonals: d the
// main diagonal (len n), e the off-diagonal (len n-1). Slices are copied.
func NewBidiagonalFrom(d, e []float64, side Triangle, opts ...Option) (*Bidiagonal, error) {
	m, err := NewBidiagonal(len(d), side, opts...)
	if err != nil {
		return nil, err
	}
	if len(e) != len(d)-1 {
		return nil, fmt.Errorf("NewBidiagonalFrom: off-diagonal length %d, want %d: %w",
			len(e), len(d)-1, ErrDimensionMismatch)
	}
	copy(m.d, d)
	copy(m.e, e)

	return m, nil
}

// Rows returns the order n.
func (m *Bidiagonal) Rows() int { return len(m.d) }

// Cols returns the order n.
func (m *Bidiagonal) Cols() int { return len(m.d) }

// Side reports which off-diagonal is stored.
func (m *Bidiagonal) Side() Triangle { return m.side }

// onBand maps (i, j) to the backing slice, or returns nil when the
// position is a structural zero.
func (m *Bidiagonal) onBand(i, j int) *float64 {
	switch {
	case i == j:
		return &m.d[i]
	case m.side == Upper && j == i+1:
		return &m.e[i]
	case m.side == Lower && i == j+1:
		return &m.e[j]
	default:
		return nil
	}
}

// At returns m[i,j], synthesizing zeros outside the band.
func (m *Bidiagonal) At(i, j int) (float64, error) {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Bidiagonal.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	if p := m.onBand(i, j); p != nil {
		return *p, nil
	}

	return 0, nil
}

// Set stores v inside the band; writes outside fail with ErrOutOfBand.
func (m *Bidiagonal) Set(i, j int, v float64) error {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("Bidiagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	p := m.onBand(i, j)
	if p == nil {
		return fmt.Errorf("Bidiagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfBand)
	}
	if err := checkFinite(m.validateNaNInf, v); err != nil {
		return fmt.Errorf("Bidiagonal.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	*p = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Bidiagonal) Clone() Matrix {
	d := make([]float64, len(m.d))
	e := make([]float64, len(m.e))
	copy(d, m.d)
	copy(e, m.e)

	return &Bidiagonal{side: m.side, d: d, e: e, validateNaNInf: m.validateNaNInf}
}

// Diags exposes the stored diagonals (main, off). Mutations are visible to
// the matrix.
func (m *Bidiagonal) Diags() (d, e []float64) { return m.d, m.e }
