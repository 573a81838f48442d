// SPDX-License-Identifier: MIT

// Package matrix - Tridiagonal and SymTridiagonal variants.
//
// Purpose:
//   - O(n) storage for three-band operators. Tridiagonal keeps three
//     independent diagonals; SymTridiagonal stores the main diagonal and a
//     single off-diagonal mirrored across it, so a Set at (i, i+1) is the
//     same write as (i+1, i).
//
// Complexity quicksheet:
//   - Constructors: O(n); At/Set: O(1); Clone: O(n).

package matrix

import "fmt"

// Tridiagonal is an n×n matrix with nonzeros on the sub-, main and
// super-diagonals.
type Tridiagonal struct {
	dl             []float64 // subdiagonal, len n-1
	d              []float64 // main diagonal, len n
	du             []float64 // superdiagonal, len n-1
	validateNaNInf bool
}

var _ Matrix = (*Tridiagonal)(nil)

// NewTridiagonal creates an n×n zero tridiagonal matrix.
func NewTridiagonal(n int, opts ...Option) (*Tridiagonal, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tridiagonal{
		dl:             make([]float64, n-1),
		d:              make([]float64, n),
		du:             make([]float64, n-1),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// NewTridiagonalFrom creates a tridiagonal matrix from its diagonals:
// dl the subdiagonal (len n-1), d the main diagonal (len n), du the
// superdiagonal (len n-1). Slices are copied.
func NewTridiagonalFrom(dl, d, du []float64, opts ...Option) (*Tridiagonal, error) {
	m, err := NewTridiagonal(len(d), opts...)
	if err != nil {
		return nil, err
	}
	if len(dl) != len(d)-1 || len(du) != len(d)-1 {
		return nil, fmt.Errorf("NewTridiagonalFrom: off-diagonal lengths (%d,%d), want %d: %w",
			len(dl), len(du), len(d)-1, ErrDimensionMismatch)
	}
	copy(m.dl, dl)
	copy(m.d, d)
	copy(m.du, du)

	return m, nil
}

// Rows returns the order n.
func (m *Tridiagonal) Rows() int { return len(m.d) }

// Cols returns the order n.
func (m *Tridiagonal) Cols() int { return len(m.d) }

// onBand maps (i, j) to the backing slice, nil for structural zeros.
func (m *Tridiagonal) onBand(i, j int) *float64 {
	switch {
	case i == j:
		return &m.d[i]
	case j == i+1:
		return &m.du[i]
	case i == j+1:
		return &m.dl[j]
	default:
		return nil
	}
}

// At returns m[i,j], synthesizing zeros outside the band.
func (m *Tridiagonal) At(i, j int) (float64, error) {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Tridiagonal.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	if p := m.onBand(i, j); p != nil {
		return *p, nil
	}

	return 0, nil
}

// Set stores v inside the band; writes outside fail with ErrOutOfBand.
func (m *Tridiagonal) Set(i, j int, v float64) error {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("Tridiagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	p := m.onBand(i, j)
	if p == nil {
		return fmt.Errorf("Tridiagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfBand)
	}
	if err := checkFinite(m.validateNaNInf, v); err != nil {
		return fmt.Errorf("Tridiagonal.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	*p = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Tridiagonal) Clone() Matrix {
	dl := make([]float64, len(m.dl))
	d := make([]float64, len(m.d))
	du := make([]float64, len(m.du))
	copy(dl, m.dl)
	copy(d, m.d)
	copy(du, m.du)

	return &Tridiagonal{dl: dl, d: d, du: du, validateNaNInf: m.validateNaNInf}
}

// Diags exposes the stored diagonals (sub, main, super). Mutations are
// visible to the matrix.
func (m *Tridiagonal) Diags() (dl, d, du []float64) { return m.dl, m.d, m.du }

// SymTridiagonal is an n×n symmetric matrix with nonzeros on the main
// diagonal and the two mirrored off-diagonals, stored once.
type SymTridiagonal struct {
	d              []float64 // main diagonal, len n
	e              []float64 // off-diagonal, len n-1, shared by both sides
	validateNaNInf bool
}

var _ Matrix = (*SymTridiagonal)(nil)

// NewSymTridiagonal creates an n×n zero symmetric tridiagonal matrix.
func NewSymTridiagonal(n int, opts ...Option) (*SymTridiagonal, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &SymTridiagonal{
		d:              make([]float64, n),
		e:              make([]float64, n-1),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// NewSymTridiagonalFrom creates a symmetric tridiagonal matrix from d
// (len n) and e (len n-1). Slices are copied.
func NewSymTridiagonalFrom(d, e []float64, opts ...Option) (*SymTridiagonal, error) {
	m, err := NewSymTridiagonal(len(d), opts...)
	if err != nil {
		return nil, err
	}
	if len(e) != len(d)-1 {
		return nil, fmt.Errorf("NewSymTridiagonalFrom: off-diagonal length %d, want %d: %w",
			len(e), len(d)-1, ErrDimensionMismatch)
	}
	copy(m.d, d)
	copy(m.e, e)

	return m, nil
}

// Rows returns the order n.
func (m *SymTridiagonal) Rows() int { return len(m.d) }

// Cols returns the order n.
func (m *SymTridiagonal) Cols() int { return len(m.d) }

// At returns m[i,j]; (i, i+1) and (i+1, i) read the same stored entry.
func (m *SymTridiagonal) At(i, j int) (float64, error) {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("SymTridiagonal.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	switch {
	case i == j:
		return m.d[i], nil
	case j == i+1:
		return m.e[i], nil
	case i == j+1:
		return m.e[j], nil
	default:
		return 0, nil
	}
}

// Set stores v inside the band; an off-diagonal write updates both
// mirrored positions at once. Writes outside fail with ErrOutOfBand.
func (m *SymTridiagonal) Set(i, j int, v float64) error {
	n := len(m.d)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("SymTridiagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if err := checkFinite(m.validateNaNInf, v); err != nil {
		return fmt.Errorf("SymTridiagonal.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	switch {
	case i == j:
		m.d[i] = v
	case j == i+1:
		m.e[i] = v
	case i == j+1:
		m.e[j] = v
	default:
		return fmt.Errorf("SymTridiagonal.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfBand)
	}

	return nil
}

// Clone returns an independent deep copy.
func (m *SymTridiagonal) Clone() Matrix {
	d := make([]float64, len(m.d))
	e := make([]float64, len(m.e))
	copy(d, m.d)
	copy(e, m.e)

	return &SymTridiagonal{d: d, e: e, validateNaNInf: m.validateNaNInf}
}

// Diags exposes the stored diagonals (main, off). Mutations are visible to
// the matrix.
func (m *SymTridiagonal) Diags() (d, e []float64) { return m.d, m.e }
