// SPDX-License-Identifier: MIT

// Package matrix - Symmetric and Hermitian variants: one stored triangle
// mirrored across the diagonal.
//
// Purpose:
//   - Make symmetry a property of the type, not a convention: reads mirror
//     automatically and a single Set updates both (i, j) and (j, i).
//   - Over the real element domain a Hermitian matrix IS a symmetric
//     matrix; the distinct type is kept so call sites state intent and so
//     factorization dispatch can treat the two identically on purpose.
//
// Complexity quicksheet:
//   - NewSymmetric: O(n²); At/Set: O(1); Clone: O(n²).

package matrix

import "fmt"

// Symmetric is an n×n symmetric matrix. Only the triangle named at
// construction is stored; the other is synthesized by mirroring.
type Symmetric struct {
	n              int
	tri            Triangle
	data           []float64 // full n×n row-major buffer, one triangle used
	validateNaNInf bool
}

var _ Matrix = (*Symmetric)(nil)

// NewSymmetric creates an n×n zero symmetric matrix storing tri.
func NewSymmetric(n int, tri Triangle, opts ...Option) (*Symmetric, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !tri.valid() {
		return nil, fmt.Errorf("NewSymmetric: triangle %d: %w", tri, ErrOutOfBand)
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Symmetric{
		n:              n,
		tri:            tri,
		data:           make([]float64, n*n),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// Rows returns the order n.
func (m *Symmetric) Rows() int { return m.n }

// Cols returns the order n.
func (m *Symmetric) Cols() int { return m.n }

// Tri reports which triangle is stored.
func (m *Symmetric) Tri() Triangle { return m.tri }

// stored maps (i, j) into the stored triangle, mirroring when needed.
func (m *Symmetric) stored(i, j int) (int, int) {
	inTri := i <= j
	if m.tri == Lower {
		inTri = i >= j
	}
	if inTri {
		return i, j
	}

	return j, i
}

// At returns m[i,j], reading through the mirror.
func (m *Symmetric) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Symmetric.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	si, sj := m.stored(i, j)

	return m.data[si*m.n+sj], nil
}

// Set stores v at (i, j) AND (j, i) in one write; symmetry cannot be
// broken through the public surface.
func (m *Symmetric) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Symmetric.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if err := checkFinite(m.validateNaNInf, v); err != nil {
		return fmt.Errorf("Symmetric.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	si, sj := m.stored(i, j)
	m.data[si*m.n+sj] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Symmetric) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Symmetric{n: m.n, tri: m.tri, data: buf, validateNaNInf: m.validateNaNInf}
}

// Raw exposes the full row-major buffer (stride == n; only the stored
// triangle carries data). Consumers must respect Tri.
func (m *Symmetric) Raw() []float64 { return m.data }

// Hermitian is an n×n Hermitian matrix. Over the real element domain its
// behavior coincides with Symmetric; the separate type lets call sites and
// the factorization dispatch distinguish intent.
type Hermitian struct {
	Symmetric
}

var _ Matrix = (*Hermitian)(nil)

// NewHermitian creates an n×n zero Hermitian matrix storing tri.
func NewHermitian(n int, tri Triangle, opts ...Option) (*Hermitian, error) {
	s, err := NewSymmetric(n, tri, opts...)
	if err != nil {
		return nil, err
	}

	return &Hermitian{Symmetric: *s}, nil
}

// Clone returns an independent deep copy preserving the Hermitian type.
func (m *Hermitian) Clone() Matrix {
	s, _ := m.Symmetric.Clone().(*Symmetric)

	return &Hermitian{Symmetric: *s}
}
