// SPDX-License-Identifier: MIT

// Package matrix - lazy transpose and adjoint views.
//
// Purpose:
//   - Represent Aᵀ (and Aᴴ) without moving data: a view swaps indices on
//     every access and stays live against mutations of the base matrix.
//   - T(T(A)) unwraps back to A instead of stacking views.
//
// Complexity quicksheet:
//   - T/Adjoint: O(1); At/Set through a view: O(1) plus the base cost.

package matrix

import "fmt"

// TransposeView is a no-copy view presenting the transpose of its base.
type TransposeView struct {
	base Matrix
}

var _ Matrix = (*TransposeView)(nil)

// T returns the transpose of m as a lazy view. Transposing a
// TransposeView unwraps it, so T(T(m)) == m.
func T(m Matrix) Matrix {
	if tv, ok := m.(*TransposeView); ok {
		return tv.base
	}

	return &TransposeView{base: m}
}

// Untranspose returns the base matrix the view indexes into.
func (v *TransposeView) Untranspose() Matrix { return v.base }

// Rows returns the base column count.
func (v *TransposeView) Rows() int { return v.base.Cols() }

// Cols returns the base row count.
func (v *TransposeView) Cols() int { return v.base.Rows() }

// At returns base[j, i].
func (v *TransposeView) At(i, j int) (float64, error) {
	x, err := v.base.At(j, i)
	if err != nil {
		return 0, fmt.Errorf("TransposeView.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	return x, nil
}

// Set writes base[j, i]; structural errors of the base pass through.
func (v *TransposeView) Set(i, j int, x float64) error {
	if err := v.base.Set(j, i, x); err != nil {
		return fmt.Errorf("TransposeView.%s(%d,%d): %w", ctxSet, i, j, err)
	}

	return nil
}

// Clone materializes the transpose into a fresh Dense; views do not clone
// lazily because the result must be independent of the base.
func (v *TransposeView) Clone() Matrix {
	r, c := v.Rows(), v.Cols()
	d, _ := NewDense(r, c, WithNaNInfValidation(false))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, _ := v.At(i, j)
			d.data[i*c+j] = x
		}
	}

	return d
}

// AdjointView is a no-copy view presenting the conjugate transpose of its
// base. Over the real element domain it reads exactly like TransposeView;
// the distinct type preserves caller intent.
type AdjointView struct {
	TransposeView
}

var _ Matrix = (*AdjointView)(nil)

// Adjoint returns the conjugate transpose of m as a lazy view; adjoining
// an AdjointView unwraps it.
func Adjoint(m Matrix) Matrix {
	if av, ok := m.(*AdjointView); ok {
		return av.base
	}

	return &AdjointView{TransposeView: TransposeView{base: m}}
}

// Unadjoint returns the base matrix the view indexes into.
func (v *AdjointView) Unadjoint() Matrix { return v.base }
