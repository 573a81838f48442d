// SPDX-License-Identifier: MIT

// Package matrix - trace and structure-aware determinants.
//
// Purpose:
//   - Dispatch on the concrete variant: diagonal-product forms for
//     Diagonal/Bidiagonal/Triangular, the three-term continuant recurrence
//     for the tridiagonal family, and a partially pivoted elimination on a
//     dense copy for everything else.
//   - The generic fallback never mutates its input.
//
// Complexity quicksheet:
//   - Trace: O(n); structured Det: O(n); dense fallback: O(n³).

package matrix

import "math"

// Trace returns the sum of diagonal elements of a square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Trace(a Matrix) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum, v float64
	n := a.Rows()
	for i := 0; i < n; i++ {
		v, _ = a.At(i, i)
		sum += v
	}

	return sum, nil
}

// Det returns the determinant of a square matrix, dispatching on the
// concrete variant before falling back to dense elimination.
//
// Implementation:
//   - Diagonal, Bidiagonal, Triangular: product of diagonal entries (a
//     unit Triangular contributes 1 per implicit diagonal one).
//   - Tridiagonal, SymTridiagonal: continuant recurrence
//     f(k) = d(k)·f(k-1) - dl(k-1)·du(k-1)·f(k-2).
//   - Views unwrap (det(Aᵀ) == det(A)); everything else runs partially
//     pivoted Gaussian elimination on a dense copy with sign tracking.
//
// Errors: ErrNilMatrix, ErrNonSquare. An exactly singular fallback input
// returns 0 with a nil error; singularity is a value here, not a failure.
func Det(a Matrix) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	switch m := a.(type) {
	case *Diagonal:
		return prod(m.d), nil
	case *Bidiagonal:
		return prod(m.d), nil
	case *Triangular:
		if m.Unit() {
			return 1, nil
		}
		det := 1.0
		for i := 0; i < m.n; i++ {
			det *= m.data[i*m.n+i]
		}

		return det, nil
	case *Tridiagonal:
		return continuant(m.d, m.dl, m.du), nil
	case *SymTridiagonal:
		return continuant(m.d, m.e, m.e), nil
	case *TransposeView:
		return Det(m.base)
	case *AdjointView:
		return Det(m.base)
	}

	return detDense(a)
}

// prod multiplies the entries of d in index order.
func prod(d []float64) float64 {
	det := 1.0
	for _, v := range d {
		det *= v
	}

	return det
}

// continuant evaluates the tridiagonal determinant recurrence with main
// diagonal d and off-diagonals dl, du (len n-1 each).
func continuant(d, dl, du []float64) float64 {
	n := len(d)
	if n == 0 {
		return 1
	}
	prev := 1.0 // f(-1)
	cur := d[0] // f(0)
	for k := 1; k < n; k++ {
		next := d[k]*cur - dl[k-1]*du[k-1]*prev
		prev, cur = cur, next
	}

	return cur
}

// detDense runs partially pivoted Gaussian elimination on a dense copy,
// accumulating the pivot product and the permutation sign.
func detDense(a Matrix) (float64, error) {
	d, err := ToDense(a)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := d.r
	det := 1.0
	for k := 0; k < n; k++ {
		// Partial pivoting: largest |entry| in column k at or below row k.
		p := k
		max := math.Abs(d.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(d.data[i*n+k]); v > max {
				max, p = v, i
			}
		}
		if max == 0 {
			return 0, nil
		}
		if p != k {
			for j := 0; j < n; j++ {
				d.data[k*n+j], d.data[p*n+j] = d.data[p*n+j], d.data[k*n+j]
			}
			det = -det
		}
		pivot := d.data[k*n+k]
		det *= pivot
		for i := k + 1; i < n; i++ {
			f := d.data[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				d.data[i*n+j] -= f * d.data[k*n+j]
			}
		}
	}

	return det, nil
}
