// SPDX-License-Identifier: MIT

// Package factor - Bunch-Kaufman factorization of symmetric indefinite
// matrices.

package factor

import (
	"errors"
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// BunchKaufman holds A = L*D*Lᵀ of a symmetric (possibly indefinite)
// matrix, with D block diagonal over 1x1 and 2x2 pivot blocks.
type BunchKaufman struct {
	ldl  lapack.General[float64]
	ipiv []int
	n    int
	ok   bool
}

var _ Factorization = (*BunchKaufman)(nil)

// NewBunchKaufman factors a symmetric matrix with rook-free Bunch-Kaufman
// pivoting. Indefiniteness is fine; only an exactly singular D block
// degrades the result (Ok() == false, wrapped lapack.ErrSingular).
//
// Errors: matrix.ErrNonSquare, matrix.ErrAsymmetry, lapack.ErrSingular.
// Complexity: O(n³).
func NewBunchKaufman(a matrix.Matrix) (*BunchKaufman, error) {
	const tag = "NewBunchKaufman"
	if err := matrix.ValidateSymmetric(a, symTolerance); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &BunchKaufman{ldl: g, ipiv: make([]int, g.Rows), n: g.Rows, ok: true}

	if err = lapack.Sytrf(lapack.Lower, f.ldl, f.ipiv); err != nil {
		if !errors.Is(err, lapack.ErrSingular) {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Ok reports whether every D block is nonsingular.
func (f *BunchKaufman) Ok() bool { return f.ok }

// Order returns (n, n).
func (f *BunchKaufman) Order() (int, int) { return f.n, f.n }

// Pivots returns the Bunch-Kaufman pivot record: a non-negative entry
// marks a 1x1 block interchanged with that row; a negative pair marks a
// 2x2 block. The slice is aliased, treat it as read-only.
func (f *BunchKaufman) Pivots() []int { return f.ipiv }

// LogAbsDet walks the block diagonal of D: 1x1 blocks contribute their
// entry, 2x2 blocks their 2x2 determinant d11·d22 - d21².
func (f *BunchKaufman) LogAbsDet() (float64, int) {
	logAbs := 0.0
	sign := 1
	for k := 0; k < f.n; {
		if f.ipiv[k] >= 0 {
			d := f.ldl.At(k, k)
			if d == 0 {
				return math.Inf(-1), 0
			}
			if d < 0 {
				sign = -sign
				d = -d
			}
			logAbs += math.Log(d)
			k++

			continue
		}
		// 2x2 block over rows (k, k+1), lower triangle storage.
		d11 := f.ldl.At(k, k)
		d22 := f.ldl.At(k+1, k+1)
		d21 := f.ldl.At(k+1, k)
		det := d11*d22 - d21*d21
		if det == 0 {
			return math.Inf(-1), 0
		}
		if det < 0 {
			sign = -sign
			det = -det
		}
		logAbs += math.Log(det)
		k += 2
	}

	return logAbs, sign
}

// SolveTo writes the solution of A*X = B into dst. A is symmetric, so the
// trans flag is accepted and ignored.
func (f *BunchKaufman) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "BunchKaufman.SolveTo"
	_ = trans // Aᵀ == A
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.n, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}

	x, err := denseCopyGeneral(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Sytrs(lapack.Lower, f.ldl, f.ipiv, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}
