// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// Schur holds the real Schur decomposition A = Z*T*Zᵀ, with T quasi upper
// triangular (1x1 and 2x2 diagonal blocks) and Z orthogonal. Like the
// other spectral results it is not a Factorization; there is nothing to
// solve against.
type Schur struct {
	t      lapack.General[float64]
	z      lapack.General[float64]
	wr, wi []float64
	n      int
	ok     bool
}

// NewSchur computes the real Schur form of a square matrix by Hessenberg
// reduction followed by the shifted QR iteration. Non-convergence leaves
// the partially reduced form in place (Ok() == false, wrapped
// lapack.ErrConvergence).
//
// Errors: matrix.ErrNonSquare, lapack.ErrConvergence. Complexity: O(n³).
func NewSchur(a matrix.Matrix) (*Schur, error) {
	const tag = "NewSchur"
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := g.Rows
	f := &Schur{
		t:  g,
		z:  lapack.General[float64]{Rows: n, Cols: n, Stride: maxInt(n, 1), Data: make([]float64, n*n)},
		wr: make([]float64, n),
		wi: make([]float64, n),
		n:  n,
		ok: true,
	}
	var tau []float64
	if n > 1 {
		tau = make([]float64, n-1)
	}
	if err = lapack.Gehrd(f.t, tau); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Orghr(f.t, tau, f.z); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Hseqr(f.t, f.z, f.wr, f.wi); err != nil {
		if !errors.Is(err, lapack.ErrConvergence) {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Ok reports whether the QR iteration converged for every eigenvalue.
func (f *Schur) Ok() bool { return f.ok }

// Order returns the matrix dimension.
func (f *Schur) Order() int { return f.n }

// Values appends the eigenvalues read off the diagonal blocks of T to
// (re, im) and returns the extended slices. Complex pairs come out
// conjugated in adjacent positions.
func (f *Schur) Values(re, im []float64) ([]float64, []float64) {
	re = append(re, f.wr...)
	im = append(im, f.wi...)

	return re, im
}

// UnpackT materializes the quasi triangular factor.
func (f *Schur) UnpackT() *matrix.Dense {
	t, _ := matrix.NewDense(f.n, f.n, matrix.WithNaNInfValidation(false))
	for i := 0; i < f.n; i++ {
		lo := 0
		if i > 1 {
			lo = i - 1
		}
		for j := lo; j < f.n; j++ {
			_ = t.Set(i, j, f.t.At(i, j))
		}
	}

	return t
}

// UnpackZ materializes the orthogonal Schur basis.
func (f *Schur) UnpackZ() *matrix.Dense {
	return denseFromGeneral(f.z)
}

// Reorder moves the selected 1x1 eigenvalue blocks to the leading corner
// of T by adjacent swaps, updating Z and the stored eigenvalues. Selecting
// one half of a complex pair fails with a wrapped lapack.ErrInvalidArgument
// since 2x2 blocks cannot move.
func (f *Schur) Reorder(selected []bool) error {
	const tag = "Schur.Reorder"
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrConvergence)
	}
	if len(selected) != f.n {
		return fmt.Errorf("%s: selection length %d, want %d: %w",
			tag, len(selected), f.n, lapack.ErrInvalidArgument)
	}
	sel := append([]bool(nil), selected...)
	top := 0
	for j := 0; j < f.n; j++ {
		if !sel[j] {
			continue
		}
		for k := j; k > top; k-- {
			if err := lapack.Trexc(f.t, f.z, k, k-1); err != nil {
				return fmt.Errorf("%s: %w", tag, err)
			}
			sel[k], sel[k-1] = sel[k-1], sel[k]
		}
		top++
	}
	for i := 0; i < f.n; i++ {
		f.wr[i] = f.t.At(i, i)
		f.wi[i] = 0
		if i+1 < f.n && f.t.At(i+1, i) != 0 {
			// Complex pair in a 2x2 block.
			p := 0.5 * (f.t.At(i, i) - f.t.At(i+1, i+1))
			disc := -p*p - f.t.At(i+1, i)*f.t.At(i, i+1)
			if disc > 0 {
				mid := 0.5 * (f.t.At(i, i) + f.t.At(i+1, i+1))
				q := math.Sqrt(disc)
				f.wr[i], f.wi[i] = mid, q
				f.wr[i+1], f.wi[i+1] = mid, -q
				i++
			}
		}
	}

	return nil
}

// NewGeneralizedSchur reduces the pencil (A, B) to the real Schur form of
// B⁻¹*A through an LU solve. B must be nonsingular.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// lapack.ErrSingular, lapack.ErrConvergence.
func NewGeneralizedSchur(a, b matrix.Matrix) (*Schur, error) {
	const tag = "NewGeneralizedSchur"
	c, err := whitenByLU(tag, a, b)
	if err != nil {
		return nil, err
	}
	f, err := NewSchur(c)
	if err != nil {
		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}
