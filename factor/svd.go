// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// SVD holds the thin singular value decomposition A = U*Σ*Vᵀ with
// descending singular values. Wide matrices are handled by factoring the
// transpose and swapping the roles of U and V.
type SVD struct {
	u, vt lapack.General[float64]
	s     []float64
	m, n  int
	wide  bool
	ok    bool
}

// NewSVD computes the thin SVD of an m x n matrix by one-sided Jacobi
// iteration. Non-convergence keeps the partial result (Ok() == false,
// wrapped lapack.ErrConvergence).
//
// Complexity: O(m·n·min(m,n)) per sweep.
func NewSVD(a matrix.Matrix) (*SVD, error) {
	const tag = "NewSVD"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &SVD{m: a.Rows(), n: a.Cols(), wide: a.Rows() < a.Cols(), ok: true}
	src := a
	if f.wide {
		src = matrix.T(a)
	}
	g, err := denseCopyGeneral(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	rows, cols := g.Rows, g.Cols
	f.s = make([]float64, cols)
	f.u = lapack.General[float64]{Rows: rows, Cols: cols, Stride: cols, Data: make([]float64, rows*cols)}
	f.vt = lapack.General[float64]{Rows: cols, Cols: cols, Stride: cols, Data: make([]float64, cols*cols)}
	if err = lapack.Gesvd(g, f.s, f.u, f.vt); err != nil {
		if !errors.Is(err, lapack.ErrConvergence) {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Ok reports whether the Jacobi sweeps converged.
func (f *SVD) Ok() bool { return f.ok }

// Order returns (m, n) of the original matrix.
func (f *SVD) Order() (int, int) { return f.m, f.n }

// Values appends the singular values, descending, and returns the
// extended slice.
func (f *SVD) Values(s []float64) []float64 { return append(s, f.s...) }

// Rank counts the singular values above tol·σ₁; pass tol <= 0 for an
// eps-scaled default.
func (f *SVD) Rank(tol float64) int {
	if len(f.s) == 0 || f.s[0] == 0 {
		return 0
	}
	if tol <= 0 {
		tol = float64(maxInt(f.m, f.n)) * epsFloat64
	}
	cutoff := tol * f.s[0]
	for k, v := range f.s {
		if v <= cutoff {
			return k
		}
	}

	return len(f.s)
}

// Cond returns the 2-norm condition number σ₁/σ_min, +Inf when the
// smallest singular value is zero.
func (f *SVD) Cond() float64 {
	if len(f.s) == 0 {
		return 0
	}
	smin := f.s[len(f.s)-1]
	if smin == 0 {
		return math.Inf(1)
	}

	return f.s[0] / smin
}

// UnpackU materializes the thin m x min(m,n) left factor.
func (f *SVD) UnpackU() *matrix.Dense {
	if f.wide {
		// U of A is V of Aᵀ, stored row-wise in vt.
		return denseFromGeneral(transposedGeneral(f.vt))
	}

	return denseFromGeneral(f.u)
}

// UnpackVt materializes the min(m,n) x n transposed right factor.
func (f *SVD) UnpackVt() *matrix.Dense {
	if f.wide {
		// Vᵀ of A is Uᵀ of Aᵀ.
		return denseFromGeneral(transposedGeneral(f.u))
	}

	return denseFromGeneral(f.vt)
}

// PseudoSolveTo writes the minimum-norm least-squares solution
// X = V*Σ⁺*Uᵀ*B into dst (n x nrhs), truncating at the numerical rank.
func (f *SVD) PseudoSolveTo(dst *matrix.Dense, b matrix.Matrix, tol float64) error {
	const tag = "SVD.PseudoSolveTo"
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrConvergence)
	}
	if err := checkRHS(tag, f.m, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	rank := f.Rank(tol)
	nrhs := b.Cols()
	u := f.u
	vt := f.vt
	if f.wide {
		u = transposedGeneral(f.vt)
		vt = transposedGeneral(f.u)
	}
	// y = Σ⁺·Uᵀ·b, truncated to the leading rank components.
	y := make([]float64, len(f.s))
	for j := 0; j < nrhs; j++ {
		for k := 0; k < rank; k++ {
			dot := 0.0
			for i := 0; i < f.m; i++ {
				bij, _ := b.At(i, j)
				dot += u.At(i, k) * bij
			}
			y[k] = dot / f.s[k]
		}
		for i := 0; i < f.n; i++ {
			sum := 0.0
			for k := 0; k < rank; k++ {
				sum += vt.At(k, i) * y[k]
			}
			_ = dst.Set(i, j, sum)
		}
	}

	return nil
}

// NewGeneralizedSVD reduces the quotient problem for the pair (A, B) to
// the standard SVD of A*B⁻¹. B must be square and nonsingular with as
// many columns as A.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// lapack.ErrSingular, lapack.ErrConvergence.
func NewGeneralizedSVD(a, b matrix.Matrix) (*SVD, error) {
	const tag = "NewGeneralizedSVD"
	if err := matrix.ValidateSquareNonNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}
	lu, err := NewLU(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	// C·B = A is solved as Bᵀ·Cᵀ = Aᵀ.
	ct, err := matrix.NewDense(b.Rows(), a.Rows(), matrix.WithNaNInfValidation(false))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err = lu.SolveTo(ct, true, matrix.T(a)); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f, err := NewSVD(matrix.T(ct))
	if err != nil {
		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// transposedGeneral returns a freshly packed transpose of g.
func transposedGeneral(g lapack.General[float64]) lapack.General[float64] {
	t := lapack.General[float64]{
		Rows: g.Cols, Cols: g.Rows,
		Stride: maxInt(g.Rows, 1),
		Data:   make([]float64, g.Rows*g.Cols),
	}
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			t.Data[j*t.Stride+i] = g.Data[i*g.Stride+j]
		}
	}

	return t
}
