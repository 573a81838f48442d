// SPDX-License-Identifier: MIT

// Package factor - direct solvers for banded and triangular matrices.
// These skip factorization entirely or use the O(n) banded drivers, so
// constructing one is cheap; the Factorization contract still applies.

package factor

import (
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// DiagonalSolver solves D*X = B by elementwise division.
type DiagonalSolver struct {
	d  []float64
	n  int
	ok bool
}

var _ Factorization = (*DiagonalSolver)(nil)

// NewDiagonalSolver wraps a diagonal matrix as a Factorization. A zero
// diagonal entry makes the solver singular (Ok() == false plus a wrapped
// lapack.ErrSingular), mirroring the dense constructors.
func NewDiagonalSolver(a *matrix.Diagonal) (*DiagonalSolver, error) {
	const tag = "NewDiagonalSolver"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	d := append([]float64(nil), a.Diag()...)
	f := &DiagonalSolver{d: d, n: len(d), ok: true}
	for i, v := range d {
		if v == 0 {
			f.ok = false

			return f, fmt.Errorf("%s: zero pivot at step %d: %w", tag, i+1, lapack.ErrSingular)
		}
	}

	return f, nil
}

func (f *DiagonalSolver) Ok() bool          { return f.ok }
func (f *DiagonalSolver) Order() (int, int) { return f.n, f.n }

func (f *DiagonalSolver) LogAbsDet() (float64, int) {
	return logAbsFromDiag(func(i int) float64 { return f.d[i] }, f.n)
}

func (f *DiagonalSolver) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "DiagonalSolver.SolveTo"
	_ = trans // Dᵀ == D
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.n, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	nrhs := b.Cols()
	for i := 0; i < f.n; i++ {
		for j := 0; j < nrhs; j++ {
			v, _ := b.At(i, j)
			_ = dst.Set(i, j, v/f.d[i])
		}
	}

	return nil
}

// BidiagonalSolver solves B*X = Y by two-term forward or back
// substitution, depending on which side the off-diagonal lives.
type BidiagonalSolver struct {
	d, e []float64
	side matrix.Triangle
	n    int
	ok   bool
}

var _ Factorization = (*BidiagonalSolver)(nil)

// NewBidiagonalSolver wraps a bidiagonal matrix as a Factorization.
func NewBidiagonalSolver(a *matrix.Bidiagonal) (*BidiagonalSolver, error) {
	const tag = "NewBidiagonalSolver"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	d, e := a.Diags()
	f := &BidiagonalSolver{
		d:    append([]float64(nil), d...),
		e:    append([]float64(nil), e...),
		side: a.Side(),
		n:    len(d),
		ok:   true,
	}
	for i, v := range f.d {
		if v == 0 {
			f.ok = false

			return f, fmt.Errorf("%s: zero pivot at step %d: %w", tag, i+1, lapack.ErrSingular)
		}
	}

	return f, nil
}

func (f *BidiagonalSolver) Ok() bool          { return f.ok }
func (f *BidiagonalSolver) Order() (int, int) { return f.n, f.n }

func (f *BidiagonalSolver) LogAbsDet() (float64, int) {
	return logAbsFromDiag(func(i int) float64 { return f.d[i] }, f.n)
}

func (f *BidiagonalSolver) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "BidiagonalSolver.SolveTo"
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.n, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	// Transposing flips the off-diagonal to the other side.
	lower := f.side == matrix.Lower
	if trans {
		lower = !lower
	}
	nrhs := b.Cols()
	for j := 0; j < nrhs; j++ {
		if lower {
			for i := 0; i < f.n; i++ {
				v, _ := b.At(i, j)
				if i > 0 {
					prev, _ := dst.At(i-1, j)
					v -= f.e[i-1] * prev
				}
				_ = dst.Set(i, j, v/f.d[i])
			}

			continue
		}
		for i := f.n - 1; i >= 0; i-- {
			v, _ := b.At(i, j)
			if i < f.n-1 {
				next, _ := dst.At(i+1, j)
				v -= f.e[i] * next
			}
			_ = dst.Set(i, j, v/f.d[i])
		}
	}

	return nil
}

// TridiagonalSolver solves T*X = B with the Gaussian tridiagonal driver.
// The three bands are retained; each solve re-runs the O(n·nrhs)
// elimination on a fresh copy, which keeps the solver reusable.
type TridiagonalSolver struct {
	dl, d, du []float64
	n         int
	ok        bool
}

var _ Factorization = (*TridiagonalSolver)(nil)

// NewTridiagonalSolver wraps a tridiagonal matrix as a Factorization.
// Singularity is only detected on the first solve-shaped elimination, so
// the constructor probes with an empty right-hand side up front.
func NewTridiagonalSolver(a *matrix.Tridiagonal) (*TridiagonalSolver, error) {
	const tag = "NewTridiagonalSolver"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	dl, d, du := a.Diags()
	f := &TridiagonalSolver{
		dl: append([]float64(nil), dl...),
		d:  append([]float64(nil), d...),
		du: append([]float64(nil), du...),
		n:  len(d),
		ok: true,
	}
	probe := lapack.General[float64]{Rows: f.n, Cols: 0, Stride: 1, Data: make([]float64, f.n)}
	if err := f.gtsv(false, probe); err != nil {
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

func (f *TridiagonalSolver) Ok() bool          { return f.ok }
func (f *TridiagonalSolver) Order() (int, int) { return f.n, f.n }

// LogAbsDet evaluates the determinant by the three-term continuant
// recurrence, scaled in log space to dodge overflow.
func (f *TridiagonalSolver) LogAbsDet() (float64, int) {
	// f(k) = d(k)·f(k-1) - dl(k-1)·du(k-1)·f(k-2), renormalized each step.
	prev2, prev1 := 1.0, f.d[0]
	logAbs := 0.0
	for k := 1; k < f.n; k++ {
		cur := f.d[k]*prev1 - f.dl[k-1]*f.du[k-1]*prev2
		scale := math.Abs(prev1)
		if scale > 0 {
			logAbs += math.Log(scale)
			cur /= scale
			prev1 /= scale
		}
		prev2, prev1 = prev1, cur
	}
	if prev1 == 0 {
		return math.Inf(-1), 0
	}
	sign := 1
	if prev1 < 0 {
		sign = -1
	}

	return logAbs + math.Log(math.Abs(prev1)), sign
}

// gtsv copies the bands (the driver destroys them) and eliminates in place
// on x. trans swaps the sub- and super-diagonals, which is exactly Tᵀ.
func (f *TridiagonalSolver) gtsv(trans bool, x lapack.General[float64]) error {
	dl := append([]float64(nil), f.dl...)
	d := append([]float64(nil), f.d...)
	du := append([]float64(nil), f.du...)
	if trans {
		dl, du = du, dl
	}

	return lapack.Gtsv(dl, d, du, x)
}

func (f *TridiagonalSolver) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "TridiagonalSolver.SolveTo"
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
	if err = f.gtsv(trans, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}

// TriangularSolver solves L*X = B or U*X = B by substitution through the
// triangular driver. Unit-diagonal matrices are never singular.
type TriangularSolver struct {
	t    lapack.General[float64]
	tri  matrix.Triangle
	unit bool
	n    int
	ok   bool
}

var _ Factorization = (*TriangularSolver)(nil)

// NewTriangularSolver wraps a triangular matrix as a Factorization.
func NewTriangularSolver(a *matrix.Triangular) (*TriangularSolver, error) {
	const tag = "NewTriangularSolver"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := a.Rows()
	f := &TriangularSolver{
		t: lapack.General[float64]{
			Rows: n, Cols: n, Stride: n,
			Data: append([]float64(nil), a.Raw()...),
		},
		tri:  a.Tri(),
		unit: a.Unit(),
		n:    n,
		ok:   true,
	}
	if !f.unit {
		for i := 0; i < n; i++ {
			if f.t.At(i, i) == 0 {
				f.ok = false

				return f, fmt.Errorf("%s: zero pivot at step %d: %w", tag, i+1, lapack.ErrSingular)
			}
		}
	}

	return f, nil
}

func (f *TriangularSolver) Ok() bool          { return f.ok }
func (f *TriangularSolver) Order() (int, int) { return f.n, f.n }

func (f *TriangularSolver) LogAbsDet() (float64, int) {
	if f.unit {
		return 0, 1
	}

	return logAbsFromDiag(func(i int) float64 { return f.t.At(i, i) }, f.n)
}

func (f *TriangularSolver) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "TriangularSolver.SolveTo"
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.n, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	uplo := lapack.Lower
	if f.tri == matrix.Upper {
		uplo = lapack.Upper
	}
	tr := lapack.NoTrans
	if trans {
		tr = lapack.Transpose
	}
	diag := lapack.NonUnit
	if f.unit {
		diag = lapack.Unit
	}

	x, err := denseCopyGeneral(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Trtrs(uplo, tr, diag, f.t, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}

// LDLT holds the L*D*Lᵀ factorization of a symmetric positive definite
// tridiagonal matrix, computed once and reused across solves.
type LDLT struct {
	d, e []float64
	n    int
	ok   bool
}

var _ Factorization = (*LDLT)(nil)

// NewLDLT factors a symmetric positive definite tridiagonal matrix. A
// non-positive pivot yields Ok() == false and a wrapped
// lapack.ErrNotPositiveDefinite.
//
// Complexity: O(n).
func NewLDLT(a *matrix.SymTridiagonal) (*LDLT, error) {
	const tag = "NewLDLT"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	d, e := a.Diags()
	f := &LDLT{
		d:  append([]float64(nil), d...),
		e:  append([]float64(nil), e...),
		n:  len(d),
		ok: true,
	}
	if err := lapack.Pttrf(f.d, f.e); err != nil {
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

func (f *LDLT) Ok() bool          { return f.ok }
func (f *LDLT) Order() (int, int) { return f.n, f.n }

// LogAbsDet multiplies the pivots of D. A completed factorization has
// only positive pivots and sign +1; a degraded one reports whatever its
// partial pivots yield.
func (f *LDLT) LogAbsDet() (float64, int) {
	return logAbsFromDiag(func(i int) float64 { return f.d[i] }, f.n)
}

func (f *LDLT) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "LDLT.SolveTo"
	_ = trans // Tᵀ == T
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrNotPositiveDefinite)
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
	if err = lapack.Pttrs(f.d, f.e, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}
