// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// Eigen holds the eigenvalues of a square matrix and, when they are all
// real, the eigenvectors. Symmetric input takes the Jacobi path with
// orthonormal vectors and ascending values; general input goes through
// the Schur form, with vectors recovered by back substitution only when
// no complex pair shows up.
type Eigen struct {
	wr, wi []float64
	vecs   lapack.General[float64]
	n      int
	sym    bool
	ok     bool
}

// NewEigen computes the eigendecomposition of a square matrix.
//
// Errors: matrix.ErrNonSquare, lapack.ErrConvergence. Complexity: O(n³).
func NewEigen(a matrix.Matrix) (*Eigen, error) {
	const tag = "NewEigen"
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := a.Rows()
	f := &Eigen{
		wr:  make([]float64, n),
		wi:  make([]float64, n),
		n:   n,
		sym: matrix.ValidateSymmetric(a, symTolerance) == nil,
		ok:  true,
	}

	if f.sym {
		g, err := denseCopyGeneral(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		if err = lapack.Syev(lapack.Lower, g, f.wr, true); err != nil {
			if !errors.Is(err, lapack.ErrConvergence) {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
			f.ok = false

			return f, fmt.Errorf("%s: %w", tag, err)
		}
		f.vecs = g

		return f, nil
	}

	s, err := NewSchur(a)
	if err != nil {
		if s == nil || !errors.Is(err, lapack.ErrConvergence) {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		copy(f.wr, s.wr)
		copy(f.wi, s.wi)
		f.ok = false

		return f, fmt.Errorf("%s: %w", tag, err)
	}
	copy(f.wr, s.wr)
	copy(f.wi, s.wi)
	if f.realSpectrum() {
		f.vecs = eigenvectorsFromSchur(s)
	}

	return f, nil
}

// Ok reports whether the iteration converged for every eigenvalue.
func (f *Eigen) Ok() bool { return f.ok }

// Order returns the matrix dimension.
func (f *Eigen) Order() int { return f.n }

// Symmetric reports whether the symmetric path was taken, in which case
// the eigenvalues are ascending and the eigenvectors orthonormal.
func (f *Eigen) Symmetric() bool { return f.sym }

// Values appends the eigenvalues to (re, im) and returns the extended
// slices. Pass nil im when only real parts are wanted.
func (f *Eigen) Values(re, im []float64) ([]float64, []float64) {
	re = append(re, f.wr...)
	if im != nil {
		im = append(im, f.wi...)
	}

	return re, im
}

// Vectors materializes the eigenvectors in columns, matching the value
// order. A complex spectrum has no real eigenbasis and returns a wrapped
// lapack.ErrInvalidArgument.
func (f *Eigen) Vectors() (*matrix.Dense, error) {
	if f.vecs.Data == nil {
		return nil, fmt.Errorf("Eigen.Vectors: eigenvectors require a fully real spectrum: %w",
			lapack.ErrInvalidArgument)
	}

	return denseFromGeneral(f.vecs), nil
}

func (f *Eigen) realSpectrum() bool {
	for _, v := range f.wi {
		if v != 0 {
			return false
		}
	}

	return true
}

// eigenvectorsFromSchur back-substitutes (T - λI)y = 0 for each diagonal
// entry of a fully triangular T and rotates Z*y back to the original
// basis, with each column normalized to unit 2-norm. Near-equal diagonal
// entries get an eps-scaled floor on the denominator, trading accuracy of
// defective directions for a finite answer.
func eigenvectorsFromSchur(s *Schur) lapack.General[float64] {
	n := s.n
	anorm := 0.0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := math.Abs(s.t.At(i, j)); v > anorm {
				anorm = v
			}
		}
	}
	floor := epsFloat64 * anorm
	if floor == 0 {
		floor = epsFloat64
	}

	v := lapack.General[float64]{Rows: n, Cols: n, Stride: maxInt(n, 1), Data: make([]float64, n*n)}
	y := make([]float64, n)
	for k := 0; k < n; k++ {
		lambda := s.t.At(k, k)
		for i := range y {
			y[i] = 0
		}
		y[k] = 1
		for i := k - 1; i >= 0; i-- {
			sum := 0.0
			for j := i + 1; j <= k; j++ {
				sum += s.t.At(i, j) * y[j]
			}
			den := lambda - s.t.At(i, i)
			if math.Abs(den) < floor {
				den = math.Copysign(floor, den)
			}
			y[i] = sum / den
		}
		// Rotate into the original basis and normalize.
		norm := 0.0
		for i := 0; i < n; i++ {
			x := 0.0
			for j := 0; j <= k; j++ {
				x += s.z.At(i, j) * y[j]
			}
			v.SetAt(i, k, x)
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for i := 0; i < n; i++ {
				v.SetAt(i, k, v.At(i, k)/norm)
			}
		}
	}

	return v
}

// NewGeneralizedEigen reduces the generalized problem A*x = λ*B*x to the
// standard eigenproblem of B⁻¹*A through an LU solve. B must be
// nonsingular.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// lapack.ErrSingular, lapack.ErrConvergence.
func NewGeneralizedEigen(a, b matrix.Matrix) (*Eigen, error) {
	const tag = "NewGeneralizedEigen"
	c, err := whitenByLU(tag, a, b)
	if err != nil {
		return nil, err
	}
	f, err := NewEigen(c)
	if err != nil {
		return f, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// whitenByLU forms B⁻¹*A for the generalized drivers.
func whitenByLU(tag string, a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if a.Rows() != b.Rows() {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}
	lu, err := NewLU(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	c, err := matrix.NewDense(b.Rows(), a.Cols(), matrix.WithNaNInfValidation(false))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err = lu.SolveTo(c, false, a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return c, nil
}
