// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// Hessenberg holds the orthogonal reduction A = Q*H*Qᵀ with H upper
// Hessenberg. It is a similarity transform, not a solver, so it does not
// implement Factorization; it feeds the Schur and eigenvalue drivers.
type Hessenberg struct {
	h   lapack.General[float64]
	tau []float64
	n   int
}

// NewHessenberg reduces a square matrix to upper Hessenberg form.
//
// Errors: matrix.ErrNonSquare. Complexity: O(n³).
func NewHessenberg(a matrix.Matrix) (*Hessenberg, error) {
	const tag = "NewHessenberg"
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &Hessenberg{h: g, n: g.Rows}
	if f.n > 1 {
		f.tau = make([]float64, f.n-1)
	}
	if err = lapack.Gehrd(f.h, f.tau); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return f, nil
}

// Order returns the matrix dimension.
func (f *Hessenberg) Order() int { return f.n }

// UnpackH materializes the upper Hessenberg factor.
func (f *Hessenberg) UnpackH() *matrix.Dense {
	h, _ := matrix.NewDense(f.n, f.n, matrix.WithNaNInfValidation(false))
	for i := 0; i < f.n; i++ {
		lo := 0
		if i > 1 {
			lo = i - 1
		}
		for j := lo; j < f.n; j++ {
			_ = h.Set(i, j, f.h.At(i, j))
		}
	}

	return h
}

// UnpackQ materializes the orthogonal transform accumulated from the
// reduction's reflectors.
func (f *Hessenberg) UnpackQ() (*matrix.Dense, error) {
	q, err := matrix.NewDense(f.n, f.n)
	if err != nil {
		return nil, fmt.Errorf("Hessenberg.UnpackQ: %w", err)
	}
	gq := lapack.General[float64]{Rows: f.n, Cols: f.n, Stride: f.n, Data: q.Raw()}
	if err = lapack.Orghr(f.h, f.tau, gq); err != nil {
		return nil, fmt.Errorf("Hessenberg.UnpackQ: %w", err)
	}

	return q, nil
}
