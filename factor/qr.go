// SPDX-License-Identifier: MIT

// Package factor - orthogonal factorizations. QR covers square and
// overdetermined systems (least squares), LQ covers underdetermined ones
// (minimum norm), and PivotedQR adds rank-revealing column pivoting.

package factor

import (
	"fmt"
	"math"

	"github.com/faktorlab/faktor/lapack"
	"github.com/faktorlab/faktor/matrix"
)

// QR holds the Householder factorization A = Q*R of an m x n matrix with
// m >= n. SolveTo finds the least-squares solution of A*X = B; for square
// A that is the exact solution.
type QR struct {
	qr   lapack.General[float64]
	tau  []float64
	m, n int
	ok   bool
}

var _ Factorization = (*QR)(nil)

// NewQR factors an m x n matrix with m >= n. A zero diagonal entry of R
// marks rank deficiency (Ok() == false, wrapped lapack.ErrSingular);
// wider-than-tall input is rejected up front, use NewLQ for those.
//
// Errors: matrix.ErrDimensionMismatch, lapack.ErrSingular.
// Complexity: O(m·n²).
func NewQR(a matrix.Matrix) (*QR, error) {
	const tag = "NewQR"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if a.Rows() < a.Cols() {
		return nil, fmt.Errorf("%s: %dx%d is wider than tall: %w",
			tag, a.Rows(), a.Cols(), matrix.ErrDimensionMismatch)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &QR{qr: g, tau: make([]float64, g.Cols), m: g.Rows, n: g.Cols, ok: true}
	if err = lapack.Geqrf(f.qr, f.tau); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	for j := 0; j < f.n; j++ {
		if f.qr.At(j, j) == 0 {
			f.ok = false

			return f, fmt.Errorf("%s: zero pivot at step %d: %w", tag, j+1, lapack.ErrSingular)
		}
	}

	return f, nil
}

// Ok reports whether R has a fully nonzero diagonal.
func (f *QR) Ok() bool { return f.ok }

// Order returns (m, n).
func (f *QR) Order() (int, int) { return f.m, f.n }

// LogAbsDet is defined for square input only; rectangular factorizations
// return (NaN, 0). The sign accounts for the parity of the nontrivial
// Householder reflectors making up Q.
func (f *QR) LogAbsDet() (float64, int) {
	if f.m != f.n {
		return math.NaN(), 0
	}
	logAbs, sign := logAbsFromDiag(func(i int) float64 { return f.qr.At(i, i) }, f.n)
	if sign == 0 {
		return logAbs, 0
	}
	for _, t := range f.tau {
		if t != 0 {
			sign = -sign
		}
	}

	return logAbs, sign
}

// SolveTo writes the least-squares solution of A*X = B into dst, which
// must be n x nrhs while b is m x nrhs. Transposed solves are not
// supported for QR; use NewLQ on the original matrix instead.
func (f *QR) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "QR.SolveTo"
	if trans {
		return fmt.Errorf("%s: transposed solve unsupported: %w", tag, lapack.ErrInvalidArgument)
	}
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.m, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	x, err := denseCopyGeneral(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	// QᵀB, then back-substitute against the leading n x n block of R.
	if err = lapack.Ormqr(lapack.Left, lapack.Transpose, f.qr, f.tau, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	r := lapack.General[float64]{Rows: f.n, Cols: f.n, Stride: f.qr.Stride, Data: f.qr.Data}
	x1 := lapack.General[float64]{Rows: f.n, Cols: x.Cols, Stride: x.Stride, Data: x.Data}
	if err = lapack.Trtrs(lapack.Upper, lapack.NoTrans, lapack.NonUnit, r, x1); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x1)

	return nil
}

// UnpackR materializes the upper triangular factor as an n x n matrix.
func (f *QR) UnpackR() *matrix.Triangular {
	r, _ := matrix.NewTriangular(f.n, matrix.Upper, false, matrix.WithNaNInfValidation(false))
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			_ = r.Set(i, j, f.qr.At(i, j))
		}
	}

	return r
}

// UnpackQ materializes the thin m x n orthonormal factor.
func (f *QR) UnpackQ() (*matrix.Dense, error) {
	q, err := matrix.NewDense(f.m, f.n)
	if err != nil {
		return nil, fmt.Errorf("QR.UnpackQ: %w", err)
	}
	gq := lapack.General[float64]{Rows: f.m, Cols: f.n, Stride: f.n, Data: q.Raw()}
	if err = lapack.Orgqr(f.qr, f.tau, gq); err != nil {
		return nil, fmt.Errorf("QR.UnpackQ: %w", err)
	}

	return q, nil
}

// PivotedQR holds the rank-revealing factorization A*P = Q*R, with the
// columns of largest remaining norm moved up front at each step.
type PivotedQR struct {
	qr   lapack.General[float64]
	tau  []float64
	jpvt []int
	m, n int
	rank int
}

var _ Factorization = (*PivotedQR)(nil)

// NewPivotedQR factors an m x n matrix (m >= n) with column pivoting.
// tol sets the diagonal magnitude below which R is truncated, relative to
// |r11|; pass 0 for an eps-scaled default. Rank deficiency is reported
// through Rank(), not as a constructor error.
func NewPivotedQR(a matrix.Matrix, tol float64) (*PivotedQR, error) {
	const tag = "NewPivotedQR"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if a.Rows() < a.Cols() {
		return nil, fmt.Errorf("%s: %dx%d is wider than tall: %w",
			tag, a.Rows(), a.Cols(), matrix.ErrDimensionMismatch)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &PivotedQR{
		qr:   g,
		tau:  make([]float64, g.Cols),
		jpvt: make([]int, g.Cols),
		m:    g.Rows,
		n:    g.Cols,
	}
	if err = lapack.Geqp3(f.qr, f.jpvt, f.tau); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if tol <= 0 {
		tol = float64(maxInt(f.m, f.n)) * epsFloat64
	}
	// Pivoting gives |r11| >= |r22| >= ..., so the rank is the first
	// diagonal entry that drops below the threshold.
	cutoff := tol * math.Abs(f.qr.At(0, 0))
	f.rank = f.n
	for j := 0; j < f.n; j++ {
		if math.Abs(f.qr.At(j, j)) <= cutoff {
			f.rank = j

			break
		}
	}

	return f, nil
}

// Ok reports whether the matrix has full column rank at the tolerance.
func (f *PivotedQR) Ok() bool { return f.rank == f.n }

// Order returns (m, n).
func (f *PivotedQR) Order() (int, int) { return f.m, f.n }

// Rank returns the numerical rank detected during factorization.
func (f *PivotedQR) Rank() int { return f.rank }

// Pivot returns the column permutation: column Pivot()[k] of the input
// became column k of the factored matrix. The slice is aliased, treat it
// as read-only.
func (f *PivotedQR) Pivot() []int { return f.jpvt }

// LogAbsDet is defined for square full-rank input; otherwise (NaN, 0) or
// (-Inf, 0) for rank deficiency. The sign folds in both the reflector
// parity and the parity of the column permutation.
func (f *PivotedQR) LogAbsDet() (float64, int) {
	if f.m != f.n {
		return math.NaN(), 0
	}
	if f.rank < f.n {
		return math.Inf(-1), 0
	}
	logAbs, sign := logAbsFromDiag(func(i int) float64 { return f.qr.At(i, i) }, f.n)
	if sign == 0 {
		return logAbs, 0
	}
	for _, t := range f.tau {
		if t != 0 {
			sign = -sign
		}
	}
	if permutationParityOdd(f.jpvt) {
		sign = -sign
	}

	return logAbs, sign
}

// SolveTo writes the least-squares solution of A*X = B into dst. Rank
// deficiency makes the system ambiguous and fails with a wrapped
// lapack.ErrSingular. Transposed solves are not supported.
func (f *PivotedQR) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "PivotedQR.SolveTo"
	if trans {
		return fmt.Errorf("%s: transposed solve unsupported: %w", tag, lapack.ErrInvalidArgument)
	}
	if f.rank < f.n {
		return fmt.Errorf("%s: rank %d < %d: %w", tag, f.rank, f.n, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.m, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	x, err := denseCopyGeneral(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = lapack.Ormqr(lapack.Left, lapack.Transpose, f.qr, f.tau, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	r := lapack.General[float64]{Rows: f.n, Cols: f.n, Stride: f.qr.Stride, Data: f.qr.Data}
	x1 := lapack.General[float64]{Rows: f.n, Cols: x.Cols, Stride: x.Stride, Data: x.Data}
	if err = lapack.Trtrs(lapack.Upper, lapack.NoTrans, lapack.NonUnit, r, x1); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	// Undo the column permutation: the triangular solve produced Pᵀx.
	for k := 0; k < f.n; k++ {
		for j := 0; j < x1.Cols; j++ {
			_ = dst.Set(f.jpvt[k], j, x1.At(k, j))
		}
	}

	return nil
}

// LQ holds the factorization A = L*Q of an m x n matrix with m <= n.
// SolveTo finds the minimum-norm solution of the underdetermined system
// A*X = B.
type LQ struct {
	lq   lapack.General[float64]
	tau  []float64
	m, n int
	ok   bool
}

var _ Factorization = (*LQ)(nil)

// NewLQ factors an m x n matrix with m <= n. A zero diagonal entry of L
// marks rank deficiency (Ok() == false, wrapped lapack.ErrSingular).
func NewLQ(a matrix.Matrix) (*LQ, error) {
	const tag = "NewLQ"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if a.Rows() > a.Cols() {
		return nil, fmt.Errorf("%s: %dx%d is taller than wide: %w",
			tag, a.Rows(), a.Cols(), matrix.ErrDimensionMismatch)
	}
	g, err := denseCopyGeneral(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	f := &LQ{lq: g, tau: make([]float64, g.Rows), m: g.Rows, n: g.Cols, ok: true}
	if err = lapack.Gelqf(f.lq, f.tau); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	for i := 0; i < f.m; i++ {
		if f.lq.At(i, i) == 0 {
			f.ok = false

			return f, fmt.Errorf("%s: zero pivot at step %d: %w", tag, i+1, lapack.ErrSingular)
		}
	}

	return f, nil
}

// Ok reports whether L has a fully nonzero diagonal.
func (f *LQ) Ok() bool { return f.ok }

// Order returns (m, n).
func (f *LQ) Order() (int, int) { return f.m, f.n }

// LogAbsDet is defined for square input only; rectangular factorizations
// return (NaN, 0).
func (f *LQ) LogAbsDet() (float64, int) {
	if f.m != f.n {
		return math.NaN(), 0
	}
	logAbs, sign := logAbsFromDiag(func(i int) float64 { return f.lq.At(i, i) }, f.m)
	if sign == 0 {
		return logAbs, 0
	}
	for _, t := range f.tau {
		if t != 0 {
			sign = -sign
		}
	}

	return logAbs, sign
}

// SolveTo writes the minimum-norm solution of A*X = B into dst, which
// must be n x nrhs while b is m x nrhs. Transposed solves are not
// supported for LQ; use NewQR on the original matrix instead.
func (f *LQ) SolveTo(dst *matrix.Dense, trans bool, b matrix.Matrix) error {
	const tag = "LQ.SolveTo"
	if trans {
		return fmt.Errorf("%s: transposed solve unsupported: %w", tag, lapack.ErrInvalidArgument)
	}
	if !f.ok {
		return fmt.Errorf("%s: %w", tag, lapack.ErrSingular)
	}
	if err := checkRHS(tag, f.m, b); err != nil {
		return err
	}
	if err := checkDst(tag, dst, f.n, b.Cols()); err != nil {
		return err
	}
	nrhs := b.Cols()
	// Forward-substitute L*Z = B, pad Z with zero rows to length n, then
	// X = Qᵀ*[Z; 0].
	z, err := denseCopyGeneral(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	l := lapack.General[float64]{Rows: f.m, Cols: f.m, Stride: f.lq.Stride, Data: f.lq.Data}
	if err = lapack.Trtrs(lapack.Lower, lapack.NoTrans, lapack.NonUnit, l, z); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	x := lapack.General[float64]{Rows: f.n, Cols: nrhs, Stride: nrhs, Data: make([]float64, f.n*nrhs)}
	for i := 0; i < f.m; i++ {
		copy(x.Data[i*x.Stride:i*x.Stride+nrhs], z.Data[i*z.Stride:i*z.Stride+nrhs])
	}
	if err = lapack.Ormlq(lapack.Left, lapack.Transpose, f.lq, f.tau, x); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	copyGeneralTo(dst, x)

	return nil
}

// UnpackL materializes the lower triangular factor as an m x m matrix.
func (f *LQ) UnpackL() *matrix.Triangular {
	l, _ := matrix.NewTriangular(f.m, matrix.Lower, false, matrix.WithNaNInfValidation(false))
	for i := 0; i < f.m; i++ {
		for j := 0; j <= i; j++ {
			_ = l.Set(i, j, f.lq.At(i, j))
		}
	}

	return l
}

// UnpackQ materializes the thin m x n row-orthonormal factor.
func (f *LQ) UnpackQ() (*matrix.Dense, error) {
	q, err := matrix.NewDense(f.m, f.n)
	if err != nil {
		return nil, fmt.Errorf("LQ.UnpackQ: %w", err)
	}
	gq := lapack.General[float64]{Rows: f.m, Cols: f.n, Stride: f.n, Data: q.Raw()}
	if err = lapack.Orglq(f.lq, f.tau, gq); err != nil {
		return nil, fmt.Errorf("LQ.UnpackQ: %w", err)
	}

	return q, nil
}

// permutationParityOdd reports whether p decomposes into an odd number of
// transpositions, by cycle counting on a scratch copy.
func permutationParityOdd(p []int) bool {
	seen := make([]bool, len(p))
	odd := false
	for i := range p {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			odd = !odd
		}
	}

	return odd
}
