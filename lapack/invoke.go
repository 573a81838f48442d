// SPDX-License-Identifier: MIT

// Package lapack: validated entry points.
//
// Every exported routine follows the same shape: validate layout and
// flags first (sentinel errors, no kernel touched), canonicalize flag
// bytes, dispatch to the active backend for float64 descriptors or to the
// generic kernels otherwise, and translate the status code into a wrapped
// sentinel the caller matches with errors.Is. Inputs are mutated only
// after all preconditions pass.

package lapack

import "fmt"

func minInt(a, b int) int {
	if b < a {
		return b
	}
	return a
}

// Getrf computes the LU factorization with partial pivoting of an m-by-n
// matrix in place; ipiv (len >= min(m,n)) records the row interchanged
// with row k at step k. A zero pivot yields a completed factor and a
// wrapped ErrSingular naming the first offending step.
func Getrf[T Float](a General[T], ipiv []int) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Getrf: %w", err)
	}
	if mn := minInt(a.Rows, a.Cols); len(ipiv) < mn {
		return fmt.Errorf("Getrf: ipiv length %d, need %d: %w", len(ipiv), mn, ErrInvalidArgument)
	}

	var info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		info = currentBackend().Dgetrf(a64, ipiv)
	} else {
		info = getrf(a, ipiv)
	}
	if info > 0 {
		return fmt.Errorf("Getrf: zero pivot at step %d: %w", info, ErrSingular)
	}

	return nil
}

// Getrs solves A*X = B (or Aᵀ*X = B) from a Getrf factorization,
// overwriting b with the solution.
func Getrs[T Float](trans Trans, a General[T], ipiv []int, b General[T]) error {
	if _, err := CharTrans(trans); err != nil {
		return fmt.Errorf("Getrs: %w", err)
	}
	if trans == ConjTrans {
		trans = Transpose
	}
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Getrs: %w", err)
	}
	if err := CheckGeneral(b); err != nil {
		return fmt.Errorf("Getrs: %w", err)
	}
	if b.Rows != n {
		return fmt.Errorf("Getrs: rhs has %d rows, want %d: %w", b.Rows, n, ErrDimensionMismatch)
	}
	if len(ipiv) < n {
		return fmt.Errorf("Getrs: ipiv length %d, need %d: %w", len(ipiv), n, ErrInvalidArgument)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dgetrs(trans, a64, ipiv, any(b).(General[float64]))
	} else {
		getrs(trans, a, ipiv, b)
	}

	return nil
}

// Gtsv factors and solves a tridiagonal system in one pass with partial
// pivoting: dl, d, du are the sub-, main and super-diagonals (overwritten),
// b the right-hand sides (overwritten with X).
func Gtsv[T Float](dl, d, du []T, b General[T]) error {
	if err := CheckGeneral(b); err != nil {
		return fmt.Errorf("Gtsv: %w", err)
	}
	n := b.Rows
	if len(d) < n {
		return fmt.Errorf("Gtsv: diagonal length %d, need %d: %w", len(d), n, ErrDimensionMismatch)
	}
	if n > 0 && (len(dl) < n-1 || len(du) < n-1) {
		return fmt.Errorf("Gtsv: off-diagonal lengths (%d,%d), need %d: %w",
			len(dl), len(du), n-1, ErrDimensionMismatch)
	}

	var info int
	if b64, ok := any(b).(General[float64]); ok && accelerated() {
		info = currentBackend().Dgtsv(any(dl).([]float64), any(d).([]float64), any(du).([]float64), b64)
	} else {
		info = gtsv(dl, d, du, b)
	}
	if info > 0 {
		return fmt.Errorf("Gtsv: zero pivot at row %d: %w", info, ErrSingular)
	}

	return nil
}

// Potrf computes the Cholesky factorization of a symmetric positive
// definite matrix in the uplo triangle of a, in place. A non-positive
// leading minor fails with a wrapped ErrNotPositiveDefinite carrying its
// order.
func Potrf[T Float](uplo Uplo, a General[T]) error {
	if _, err := CharUplo(uplo); err != nil {
		return fmt.Errorf("Potrf: %w", err)
	}
	if _, err := CheckSquare(a); err != nil {
		return fmt.Errorf("Potrf: %w", err)
	}
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Potrf: %w", err)
	}

	var info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		info = currentBackend().Dpotrf(uplo, a64)
	} else {
		info = potrf(uplo, a)
	}
	if info > 0 {
		return fmt.Errorf("Potrf: leading minor of order %d is not positive definite: %w",
			info, ErrNotPositiveDefinite)
	}

	return nil
}

// Pstrf computes the pivoted Cholesky factorization Pᵀ*A*P = L*Lᵀ of a
// symmetric positive semidefinite matrix, returning the numerical rank.
// piv[k] records the original index moved to position k; tol <= 0 selects
// the default n*eps*max(diag) threshold. Rank deficiency is reported as a
// wrapped ErrNotPositiveDefinite alongside the computed rank.
func Pstrf[T Float](uplo Uplo, a General[T], piv []int, tol T) (int, error) {
	if _, err := CharUplo(uplo); err != nil {
		return 0, fmt.Errorf("Pstrf: %w", err)
	}
	n, err := CheckSquare(a)
	if err != nil {
		return 0, fmt.Errorf("Pstrf: %w", err)
	}
	if err := CheckGeneral(a); err != nil {
		return 0, fmt.Errorf("Pstrf: %w", err)
	}
	if len(piv) < n {
		return 0, fmt.Errorf("Pstrf: piv length %d, need %d: %w", len(piv), n, ErrInvalidArgument)
	}

	var rank, info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		rank, info = currentBackend().Dpstrf(uplo, a64, piv, float64(tol))
	} else {
		rank, info = pstrf(uplo, a, piv, tol)
	}
	if info > 0 {
		return rank, fmt.Errorf("Pstrf: rank %d < order %d: %w", rank, n, ErrNotPositiveDefinite)
	}

	return rank, nil
}

// Sytrf computes the Bunch-Kaufman factorization A = L*D*Lᵀ (or U*D*Uᵀ) of
// a symmetric indefinite matrix in place, with 1x1 and 2x2 pivot blocks
// recorded in ipiv. An exactly singular D block fails with ErrSingular.
func Sytrf[T Float](uplo Uplo, a General[T], ipiv []int) error {
	if _, err := CharUplo(uplo); err != nil {
		return fmt.Errorf("Sytrf: %w", err)
	}
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Sytrf: %w", err)
	}
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Sytrf: %w", err)
	}
	if len(ipiv) < n {
		return fmt.Errorf("Sytrf: ipiv length %d, need %d: %w", len(ipiv), n, ErrInvalidArgument)
	}

	var info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		info = currentBackend().Dsytrf(uplo, a64, ipiv)
	} else {
		info = sytrf(uplo, a, ipiv)
	}
	if info > 0 {
		return fmt.Errorf("Sytrf: D block at %d is exactly singular: %w", info, ErrSingular)
	}

	return nil
}

// Sytrs solves A*X = B from a Sytrf factorization, overwriting b.
func Sytrs[T Float](uplo Uplo, a General[T], ipiv []int, b General[T]) error {
	if _, err := CharUplo(uplo); err != nil {
		return fmt.Errorf("Sytrs: %w", err)
	}
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Sytrs: %w", err)
	}
	if err := CheckGeneral(b); err != nil {
		return fmt.Errorf("Sytrs: %w", err)
	}
	if b.Rows != n {
		return fmt.Errorf("Sytrs: rhs has %d rows, want %d: %w", b.Rows, n, ErrDimensionMismatch)
	}
	if len(ipiv) < n {
		return fmt.Errorf("Sytrs: ipiv length %d, need %d: %w", len(ipiv), n, ErrInvalidArgument)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dsytrs(uplo, a64, ipiv, any(b).(General[float64]))
	} else {
		sytrs(uplo, a, ipiv, b)
	}

	return nil
}

// Pttrf computes the L*D*Lᵀ factorization of a symmetric positive
// definite tridiagonal matrix in place: d the diagonal, e the
// off-diagonal (overwritten with D and the multipliers). A non-positive
// pivot fails with a wrapped ErrNotPositiveDefinite.
func Pttrf[T Float](d, e []T) error {
	n := len(d)
	if n > 0 && len(e) < n-1 {
		return fmt.Errorf("Pttrf: off-diagonal length %d, need %d: %w", len(e), n-1, ErrDimensionMismatch)
	}

	var info int
	if d64, ok := any(d).([]float64); ok && accelerated() {
		info = currentBackend().Dpttrf(d64, any(e).([]float64))
	} else {
		info = pttrf(d, e)
	}
	if info > 0 {
		return fmt.Errorf("Pttrf: non-positive pivot at position %d: %w", info, ErrNotPositiveDefinite)
	}

	return nil
}

// Pttrs solves A*X = B from a Pttrf factorization, overwriting b.
func Pttrs[T Float](d, e []T, b General[T]) error {
	if err := CheckGeneral(b); err != nil {
		return fmt.Errorf("Pttrs: %w", err)
	}
	n := b.Rows
	if len(d) < n {
		return fmt.Errorf("Pttrs: diagonal length %d, need %d: %w", len(d), n, ErrDimensionMismatch)
	}
	if n > 0 && len(e) < n-1 {
		return fmt.Errorf("Pttrs: off-diagonal length %d, need %d: %w", len(e), n-1, ErrDimensionMismatch)
	}

	if b64, ok := any(b).(General[float64]); ok && accelerated() {
		currentBackend().Dpttrs(any(d).([]float64), any(e).([]float64), b64)
	} else {
		pttrs(d, e, b)
	}

	return nil
}

// Trtrs solves a triangular system op(A)*X = B, overwriting b. An exactly
// zero diagonal entry of a NonUnit A fails with ErrSingular before b is
// touched.
func Trtrs[T Float](uplo Uplo, trans Trans, diag Diag, a, b General[T]) error {
	if _, err := CharUplo(uplo); err != nil {
		return fmt.Errorf("Trtrs: %w", err)
	}
	if _, err := CharTrans(trans); err != nil {
		return fmt.Errorf("Trtrs: %w", err)
	}
	if trans == ConjTrans {
		trans = Transpose
	}
	if _, err := CharDiag(diag); err != nil {
		return fmt.Errorf("Trtrs: %w", err)
	}
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Trtrs: %w", err)
	}
	if err := CheckGeneral(b); err != nil {
		return fmt.Errorf("Trtrs: %w", err)
	}
	if b.Rows != n {
		return fmt.Errorf("Trtrs: rhs has %d rows, want %d: %w", b.Rows, n, ErrDimensionMismatch)
	}

	var info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		info = currentBackend().Dtrtrs(uplo, trans, diag, a64, any(b).(General[float64]))
	} else {
		info = trtrs(uplo, trans, diag, a, b)
	}
	if info > 0 {
		return fmt.Errorf("Trtrs: diagonal entry %d is exactly zero: %w", info, ErrSingular)
	}

	return nil
}

// Geqrf computes the QR factorization A = Q*R in place: R on and above the
// diagonal, Householder vectors below it, scalars in tau
// (len >= min(m,n)).
func Geqrf[T Float](a General[T], tau []T) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Geqrf: %w", err)
	}
	if mn := minInt(a.Rows, a.Cols); len(tau) < mn {
		return fmt.Errorf("Geqrf: tau length %d, need %d: %w", len(tau), mn, ErrInvalidArgument)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dgeqrf(a64, any(tau).([]float64))
	} else {
		geqrf(a, tau)
	}

	return nil
}

// Geqp3 computes the column-pivoted QR factorization A*P = Q*R; jpvt[k]
// receives the original index of the column moved to position k.
func Geqp3[T Float](a General[T], jpvt []int, tau []T) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Geqp3: %w", err)
	}
	if len(jpvt) < a.Cols {
		return fmt.Errorf("Geqp3: jpvt length %d, need %d: %w", len(jpvt), a.Cols, ErrInvalidArgument)
	}
	if mn := minInt(a.Rows, a.Cols); len(tau) < mn {
		return fmt.Errorf("Geqp3: tau length %d, need %d: %w", len(tau), mn, ErrInvalidArgument)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dgeqp3(a64, jpvt, any(tau).([]float64))
	} else {
		geqp3(a, jpvt, tau)
	}

	return nil
}

// Gelqf computes the LQ factorization A = L*Q in place: L on and below the
// diagonal, row-wise Householder vectors above it, scalars in tau.
func Gelqf[T Float](a General[T], tau []T) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Gelqf: %w", err)
	}
	if mn := minInt(a.Rows, a.Cols); len(tau) < mn {
		return fmt.Errorf("Gelqf: tau length %d, need %d: %w", len(tau), mn, ErrInvalidArgument)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dgelqf(a64, any(tau).([]float64))
	} else {
		gelqf(a, tau)
	}

	return nil
}

// Ormqr multiplies c by the Q of a Geqrf factorization: op(Q)*C for
// Side Left, C*op(Q) for Side Right, in place.
func Ormqr[T Float](side Side, trans Trans, a General[T], tau []T, c General[T]) error {
	if _, err := CharSide(side); err != nil {
		return fmt.Errorf("Ormqr: %w", err)
	}
	if _, err := CharTrans(trans); err != nil {
		return fmt.Errorf("Ormqr: %w", err)
	}
	if trans == ConjTrans {
		trans = Transpose
	}
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Ormqr: %w", err)
	}
	if err := CheckGeneral(c); err != nil {
		return fmt.Errorf("Ormqr: %w", err)
	}
	dim := c.Rows
	if side == Right {
		dim = c.Cols
	}
	if a.Rows != dim {
		return fmt.Errorf("Ormqr: Q acts on %d, operand side has %d: %w", a.Rows, dim, ErrDimensionMismatch)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dormqr(side, trans, a64, any(tau).([]float64), any(c).(General[float64]))
	} else {
		ormqr(side, trans, a, tau, c)
	}

	return nil
}

// Ormlq multiplies c by the Q of a Gelqf factorization, in place.
func Ormlq[T Float](side Side, trans Trans, a General[T], tau []T, c General[T]) error {
	if _, err := CharSide(side); err != nil {
		return fmt.Errorf("Ormlq: %w", err)
	}
	if _, err := CharTrans(trans); err != nil {
		return fmt.Errorf("Ormlq: %w", err)
	}
	if trans == ConjTrans {
		trans = Transpose
	}
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Ormlq: %w", err)
	}
	if err := CheckGeneral(c); err != nil {
		return fmt.Errorf("Ormlq: %w", err)
	}
	dim := c.Rows
	if side == Right {
		dim = c.Cols
	}
	if a.Cols != dim {
		return fmt.Errorf("Ormlq: Q acts on %d, operand side has %d: %w", a.Cols, dim, ErrDimensionMismatch)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dormlq(side, trans, a64, any(tau).([]float64), any(c).(General[float64]))
	} else {
		ormlq(side, trans, a, tau, c)
	}

	return nil
}

// Orgqr materializes the leading q.Cols columns of the Q of a Geqrf
// factorization into q.
func Orgqr[T Float](a General[T], tau []T, q General[T]) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Orgqr: %w", err)
	}
	if err := CheckGeneral(q); err != nil {
		return fmt.Errorf("Orgqr: %w", err)
	}
	if q.Rows != a.Rows {
		return fmt.Errorf("Orgqr: q has %d rows, want %d: %w", q.Rows, a.Rows, ErrDimensionMismatch)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dorgqr(a64, any(tau).([]float64), any(q).(General[float64]))
	} else {
		orgqr(a, tau, q)
	}

	return nil
}

// Orglq materializes the leading q.Rows rows of the Q of a Gelqf
// factorization into q.
func Orglq[T Float](a General[T], tau []T, q General[T]) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Orglq: %w", err)
	}
	if err := CheckGeneral(q); err != nil {
		return fmt.Errorf("Orglq: %w", err)
	}
	if q.Cols != a.Cols {
		return fmt.Errorf("Orglq: q has %d cols, want %d: %w", q.Cols, a.Cols, ErrDimensionMismatch)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dorglq(a64, any(tau).([]float64), any(q).(General[float64]))
	} else {
		orglq(a, tau, q)
	}

	return nil
}

// Gehrd reduces a square matrix to upper Hessenberg form by an orthogonal
// similarity, in place, with reflector scalars in tau (len >= n-1).
func Gehrd[T Float](a General[T], tau []T) error {
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Gehrd: %w", err)
	}
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Gehrd: %w", err)
	}
	if n > 1 && len(tau) < n-1 {
		return fmt.Errorf("Gehrd: tau length %d, need %d: %w", len(tau), n-1, ErrInvalidArgument)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dgehrd(a64, any(tau).([]float64))
	} else {
		gehrd(a, tau)
	}

	return nil
}

// Orghr materializes the orthogonal Q of a Gehrd reduction into q.
func Orghr[T Float](a General[T], tau []T, q General[T]) error {
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Orghr: %w", err)
	}
	if _, err := CheckSquare(q); err != nil {
		return fmt.Errorf("Orghr: %w", err)
	}
	if q.Rows != n {
		return fmt.Errorf("Orghr: q is %d, want %d: %w", q.Rows, n, ErrDimensionMismatch)
	}

	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		currentBackend().Dorghr(a64, any(tau).([]float64), any(q).(General[float64]))
	} else {
		orghr(a, tau, q)
	}

	return nil
}

// Syev computes all eigenvalues of a symmetric matrix into w (ascending)
// and, when vecs is true, overwrites a with the matching orthonormal
// eigenvectors in its columns. Non-convergence fails with ErrConvergence.
func Syev[T Float](uplo Uplo, a General[T], w []T, vecs bool) error {
	if _, err := CharUplo(uplo); err != nil {
		return fmt.Errorf("Syev: %w", err)
	}
	n, err := CheckSquare(a)
	if err != nil {
		return fmt.Errorf("Syev: %w", err)
	}
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Syev: %w", err)
	}
	if len(w) < n {
		return fmt.Errorf("Syev: w length %d, need %d: %w", len(w), n, ErrInvalidArgument)
	}

	var info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		info = currentBackend().Dsyev(uplo, a64, any(w).([]float64), vecs)
	} else {
		info = syev(uplo, a, w, vecs)
	}
	if info > 0 {
		return fmt.Errorf("Syev: Jacobi sweeps exhausted: %w", ErrConvergence)
	}

	return nil
}

// Hseqr computes the real Schur decomposition of an upper Hessenberg
// matrix: h becomes the quasi-triangular T, q (pass the Orghr Q or
// identity; Data == nil skips accumulation) absorbs the transform, and
// (wr, wi) receive the eigenvalues. Non-convergence fails with
// ErrConvergence naming the stuck eigenvalue.
func Hseqr[T Float](h, q General[T], wr, wi []T) error {
	n, err := CheckSquare(h)
	if err != nil {
		return fmt.Errorf("Hseqr: %w", err)
	}
	if err := CheckGeneral(h); err != nil {
		return fmt.Errorf("Hseqr: %w", err)
	}
	if q.Data != nil {
		if _, err := CheckSquare(q); err != nil {
			return fmt.Errorf("Hseqr: %w", err)
		}
		if q.Rows != n {
			return fmt.Errorf("Hseqr: q is %d, want %d: %w", q.Rows, n, ErrDimensionMismatch)
		}
	}
	if len(wr) < n || len(wi) < n {
		return fmt.Errorf("Hseqr: eigenvalue buffers (%d,%d), need %d: %w",
			len(wr), len(wi), n, ErrInvalidArgument)
	}

	var info int
	if h64, ok := any(h).(General[float64]); ok && accelerated() {
		info = currentBackend().Dhseqr(h64, any(q).(General[float64]), any(wr).([]float64), any(wi).([]float64))
	} else {
		info = hseqr(h, q, wr, wi)
	}
	if info > 0 {
		return fmt.Errorf("Hseqr: eigenvalue %d did not converge: %w", info, ErrConvergence)
	}

	return nil
}

// Trexc reorders a real Schur form, moving the 1x1 diagonal block at ifst
// to ilst through adjacent orthogonal swaps; q (Data == nil to skip)
// absorbs the transform. A 2x2 block anywhere on the path is rejected with
// ErrInvalidArgument before anything is modified.
func Trexc[T Float](t, q General[T], ifst, ilst int) error {
	n, err := CheckSquare(t)
	if err != nil {
		return fmt.Errorf("Trexc: %w", err)
	}
	if err := CheckGeneral(t); err != nil {
		return fmt.Errorf("Trexc: %w", err)
	}
	if ifst < 0 || ifst >= n || ilst < 0 || ilst >= n {
		return fmt.Errorf("Trexc: move %d -> %d outside order %d: %w", ifst, ilst, n, ErrInvalidArgument)
	}
	if q.Data != nil {
		if _, err := CheckSquare(q); err != nil {
			return fmt.Errorf("Trexc: %w", err)
		}
		if q.Rows != n {
			return fmt.Errorf("Trexc: q is %d, want %d: %w", q.Rows, n, ErrDimensionMismatch)
		}
	}

	var info int
	if t64, ok := any(t).(General[float64]); ok && accelerated() {
		info = currentBackend().Dtrexc(t64, any(q).(General[float64]), ifst, ilst)
	} else {
		info = trexc(t, q, ifst, ilst)
	}
	if info > 0 {
		return fmt.Errorf("Trexc: 2x2 block at %d blocks the move: %w", info-1, ErrInvalidArgument)
	}

	return nil
}

// Gesvd computes the singular value decomposition A = U*S*Vᵀ of a tall or
// square matrix (Rows >= Cols; callers transpose wide inputs). s receives
// the singular values in descending order; u (Rows x Cols) and vt
// (Cols x Cols) are filled when their Data is non-nil. Non-convergence
// fails with ErrConvergence.
func Gesvd[T Float](a General[T], s []T, u, vt General[T]) error {
	if err := CheckGeneral(a); err != nil {
		return fmt.Errorf("Gesvd: %w", err)
	}
	m, n := a.Rows, a.Cols
	if m < n {
		return fmt.Errorf("Gesvd: %dx%d is wide, want rows >= cols: %w", m, n, ErrDimensionMismatch)
	}
	if len(s) < n {
		return fmt.Errorf("Gesvd: s length %d, need %d: %w", len(s), n, ErrInvalidArgument)
	}
	if u.Data != nil && (u.Rows != m || u.Cols != n) {
		return fmt.Errorf("Gesvd: u is %dx%d, want %dx%d: %w", u.Rows, u.Cols, m, n, ErrDimensionMismatch)
	}
	if vt.Data != nil && (vt.Rows != n || vt.Cols != n) {
		return fmt.Errorf("Gesvd: vt is %dx%d, want %dx%d: %w", vt.Rows, vt.Cols, n, n, ErrDimensionMismatch)
	}

	var info int
	if a64, ok := any(a).(General[float64]); ok && accelerated() {
		info = currentBackend().Dgesvd(a64, any(s).([]float64), any(u).(General[float64]), any(vt).(General[float64]))
	} else {
		info = gesvd(a, s, u, vt)
	}
	if info > 0 {
		return fmt.Errorf("Gesvd: Jacobi sweeps exhausted: %w", ErrConvergence)
	}

	return nil
}
