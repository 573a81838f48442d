// SPDX-License-Identifier: MIT

package lapack

// Reference satisfies Backend by delegating to the in-module generic
// kernels at float64. Every method assumes the validated-entry-point
// contract: descriptors are well formed and flags canonical.

func (Reference) Dgetrf(a General[float64], ipiv []int) int { return getrf(a, ipiv) }

func (Reference) Dgetrs(trans Trans, a General[float64], ipiv []int, b General[float64]) int {
	return getrs(trans, a, ipiv, b)
}

func (Reference) Dgtsv(dl, d, du []float64, b General[float64]) int { return gtsv(dl, d, du, b) }

func (Reference) Dpotrf(uplo Uplo, a General[float64]) int { return potrf(uplo, a) }

func (Reference) Dpstrf(uplo Uplo, a General[float64], piv []int, tol float64) (int, int) {
	return pstrf(uplo, a, piv, tol)
}

func (Reference) Dsytrf(uplo Uplo, a General[float64], ipiv []int) int {
	return sytrf(uplo, a, ipiv)
}

func (Reference) Dsytrs(uplo Uplo, a General[float64], ipiv []int, b General[float64]) int {
	return sytrs(uplo, a, ipiv, b)
}

func (Reference) Dpttrf(d, e []float64) int { return pttrf(d, e) }

func (Reference) Dpttrs(d, e []float64, b General[float64]) { pttrs(d, e, b) }

func (Reference) Dtrtrs(uplo Uplo, trans Trans, diag Diag, a, b General[float64]) int {
	return trtrs(uplo, trans, diag, a, b)
}

func (Reference) Dgeqrf(a General[float64], tau []float64) int { return geqrf(a, tau) }

func (Reference) Dgeqp3(a General[float64], jpvt []int, tau []float64) int {
	return geqp3(a, jpvt, tau)
}

func (Reference) Dgelqf(a General[float64], tau []float64) int { return gelqf(a, tau) }

func (Reference) Dormqr(side Side, trans Trans, a General[float64], tau []float64, c General[float64]) int {
	return ormqr(side, trans, a, tau, c)
}

func (Reference) Dormlq(side Side, trans Trans, a General[float64], tau []float64, c General[float64]) int {
	return ormlq(side, trans, a, tau, c)
}

func (Reference) Dorgqr(a General[float64], tau []float64, q General[float64]) int {
	return orgqr(a, tau, q)
}

func (Reference) Dorglq(a General[float64], tau []float64, q General[float64]) int {
	return orglq(a, tau, q)
}

func (Reference) Dgehrd(a General[float64], tau []float64) int { return gehrd(a, tau) }

func (Reference) Dorghr(a General[float64], tau []float64, q General[float64]) int {
	return orghr(a, tau, q)
}

func (Reference) Dsyev(uplo Uplo, a General[float64], w []float64, vecs bool) int {
	return syev(uplo, a, w, vecs)
}

func (Reference) Dhseqr(h, q General[float64], wr, wi []float64) int {
	return hseqr(h, q, wr, wi)
}

func (Reference) Dtrexc(t, q General[float64], ifst, ilst int) int {
	return trexc(t, q, ifst, ilst)
}

func (Reference) Dgesvd(a General[float64], s []float64, u, vt General[float64]) int {
	return gesvd(a, s, u, vt)
}
