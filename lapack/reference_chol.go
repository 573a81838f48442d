// SPDX-License-Identifier: MIT

// Package lapack: reference Cholesky-family kernels (plain and pivoted),
// the symmetric tridiagonal LDLt, and the triangular solver.

package lapack

// potrf computes the Cholesky factorization of a symmetric positive
// definite matrix in place within the stored triangle: A = L*Lᵀ (Lower) or
// A = Uᵀ*U (Upper). info == j+1 reports that the leading minor of order
// j+1 is not positive definite; entries past it are left untouched.
func potrf[T Float](uplo Uplo, a General[T]) int {
	n := a.Rows
	t := tri[T]{ld: a.Stride, data: a.Data, upper: uplo == Upper}
	for j := 0; j < n; j++ {
		sum := t.at(j, j)
		for k := 0; k < j; k++ {
			v := t.at(j, k)
			sum -= v * v
		}
		if sum <= 0 {
			return j + 1
		}
		ljj := sqrtT(sum)
		t.set(j, j, ljj)
		for i := j + 1; i < n; i++ {
			s := t.at(i, j)
			for k := 0; k < j; k++ {
				s -= t.at(i, k) * t.at(j, k)
			}
			t.set(i, j, s/ljj)
		}
	}

	return 0
}

// pstrf computes the pivoted Cholesky factorization Pᵀ*A*P = L*Lᵀ with
// diagonal pivoting, stopping at the numerical rank. piv[k] receives the
// original index of the row/column moved to position k. tol <= 0 selects
// the default stopping threshold n*eps*max(diag(A)).
//
// rank is the number of completed steps; info == 1 flags rank < n.
func pstrf[T Float](uplo Uplo, a General[T], piv []int, tol T) (rank, info int) {
	n := a.Rows
	t := tri[T]{ld: a.Stride, data: a.Data, upper: uplo == Upper}
	for i := 0; i < n; i++ {
		piv[i] = i
	}
	if n == 0 {
		return 0, 0
	}
	if tol <= 0 {
		var maxd T
		for i := 0; i < n; i++ {
			if v := t.at(i, i); v > maxd {
				maxd = v
			}
		}
		tol = T(n) * epsT[T]() * maxd
	}
	for k := 0; k < n; k++ {
		// Greedy diagonal pivoting: the largest remaining diagonal leads.
		p := k
		maxd := t.at(k, k)
		for i := k + 1; i < n; i++ {
			if v := t.at(i, i); v > maxd {
				maxd, p = v, i
			}
		}
		if maxd <= tol {
			return k, 1
		}
		if p != k {
			t.swapSym(n, k, p)
			piv[k], piv[p] = piv[p], piv[k]
		}
		pivot := sqrtT(t.at(k, k))
		t.set(k, k, pivot)
		for i := k + 1; i < n; i++ {
			t.set(i, k, t.at(i, k)/pivot)
		}
		// Rank-one downdate of the trailing stored triangle.
		for j := k + 1; j < n; j++ {
			ljk := t.at(j, k)
			if ljk == 0 {
				continue
			}
			for i := j; i < n; i++ {
				t.set(i, j, t.at(i, j)-t.at(i, k)*ljk)
			}
		}
	}

	return n, 0
}

// pttrf computes the LDLᵀ factorization of a symmetric positive definite
// tridiagonal matrix in place: d becomes D, e becomes the unit-bidiagonal
// multipliers. The first non-positive pivot stops the factorization with
// info == i+1; positive definiteness is required, not just nonsingularity.
func pttrf[T Float](d, e []T) int {
	n := len(d)
	for i := 0; i < n-1; i++ {
		if d[i] <= 0 {
			return i + 1
		}
		ei := e[i]
		e[i] = ei / d[i]
		d[i+1] -= e[i] * ei
	}
	if n > 0 && d[n-1] <= 0 {
		return n
	}

	return 0
}

// pttrs solves L*D*Lᵀ*X = B with pttrf factors, overwriting B.
func pttrs[T Float](d, e []T, b General[T]) int {
	n := len(d)
	nrhs := b.Cols
	for c := 0; c < nrhs; c++ {
		for i := 1; i < n; i++ {
			b.Data[i*b.Stride+c] -= e[i-1] * b.Data[(i-1)*b.Stride+c]
		}
		for i := 0; i < n; i++ {
			b.Data[i*b.Stride+c] /= d[i]
		}
		for i := n - 2; i >= 0; i-- {
			b.Data[i*b.Stride+c] -= e[i] * b.Data[(i+1)*b.Stride+c]
		}
	}

	return 0
}

// trtrs solves the triangular system op(A)*X = B, overwriting B. With a
// NonUnit diagonal an exactly zero diagonal entry fails with info == i+1
// before any substitution touches B.
func trtrs[T Float](uplo Uplo, trans Trans, diag Diag, a General[T], b General[T]) int {
	n := a.Rows
	nrhs := b.Cols
	if diag == NonUnit {
		for i := 0; i < n; i++ {
			if a.At(i, i) == 0 {
				return i + 1
			}
		}
	}
	lower := uplo == Lower
	noTrans := trans == NoTrans
	// The four uplo x trans cases collapse to two substitution directions:
	// forward for (Lower, NoTrans) and (Upper, Trans); backward otherwise.
	forward := lower == noTrans
	for c := 0; c < nrhs; c++ {
		if forward {
			for i := 0; i < n; i++ {
				sum := b.Data[i*b.Stride+c]
				for k := 0; k < i; k++ {
					if noTrans {
						sum -= a.At(i, k) * b.Data[k*b.Stride+c]
					} else {
						sum -= a.At(k, i) * b.Data[k*b.Stride+c]
					}
				}
				if diag == NonUnit {
					sum /= a.At(i, i)
				}
				b.Data[i*b.Stride+c] = sum
			}

			continue
		}
		for i := n - 1; i >= 0; i-- {
			sum := b.Data[i*b.Stride+c]
			for k := i + 1; k < n; k++ {
				if noTrans {
					sum -= a.At(i, k) * b.Data[k*b.Stride+c]
				} else {
					sum -= a.At(k, i) * b.Data[k*b.Stride+c]
				}
			}
			if diag == NonUnit {
				sum /= a.At(i, i)
			}
			b.Data[i*b.Stride+c] = sum
		}
	}

	return 0
}
