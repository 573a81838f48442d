// SPDX-License-Identifier: MIT

// Package lapack: reference LU kernels (partial pivoting) and the
// tridiagonal direct solver.

package lapack

// getrf computes the LU factorization with partial pivoting of an m-by-n
// matrix, PA = LU, in place: U on and above the diagonal, the unit-lower
// multipliers below it. ipiv[k] records the row interchanged with row k at
// step k (0-based, len >= min(m, n)).
//
// info == 0 on success; info == k+1 flags an exactly zero pivot at step k:
// the factorization is completed but U is singular.
func getrf[T Float](a General[T], ipiv []int) (info int) {
	m, n := a.Rows, a.Cols
	k := m
	if n < k {
		k = n
	}
	for j := 0; j < k; j++ {
		// Partial pivoting: largest magnitude in column j at or below the
		// diagonal. Deterministic tie-break: first maximal row wins.
		p := j
		maxv := absT(a.At(j, j))
		for i := j + 1; i < m; i++ {
			if v := absT(a.At(i, j)); v > maxv {
				maxv, p = v, i
			}
		}
		ipiv[j] = p
		if maxv == 0 {
			if info == 0 {
				info = j + 1
			}
			continue // zero column: no elimination possible at this step
		}
		if p != j {
			for c := 0; c < n; c++ {
				a.Data[j*a.Stride+c], a.Data[p*a.Stride+c] = a.Data[p*a.Stride+c], a.Data[j*a.Stride+c]
			}
		}
		// Scale the multipliers and update the trailing submatrix.
		piv := a.At(j, j)
		for i := j + 1; i < m; i++ {
			mult := a.At(i, j) / piv
			a.SetAt(i, j, mult)
			for c := j + 1; c < n; c++ {
				a.Data[i*a.Stride+c] -= mult * a.Data[j*a.Stride+c]
			}
		}
	}

	return info
}

// getrs solves A*X = B or Aᵀ*X = B with the getrf factors, overwriting B
// with X. A must be the square in-place factor; B carries one column per
// right-hand side.
func getrs[T Float](t Trans, a General[T], ipiv []int, b General[T]) int {
	n := a.Rows
	nrhs := b.Cols
	if t == NoTrans {
		// Apply the row interchanges to B, in factorization order.
		for k := 0; k < n; k++ {
			if p := ipiv[k]; p != k {
				for c := 0; c < nrhs; c++ {
					b.Data[k*b.Stride+c], b.Data[p*b.Stride+c] = b.Data[p*b.Stride+c], b.Data[k*b.Stride+c]
				}
			}
		}
		// Forward substitution with unit-lower L.
		for i := 1; i < n; i++ {
			for k := 0; k < i; k++ {
				l := a.At(i, k)
				if l == 0 {
					continue
				}
				for c := 0; c < nrhs; c++ {
					b.Data[i*b.Stride+c] -= l * b.Data[k*b.Stride+c]
				}
			}
		}
		// Back substitution with U.
		for i := n - 1; i >= 0; i-- {
			piv := a.At(i, i)
			for k := i + 1; k < n; k++ {
				u := a.At(i, k)
				if u == 0 {
					continue
				}
				for c := 0; c < nrhs; c++ {
					b.Data[i*b.Stride+c] -= u * b.Data[k*b.Stride+c]
				}
			}
			for c := 0; c < nrhs; c++ {
				b.Data[i*b.Stride+c] /= piv
			}
		}

		return 0
	}

	// Transposed system: Uᵀ is lower, Lᵀ is unit-upper, interchanges last.
	for i := 0; i < n; i++ {
		piv := a.At(i, i)
		for k := 0; k < i; k++ {
			u := a.At(k, i)
			if u == 0 {
				continue
			}
			for c := 0; c < nrhs; c++ {
				b.Data[i*b.Stride+c] -= u * b.Data[k*b.Stride+c]
			}
		}
		for c := 0; c < nrhs; c++ {
			b.Data[i*b.Stride+c] /= piv
		}
	}
	for i := n - 2; i >= 0; i-- {
		for k := i + 1; k < n; k++ {
			l := a.At(k, i)
			if l == 0 {
				continue
			}
			for c := 0; c < nrhs; c++ {
				b.Data[i*b.Stride+c] -= l * b.Data[k*b.Stride+c]
			}
		}
	}
	for k := n - 1; k >= 0; k-- {
		if p := ipiv[k]; p != k {
			for c := 0; c < nrhs; c++ {
				b.Data[k*b.Stride+c], b.Data[p*b.Stride+c] = b.Data[p*b.Stride+c], b.Data[k*b.Stride+c]
			}
		}
	}

	return 0
}

// gtsv solves the general tridiagonal system A*X = B in one shot using
// Gaussian elimination with partial pivoting between adjacent rows. dl, d
// and du are the sub-, main- and super-diagonals (lengths n-1, n, n-1);
// all of them and B are overwritten. info == k+1 flags a zero pivot.
func gtsv[T Float](dl, d, du []T, b General[T]) int {
	n := len(d)
	nrhs := b.Cols
	if n == 0 {
		return 0
	}
	// du2 holds the fill-in second super-diagonal created by interchanges.
	du2 := make([]T, n)
	for i := 0; i < n-1; i++ {
		if absT(d[i]) >= absT(dl[i]) {
			// No interchange.
			if d[i] == 0 {
				return i + 1
			}
			mult := dl[i] / d[i]
			dl[i] = 0
			d[i+1] -= mult * du[i]
			if i < n-2 {
				du2[i] = 0
			}
			for c := 0; c < nrhs; c++ {
				b.Data[(i+1)*b.Stride+c] -= mult * b.Data[i*b.Stride+c]
			}
			continue
		}
		// Interchange rows i and i+1.
		mult := d[i] / dl[i]
		d[i] = dl[i]
		dl[i] = 0
		tmp := d[i+1]
		d[i+1] = du[i] - mult*tmp
		du[i] = tmp
		if i < n-2 {
			du2[i] = du[i+1]
			du[i+1] = -mult * du2[i]
		}
		for c := 0; c < nrhs; c++ {
			bi := b.Data[i*b.Stride+c]
			b.Data[i*b.Stride+c] = b.Data[(i+1)*b.Stride+c]
			b.Data[(i+1)*b.Stride+c] = bi - mult*b.Data[i*b.Stride+c]
		}
	}
	if d[n-1] == 0 {
		return n
	}
	// Back substitution against the (at most) three stored diagonals.
	for c := 0; c < nrhs; c++ {
		b.Data[(n-1)*b.Stride+c] /= d[n-1]
		if n > 1 {
			b.Data[(n-2)*b.Stride+c] = (b.Data[(n-2)*b.Stride+c] - du[n-2]*b.Data[(n-1)*b.Stride+c]) / d[n-2]
		}
		for i := n - 3; i >= 0; i-- {
			b.Data[i*b.Stride+c] = (b.Data[i*b.Stride+c] - du[i]*b.Data[(i+1)*b.Stride+c] - du2[i]*b.Data[(i+2)*b.Stride+c]) / d[i]
		}
	}

	return 0
}
