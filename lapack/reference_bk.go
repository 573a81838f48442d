// SPDX-License-Identifier: MIT

// Package lapack: reference Bunch-Kaufman kernels for symmetric
// indefinite matrices (1x1 and 2x2 diagonal pivoting).

package lapack

// bkAlpha is the Bunch-Kaufman pivot threshold (1+sqrt(17))/8, the value
// that minimizes the element growth bound.
const bkAlpha = 0.6403882032022076

// sytrf computes the factorization P*A*Pᵀ = L*D*Lᵀ of a symmetric matrix
// using Bunch-Kaufman diagonal pivoting, in place within the stored
// triangle. D is block diagonal with 1x1 and 2x2 blocks; L is unit lower
// (unit upper for Upper storage, via the mirrored addressing of tri).
//
// Pivot encoding (0-based): ipiv[k] >= 0 records a 1x1 pivot whose row and
// column were interchanged with ipiv[k]; ipiv[k] == ipiv[k+1] == -(kp+1)
// records a 2x2 pivot over columns (k, k+1) whose second row/column was
// interchanged with kp.
//
// info == k+1 flags an exactly zero pivot at step k; the factorization
// continues but must not be used to solve.
func sytrf[T Float](uplo Uplo, a General[T], ipiv []int) (info int) {
	n := a.Rows
	t := tri[T]{ld: a.Stride, data: a.Data, upper: uplo == Upper}
	alpha := T(bkAlpha)

	for k := 0; k < n; {
		absakk := absT(t.at(k, k))
		// Largest off-diagonal magnitude in column k below the diagonal.
		imax, colmax := k, T(0)
		for i := k + 1; i < n; i++ {
			if v := absT(t.at(i, k)); v > colmax {
				colmax, imax = v, i
			}
		}
		if absakk == 0 && colmax == 0 {
			// Zero pivot column: record and move on.
			if info == 0 {
				info = k + 1
			}
			ipiv[k] = k
			k++
			continue
		}

		kp, kstep := k, 1
		if absakk < alpha*colmax {
			// rowmax: largest magnitude in row imax excluding the diagonal,
			// read entirely from the stored triangle. It includes position
			// (imax, k), so rowmax >= colmax > 0 here.
			var rowmax T
			for j := k; j < imax; j++ {
				if v := absT(t.at(imax, j)); v > rowmax {
					rowmax = v
				}
			}
			for i := imax + 1; i < n; i++ {
				if v := absT(t.at(i, imax)); v > rowmax {
					rowmax = v
				}
			}
			switch {
			case absakk*rowmax >= alpha*colmax*colmax:
				// Column k is acceptable after all.
			case absT(t.at(imax, imax)) >= alpha*rowmax:
				kp = imax // interchanged 1x1 pivot
			default:
				kp, kstep = imax, 2 // 2x2 pivot, guaranteed nonsingular
			}
		}

		if kstep == 1 {
			if kp != k {
				t.swapSym(n, k, kp)
			}
			d := t.at(k, k)
			ipiv[k] = kp
			if d == 0 {
				if info == 0 {
					info = k + 1
				}
				k++
				continue
			}
			// Rank-one update of the trailing triangle, then scale the
			// multiplier column. The update reads the unscaled column.
			for j := k + 1; j < n; j++ {
				cj := t.at(j, k)
				if cj == 0 {
					continue
				}
				f := cj / d
				for i := j; i < n; i++ {
					t.set(i, j, t.at(i, j)-t.at(i, k)*f)
				}
			}
			for i := k + 1; i < n; i++ {
				t.set(i, k, t.at(i, k)/d)
			}
			k++
			continue
		}

		// 2x2 pivot over columns (k, k+1).
		if kp != k+1 {
			t.swapSym(n, k+1, kp)
		}
		if k < n-2 {
			// Inverse of the 2x2 block expressed through its off-diagonal
			// (nonzero by construction of the pivot search).
			d21 := t.at(k+1, k)
			d11 := t.at(k+1, k+1) / d21
			d22 := t.at(k, k) / d21
			tt := 1 / (d11*d22 - 1)
			d21s := tt / d21
			for j := k + 2; j < n; j++ {
				wk := d21s * (d11*t.at(j, k) - t.at(j, k+1))
				wkp1 := d21s * (d22*t.at(j, k+1) - t.at(j, k))
				for i := j; i < n; i++ {
					t.set(i, j, t.at(i, j)-t.at(i, k)*wk-t.at(i, k+1)*wkp1)
				}
				t.set(j, k, wk)
				t.set(j, k+1, wkp1)
			}
		}
		ipiv[k] = -(kp + 1)
		ipiv[k+1] = -(kp + 1)
		k += 2
	}

	return info
}

// sytrs solves A*X = B using sytrf factors, overwriting B.
func sytrs[T Float](uplo Uplo, a General[T], ipiv []int, b General[T]) int {
	n := a.Rows
	nrhs := b.Cols
	t := tri[T]{ld: a.Stride, data: a.Data, upper: uplo == Upper}

	swapRows := func(p, q int) {
		if p == q {
			return
		}
		for c := 0; c < nrhs; c++ {
			b.Data[p*b.Stride+c], b.Data[q*b.Stride+c] = b.Data[q*b.Stride+c], b.Data[p*b.Stride+c]
		}
	}

	// Forward: apply interchanges and L⁻¹, then D⁻¹ per block.
	for k := 0; k < n; {
		if ipiv[k] >= 0 {
			swapRows(k, ipiv[k])
			for i := k + 1; i < n; i++ {
				lik := t.at(i, k)
				if lik == 0 {
					continue
				}
				for c := 0; c < nrhs; c++ {
					b.Data[i*b.Stride+c] -= lik * b.Data[k*b.Stride+c]
				}
			}
			d := t.at(k, k)
			for c := 0; c < nrhs; c++ {
				b.Data[k*b.Stride+c] /= d
			}
			k++
			continue
		}
		kp := -ipiv[k] - 1
		swapRows(k+1, kp)
		for i := k + 2; i < n; i++ {
			l1, l2 := t.at(i, k), t.at(i, k+1)
			for c := 0; c < nrhs; c++ {
				b.Data[i*b.Stride+c] -= l1*b.Data[k*b.Stride+c] + l2*b.Data[(k+1)*b.Stride+c]
			}
		}
		akk, a21, a22 := t.at(k, k), t.at(k+1, k), t.at(k+1, k+1)
		denom := akk*a22 - a21*a21
		for c := 0; c < nrhs; c++ {
			bk, bk1 := b.Data[k*b.Stride+c], b.Data[(k+1)*b.Stride+c]
			b.Data[k*b.Stride+c] = (a22*bk - a21*bk1) / denom
			b.Data[(k+1)*b.Stride+c] = (akk*bk1 - a21*bk) / denom
		}
		k += 2
	}

	// Backward: apply L⁻ᵀ and undo the interchanges, in reverse block order.
	for k := n - 1; k >= 0; {
		if ipiv[k] >= 0 {
			for i := k + 1; i < n; i++ {
				lik := t.at(i, k)
				if lik == 0 {
					continue
				}
				for c := 0; c < nrhs; c++ {
					b.Data[k*b.Stride+c] -= lik * b.Data[i*b.Stride+c]
				}
			}
			swapRows(k, ipiv[k])
			k--
			continue
		}
		kk := k - 1 // first column of the 2x2 pair
		for i := k + 1; i < n; i++ {
			l1, l2 := t.at(i, kk), t.at(i, k)
			for c := 0; c < nrhs; c++ {
				b.Data[kk*b.Stride+c] -= l1 * b.Data[i*b.Stride+c]
				b.Data[k*b.Stride+c] -= l2 * b.Data[i*b.Stride+c]
			}
		}
		swapRows(k, -ipiv[k]-1)
		k -= 2
	}

	return 0
}
