// SPDX-License-Identifier: MIT

// Package lapack: reference Householder QR and LQ kernels, plain and
// column-pivoted, plus the reflector application and materialization
// routines.

package lapack

// larfg generates an elementary reflector for the vector whose head is
// alpha and whose tail is x: on return H*[alpha; x] = [beta; 0]. The tail
// is overwritten with the scaled v (v0 == 1 implicit); returns beta, tau.
// A zero input yields tau == 0 (H == I).
func larfg[T Float](alpha T, x []T) (beta, tau T) {
	xnorm := nrm2(x)
	if xnorm == 0 {
		return alpha, 0
	}
	beta = -copysignT(hypotT(alpha, xnorm), alpha)
	tau = (beta - alpha) / beta
	scale := 1 / (alpha - beta)
	for i := range x {
		x[i] *= scale
	}

	return beta, tau
}

// geqrf computes the QR factorization A = Q*R in place: R on and above the
// diagonal, the Householder vectors below it, scalars in tau
// (len >= min(m, n)). Always succeeds (info == 0).
func geqrf[T Float](a General[T], tau []T) int {
	m, n := a.Rows, a.Cols
	k := m
	if n < k {
		k = n
	}
	for j := 0; j < k; j++ {
		col := make([]T, m-j-1)
		for i := j + 1; i < m; i++ {
			col[i-j-1] = a.At(i, j)
		}
		beta, t := larfg(a.At(j, j), col)
		a.SetAt(j, j, beta)
		for i := j + 1; i < m; i++ {
			a.SetAt(i, j, col[i-j-1])
		}
		tau[j] = t
		if t != 0 {
			applyReflectorLeft(a, j, t, j+1, n)
		}
	}

	return 0
}

// applyReflectorLeft applies H_j = I - tau*v*vᵀ (v stored below the
// diagonal of column j, v_j == 1) to columns [c0, c1) of a from the left.
func applyReflectorLeft[T Float](a General[T], j int, tau T, c0, c1 int) {
	m := a.Rows
	for c := c0; c < c1; c++ {
		w := a.At(j, c)
		for i := j + 1; i < m; i++ {
			w += a.At(i, j) * a.At(i, c)
		}
		w *= tau
		a.Data[j*a.Stride+c] -= w
		for i := j + 1; i < m; i++ {
			a.Data[i*a.Stride+c] -= a.At(i, j) * w
		}
	}
}

// geqp3 computes the column-pivoted QR factorization A*P = Q*R. jpvt[k]
// receives the original index of the column moved to position k. The
// pivot rule is greedy: the remaining column of largest Euclidean norm
// leads; norms are recomputed exactly each step (reference quality over
// downdating tricks).
func geqp3[T Float](a General[T], jpvt []int, tau []T) int {
	m, n := a.Rows, a.Cols
	for j := 0; j < n; j++ {
		jpvt[j] = j
	}
	kmax := m
	if n < kmax {
		kmax = n
	}
	seg := make([]T, m)
	for j := 0; j < kmax; j++ {
		// Select the remaining column with the largest tail norm.
		p, best := j, T(-1)
		for c := j; c < n; c++ {
			for i := j; i < m; i++ {
				seg[i-j] = a.At(i, c)
			}
			if v := nrm2(seg[:m-j]); v > best {
				best, p = v, c
			}
		}
		if p != j {
			for i := 0; i < m; i++ {
				a.Data[i*a.Stride+j], a.Data[i*a.Stride+p] = a.Data[i*a.Stride+p], a.Data[i*a.Stride+j]
			}
			jpvt[j], jpvt[p] = jpvt[p], jpvt[j]
		}
		if best == 0 {
			tau[j] = 0
			continue // remaining block is exactly zero
		}
		col := make([]T, m-j-1)
		for i := j + 1; i < m; i++ {
			col[i-j-1] = a.At(i, j)
		}
		beta, t := larfg(a.At(j, j), col)
		a.SetAt(j, j, beta)
		for i := j + 1; i < m; i++ {
			a.SetAt(i, j, col[i-j-1])
		}
		tau[j] = t
		if t != 0 {
			applyReflectorLeft(a, j, t, j+1, n)
		}
	}

	return 0
}

// ormqr applies Q (or Qᵀ) from a geqrf factorization to C in place.
// side selects C <- op(Q)*C (Left) or C <- C*op(Q) (Right).
func ormqr[T Float](side Side, trans Trans, a General[T], tau []T, c General[T]) int {
	k := len(tau)
	// Ascending reflector order realizes Qᵀ from the left and Q from the
	// right; descending realizes the other two cases.
	ascending := (side == Left) == (trans != NoTrans)
	for idx := 0; idx < k; idx++ {
		j := idx
		if !ascending {
			j = k - 1 - idx
		}
		t := tau[j]
		if t == 0 {
			continue
		}
		if side == Left {
			m := a.Rows
			for cc := 0; cc < c.Cols; cc++ {
				w := c.At(j, cc)
				for i := j + 1; i < m; i++ {
					w += a.At(i, j) * c.At(i, cc)
				}
				w *= t
				c.Data[j*c.Stride+cc] -= w
				for i := j + 1; i < m; i++ {
					c.Data[i*c.Stride+cc] -= a.At(i, j) * w
				}
			}
			continue
		}
		m := a.Rows
		for r := 0; r < c.Rows; r++ {
			w := c.At(r, j)
			for i := j + 1; i < m; i++ {
				w += c.At(r, i) * a.At(i, j)
			}
			w *= t
			c.Data[r*c.Stride+j] -= w
			for i := j + 1; i < m; i++ {
				c.Data[r*c.Stride+i] -= a.At(i, j) * w
			}
		}
	}

	return 0
}

// orgqr materializes the leading q.Cols columns of Q from a geqrf
// factorization into q (q.Rows == a.Rows).
func orgqr[T Float](a General[T], tau []T, q General[T]) int {
	m, r := q.Rows, q.Cols
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			if i == j {
				q.SetAt(i, j, 1)
			} else {
				q.SetAt(i, j, 0)
			}
		}
	}

	return ormqr(Left, NoTrans, a, tau, q)
}

// gelqf computes the LQ factorization A = L*Q in place: L on and below the
// diagonal, row-wise Householder vectors above it, scalars in tau.
func gelqf[T Float](a General[T], tau []T) int {
	m, n := a.Rows, a.Cols
	k := m
	if n < k {
		k = n
	}
	for j := 0; j < k; j++ {
		row := make([]T, n-j-1)
		for c := j + 1; c < n; c++ {
			row[c-j-1] = a.At(j, c)
		}
		beta, t := larfg(a.At(j, j), row)
		a.SetAt(j, j, beta)
		for c := j + 1; c < n; c++ {
			a.SetAt(j, c, row[c-j-1])
		}
		tau[j] = t
		if t == 0 {
			continue
		}
		// Apply H_j to the rows below.
		for i := j + 1; i < m; i++ {
			w := a.At(i, j)
			for c := j + 1; c < n; c++ {
				w += a.At(j, c) * a.At(i, c)
			}
			w *= t
			a.Data[i*a.Stride+j] -= w
			for c := j + 1; c < n; c++ {
				a.Data[i*a.Stride+c] -= a.At(j, c) * w
			}
		}
	}

	return 0
}

// ormlq applies Q (or Qᵀ) from a gelqf factorization to C in place.
func ormlq[T Float](side Side, trans Trans, a General[T], tau []T, c General[T]) int {
	k := len(tau)
	n := a.Cols
	// For LQ, Q = H_{k-1}···H_0, so the ascending/descending split is the
	// mirror of ormqr.
	ascending := (side == Left) == (trans == NoTrans)
	for idx := 0; idx < k; idx++ {
		j := idx
		if !ascending {
			j = k - 1 - idx
		}
		t := tau[j]
		if t == 0 {
			continue
		}
		if side == Left {
			for cc := 0; cc < c.Cols; cc++ {
				w := c.At(j, cc)
				for i := j + 1; i < n; i++ {
					w += a.At(j, i) * c.At(i, cc)
				}
				w *= t
				c.Data[j*c.Stride+cc] -= w
				for i := j + 1; i < n; i++ {
					c.Data[i*c.Stride+cc] -= a.At(j, i) * w
				}
			}
			continue
		}
		for r := 0; r < c.Rows; r++ {
			w := c.At(r, j)
			for i := j + 1; i < n; i++ {
				w += c.At(r, i) * a.At(j, i)
			}
			w *= t
			c.Data[r*c.Stride+j] -= w
			for i := j + 1; i < n; i++ {
				c.Data[r*c.Stride+i] -= a.At(j, i) * w
			}
		}
	}

	return 0
}

// orglq materializes the first q.Rows rows of the orthogonal Q of a gelqf
// factorization: identity, then C*Q with C = I.
func orglq[T Float](a General[T], tau []T, q General[T]) int {
	r, n := q.Rows, q.Cols
	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				q.SetAt(i, j, 1)
			} else {
				q.SetAt(i, j, 0)
			}
		}
	}

	return ormlq(Right, NoTrans, a, tau, q)
}
