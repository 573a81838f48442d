// SPDX-License-Identifier: MIT

// Package lapack: reference eigen-family kernels. Hessenberg reduction,
// the symmetric Jacobi eigensolver, the real Schur iteration (Francis
// double shift with exceptional shifts), Schur reordering, and the
// one-sided Jacobi SVD.

package lapack

// jacobiMaxSweeps caps the Jacobi sweep count for the symmetric eigen and
// SVD kernels. Cyclic Jacobi converges quadratically; well-conditioned
// inputs finish in a handful of sweeps.
const jacobiMaxSweeps = 60

// schurMaxIter caps the shifted-QR iterations spent per eigenvalue.
const schurMaxIter = 30

// gehrd reduces a square matrix to upper Hessenberg form by an orthogonal
// similarity, in place: H on and above the subdiagonal, the Householder
// vectors below it, scalars in tau (len >= n-1; the trailing entry stays
// zero). Always succeeds.
func gehrd[T Float](a General[T], tau []T) int {
	n := a.Rows
	for k := 0; k < n-2; k++ {
		tail := make([]T, n-k-2)
		for i := k + 2; i < n; i++ {
			tail[i-k-2] = a.At(i, k)
		}
		beta, t := larfg(a.At(k+1, k), tail)
		a.SetAt(k+1, k, beta)
		for i := k + 2; i < n; i++ {
			a.SetAt(i, k, tail[i-k-2])
		}
		tau[k] = t
		if t == 0 {
			continue
		}
		// Similarity: H from the left on the trailing columns…
		for c := k + 1; c < n; c++ {
			w := a.At(k+1, c)
			for i := k + 2; i < n; i++ {
				w += a.At(i, k) * a.At(i, c)
			}
			w *= t
			a.Data[(k+1)*a.Stride+c] -= w
			for i := k + 2; i < n; i++ {
				a.Data[i*a.Stride+c] -= a.At(i, k) * w
			}
		}
		// …and from the right on every row.
		for r := 0; r < n; r++ {
			w := a.At(r, k+1)
			for i := k + 2; i < n; i++ {
				w += a.At(r, i) * a.At(i, k)
			}
			w *= t
			a.Data[r*a.Stride+k+1] -= w
			for i := k + 2; i < n; i++ {
				a.Data[r*a.Stride+i] -= a.At(i, k) * w
			}
		}
	}
	if n > 1 {
		tau[n-2] = 0
	}

	return 0
}

// orghr materializes the orthogonal matrix Q of a gehrd reduction into q
// (n-by-n), so that A = Q*H*Qᵀ.
func orghr[T Float](a General[T], tau []T, q General[T]) int {
	n := a.Rows
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				q.SetAt(i, j, 1)
			} else {
				q.SetAt(i, j, 0)
			}
		}
	}
	for k := n - 3; k >= 0; k-- {
		t := tau[k]
		if t == 0 {
			continue
		}
		for cc := 0; cc < n; cc++ {
			w := q.At(k+1, cc)
			for i := k + 2; i < n; i++ {
				w += a.At(i, k) * q.At(i, cc)
			}
			w *= t
			q.Data[(k+1)*q.Stride+cc] -= w
			for i := k + 2; i < n; i++ {
				q.Data[i*q.Stride+cc] -= a.At(i, k) * w
			}
		}
	}

	return 0
}

// syev computes all eigenvalues, and optionally eigenvectors, of a
// symmetric matrix by the classical Jacobi method with largest
// off-diagonal pivot selection. On success w holds
// the eigenvalues in ascending order and, when vecs is true, the full
// storage of a is overwritten with the matching orthonormal eigenvectors
// in its columns. info == 1 flags non-convergence.
func syev[T Float](uplo Uplo, a General[T], w []T, vecs bool) int {
	n := a.Rows
	t := tri[T]{ld: a.Stride, data: a.Data, upper: uplo == Upper}
	// Work on a full symmetric copy; the stored triangle is authoritative.
	m := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := t.at(i, j)
			m[i*n+j] = v
			m[j*n+i] = v
		}
	}
	v := make([]T, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	var anorm T
	for i := range m {
		if x := absT(m[i]); x > anorm {
			anorm = x
		}
	}
	tol := epsT[T]() * anorm

	maxRot := jacobiMaxSweeps * n * n
	converged := n <= 1 || anorm == 0
	for rot := 0; rot < maxRot && !converged; rot++ {
		// Pivot: largest |m[p][q]| above the diagonal.
		var p, q int
		var maxOff T
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := absT(m[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		app, aqq, apq := m[p*n+p], m[q*n+q], m[p*n+q]
		theta := (aqq - app) / (2 * apq)
		tt := copysignT(1/(absT(theta)+hypotT(theta, 1)), theta)
		c := 1 / sqrtT(tt*tt+1)
		s := tt * c
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := m[i*n+p], m[i*n+q]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			m[i*n+p], m[p*n+i] = nip, nip
			m[i*n+q], m[q*n+i] = niq, niq
		}
		m[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		m[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		m[p*n+q], m[q*n+p] = 0, 0
		for i := 0; i < n; i++ {
			vip, viq := v[i*n+p], v[i*n+q]
			v[i*n+p] = c*vip - s*viq
			v[i*n+q] = s*vip + c*viq
		}
	}

	// Ascending eigenvalue order with matching vector columns
	// (deterministic selection sort; n is small at reference quality).
	for i := 0; i < n; i++ {
		w[i] = m[i*n+i]
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 0; i < n; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if w[order[j]] < w[order[min]] {
				min = j
			}
		}
		order[i], order[min] = order[min], order[i]
	}
	sorted := make([]T, n)
	for i := 0; i < n; i++ {
		sorted[i] = w[order[i]]
	}
	copy(w, sorted)
	if vecs {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a.SetAt(i, j, v[i*n+order[j]])
			}
		}
	}

	if !converged {
		return 1
	}

	return 0
}

// hseqr computes the real Schur decomposition of an upper Hessenberg
// matrix by the Francis double-shift QR iteration: h is overwritten with
// the quasi-triangular T, the accumulated orthogonal transform is folded
// into q (pass the orghr Q, or identity, with q.Data == nil to skip), and
// (wr, wi) receive the eigenvalues. info == k+1 reports that eigenvalue k
// failed to converge within the iteration budget.
func hseqr[T Float](h General[T], q General[T], wr, wi []T) int {
	n := h.Rows
	if n == 0 {
		return 0
	}
	eps := epsT[T]()
	withQ := q.Data != nil

	// One-norm surrogate used when a deflation test would divide by zero.
	var anorm T
	for i := 0; i < n; i++ {
		lo := i - 1
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < n; j++ {
			anorm += absT(h.At(i, j))
		}
	}

	en := n - 1
	for en >= 0 {
		iter := 0
		for {
			// Look for a negligible subdiagonal to split the active block.
			lo := en
			for lo > 0 {
				s := absT(h.At(lo-1, lo-1)) + absT(h.At(lo, lo))
				if s == 0 {
					s = anorm
				}
				if absT(h.At(lo, lo-1)) <= eps*s {
					h.SetAt(lo, lo-1, 0)
					break
				}
				lo--
			}

			if lo == en {
				wr[en], wi[en] = h.At(en, en), 0
				en--
				break
			}
			if lo == en-1 {
				na := en - 1
				ww := h.At(en, na) * h.At(na, en)
				p := (h.At(na, na) - h.At(en, en)) / 2
				qq := p*p + ww
				zz := sqrtT(absT(qq))
				if qq >= 0 {
					// Real pair: rotate the block to (upper) triangular form.
					zz = p + copysignT(zz, p)
					wr[na] = h.At(en, en) + zz
					wr[en] = wr[na]
					if zz != 0 {
						wr[en] = h.At(en, en) - ww/zz
					}
					wi[na], wi[en] = 0, 0
					x := h.At(en, na)
					s := absT(x) + absT(zz)
					if s != 0 {
						pp := x / s
						qq2 := zz / s
						r := hypotT(pp, qq2)
						cs := qq2 / r
						sn := pp / r
						for j := na; j < n; j++ {
							tmp := h.At(na, j)
							h.SetAt(na, j, cs*tmp+sn*h.At(en, j))
							h.SetAt(en, j, cs*h.At(en, j)-sn*tmp)
						}
						for i := 0; i <= en; i++ {
							tmp := h.At(i, na)
							h.SetAt(i, na, cs*tmp+sn*h.At(i, en))
							h.SetAt(i, en, cs*h.At(i, en)-sn*tmp)
						}
						if withQ {
							for i := 0; i < n; i++ {
								tmp := q.At(i, na)
								q.SetAt(i, na, cs*tmp+sn*q.At(i, en))
								q.SetAt(i, en, cs*q.At(i, en)-sn*tmp)
							}
						}
					}
					h.SetAt(en, na, 0)
				} else {
					// Complex conjugate pair: the 2x2 block stays.
					wr[na] = h.At(en, en) + p
					wr[en] = wr[na]
					wi[na] = zz
					wi[en] = -zz
				}
				en -= 2
				break
			}

			iter++
			if iter > schurMaxIter {
				return en + 1
			}

			// Shift parameters from the trailing 2x2; every tenth iteration
			// an exceptional ad-hoc shift breaks potential cycles.
			x := h.At(en, en)
			y := h.At(en-1, en-1)
			ww := h.At(en, en-1) * h.At(en-1, en)
			if iter == 10 || iter == 20 {
				s := absT(h.At(en, en-1)) + absT(h.At(en-1, en-2))
				x = T(0.75) * s
				y = x
				ww = T(-0.4375) * s * s
			}

			// Find the bulge start m: the lowest row where the implicit
			// first column can be introduced without disturbing a converged
			// part of the matrix.
			var p1, q1, r1 T
			m := en - 2
			for ; m > lo; m-- {
				zz := h.At(m, m)
				r := x - zz
				s := y - zz
				p1 = (r*s-ww)/h.At(m+1, m) + h.At(m, m+1)
				q1 = h.At(m+1, m+1) - zz - r - s
				r1 = h.At(m+2, m+1)
				scale := absT(p1) + absT(q1) + absT(r1)
				p1 /= scale
				q1 /= scale
				r1 /= scale
				tst := absT(h.At(m, m-1)) * (absT(q1) + absT(r1))
				ref := absT(p1) * (absT(h.At(m-1, m-1)) + absT(zz) + absT(h.At(m+1, m+1)))
				if tst <= eps*ref {
					break
				}
			}
			if m == lo {
				zz := h.At(m, m)
				r := x - zz
				s := y - zz
				p1 = (r*s-ww)/h.At(m+1, m) + h.At(m, m+1)
				q1 = h.At(m+1, m+1) - zz - r - s
				r1 = h.At(m+2, m+1)
				scale := absT(p1) + absT(q1) + absT(r1)
				p1 /= scale
				q1 /= scale
				r1 /= scale
			}
			for i := m + 2; i <= en; i++ {
				h.SetAt(i, i-2, 0)
			}
			for i := m + 3; i <= en; i++ {
				h.SetAt(i, i-3, 0)
			}

			// Double-shift sweep: chase the 3x3 bulge from m down to en.
			for k := m; k <= en-1; k++ {
				notLast := k != en-1
				var xx T
				if k != m {
					p1 = h.At(k, k-1)
					q1 = h.At(k+1, k-1)
					r1 = 0
					if notLast {
						r1 = h.At(k+2, k-1)
					}
					xx = absT(p1) + absT(q1) + absT(r1)
					if xx == 0 {
						continue
					}
					p1 /= xx
					q1 /= xx
					r1 /= xx
				}
				s := copysignT(sqrtT(p1*p1+q1*q1+r1*r1), p1)
				if k != m {
					h.SetAt(k, k-1, -s*xx)
				} else if lo != m {
					h.SetAt(k, k-1, -h.At(k, k-1))
				}
				p1 += s
				x3 := p1 / s
				y3 := q1 / s
				z3 := r1 / s
				q1 /= p1
				r1 /= p1
				// Row modification.
				for j := k; j < n; j++ {
					pp := h.At(k, j) + q1*h.At(k+1, j)
					if notLast {
						pp += r1 * h.At(k+2, j)
						h.SetAt(k+2, j, h.At(k+2, j)-pp*z3)
					}
					h.SetAt(k+1, j, h.At(k+1, j)-pp*y3)
					h.SetAt(k, j, h.At(k, j)-pp*x3)
				}
				// Column modification.
				last := k + 3
				if en < last {
					last = en
				}
				for i := 0; i <= last; i++ {
					pp := x3*h.At(i, k) + y3*h.At(i, k+1)
					if notLast {
						pp += z3 * h.At(i, k+2)
						h.SetAt(i, k+2, h.At(i, k+2)-pp*r1)
					}
					h.SetAt(i, k+1, h.At(i, k+1)-pp*q1)
					h.SetAt(i, k, h.At(i, k)-pp)
				}
				if withQ {
					for i := 0; i < n; i++ {
						pp := x3*q.At(i, k) + y3*q.At(i, k+1)
						if notLast {
							pp += z3 * q.At(i, k+2)
							q.SetAt(i, k+2, q.At(i, k+2)-pp*r1)
						}
						q.SetAt(i, k+1, q.At(i, k+1)-pp*q1)
						q.SetAt(i, k, q.At(i, k)-pp)
					}
				}
			}
		}
	}

	return 0
}

// trexc reorders a real Schur form, moving the diagonal block at ifst to
// ilst through a sequence of adjacent orthogonal swaps applied to t and,
// when q.Data != nil, accumulated into q. Only 1x1 blocks are supported:
// a 2x2 block anywhere on the path fails with info == j+1 (j the block's
// first row) before anything is modified.
func trexc[T Float](t General[T], q General[T], ifst, ilst int) int {
	n := t.Rows
	lo, hi := ifst, ilst
	if lo > hi {
		lo, hi = hi, lo
	}
	// Reject 2x2 blocks on the move path, inclusive of both ends.
	for j := lo; j <= hi; j++ {
		if j+1 < n && t.At(j+1, j) != 0 {
			return j + 1
		}
	}
	if lo > 0 && t.At(lo, lo-1) != 0 {
		return lo
	}

	step := 1
	if ifst > ilst {
		step = -1
	}
	for j := ifst; j != ilst; j += step {
		a := j
		if step < 0 {
			a = j - 1
		}
		swapAdjacent(t, q, a)
	}

	return 0
}

// swapAdjacent exchanges the adjacent 1x1 diagonal blocks at (a, a+1) of a
// triangular t by a Givens similarity, updating q alongside.
func swapAdjacent[T Float](t General[T], q General[T], a int) {
	n := t.Rows
	b := a + 1
	t11, t12, t22 := t.At(a, a), t.At(a, b), t.At(b, b)
	r := hypotT(t12, t22-t11)
	if r == 0 {
		return // equal eigenvalues, nothing to rotate
	}
	cs := t12 / r
	sn := (t22 - t11) / r
	// Rows a, b over the trailing columns.
	for j := b + 1; j < n; j++ {
		tmp := t.At(a, j)
		t.SetAt(a, j, cs*tmp+sn*t.At(b, j))
		t.SetAt(b, j, cs*t.At(b, j)-sn*tmp)
	}
	// Columns a, b over the leading rows.
	for i := 0; i < a; i++ {
		tmp := t.At(i, a)
		t.SetAt(i, a, cs*tmp+sn*t.At(i, b))
		t.SetAt(i, b, cs*t.At(i, b)-sn*tmp)
	}
	// The 2x2 block itself swaps its eigenvalues; the off-diagonal is
	// preserved in magnitude by orthogonality.
	t.SetAt(a, a, t22)
	t.SetAt(b, b, t11)
	t.SetAt(b, a, 0)
	if q.Data != nil {
		for i := 0; i < n; i++ {
			tmp := q.At(i, a)
			q.SetAt(i, a, cs*tmp+sn*q.At(i, b))
			q.SetAt(i, b, cs*q.At(i, b)-sn*tmp)
		}
	}
}

// gesvd computes the singular value decomposition A = U*S*Vᵀ by one-sided
// Jacobi orthogonalization. Requires Rows >= Cols (the entry point
// transposes wide inputs). s receives the singular values in descending
// order; u (Rows x Cols) and vt (Cols x Cols) are filled when their Data
// is non-nil. info == 1 flags non-convergence.
func gesvd[T Float](a General[T], s []T, u, vt General[T]) int {
	m, n := a.Rows, a.Cols
	eps := epsT[T]()

	w := make([]T, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			w[i*n+j] = a.At(i, j)
		}
	}
	v := make([]T, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	info := 1
	for sweep := 0; sweep < jacobiMaxSweeps; sweep++ {
		rotated := false
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				var app, aqq, apq T
				for i := 0; i < m; i++ {
					wp, wq := w[i*n+p], w[i*n+q]
					app += wp * wp
					aqq += wq * wq
					apq += wp * wq
				}
				if absT(apq) <= eps*sqrtT(app*aqq) || apq == 0 {
					continue
				}
				rotated = true
				theta := (aqq - app) / (2 * apq)
				tt := copysignT(1/(absT(theta)+hypotT(theta, 1)), theta)
				c := 1 / sqrtT(tt*tt+1)
				sn := tt * c
				for i := 0; i < m; i++ {
					wp, wq := w[i*n+p], w[i*n+q]
					w[i*n+p] = c*wp - sn*wq
					w[i*n+q] = sn*wp + c*wq
				}
				for i := 0; i < n; i++ {
					vp, vq := v[i*n+p], v[i*n+q]
					v[i*n+p] = c*vp - sn*vq
					v[i*n+q] = sn*vp + c*vq
				}
			}
		}
		if !rotated {
			info = 0
			break
		}
	}

	// Singular values are the column norms; order them descending and
	// carry the matching columns of W and V along.
	norms := make([]T, n)
	for j := 0; j < n; j++ {
		var ssq T
		for i := 0; i < m; i++ {
			ssq += w[i*n+j] * w[i*n+j]
		}
		norms[j] = sqrtT(ssq)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if norms[order[j]] > norms[order[best]] {
				best = j
			}
		}
		order[i], order[best] = order[best], order[i]
	}
	for j := 0; j < n; j++ {
		s[j] = norms[order[j]]
	}
	if u.Data != nil {
		for j := 0; j < n; j++ {
			src := order[j]
			sv := norms[src]
			for i := 0; i < m; i++ {
				if sv > 0 {
					u.SetAt(i, j, w[i*n+src]/sv)
				} else {
					u.SetAt(i, j, 0)
				}
			}
		}
	}
	if vt.Data != nil {
		for j := 0; j < n; j++ {
			src := order[j]
			for i := 0; i < n; i++ {
				vt.SetAt(j, i, v[i*n+src])
			}
		}
	}

	return info
}
