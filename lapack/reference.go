// SPDX-License-Identifier: MIT

// Package lapack: the pure-Go reference backend.
//
// Reference implements Backend by delegating to the generic kernels in the
// reference_*.go files. The kernels follow the native status convention:
// info == 0 success, info > 0 the routine-specific failure index (1-based),
// and they assume descriptors were validated by the entry points; no
// bounds checks inside the hot loops.

package lapack

import "math"

// Reference is the pure-Go backend shipped with the library. It is the
// fallback whenever no other backend is selected, and the only backend for
// float32 operands (custom backends plug in at the process element width,
// float64).
type Reference struct{}

// Name reports the backend identifier used in registration and in the
// diagnostic report.
func (Reference) Name() string { return refBackendName }

// refBackendName is the registry key of the built-in backend.
const refBackendName = "reference"

// ---------- generic math helpers ----------
//
// Kernels are generic over Float; the scalar math below routes through
// float64, which is exact for float32 inputs.

func absT[T Float](x T) T { return T(math.Abs(float64(x))) }

func sqrtT[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func hypotT[T Float](x, y T) T { return T(math.Hypot(float64(x), float64(y))) }

func copysignT[T Float](x, y T) T { return T(math.Copysign(float64(x), float64(y))) }

// epsT is the machine epsilon of the element kind.
func epsT[T Float]() T {
	var probe T
	if _, is32 := any(probe).(float32); is32 {
		return T(0x1p-23)
	}

	return T(0x1p-52)
}

// nrm2 computes the Euclidean norm of x without undue overflow, using the
// classic scaled sum of squares.
func nrm2[T Float](x []T) T {
	var scale, ssq T = 0, 1
	for _, v := range x {
		if v == 0 {
			continue
		}
		a := absT(v)
		if scale < a {
			r := scale / a
			ssq = 1 + ssq*r*r
			scale = a
		} else {
			r := a / scale
			ssq += r * r
		}
	}

	return scale * sqrtT(ssq)
}

// ---------- mirrored triangle accessor ----------

// tri adapts one stored triangle of a symmetric matrix to a canonical
// "lower" addressing scheme: at(i, j) with i >= j reads the stored entry
// regardless of which triangle physically holds it. Symmetric kernels are
// written once against the lower layout and run unchanged on upper storage
// (the pivot sequence then differs from the netlib upper variants, but the
// produced factorization is valid and self-consistent with its solver).
type tri[T Float] struct {
	ld    int
	data  []T
	upper bool
}

func (t tri[T]) at(i, j int) T {
	if t.upper {
		return t.data[j*t.ld+i]
	}

	return t.data[i*t.ld+j]
}

func (t tri[T]) set(i, j int, v T) {
	if t.upper {
		t.data[j*t.ld+i] = v
		return
	}

	t.data[i*t.ld+j] = v
}

// swapSym applies the symmetric row/column interchange p <-> q (p < q)
// inside the stored triangle only.
func (t tri[T]) swapSym(n, p, q int) {
	// Diagonal entries.
	dp, dq := t.at(p, p), t.at(q, q)
	t.set(p, p, dq)
	t.set(q, q, dp)
	// Left of p: rows p and q share the column range [0, p).
	for j := 0; j < p; j++ {
		vp, vq := t.at(p, j), t.at(q, j)
		t.set(p, j, vq)
		t.set(q, j, vp)
	}
	// Between p and q: (i, p) pairs with (q, i) by symmetry.
	for i := p + 1; i < q; i++ {
		vip, vqi := t.at(i, p), t.at(q, i)
		t.set(i, p, vqi)
		t.set(q, i, vip)
	}
	// Below q: columns p and q share the row range (q, n).
	for i := q + 1; i < n; i++ {
		vip, viq := t.at(i, p), t.at(i, q)
		t.set(i, p, viq)
		t.set(i, q, vip)
	}
}
