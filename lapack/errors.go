// SPDX-License-Identifier: MIT

// Package lapack: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// lapack package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No entry point panics on user-triggered
// error conditions.

package lapack

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lapack: ..." for consistency and to allow
// easy grepping across logs. Entry points wrap these with an operation tag
// and, where the backend reported an index, with that index; callers still
// match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// layout/flag/shape preconditions are raised BEFORE any backend call;
// singular/positive-definiteness/convergence failures come only FROM a
// backend status code.

var (
	// ErrLayout indicates a non-unit stride (or an undersized backing
	// slice) presented to a kernel that requires contiguous storage.
	ErrLayout = errors.New("lapack: non-contiguous storage")

	// ErrDimensionMismatch indicates incompatible or non-square dimensions,
	// e.g. a rectangular input to a squareness-requiring routine.
	ErrDimensionMismatch = errors.New("lapack: dimension mismatch")

	// ErrInvalidArgument indicates a malformed mode flag, e.g. an uplo
	// selector outside {Upper, Lower}.
	ErrInvalidArgument = errors.New("lapack: invalid argument")

	// ErrSingular is reported when a factorization meets an exactly zero
	// pivot; the factor is complete but must not be used to solve.
	ErrSingular = errors.New("lapack: singular matrix")

	// ErrNotPositiveDefinite is reported by Cholesky-family routines when a
	// leading minor is not positive; the wrapped message carries its order.
	ErrNotPositiveDefinite = errors.New("lapack: matrix is not positive definite")

	// ErrConvergence is reported by iterative routines (eigen, Schur, SVD)
	// that exhausted their iteration budget.
	ErrConvergence = errors.New("lapack: iteration did not converge")

	// ErrUnknownBackend is returned by Initialize when the requested
	// backend name has not been registered.
	ErrUnknownBackend = errors.New("lapack: unknown backend")
)
