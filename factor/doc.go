// SPDX-License-Identifier: MIT

// Package factor provides matrix factorizations and the solve surface
// built on them: LU, Cholesky (plain and pivoted), Bunch-Kaufman, the
// tridiagonal LDLᵀ, QR (plain and column-pivoted), LQ, Hessenberg
// reduction, symmetric and general eigendecomposition, real Schur form
// with reordering, and the singular value decomposition, plus generalized
// eigen/Schur/SVD variants built by composition.
//
// The package enforces one rule through the type system: linear systems
// are solved THROUGH a Factorization, never against a raw matrix. Solve,
// SolveInPlace, RSolve and RSolveInPlace accept a Factorization as their
// operator argument; to solve against a plain matrix, route it through
// Factorize (or a specific constructor) first. This makes the costly step
// explicit and lets one factorization serve many right-hand sides.
//
// Factorize picks the cheapest applicable factorization from the concrete
// matrix variant:
//
//	Diagonal / Bidiagonal / Tridiagonal / SymTridiagonal → direct banded solver
//	Triangular                                           → itself
//	Symmetric, Hermitian, symmetric Dense                → Cholesky, Bunch-Kaufman on failure
//	square                                               → LU with partial pivoting
//	rectangular                                          → QR (least squares / minimum norm)
//
// Numerical failures surface as the lapack sentinels (lapack.ErrSingular,
// lapack.ErrNotPositiveDefinite, lapack.ErrConvergence) wrapped with the
// operation tag; match them with errors.Is. A factorization returned
// alongside such an error is complete and safe to inspect (Ok reports
// false), it just must not be used to solve.
package factor
