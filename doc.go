// SPDX-License-Identifier: MIT

// Package faktor is a dense and structured-matrix linear-algebra core:
// structured matrix representations, a trait-dispatched factorization
// framework, and a safety-checked invocation layer for numeric kernels.
//
// 🚀 What is faktor?
//
//	A pure-Go library that brings together:
//		• Structured types: diagonal, bidiagonal, tridiagonal, triangular,
//		  symmetric/Hermitian, general dense, transpose/adjoint views
//		• Factorizations: LU, QR/LQ (plain & pivoted), Cholesky (plain &
//		  pivoted), Bunch-Kaufman, LDLt, Hessenberg, Eigen, Schur, SVD
//		• A validated kernel layer: stride/contiguity/squareness checks and
//		  uplo/trans/diag flag encoding gate every backend call
//		• Solve contracts: in-place and caller-supplied-buffer solves that
//		  only accept a Factorization, never a raw matrix
//
// ✨ Why choose faktor?
//
//   - Fail-fast guarantees – every shape/layout precondition is raised
//     before a kernel call, never discovered as a garbled result
//   - Soft numerical failure – constructed factorizations expose Ok(), so
//     callers branch on positive-definiteness instead of catching panics
//   - Pure Go – no cgo; swappable backends behind lapack.Backend
//   - Cheapest-correct dispatch – Factorize picks the decomposition that
//     matches the operand's structure (triangular → itself, SPD → Cholesky,
//     symmetric-indefinite → Bunch-Kaufman, square → LU, rectangular → QR)
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ - structured matrix variants, validators, structural algorithms
//	lapack/ - layout validation, flag encoding, kernel backends
//	factor/ - factorization objects, Factorize, solve/mutation contracts
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 2}, {2, 3}})
//	f, _ := factor.Factorize(a)          // SPD → Cholesky
//	_ = factor.SolveInPlace(f, b)        // b now holds A \ b
//
// Dive into README-less doc comments per package for contracts and the
// exact mutation semantics of every solve entry point.
//
//	go get github.com/faktorlab/faktor
package faktor
