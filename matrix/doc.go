// SPDX-License-Identifier: MIT

// Package matrix provides the structured matrix types of faktor: a dense
// row-major workhorse plus storage-efficient variants (Diagonal,
// Bidiagonal, Tridiagonal, SymTridiagonal, Triangular, Symmetric,
// Hermitian), lazy transpose/adjoint views and the dimension-free
// UniformScaling.
//
// What you get:
//   - Matrix: the minimal public contract (Rows/Cols/At/Set/Clone) with
//     error returns instead of panics at the public surface.
//   - Dense: contiguous row-major storage with the explicit index formula
//     i*cols + j; fast paths in the algebra kernels operate on the flat
//     buffer directly.
//   - Structured variants storing only their nonzero pattern; writes
//     outside the pattern fail with ErrOutOfBand rather than silently
//     densifying.
//   - Central validators (validators.go) shared by every kernel, and a
//     unified sentinel error set (errors.go) matched via errors.Is.
//   - Structure-aware algorithms: Trace, Det, Dot, Cross, VecNorm and
//     Norm dispatch on the concrete type and fall back to a dense path.
//
// Why choose matrix:
//   - Determinism: fixed loop orders, no map iteration, reproducible
//     results on the same input.
//   - Safety: every public operation validates before it mutates.
//   - Interoperability: Dense exposes its backing slice through Raw, so
//     the factor and lapack packages consume it without copying.
//
// Quick example:
//
//	a, _ := matrix.NewDense(2, 2)
//	_ = a.Set(0, 0, 2)
//	_ = a.Set(1, 1, 3)
//	d, _ := matrix.Det(a) // 6
//
// See factor for factorizations and solving, lapack for the kernels.
package matrix
