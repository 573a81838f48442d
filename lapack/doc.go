// SPDX-License-Identifier: MIT

// Package lapack provides the validated kernel-invocation layer of faktor:
// argument descriptors, layout validation, uplo/trans/diag flag encoding,
// backend selection, and typed translation of kernel status codes.
//
// The package has two faces:
//
//   - Exported, validated entry points (Getrf, Potrf, Geqrf, …). Each one
//     runs layout validation first, encodes mode flags, invokes the active
//     backend, and translates the integer info code into a sentinel error.
//     Precondition failures (shape, stride, flag) are always raised before
//     the backend is touched.
//
//   - A Backend interface plus a pure-Go Reference implementation. Backends
//     follow the classic status-code convention: info == 0 is success,
//     info > 0 encodes the routine-specific numerical failure (index of a
//     zero pivot, of a non-positive leading minor, or a non-convergence
//     count). Alternative backends register via Register and are selected
//     once per process through Initialize.
//
// Determinism:
//   - All reference kernels use fixed loop orders and no map iteration;
//     identical inputs produce identical outputs.
//
// Concurrency:
//   - Entry points are synchronous and blocking. They mutate only the
//     buffers passed to them; the one-time backend selection is guarded by
//     sync.Once and is never re-entered.
package lapack
