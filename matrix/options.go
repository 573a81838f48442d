// SPDX-License-Identifier: MIT

// Package matrix - construction options (functional options pattern).
//
// Purpose:
//   - Keep constructor signatures stable while policies evolve.
//   - Hold the package numeric policy default in one place.

package matrix

// DefaultValidateNaNInf is the package default for the numeric policy:
// constructors reject NaN/±Inf on ingestion and Set unless explicitly
// disabled per matrix.
const DefaultValidateNaNInf = true

// options carries per-matrix construction policies.
type options struct {
	validateNaNInf bool
}

// defaultOptions returns the canonical policy set.
func defaultOptions() options {
	return options{validateNaNInf: DefaultValidateNaNInf}
}

// Option mutates construction policies; pass to any variant constructor.
type Option func(*options)

// WithNaNInfValidation toggles the finite-values guard for one matrix.
// Disable it only for workflows that intentionally carry sentinel Inf
// values (e.g. shortest-path style "no edge" encodings).
func WithNaNInfValidation(enabled bool) Option {
	return func(o *options) { o.validateNaNInf = enabled }
}
