// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion
// (NewAugmented, NewDense) and Set.
const DefaultValidateNaNInf = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation. This is the
// default; it exists so call sites can state the policy explicitly.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation: NaN and ±Inf are
// stored as given and propagate through the solvers unchanged.
//
// Notes:
//   - Intended for controlled experiments (e.g. observing NaN propagation).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options over defaults in order (last wins).
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
