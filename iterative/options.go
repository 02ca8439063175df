// SPDX-License-Identifier: MIT

// Package iterative: functional configuration of the solver.
// Defaults mirror the calculator's behaviour; every WithX constructor panics
// on nonsensical values (programmer error), never on user data.
package iterative

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence threshold on max |x_new − x_old|.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations caps the number of Gauss–Seidel sweeps.
	DefaultMaxIterations = 100

	// DefaultRoundDigits is the number of decimal digits kept in the result.
	DefaultRoundDigits = 4

	// DefaultBruteForceLimit is the largest system size for which the
	// ordering search enumerates permutations. 7! = 5040 candidates.
	DefaultBruteForceLimit = 7
)

// noRounding disables result rounding.
const noRounding = -1

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid  = "iterative: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid    = "iterative: WithMaxIterations: n must be >= 1"
	panicRoundInvalid      = "iterative: WithRoundDigits: digits must be >= 0"
	panicBruteForceInvalid = "iterative: WithBruteForceLimit: n must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	tol        float64
	maxIter    int
	digits     int // noRounding disables rounding
	bruteLimit int
}

// WithTolerance sets the convergence threshold.
// Panics when tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the sweep cap. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithRoundDigits sets how many decimal digits the returned solution keeps.
// Panics when digits < 0.
func WithRoundDigits(digits int) Option {
	if digits < 0 {
		panic(panicRoundInvalid)
	}

	return func(o *Options) { o.digits = digits }
}

// WithoutRounding returns the raw final iterate.
func WithoutRounding() Option {
	return func(o *Options) { o.digits = noRounding }
}

// WithBruteForceLimit sets the largest n searched by permutation enumeration.
// Systems above the limit use matching. 0 forces matching for every size.
// Panics when n < 0.
func WithBruteForceLimit(n int) Option {
	if n < 0 {
		panic(panicBruteForceInvalid)
	}

	return func(o *Options) { o.bruteLimit = n }
}

func defaultOptions() Options {
	return Options{
		tol:        DefaultTolerance,
		maxIter:    DefaultMaxIterations,
		digits:     DefaultRoundDigits,
		bruteLimit: DefaultBruteForceLimit,
	}
}

// gatherOptions applies user options over defaults in order (last wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
