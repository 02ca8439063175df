// SPDX-License-Identifier: MIT

// Package calc is the job facade over numcalc's solvers and model builders.
//
// A Job names one computation (iterative or direct solve, interpolation,
// regression) with its inputs; Engine.Run executes it and returns a Result
// carrying the solution or polynomial, the convergence report, values at the
// requested points and any error. Engine.RunBatch runs many jobs on a
// bounded worker pool and returns results in input order.
//
// Failures stay inside their Result: one bad job never aborts a batch. Only
// cancellation of the batch context is reported as the batch error.
//
// Engine logs through log/slog (silent by default) and hands every Result to
// an optional Recorder, which is how the numcalc binary feeds its Prometheus
// metrics.
package calc
