// SPDX-License-Identifier: MIT

package calc

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/numcalc/iterative"
)

// DefaultWorkers is the RunBatch concurrency limit.
const DefaultWorkers = 4

const panicWorkersInvalid = "calc: WithWorkers: n must be >= 1"

// Recorder receives every finished Result. Implementations must be safe for
// concurrent use; RunBatch calls Observe from several goroutines.
type Recorder interface {
	Observe(Result)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSolverOptions passes options to every iterative solve.
func WithSolverOptions(opts ...iterative.Option) Option {
	return func(e *Engine) { e.solverOpts = append(e.solverOpts, opts...) }
}

// WithWorkers bounds RunBatch concurrency. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(e *Engine) { e.workers = n }
}

// WithRecorder attaches a Recorder (e.g. Prometheus metrics).
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
