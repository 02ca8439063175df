// SPDX-License-Identifier: MIT

package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numcalc/direct"
	"github.com/katalvlaran/numcalc/fit"
	"github.com/katalvlaran/numcalc/iterative"
	"github.com/katalvlaran/numcalc/matrix"
	"github.com/katalvlaran/numcalc/poly"
)

// Engine runs Jobs. It holds configuration only and is safe for concurrent
// use.
type Engine struct {
	logger     *slog.Logger
	solverOpts []iterative.Option
	workers    int
	recorder   Recorder
}

// NewEngine returns an Engine with the given options applied over the
// defaults (silent logger, DefaultWorkers, default solver options).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:  discardLogger(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

// Workers is the RunBatch concurrency limit.
func (e *Engine) Workers() int { return e.workers }

// Run executes one job. The returned Result always carries the job's ID and
// Kind; failures are reported in Result.Err wrapped with the job ID.
func (e *Engine) Run(ctx context.Context, job Job) Result {
	start := time.Now()
	res := Result{ID: job.ID, Kind: job.Kind}

	err := ctx.Err()
	if err == nil {
		err = e.dispatch(ctx, job, &res)
	}
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("job %q: %w", job.ID, err)
		e.logger.Warn("job failed",
			slog.String("id", job.ID),
			slog.String("kind", string(job.Kind)),
			slog.Any("error", err),
		)
	} else {
		e.logger.Debug("job done",
			slog.String("id", job.ID),
			slog.String("kind", string(job.Kind)),
			slog.String("status", res.Status()),
			slog.Duration("duration", res.Duration),
		)
	}
	if e.recorder != nil {
		e.recorder.Observe(res)
	}

	return res
}

func (e *Engine) dispatch(ctx context.Context, job Job, res *Result) error {
	switch job.Kind {
	case KindSolve:
		a, err := matrix.NewAugmented(job.Matrix)
		if err != nil {
			return err
		}
		x, rep, err := iterative.Solve(ctx, a, e.solverOpts...)
		res.Report = &rep
		if err != nil {
			return err
		}
		res.Solution = x
		if !rep.Converged {
			e.logger.Warn("iteration cap reached",
				slog.String("id", job.ID),
				slog.Int("iterations", rep.Iterations),
				slog.Float64("residual", rep.Residual),
			)
		}

		return nil

	case KindSolveDirect:
		x, err := direct.SolveRows(job.Matrix)
		if err != nil {
			return err
		}
		res.Solution = x

		return nil

	case KindInterpolate:
		p, err := fit.Interpolate(job.Observations)
		if err != nil {
			return err
		}

		return e.describe(job, p, res)

	case KindRegress:
		degree := job.Degree
		if degree == 0 {
			degree = 1
		}
		p, err := fit.Regress(job.Observations, degree)
		if err != nil {
			return err
		}

		return e.describe(job, p, res)

	default:
		return fmt.Errorf("%q: %w", job.Kind, ErrUnknownKind)
	}
}

// describe fills the polynomial part of a Result.
func (e *Engine) describe(job Job, p poly.Polynomial, res *Result) error {
	res.Polynomial = p
	res.Equation = poly.Equation(p)
	if len(job.At) > 0 {
		res.Values = poly.EvaluateAll(p, job.At)
	}
	if !job.Curve {
		return nil
	}
	curve, err := fit.Curve(p, job.Observations)
	if errors.Is(err, fit.ErrNoObservations) {
		return nil
	}
	if err != nil {
		return err
	}
	res.Curve = curve

	return nil
}

// RunBatch runs jobs on at most Workers() goroutines and returns one Result
// per job in input order. Job failures do not stop the batch. The error is
// non-nil only when ctx ends before the batch does; jobs that had not
// started by then carry ctx's error in their Result.
func (e *Engine) RunBatch(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range jobs {
		i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			results[i] = e.Run(gctx, jobs[i])
			return nil
		})
	}
	_ = g.Wait() // workers never fail; errors live in results

	failed := 0
	for i := range results {
		if results[i].Failed() {
			failed++
		}
	}
	e.logger.Info("batch done",
		slog.Int("jobs", len(jobs)),
		slog.Int("failed", failed),
		slog.Int("workers", e.workers),
	)

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("RunBatch: %w", err)
	}

	return results, nil
}
