package calc_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/numcalc/calc"
	"github.com/katalvlaran/numcalc/direct"
	"github.com/katalvlaran/numcalc/fit"
	"github.com/katalvlaran/numcalc/iterative"
	"github.com/katalvlaran/numcalc/matrix"
	"github.com/katalvlaran/numcalc/poly"
	"github.com/stretchr/testify/require"
)

// countingRecorder collects observed results.
type countingRecorder struct {
	mu   sync.Mutex
	seen map[string]string // id -> status
}

func (r *countingRecorder) Observe(res calc.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen == nil {
		r.seen = make(map[string]string)
	}
	r.seen[res.ID] = res.Status()
}

func parabola() []fit.Observation {
	return []fit.Observation{fit.At(1, 1), fit.At(2, 4), fit.At(3, 9)}
}

func TestRun_Kinds(t *testing.T) {
	e := calc.NewEngine()
	ctx := context.Background()

	t.Run("solve", func(t *testing.T) {
		res := e.Run(ctx, calc.Job{ID: "gs", Kind: calc.KindSolve, Matrix: [][]float64{{1, 4, 6}, {4, 1, 7}}})
		require.NoError(t, res.Err)
		require.Equal(t, matrix.Vector{1.4667, 1.1333}, res.Solution)
		require.NotNil(t, res.Report)
		require.Equal(t, []int{1, 0}, res.Report.Order.Perm)
		require.Equal(t, calc.StatusOK, res.Status())
		require.Equal(t, "gs", res.ID)
	})

	t.Run("solve-direct", func(t *testing.T) {
		res := e.Run(ctx, calc.Job{ID: "ge", Kind: calc.KindSolveDirect, Matrix: [][]float64{
			{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3},
		}})
		require.NoError(t, res.Err)
		require.InDeltaSlice(t, []float64{2, 3, -1}, []float64(res.Solution), 1e-9)
		require.Nil(t, res.Report)
	})

	t.Run("interpolate", func(t *testing.T) {
		res := e.Run(ctx, calc.Job{ID: "li", Kind: calc.KindInterpolate, Observations: parabola(), At: []float64{4, -1}})
		require.NoError(t, res.Err)
		require.Equal(t, "y = x²", res.Equation)
		require.Equal(t, []float64{16, 1}, res.Values)
		require.Nil(t, res.Curve)
	})

	t.Run("regress defaults to degree 1", func(t *testing.T) {
		res := e.Run(ctx, calc.Job{ID: "lsm", Kind: calc.KindRegress, Observations: []fit.Observation{
			fit.At(1, 2), fit.At(2, 4), fit.At(3, 6),
		}})
		require.NoError(t, res.Err)
		require.Equal(t, "y = 2x", res.Equation)
		require.Equal(t, 2, res.Polynomial.Len())
	})

	t.Run("regress degree 2", func(t *testing.T) {
		res := e.Run(ctx, calc.Job{ID: "lsm2", Kind: calc.KindRegress, Degree: 2, Observations: []fit.Observation{
			fit.At(0, 1), fit.At(1, 2), fit.At(2, 5), fit.At(3, 10),
		}, At: []float64{4}})
		require.NoError(t, res.Err)
		require.Equal(t, "y = x² + 1", res.Equation)
		require.Equal(t, []float64{17}, res.Values)
	})

	t.Run("curve", func(t *testing.T) {
		res := e.Run(ctx, calc.Job{ID: "c", Kind: calc.KindInterpolate, Observations: parabola(), Curve: true})
		require.NoError(t, res.Err)
		// [1−2, 3+2] every 0.5
		require.Len(t, res.Curve, 12)
		require.Equal(t, poly.Point{X: -1, Y: 1}, res.Curve[0])

		res = e.Run(ctx, calc.Job{ID: "empty", Kind: calc.KindInterpolate, Curve: true})
		require.NoError(t, res.Err)
		require.Empty(t, res.Curve)
	})
}

func TestRun_Failures(t *testing.T) {
	e := calc.NewEngine()
	ctx := context.Background()

	cases := []struct {
		name string
		job  calc.Job
		want error
	}{
		{"unknown kind", calc.Job{ID: "x", Kind: "integrate"}, calc.ErrUnknownKind},
		{"ragged", calc.Job{Kind: calc.KindSolve, Matrix: [][]float64{{1, 2, 3}, {1, 2}}}, matrix.ErrDimensionMismatch},
		{"empty matrix", calc.Job{Kind: calc.KindSolveDirect}, matrix.ErrBadShape},
		{"not dominant", calc.Job{Kind: calc.KindSolve, Matrix: [][]float64{{1, 2, 3}, {1, 2, 3}}}, iterative.ErrNotDiagonallyDominant},
		{"singular", calc.Job{Kind: calc.KindSolveDirect, Matrix: [][]float64{{1, 2, 3}, {2, 4, 6}}}, direct.ErrSingularMatrix},
		{"duplicate x", calc.Job{Kind: calc.KindInterpolate, Observations: []fit.Observation{fit.At(1, 1), fit.At(1, 2)}}, fit.ErrDuplicateAbscissa},
		{"degree 3", calc.Job{Kind: calc.KindRegress, Degree: 3, Observations: parabola()}, fit.ErrUnsupportedDegree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := e.Run(ctx, tc.job)
			require.ErrorIs(t, res.Err, tc.want)
			require.True(t, res.Failed())
			require.Equal(t, calc.StatusFailed, res.Status())
		})
	}
}

func TestRun_Unconverged(t *testing.T) {
	e := calc.NewEngine(calc.WithSolverOptions(iterative.WithMaxIterations(10)))
	res := e.Run(context.Background(), calc.Job{ID: "osc", Kind: calc.KindSolve, Matrix: [][]float64{{1, 1, 1}, {-1, 1, 1}}})
	require.NoError(t, res.Err)
	require.Equal(t, calc.StatusUnconverged, res.Status())
	require.Equal(t, 10, res.Report.Iterations)
	require.Equal(t, matrix.Vector{-1, 0}, res.Solution)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := calc.NewEngine().Run(ctx, calc.Job{ID: "late", Kind: calc.KindInterpolate, Observations: parabola()})
	require.ErrorIs(t, res.Err, context.Canceled)
	require.Empty(t, res.Equation)
}

func TestRun_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := calc.NewEngine(calc.WithLogger(logger))

	e.Run(context.Background(), calc.Job{ID: "ok", Kind: calc.KindInterpolate, Observations: parabola()})
	e.Run(context.Background(), calc.Job{ID: "bad", Kind: "nope"})

	out := buf.String()
	require.Contains(t, out, `msg="job done" id=ok kind=interpolate status=ok`)
	require.Contains(t, out, `level=WARN msg="job failed" id=bad kind=nope`)
}

func TestRunBatch_PreservesOrderAndIsolatesFailures(t *testing.T) {
	rec := &countingRecorder{}
	e := calc.NewEngine(calc.WithWorkers(3), calc.WithRecorder(rec))

	var jobs []calc.Job
	for i := 0; i < 20; i++ {
		j := calc.Job{ID: fmt.Sprintf("job-%02d", i), Kind: calc.KindRegress, Observations: []fit.Observation{
			fit.At(0, float64(i)), fit.At(1, float64(i)+2),
		}, At: []float64{1}}
		if i%5 == 4 {
			j.Kind = "bogus"
		}
		jobs = append(jobs, j)
	}

	results, err := e.RunBatch(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		require.Equal(t, jobs[i].ID, r.ID)
		if i%5 == 4 {
			require.ErrorIs(t, r.Err, calc.ErrUnknownKind)
			continue
		}
		require.NoError(t, r.Err)
		require.Equal(t, []float64{float64(i) + 2}, r.Values)
	}
	require.Len(t, rec.seen, len(jobs))
	require.Equal(t, calc.StatusFailed, rec.seen["job-04"])
	require.Equal(t, calc.StatusOK, rec.seen["job-00"])
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []calc.Job{
		{ID: "a", Kind: calc.KindSolve, Matrix: [][]float64{{4, 1, 5}, {1, 3, 4}}},
		{ID: "b", Kind: calc.KindInterpolate, Observations: parabola()},
	}
	results, err := calc.NewEngine().RunBatch(ctx, jobs)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, r := range results {
		require.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRunBatch_Empty(t *testing.T) {
	results, err := calc.NewEngine().RunBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestKind_Known(t *testing.T) {
	for _, k := range []calc.Kind{calc.KindSolve, calc.KindSolveDirect, calc.KindInterpolate, calc.KindRegress} {
		require.True(t, k.Known(), k)
	}
	require.False(t, calc.Kind("invert").Known())
	require.False(t, calc.Kind("").Known())
}

func TestOptions(t *testing.T) {
	require.Equal(t, calc.DefaultWorkers, calc.NewEngine().Workers())
	require.Equal(t, 8, calc.NewEngine(calc.WithWorkers(8)).Workers())
	require.Panics(t, func() { calc.WithWorkers(0) })
	require.NotPanics(t, func() { calc.NewEngine(calc.WithLogger(nil), nil) })
}
