package iterative_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numcalc/direct"
	"github.com/katalvlaran/numcalc/iterative"
	"github.com/katalvlaran/numcalc/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func mustAugmented(t testing.TB, rows [][]float64) *matrix.Augmented {
	t.Helper()
	a, err := matrix.NewAugmented(rows)
	require.NoError(t, err)

	return a
}

// strictlyDominant builds an n×(n+1) system whose diagonal is more than twice
// the off-diagonal row sum, then reverses the equation order so the solver
// has to find it again. The returned solution is that of the system.
func strictlyDominant(rng *rand.Rand, n int) (rows [][]float64, want []float64) {
	want = make([]float64, n)
	for i := range want {
		want[i] = rng.Float64()*10 - 5
	}
	ordered := make([][]float64, n)
	for i := 0; i < n; i++ {
		r := make([]float64, n+1)
		var off float64
		for j := 0; j < n; j++ {
			if j != i {
				r[j] = rng.Float64()*2 - 1
				off += math.Abs(r[j])
			}
		}
		r[i] = 2*off + 1
		for j := 0; j < n; j++ {
			r[n] += r[j] * want[j]
		}
		ordered[i] = r
	}
	rows = make([][]float64, n)
	for i := range ordered {
		rows[i] = ordered[n-1-i]
	}

	return rows, want
}

func TestSolve_AlreadyDominant(t *testing.T) {
	x, rep, err := iterative.SolveRows(context.Background(), [][]float64{{4, 1, 5}, {1, 3, 4}})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, []float64(x), tol)
	require.Equal(t, matrix.Vector{1, 1}, x, "rounded to 4 digits")
	require.True(t, rep.Converged)
	require.Equal(t, iterative.StrategyIdentity, rep.Order.Strategy)
	require.Equal(t, []int{0, 1}, rep.Order.Perm)
	require.Less(t, rep.Residual, iterative.DefaultTolerance)
	require.Greater(t, rep.Iterations, 0)
}

func TestSolve_NeedsRowSwap(t *testing.T) {
	a := mustAugmented(t, [][]float64{{1, 4, 6}, {4, 1, 7}})
	before := a.Data()

	x, rep, err := iterative.Solve(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, rep.Order.Perm)
	require.Equal(t, iterative.StrategyBruteForce, rep.Order.Strategy)
	require.True(t, rep.Converged)

	ref, err := direct.Solve(a)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64(ref), []float64(x), tol)
	require.Equal(t, matrix.Vector{1.4667, 1.1333}, x)
	require.Equal(t, before, a.Data(), "input must not be reordered in place")
}

func TestSolve_NoDominantOrdering(t *testing.T) {
	cases := map[string][][]float64{
		"both rows want column 1": {{1, 2, 3}, {1, 2, 3}},
		"flat 3x3":                {{1, 1, 1, 3}, {1, 1, 1, 3}, {1, 1, 1, 3}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := iterative.SolveRows(context.Background(), rows)
			require.ErrorIs(t, err, iterative.ErrNotDiagonallyDominant)

			// the matching path must agree
			_, _, err = iterative.SolveRows(context.Background(), rows, iterative.WithBruteForceLimit(0))
			require.ErrorIs(t, err, iterative.ErrNotDiagonallyDominant)
		})
	}
}

// The iteration cap is reached without convergence and the last iterate is
// still returned with a nil error. This mirrors the calculator's behaviour;
// Report.Converged is the only signal.
func TestSolve_IterationCapIsBestEffort(t *testing.T) {
	// Weakly dominant (|1| ≥ |±1|) but Gauss–Seidel oscillates between
	// (1, 2) and (-1, 0). The exact solution is (0, 1).
	x, rep, err := iterative.SolveRows(context.Background(), [][]float64{{1, 1, 1}, {-1, 1, 1}})
	require.NoError(t, err)
	require.False(t, rep.Converged)
	require.Equal(t, iterative.DefaultMaxIterations, rep.Iterations)
	require.Equal(t, 2.0, rep.Residual)
	require.Equal(t, matrix.Vector{-1, 0}, x)

	x, rep, err = iterative.SolveRows(context.Background(), [][]float64{{1, 1, 1}, {-1, 1, 1}},
		iterative.WithMaxIterations(7))
	require.NoError(t, err)
	require.False(t, rep.Converged)
	require.Equal(t, 7, rep.Iterations)
	require.Equal(t, matrix.Vector{1, 2}, x)
}

func TestSolve_ZeroRow(t *testing.T) {
	_, _, err := iterative.SolveRows(context.Background(), [][]float64{{0, 0, 1}, {0, 1, 2}})
	require.ErrorIs(t, err, iterative.ErrZeroRow)
}

func TestSolve_RandomShuffledSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 9; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			rows, want := strictlyDominant(rng, n)
			x, rep, err := iterative.SolveRows(context.Background(), rows)
			require.NoError(t, err)
			require.True(t, rep.Converged)
			require.InDeltaSlice(t, want, []float64(x), tol)

			switch {
			case n == 1:
				require.Equal(t, iterative.StrategyIdentity, rep.Order.Strategy)
			case n <= iterative.DefaultBruteForceLimit:
				require.Equal(t, iterative.StrategyBruteForce, rep.Order.Strategy)
			default:
				require.Equal(t, iterative.StrategyMatching, rep.Order.Strategy)
			}
		})
	}
}

func TestSolve_Options(t *testing.T) {
	rows := [][]float64{{4, 1, 5}, {1, 3, 4}}

	raw, _, err := iterative.SolveRows(context.Background(), rows, iterative.WithoutRounding())
	require.NoError(t, err)
	require.NotEqual(t, matrix.Vector{1, 1}, raw, "unrounded iterate keeps its tail")
	require.InDeltaSlice(t, []float64{1, 1}, []float64(raw), 1e-5)

	coarse, rep, err := iterative.SolveRows(context.Background(), rows,
		iterative.WithTolerance(0.5), iterative.WithRoundDigits(1))
	require.NoError(t, err)
	require.True(t, rep.Converged)
	require.Less(t, rep.Iterations, 5)
	for _, v := range coarse {
		require.Equal(t, matrix.RoundTo(v, 1), v)
	}

	require.Panics(t, func() { iterative.WithTolerance(0) })
	require.Panics(t, func() { iterative.WithTolerance(math.NaN()) })
	require.Panics(t, func() { iterative.WithMaxIterations(0) })
	require.Panics(t, func() { iterative.WithRoundDigits(-1) })
	require.Panics(t, func() { iterative.WithBruteForceLimit(-1) })
}

func TestSolve_Deterministic(t *testing.T) {
	rows := [][]float64{{1, 4, 6}, {4, 1, 7}}
	x1, r1, err := iterative.SolveRows(context.Background(), rows)
	require.NoError(t, err)
	x2, r2, err := iterative.SolveRows(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, x1, x2)
	require.Equal(t, r1, r2)
}

func TestSolve_InvalidInput(t *testing.T) {
	_, _, err := iterative.Solve(context.Background(), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a, err := matrix.NewAugmented([][]float64{{math.NaN(), 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, _, err = iterative.Solve(context.Background(), a)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func ExampleSolve() {
	a, _ := matrix.NewAugmented([][]float64{
		{1, 4, 6},
		{4, 1, 7},
	})
	x, rep, err := iterative.Solve(context.Background(), a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(x, rep.Order.Perm, rep.Converged)
	// Output:
	// [1.4667 1.1333] [1 0] true
}
