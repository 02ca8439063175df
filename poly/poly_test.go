package poly_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numcalc/poly"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesAndKeepsLength(t *testing.T) {
	in := []float64{1, 0, 0}
	p := poly.New(in...)
	in[0] = 99
	require.Equal(t, []float64{1, 0, 0}, p.Coeffs())
	require.Equal(t, 3, p.Len())
	require.Equal(t, 0, p.Degree())

	out := p.Coeffs()
	out[0] = 42
	require.Equal(t, 1.0, p.Coeff(0), "Coeffs must return a copy")
}

func TestZeroPolynomial(t *testing.T) {
	for name, p := range map[string]poly.Polynomial{
		"New()":      poly.New(),
		"zero value": {},
		"New(0,0)":   poly.New(0, 0),
	} {
		t.Run(name, func(t *testing.T) {
			require.True(t, p.IsZero())
			require.Equal(t, 0, p.Degree())
			require.Equal(t, 0.0, poly.Evaluate(p, 123.5))
			require.Equal(t, "0", poly.Format(p))
		})
	}
	require.Equal(t, []float64{0}, poly.Polynomial{}.Coeffs())
}

func TestDegreeAndCoeff(t *testing.T) {
	p := poly.New(1, 0, 3, 0)
	require.Equal(t, 2, p.Degree())
	require.Equal(t, 3.0, p.Coeff(2))
	require.Zero(t, p.Coeff(-1))
	require.Zero(t, p.Coeff(10))
	require.False(t, p.IsZero())
}

func TestArithmetic(t *testing.T) {
	p := poly.New(1, 2)    // 1 + 2x
	q := poly.New(0, 0, 3) // 3x²

	require.Equal(t, []float64{1, 2, 3}, poly.Add(p, q).Coeffs())
	require.Equal(t, []float64{1, 2, 3}, poly.Add(q, p).Coeffs())
	require.Equal(t, []float64{0, 0, 3, 6}, poly.Mul(p, q).Coeffs())
	require.Equal(t, []float64{-0.5, -1}, poly.Scale(p, -0.5).Coeffs())

	// operands are left untouched
	require.Equal(t, []float64{1, 2}, p.Coeffs())
	require.Equal(t, []float64{0, 0, 3}, q.Coeffs())
}

func TestFromRoots(t *testing.T) {
	require.Equal(t, []float64{1}, poly.FromRoots().Coeffs())
	require.Equal(t, []float64{-2, 1}, poly.FromRoots(2).Coeffs())
	require.Equal(t, []float64{6, -5, 1}, poly.FromRoots(2, 3).Coeffs())

	p := poly.FromRoots(-1, 0.5, 4)
	require.Equal(t, 3, p.Degree())
	for _, r := range []float64{-1, 0.5, 4} {
		require.InDelta(t, 0, poly.EvaluateRaw(p, r), 1e-12)
	}
	// matches the product of its linear factors
	want := poly.Mul(poly.Mul(poly.New(1, 1), poly.New(-0.5, 1)), poly.New(-4, 1))
	require.InDeltaSlice(t, want.Coeffs(), p.Coeffs(), 1e-12)
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		p    poly.Polynomial
		x    float64
		want float64
	}{
		{"x² at 4", poly.New(0, 0, 1), 4, 16},
		{"constant", poly.New(7.25), -3, 7.25},
		{"line", poly.New(1, 2), 0.5, 2},
		{"rounded third", poly.New(0, 1.0/3), 1, 0.3333},
		{"half away from zero", poly.New(0.00005), 0, 0.0001},
		{"negative half", poly.New(-0.00005), 0, -0.0001},
		{"cubic", poly.New(1, -2, 0, 0.5), 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, poly.Evaluate(tc.p, tc.x))
		})
	}
}

func TestEvaluate_NegativeZeroNormalised(t *testing.T) {
	v := poly.Evaluate(poly.New(-1e-9), 0)
	require.Equal(t, 0.0, v)
	require.False(t, math.Signbit(v))
}

func TestEvaluate_NonFinitePropagates(t *testing.T) {
	require.True(t, math.IsNaN(poly.Evaluate(poly.New(1, 1), math.NaN())))
	require.True(t, math.IsInf(poly.Evaluate(poly.New(0, 1), math.Inf(1)), 1))
}

func TestEvaluate_Idempotent(t *testing.T) {
	p := poly.New(0.1, -1.7, 0.33)
	first := poly.Evaluate(p, 2.345)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, poly.Evaluate(p, 2.345))
	}
	require.Equal(t, []float64{first, first}, poly.EvaluateAll(p, []float64{2.345, 2.345}))
}

func TestFormat(t *testing.T) {
	cases := []struct {
		p    poly.Polynomial
		want string
	}{
		{poly.New(1, 0, 1), "x² + 1"},
		{poly.New(0, 2), "2x"},
		{poly.New(3, 0, 0, -0.5), "-0.5x³ + 3"},
		{poly.New(1, -2, 1), "x² - 2x + 1"},
		{poly.New(0, -1), "-x"},
		{poly.New(-1), "-1"},
		{poly.New(1.0 / 3), "0.3333"},
		{poly.New(5, 0.00001), "5"},
		{poly.New(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2), "2x¹¹"},
		{poly.New(2.5, 0, 0, 0, 1), "x⁴ + 2.5"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, poly.Format(tc.p))
			require.Equal(t, tc.want, tc.p.String())
		})
	}
	require.Equal(t, "y = 2x", poly.Equation(poly.New(0, 2)))
}

func TestSample(t *testing.T) {
	pts, err := poly.Sample(poly.New(0, 0, 1), -1, 1, 0.5)
	require.NoError(t, err)
	require.Equal(t, []poly.Point{
		{X: -1, Y: 1},
		{X: -0.5, Y: 0.25},
		{X: 0, Y: 0},
		{X: 0.5, Y: 0.25},
	}, pts)

	pts, err = poly.Sample(poly.New(1), 0, 1.2, 0.5)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	pts, err = poly.Sample(poly.New(1), 3, 3, poly.DefaultStep)
	require.NoError(t, err)
	require.Empty(t, pts)
}

func TestSample_BadRange(t *testing.T) {
	p := poly.New(1)
	for name, args := range map[string][3]float64{
		"reversed":  {1, 0, 0.5},
		"zero step": {0, 1, 0},
		"neg step":  {0, 1, -1},
		"nan":       {math.NaN(), 1, 0.5},
		"inf":       {0, math.Inf(1), 0.5},
		"too long":  {0, 1, 1e-9},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := poly.Sample(p, args[0], args[1], args[2])
			require.ErrorIs(t, err, poly.ErrBadRange)
		})
	}
}
