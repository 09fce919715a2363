package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func mustPointSet(t testing.TB, xs, ys []float64) PointSet {
	t.Helper()
	pts, err := NewPointSet(xs, ys)
	require.NoError(t, err)
	return pts
}

func samplePoints(t testing.TB) PointSet {
	return mustPointSet(t,
		[]float64{1, 1.3, 1.6},
		[]float64{0.7651, 0.62, 0.4554},
	)
}

func quadratic(x float64) float64 { return 2 - 3*x + 0.5*x*x }

func TestMethodFromString(t *testing.T) {
	table := []struct {
		in string
		m  Method
		ok bool
	}{
		{"1", MethodLinear, true},
		{"2", MethodPolynomial, true},
		{" 3 ", MethodLagrange, true},
		{"4", MethodNeville, true},
		{"linear", MethodLinear, true},
		{"POLYNOMIAL", MethodPolynomial, true},
		{"Lagrange", MethodLagrange, true},
		{"neville", MethodNeville, true},
		{"0", 0, false},
		{"5", 0, false},
		{"-1", 0, false},
		{"spline", 0, false},
		{"", 0, false},
	}

	for _, test := range table {
		m, ok := MethodFromString(test.in)
		assert.Equal(t, test.ok, ok, "%q", test.in)
		if test.ok {
			assert.Equal(t, test.m, m, "%q", test.in)
		}
	}
}

func TestMethodString(t *testing.T) {
	for m := MethodLinear; m < EndMethod; m++ {
		back, ok := MethodFromString(m.String())
		require.True(t, ok, m.String())
		assert.Equal(t, m, back)
	}
	assert.Equal(t, "Method(9)", Method(9).String())
}

func TestSolverFromString(t *testing.T) {
	s, ok := SolverFromString("gaussjordan")
	assert.True(t, ok)
	assert.Equal(t, GaussJordan, s)

	s, ok = SolverFromString("LU")
	assert.True(t, ok)
	assert.Equal(t, LUSolver, s)

	_, ok = SolverFromString("qr")
	assert.False(t, ok)
}

func TestNewUnknownMethod(t *testing.T) {
	_, err := New(EndMethod, samplePoints(t))
	assert.ErrorIs(t, err, ErrUnknownMethod)
	_, err = Interpolate(Method(0), samplePoints(t), 1.5)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestSampleFixtureAgreement(t *testing.T) {
	pts := samplePoints(t)
	// The quadratic through the three samples, evaluated at 1.5.
	want := 4.6119 / 9

	for _, m := range []Method{MethodPolynomial, MethodLagrange, MethodNeville} {
		y, err := Interpolate(m, pts, 1.5)
		require.NoError(t, err, m.String())
		assert.InDelta(t, want, y, eps, m.String())
	}
}

func TestPolynomialMethodsAgree(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{quadratic(0), quadratic(1), quadratic(3)}
	pts := mustPointSet(t, xs, ys)

	methods := []Method{MethodPolynomial, MethodLagrange, MethodNeville}
	for _, x := range []float64{-2, 0, 0.5, 1, 2.2, 3, 10} {
		for _, m := range methods {
			y, err := Interpolate(m, pts, x)
			require.NoError(t, err, m.String())
			assert.InDelta(t, quadratic(x), y, 1e-9, "%v at %g", m, x)
		}
	}
}

func TestOrderIndependentMethods(t *testing.T) {
	sorted := PointSet{{0, 1}, {1, 3}, {2, 2}, {4, 0}}
	shuffled := PointSet{{2, 2}, {0, 1}, {4, 0}, {1, 3}}

	for _, m := range []Method{MethodLagrange, MethodNeville} {
		a, err := New(m, sorted)
		require.NoError(t, err)
		b, err := New(m, shuffled)
		require.NoError(t, err)

		for _, x := range []float64{-1, 0.5, 3} {
			ya, _ := a.Eval(x)
			yb, _ := b.Eval(x)
			assert.InDelta(t, ya, yb, 1e-9, "%v at %g", m, x)
		}
	}
}

func TestDuplicateAbscissa(t *testing.T) {
	dup := PointSet{{1, 2}, {1, 3}, {2, 4}}
	for m := MethodLinear; m < EndMethod; m++ {
		_, err := New(m, dup)
		assert.ErrorIs(t, err, ErrDuplicateAbscissa, m.String())
	}

	_, err := NewPointSet([]float64{1, 2, 1}, []float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrDuplicateAbscissa)
}

func TestTooFewPoints(t *testing.T) {
	for m := MethodLinear; m < EndMethod; m++ {
		_, err := New(m, PointSet{{1, 2}})
		assert.ErrorIs(t, err, ErrTooFewPoints, m.String())
		_, err = New(m, nil)
		assert.ErrorIs(t, err, ErrTooFewPoints, m.String())
	}
}

func TestLagrangeBasis(t *testing.T) {
	pts := PointSet{{0, 0}, {1, 0}, {3, 0}, {4, 0}}
	lg, err := NewLagrange(pts)
	require.NoError(t, err)

	for i := range pts {
		for j := range pts {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, lg.basis(i, pts[j].X), eps, "L_%d(x_%d)", i, j)
		}
	}
}

func TestLagrangeEvalAll(t *testing.T) {
	pts := mustPointSet(t, []float64{0, 1, 3},
		[]float64{quadratic(0), quadratic(1), quadratic(3)})
	lg, err := NewLagrange(pts)
	require.NoError(t, err)

	xs := []float64{-1, 2, 5}
	ys, err := lg.EvalAll(xs)
	require.NoError(t, err)
	for i, x := range xs {
		assert.InDelta(t, quadratic(x), ys[i], eps)
	}
}

func TestInterpolatorsCopyPoints(t *testing.T) {
	pts := samplePoints(t)
	methods := []Method{MethodLinear, MethodPolynomial, MethodLagrange, MethodNeville}

	intrs := make([]Interpolator, len(methods))
	want := make([]float64, len(methods))
	for i, m := range methods {
		intr, err := New(m, pts)
		require.NoError(t, err, m.String())
		intrs[i] = intr
		want[i], err = intr.Eval(1.5)
		require.NoError(t, err, m.String())
	}

	// Collapsing two abscissae would divide by zero if the points were
	// shared with the interpolators.
	pts[1].X = 1
	pts[2].Y = 100

	for i, m := range methods {
		y, err := intrs[i].Eval(1.5)
		require.NoError(t, err, m.String())
		assert.False(t, math.IsInf(y, 0) || math.IsNaN(y), "%v gave %g", m, y)
		assert.Equal(t, want[i], y, m.String())
	}
}

func TestEvalAllShortOutput(t *testing.T) {
	pts := samplePoints(t)
	xs := []float64{1, 1.2, 1.5}

	for m := MethodLinear; m < EndMethod; m++ {
		intr, err := New(m, pts)
		require.NoError(t, err, m.String())

		short := make([]float64, 1)
		ys, err := intr.EvalAll(xs, short)
		assert.ErrorIs(t, err, ErrDimensionMismatch, m.String())
		assert.Nil(t, ys, m.String())
		assert.Equal(t, []float64{0}, short, m.String())

		_, err = intr.EvalAll(xs, []float64{})
		assert.ErrorIs(t, err, ErrDimensionMismatch, m.String())

		long := make([]float64, 4)
		ys, err = intr.EvalAll(xs, long)
		require.NoError(t, err, m.String())
		assert.Len(t, ys, 4, m.String())
		assert.Equal(t, 0.0, long[3], m.String())
	}
}
