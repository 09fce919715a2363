package interpolate

import (
	"math"
	"sort"
)

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a piecewise-linear interpolator.
type Linear struct {
	pts PointSet
}

// NewLinear creates a linear interpolator for a set of points sorted by
// strictly increasing x.
func NewLinear(pts PointSet) (*Linear, error) {
	pts = pts.clone()
	if err := pts.validate(true); err != nil {
		return nil, err
	}
	return &Linear{pts: pts}, nil
}

// Eval returns the interpolated value at x.
//
// The segment used is the one ending at the first point whose x is larger
// than the query, so a query equal to a sample x lands on that sample's y.
// Queries below the first sample or above the last fail with a *RangeError.
// A query equal to the last sample uses the final segment.
func (lin *Linear) Eval(x float64) (float64, error) {
	pts := lin.pts
	n := len(pts)
	if math.IsNaN(x) || x < pts[0].X || x > pts[n-1].X {
		return 0, &RangeError{Value: x, Min: pts[0].X, Max: pts[n-1].X}
	}

	i := sort.Search(n, func(i int) bool { return pts[i].X > x })
	if i == n {
		i = n - 1
	}

	p1, p2 := pts[i-1], pts[i]
	m := (p2.Y - p1.Y) / (p2.X - p1.X)
	return m*x + (p1.Y - m*p1.X), nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(lin.Eval, xs, out)
}
