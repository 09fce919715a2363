package interpolate

// Lagrange interpolates with the sum of Lagrange basis polynomials,
// f(x) = sum_i y_i * L_i(x), where L_i is 1 at x_i and 0 at every other x_j.
type Lagrange struct {
	pts PointSet
}

// NewLagrange creates a Lagrange interpolator. The points may be in any
// order.
func NewLagrange(pts PointSet) (*Lagrange, error) {
	pts = pts.clone()
	if err := pts.validate(false); err != nil {
		return nil, err
	}
	return &Lagrange{pts: pts}, nil
}

// basis returns L_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j).
func (lg *Lagrange) basis(i int, x float64) float64 {
	pts := lg.pts
	l := 1.0
	for j := range pts {
		if j != i {
			l *= (x - pts[j].X) / (pts[i].X - pts[j].X)
		}
	}
	return l
}

// Eval returns the value of the interpolating polynomial at x.
func (lg *Lagrange) Eval(x float64) (float64, error) {
	sum := 0.0
	for i, p := range lg.pts {
		sum += lg.basis(i, x) * p.Y
	}
	return sum, nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array.
func (lg *Lagrange) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(lg.Eval, xs, out)
}
