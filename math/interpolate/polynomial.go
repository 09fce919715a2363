package interpolate

import (
	"fmt"

	"github.com/phil-mansfield/gointerp/math/mat"
	"github.com/phil-mansfield/gointerp/math/poly"
)

// PolyFit interpolates with the polynomial whose coefficients solve the
// design system V * c = y, where row i of V is [1, x_i, x_i^2, ...].
type PolyFit struct {
	pts    PointSet
	coeffs poly.Polynomial
}

// NewPolyFit solves for the interpolating polynomial through pts. By default
// the polynomial is quadratic and pts must contain exactly three points; see
// WithDegree and WithSolver.
func NewPolyFit(pts PointSet, opts ...Option) (*PolyFit, error) {
	o := newOptions(opts)
	pts = pts.clone()
	if err := pts.validate(false); err != nil {
		return nil, err
	}

	terms := o.degree + 1
	if len(pts) != terms {
		return nil, fmt.Errorf(
			"interpolate: degree %d polynomial needs %d points, got %d: %w",
			o.degree, terms, len(pts), ErrDimensionMismatch,
		)
	}

	design := designMatrix(pts, terms)
	ys := pts.Ys()

	var (
		coeffs []float64
		err    error
	)
	switch o.solver {
	case GaussJordan:
		var inv *mat.Matrix
		inv, err = design.Invert()
		if err == nil {
			coeffs, err = inv.MultVector(ys)
		}
	case LUSolver:
		coeffs, err = design.SolveVector(ys)
	default:
		return nil, fmt.Errorf("interpolate: solver %v: %w", o.solver, ErrUnknownSolver)
	}
	if err != nil {
		return nil, fmt.Errorf("interpolate: solving design matrix: %w", err)
	}

	return &PolyFit{pts: pts, coeffs: poly.New(coeffs)}, nil
}

// designMatrix returns the len(pts) x terms matrix of the monomial basis
// evaluated at each x.
func designMatrix(pts PointSet, terms int) *mat.Matrix {
	vals := make([]float64, len(pts)*terms)
	for i, p := range pts {
		pow := 1.0
		for j := 0; j < terms; j++ {
			vals[i*terms+j] = pow
			pow *= p.X
		}
	}
	return mat.NewMatrix(vals, terms, len(pts))
}

// Coeffs returns the coefficients of the interpolating polynomial in order
// of ascending power.
func (pf *PolyFit) Coeffs() poly.Polynomial { return poly.New(pf.coeffs) }

// Eval returns the value of the interpolating polynomial at x.
func (pf *PolyFit) Eval(x float64) (float64, error) {
	return pf.coeffs.Eval(x), nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array.
func (pf *PolyFit) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(pf.Eval, xs, out)
}
