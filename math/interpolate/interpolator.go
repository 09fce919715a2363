/*package interpolate estimates f(x) from a small table of (x, y) samples.

Four methods are supported: piecewise-linear interpolation between
neighbouring samples, and three constructions of the unique polynomial
through all samples: solving for its coefficients by inverting the design
matrix, summing Lagrange basis polynomials, and Neville's recurrence over
successively wider sub-intervals.

Every computation is done numerically at the query point. Interpolators are
immutable after construction and may be evaluated any number of times.
*/
package interpolate

import (
	"fmt"
	"strconv"
	"strings"
)

// Interpolator evaluates an interpolating function built from a PointSet.
type Interpolator interface {
	Eval(x float64) (float64, error)
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &PolyFit{}
	_ Interpolator = &Lagrange{}
	_ Interpolator = &Neville{}
)

// Method identifies one of the interpolation methods. The numeric values are
// the identifiers users select methods with.
type Method int

const (
	MethodLinear Method = iota + 1
	MethodPolynomial
	MethodLagrange
	MethodNeville
	EndMethod
)

var methodNames = map[Method]string{
	MethodLinear:     "Linear",
	MethodPolynomial: "Polynomial",
	MethodLagrange:   "Lagrange",
	MethodNeville:    "Neville",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// MethodFromString parses either a method name (case-insensitive) or its
// numeric identifier, "1" through "4".
func MethodFromString(s string) (Method, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := Method(n)
		return m, m >= MethodLinear && m < EndMethod
	}

	for m := MethodLinear; m < EndMethod; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, true
		}
	}
	return 0, false
}

// Solver selects how PolyFit recovers polynomial coefficients.
type Solver int

const (
	// GaussJordan inverts the design matrix with unpivoted Gauss-Jordan
	// elimination and multiplies the inverse into the y vector.
	GaussJordan Solver = iota
	// LUSolver solves the design system through a partially pivoted LU
	// decomposition.
	LUSolver
)

func (s Solver) String() string {
	switch s {
	case GaussJordan:
		return "GaussJordan"
	case LUSolver:
		return "LU"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// SolverFromString parses a Solver name (case-insensitive).
func SolverFromString(s string) (Solver, bool) {
	s = strings.TrimSpace(s)
	for _, sv := range []Solver{GaussJordan, LUSolver} {
		if strings.EqualFold(sv.String(), s) {
			return sv, true
		}
	}
	return 0, false
}

// DefaultDegree is the polynomial degree PolyFit uses unless told otherwise.
// It requires exactly three points.
const DefaultDegree = 2

type options struct {
	degree int
	solver Solver
}

// Option configures the construction of an interpolator. Options that do
// not apply to a method are ignored.
type Option func(*options)

// WithDegree sets the degree of the polynomial PolyFit solves for. The
// point set must then contain exactly degree + 1 points.
func WithDegree(degree int) Option {
	return func(o *options) { o.degree = degree }
}

// WithSolver sets the linear solver PolyFit uses.
func WithSolver(s Solver) Option {
	return func(o *options) { o.solver = s }
}

func newOptions(opts []Option) *options {
	o := &options{degree: DefaultDegree, solver: GaussJordan}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New creates the interpolator for the given method.
func New(m Method, pts PointSet, opts ...Option) (Interpolator, error) {
	switch m {
	case MethodLinear:
		return NewLinear(pts)
	case MethodPolynomial:
		return NewPolyFit(pts, opts...)
	case MethodLagrange:
		return NewLagrange(pts)
	case MethodNeville:
		return NewNeville(pts)
	default:
		return nil, fmt.Errorf("interpolate: %v: %w", m, ErrUnknownMethod)
	}
}

// Interpolate builds the interpolator for the given method and evaluates it
// once at x.
func Interpolate(m Method, pts PointSet, x float64, opts ...Option) (float64, error) {
	intr, err := New(m, pts, opts...)
	if err != nil {
		return 0, err
	}
	return intr.Eval(x)
}

// evalAll implements EvalAll on top of an Eval function. It stops at the
// first error. An output array shorter than xs is an error.
func evalAll(
	eval func(float64) (float64, error), xs []float64, out [][]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	} else if len(out[0]) < len(xs) {
		return nil, fmt.Errorf(
			"interpolate: len(out) = %d, but len(xs) = %d: %w",
			len(out[0]), len(xs), ErrDimensionMismatch,
		)
	}
	for i, x := range xs {
		y, err := eval(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}
	return out[0], nil
}
