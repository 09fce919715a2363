// Package poly represents polynomials by their coefficient vectors.
package poly

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when an output array is too short for
// its input.
var ErrDimensionMismatch = errors.New("poly: dimension mismatch")

// Polynomial is the coefficient vector [c0, c1, c2, ...] of
// f(x) = c0 + c1*x + c2*x^2 + ...
//
// The zero-length Polynomial is the zero function.
type Polynomial []float64

// New creates a Polynomial from coefficients given in order of ascending
// power. The coefficients are copied.
func New(coeffs []float64) Polynomial {
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	return p
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Eval returns the value of the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	// Horner's rule: c0 + x*(c1 + x*(c2 + ...)).
	sum := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		sum = sum*x + p[i]
	}
	return sum
}

// EvalAll evaluates the polynomial at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used. An
// output array shorter than xs is an error.
func (p Polynomial) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	} else if len(out[0]) < len(xs) {
		return nil, fmt.Errorf(
			"poly: len(out) = %d, but len(xs) = %d: %w",
			len(out[0]), len(xs), ErrDimensionMismatch,
		)
	}
	for i, x := range xs {
		out[0][i] = p.Eval(x)
	}
	return out[0], nil
}

// Diff returns the derivative of the polynomial.
func (p Polynomial) Diff() Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}
