package interpolate

import (
	"errors"
	"fmt"
)

// Errors returned by the interpolators. Match them with errors.Is; context
// may be wrapped around them.
var (
	ErrDuplicateAbscissa = errors.New("interpolate: two points share an x coordinate")
	ErrOutOfRange        = errors.New("interpolate: value outside of the interpolation range")
	ErrDimensionMismatch = errors.New("interpolate: dimension mismatch")
	ErrTooFewPoints      = errors.New("interpolate: at least two points are required")
	ErrUnsorted          = errors.New("interpolate: points are not sorted by ascending x")
	ErrNaNInf            = errors.New("interpolate: NaN or Inf coordinate")
	ErrUnknownMethod     = errors.New("interpolate: unknown method")
	ErrUnknownSolver     = errors.New("interpolate: unknown solver")
)

// RangeError reports a query value that an interpolator cannot handle. It
// matches ErrOutOfRange.
type RangeError struct {
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"interpolate: value %g outside of the interpolation range [%g, %g]",
		e.Value, e.Min, e.Max,
	)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
