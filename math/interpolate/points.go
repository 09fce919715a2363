package interpolate

import (
	"fmt"
	"math"
	"sort"
)

// Point is a single (x, y) sample.
type Point struct {
	X, Y float64
}

// PointSet is a sequence of samples ordered by ascending x.
type PointSet []Point

// NewPointSet creates a PointSet from parallel slices of x and y values. The
// values are copied and sorted by x.
func NewPointSet(xs, ys []float64) (PointSet, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"interpolate: len(xs) = %d, but len(ys) = %d: %w",
			len(xs), len(ys), ErrDimensionMismatch,
		)
	}

	pts := make([]Point, len(xs))
	for i := range pts {
		pts[i] = Point{xs[i], ys[i]}
	}
	return PointSetOf(pts...)
}

// PointSetOf creates a PointSet from the given points. The points are copied
// and sorted by x.
func PointSetOf(pts ...Point) (PointSet, error) {
	set := make(PointSet, len(pts))
	copy(set, pts)
	sort.SliceStable(set, func(i, j int) bool { return set[i].X < set[j].X })

	if err := set.validate(true); err != nil {
		return nil, err
	}
	return set, nil
}

// Xs returns the x values of the set.
func (set PointSet) Xs() []float64 {
	xs := make([]float64, len(set))
	for i := range set {
		xs[i] = set[i].X
	}
	return xs
}

// Ys returns the y values of the set.
func (set PointSet) Ys() []float64 {
	ys := make([]float64, len(set))
	for i := range set {
		ys[i] = set[i].Y
	}
	return ys
}

// Range returns the smallest and largest x values in the set.
func (set PointSet) Range() (min, max float64) {
	min, max = math.Inf(+1), math.Inf(-1)
	for _, p := range set {
		if p.X < min {
			min = p.X
		}
		if p.X > max {
			max = p.X
		}
	}
	return min, max
}

// clone returns a copy of the set that later changes to set cannot reach.
func (set PointSet) clone() PointSet {
	if set == nil {
		return nil
	}
	out := make(PointSet, len(set))
	copy(out, set)
	return out
}

// validate checks the invariants every interpolator relies on. Sets built
// by hand rather than through NewPointSet may violate any of them.
func (set PointSet) validate(sorted bool) error {
	if len(set) < 2 {
		return fmt.Errorf("interpolate: got %d points: %w", len(set), ErrTooFewPoints)
	}

	for i, p := range set {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
			math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("interpolate: point %d is (%g, %g): %w", i, p.X, p.Y, ErrNaNInf)
		}
	}

	for i := range set {
		for j := i + 1; j < len(set); j++ {
			if set[i].X == set[j].X {
				return fmt.Errorf(
					"interpolate: points %d and %d both have x = %g: %w",
					i, j, set[i].X, ErrDuplicateAbscissa,
				)
			}
		}
	}

	if sorted {
		for i := 1; i < len(set); i++ {
			if set[i].X < set[i-1].X {
				return fmt.Errorf(
					"interpolate: x[%d] = %g follows x[%d] = %g: %w",
					i, set[i].X, i-1, set[i-1].X, ErrUnsorted,
				)
			}
		}
	}

	return nil
}
