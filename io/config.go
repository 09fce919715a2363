package io

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Point at which the interpolated value is computed.
Value = 1.5

# Method can be one of:
# [ Linear | Polynomial | Lagrange | Neville ]
# or the corresponding number, 1 through 4. If Method is not set, you will be
# asked to choose one when the program starts.
Method = Neville

#######################
# Optional Parameters #
#######################

# Sample points can be read from a whitespace-separated text table. XColumn
# and YColumn are zero-indexed and default to 0 and 1.
# PointsFile = path/to/points.txt
# XColumn = 0
# YColumn = 1

# Alternatively, sample points can be listed in this file with [Point] sections
# (see the bottom of this file). If neither PointsFile nor any [Point] sections
# are given, the samples (1, 0.7651), (1.3, 0.62), (1.6, 0.4554) are used.

# Degree of the polynomial solved for by the Polynomial method. The number of
# points must be exactly Degree + 1. Default is 2.
# Degree = 2

# Linear solver used by the Polynomial method. GaussJordan inverts the design
# matrix without row exchanges. LU uses partial pivoting and is more robust
# for badly spaced points. Default is GaussJordan.
# Solver = GaussJordan

# Prints every intermediate value of Neville's algorithm.
# PrintTable = true

# Writes a plot of the samples and the interpolating function. Needs python
# and matplotlib.
# PlotFile = interp.png

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out

# [Point "a"]
# X = 1
# Y = 0.7651
#
# [Point "b"]
# X = 1.3
# Y = 0.62`
)

var (
	// DefaultXs and DefaultYs are the samples used when none are configured.
	DefaultXs = []float64{1, 1.3, 1.6}
	DefaultYs = []float64{0.7651, 0.62, 0.4554}
	// DefaultValue is the query point used when none is configured.
	DefaultValue = 1.5
)

type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type InterpolateConfig struct {
	SharedConfig

	// Required
	Value  float64
	Method string

	// Optional
	PointsFile       string
	XColumn, YColumn int
	Degree           int
	Solver           string
	PrintTable       bool
	PlotFile         string
}

// PointConfig is a single sample given inline in a config file.
type PointConfig struct {
	X, Y float64
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
	Point       map[string]*PointConfig
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.Value = math.NaN()
	con.XColumn, con.YColumn = 0, 1
	con.Degree = interpolate.DefaultDegree
	con.Solver = interpolate.GaussJordan.String()
	return &InterpolateWrapper{Interpolate: con}
}

func (con *InterpolateConfig) ValidValue() bool {
	return !math.IsNaN(con.Value) && !math.IsInf(con.Value, 0)
}
func (con *InterpolateConfig) ValidMethod() bool {
	_, ok := interpolate.MethodFromString(con.Method)
	return ok
}
func (con *InterpolateConfig) ValidPointsFile() bool {
	return con.PointsFile != ""
}
func (con *InterpolateConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *InterpolateConfig) ValidDegree() bool {
	return con.Degree > 0
}
func (con *InterpolateConfig) ValidSolver() bool {
	_, ok := interpolate.SolverFromString(con.Solver)
	return ok
}
func (con *InterpolateConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// CheckInit validates every set parameter. An empty Method is allowed, since
// the method can be chosen interactively.
func (con *InterpolateConfig) CheckInit() error {
	if con.Method != "" && !con.ValidMethod() {
		return fmt.Errorf(
			"Method '%s' is not one of Linear, Polynomial, Lagrange, "+
				"Neville, or 1-4.", con.Method,
		)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"XColumn = %d and YColumn = %d must be distinct and non-negative.",
			con.XColumn, con.YColumn,
		)
	} else if !con.ValidDegree() {
		return fmt.Errorf("Degree must be positive, but is %d.", con.Degree)
	} else if !con.ValidSolver() {
		return fmt.Errorf(
			"Solver '%s' is not one of GaussJordan or LU.", con.Solver,
		)
	}
	return nil
}

// Options returns the interpolator options implied by the config.
func (con *InterpolateConfig) Options() []interpolate.Option {
	solver, _ := interpolate.SolverFromString(con.Solver)
	return []interpolate.Option{
		interpolate.WithDegree(con.Degree),
		interpolate.WithSolver(solver),
	}
}

// ReadInterpolateConfig reads and validates an [Interpolate] config file.
func ReadInterpolateConfig(fname string) (*InterpolateWrapper, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Interpolate.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ParseInterpolateConfig is ReadInterpolateConfig for a config held in a
// string.
func ParseInterpolateConfig(s string) (*InterpolateWrapper, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadStringInto(wrap, s); err != nil {
		return nil, err
	}
	if err := wrap.Interpolate.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// PointSet returns the samples described by the config: the PointsFile table
// if one is set, otherwise the [Point] sections, otherwise the default
// samples.
func (wrap *InterpolateWrapper) PointSet() (interpolate.PointSet, error) {
	con := &wrap.Interpolate

	switch {
	case con.ValidPointsFile() && len(wrap.Point) > 0:
		return nil, fmt.Errorf(
			"PointsFile and %d [Point] sections were both given.",
			len(wrap.Point),
		)
	case con.ValidPointsFile():
		return ReadPoints(con.PointsFile, con.XColumn, con.YColumn)
	case len(wrap.Point) > 0:
		pts := make([]interpolate.Point, 0, len(wrap.Point))
		for _, p := range wrap.Point {
			pts = append(pts, interpolate.Point{X: p.X, Y: p.Y})
		}
		return interpolate.PointSetOf(pts...)
	default:
		return interpolate.NewPointSet(DefaultXs, DefaultYs)
	}
}
