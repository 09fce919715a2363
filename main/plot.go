package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

const plotPoints = 200

// plotInterpolant plots the samples, the interpolating function across the
// sampled range, and the query point, and saves the figure to fname.
func plotInterpolant(
	fname string, method interpolate.Method, intr interpolate.Interpolator,
	pts interpolate.PointSet, x, y float64,
) error {
	lo, hi := pts.Range()
	if x < lo {
		lo = x
	}
	if x > hi {
		hi = x
	}
	if method == interpolate.MethodLinear {
		// Linear cannot extrapolate.
		lo, hi = pts.Range()
	}

	curveXs := linspace(lo, hi, plotPoints)
	curveYs, err := intr.EvalAll(curveXs)
	if err != nil {
		return err
	}

	plt.Reset()
	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(curveXs, curveYs, "b", plt.LW(2))
	plt.Plot(pts.Xs(), pts.Ys(), "ok")
	plt.Plot([]float64{x}, []float64{y}, "or")
	plt.Title(fmt.Sprintf("%s interpolation: f(%g) = %.6g", method, x, y))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x)$`, plt.FontSize(16))
	plt.XLim(lo, hi)
	plt.SaveFig(fname)
	plt.Execute()

	return nil
}

// linspace returns n evenly spaced values from lo to hi, inclusive.
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*dx
	}
	xs[n-1] = hi
	return xs
}
