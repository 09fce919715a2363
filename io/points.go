package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

// ReadPoints reads sample points from the given columns of a
// whitespace-separated text table. The points are sorted by x.
func ReadPoints(fname string, xCol, yCol int) (interpolate.PointSet, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, err
	}

	pts, err := interpolate.NewPointSet(cols[0], cols[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return pts, nil
}
