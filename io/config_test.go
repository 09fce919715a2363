package io

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

func TestParseExampleConfig(t *testing.T) {
	wrap, err := ParseInterpolateConfig(ExampleInterpolateFile)
	require.NoError(t, err)
	con := &wrap.Interpolate

	assert.True(t, con.ValidValue())
	assert.Equal(t, 1.5, con.Value)
	m, ok := interpolate.MethodFromString(con.Method)
	require.True(t, ok)
	assert.Equal(t, interpolate.MethodNeville, m)

	// Defaults survive.
	assert.Equal(t, 0, con.XColumn)
	assert.Equal(t, 1, con.YColumn)
	assert.Equal(t, interpolate.DefaultDegree, con.Degree)
	assert.Equal(t, "GaussJordan", con.Solver)
	assert.False(t, con.PrintTable)
	assert.False(t, con.ValidPlotFile())
	assert.False(t, con.ValidLogFile())
	assert.Empty(t, wrap.Point)

	pts, err := wrap.PointSet()
	require.NoError(t, err)
	assert.Equal(t, DefaultXs, pts.Xs())
	assert.Equal(t, DefaultYs, pts.Ys())
}

func TestParseConfigWithPoints(t *testing.T) {
	wrap, err := ParseInterpolateConfig(`[Interpolate]
Value = 2
Method = 2
Solver = LU
PrintTable = true

[Point "c"]
X = 3
Y = 9

[Point "a"]
X = 1
Y = 1

[Point "b"]
X = 2.5
Y = 6.25
`)
	require.NoError(t, err)
	con := &wrap.Interpolate
	assert.Equal(t, 2.0, con.Value)
	assert.True(t, con.PrintTable)
	assert.Len(t, wrap.Point, 3)

	pts, err := wrap.PointSet()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, pts.Xs())

	m, _ := interpolate.MethodFromString(con.Method)
	y, err := interpolate.Interpolate(m, pts, con.Value, con.Options()...)
	require.NoError(t, err)
	assert.InDelta(t, 4, y, 1e-9)
}

func TestParseConfigMissingValue(t *testing.T) {
	wrap, err := ParseInterpolateConfig("[Interpolate]\nMethod = Linear\n")
	require.NoError(t, err)
	assert.False(t, wrap.Interpolate.ValidValue())
}

func TestParseConfigErrors(t *testing.T) {
	table := []string{
		"[Interpolate]\nMethod = Spline\n",
		"[Interpolate]\nMethod = 7\n",
		"[Interpolate]\nXColumn = 1\n",
		"[Interpolate]\nYColumn = -1\n",
		"[Interpolate]\nDegree = 0\n",
		"[Interpolate]\nSolver = QR\n",
		"[Interpolate]\nNotAKey = 3\n",
	}

	for i, cfg := range table {
		_, err := ParseInterpolateConfig(cfg)
		assert.Error(t, err, "%d) %q", i+1, cfg)
	}
}

func TestConfigDuplicatePoints(t *testing.T) {
	wrap, err := ParseInterpolateConfig(`[Interpolate]
Value = 1
[Point "a"]
X = 1
Y = 1
[Point "b"]
X = 1
Y = 2
`)
	require.NoError(t, err)
	_, err = wrap.PointSet()
	assert.ErrorIs(t, err, interpolate.ErrDuplicateAbscissa)
}

func TestReadConfigFileAndPoints(t *testing.T) {
	dir, err := ioutil.TempDir("", "gointerp")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	ptsFile := filepath.Join(dir, "points.txt")
	err = ioutil.WriteFile(ptsFile, []byte(
		"0 1.6 0.4554\n"+
			"1 1.0 0.7651\n"+
			"2 1.3 0.62\n",
	), 0644)
	require.NoError(t, err)

	cfgFile := filepath.Join(dir, "interp.cfg")
	err = ioutil.WriteFile(cfgFile, []byte(
		"[Interpolate]\n"+
			"Value = 1.5\n"+
			"Method = Linear\n"+
			"PointsFile = "+ptsFile+"\n"+
			"XColumn = 1\n"+
			"YColumn = 2\n",
	), 0644)
	require.NoError(t, err)

	wrap, err := ReadInterpolateConfig(cfgFile)
	require.NoError(t, err)
	pts, err := wrap.PointSet()
	require.NoError(t, err)
	assert.Equal(t, DefaultXs, pts.Xs())
	assert.Equal(t, DefaultYs, pts.Ys())

	wrap.Point = map[string]*PointConfig{"a": {X: 1, Y: 2}}
	_, err = wrap.PointSet()
	assert.Error(t, err)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadInterpolateConfig("does/not/exist.cfg")
	assert.Error(t, err)
}
