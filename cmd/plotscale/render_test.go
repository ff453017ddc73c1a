// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/scale"
)

func newAxis(t *testing.T, s scale.Scale) *axis.Axis {
	t.Helper()
	return axis.New(axis.Horizontal, s)
}

func TestReadCurvesHeader(t *testing.T) {
	x := newAxis(t, scale.NewLinear())
	curves, err := readCurves(strings.NewReader("x, load, mem\n1, 2, 3\n2,,5\n3,4\n"), x)
	require.NoError(t, err)
	require.Len(t, curves, 2)

	assert.Equal(t, "load", curves[0].Label)
	assert.Equal(t, "mem", curves[1].Label)
	assert.Equal(t, []float64{1, 2, 3}, curves[0].X)
	assert.Equal(t, 2.0, curves[0].Y[0])
	assert.True(t, math.IsNaN(curves[0].Y[1]))
	assert.Equal(t, 4.0, curves[0].Y[2])
	assert.Equal(t, 5.0, curves[1].Y[1])
	assert.True(t, math.IsNaN(curves[1].Y[2]))
	assert.NotEqual(t, curves[0].Color, curves[1].Color)
}

func TestReadCurvesNoHeader(t *testing.T) {
	x := newAxis(t, scale.NewLinear())
	curves, err := readCurves(strings.NewReader("0,1\n10,2\n"), x)
	require.NoError(t, err)
	require.Len(t, curves, 1)
	assert.Equal(t, "y1", curves[0].Label)
	assert.Equal(t, []float64{0, 10}, curves[0].X)
	assert.Equal(t, []float64{1, 2}, curves[0].Y)
}

func TestReadCurvesText(t *testing.T) {
	text := scale.NewText(nil)
	curves, err := readCurves(strings.NewReader("day,count\nmon,4\ntue,7\nwed,1\n"), newAxis(t, text))
	require.NoError(t, err)
	require.Len(t, curves, 1)
	assert.Equal(t, "count", curves[0].Label)
	assert.Equal(t, []float64{1, 2, 3}, curves[0].X)
	assert.Equal(t, []string{"mon", "tue", "wed"}, text.Labels)
}

func TestReadCurvesDate(t *testing.T) {
	x := newAxis(t, scale.NewDate())
	curves, err := readCurves(strings.NewReader("2024-01-01,1\n2024-01-02T12:00:00Z,2\n"), x)
	require.NoError(t, err)
	require.Len(t, curves, 1)
	want := scale.DateValue(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, want, curves[0].X[1])
}

func TestReadCurvesErrors(t *testing.T) {
	x := newAxis(t, scale.NewLinear())
	_, err := readCurves(strings.NewReader(""), x)
	assert.ErrorIs(t, err, scale.ErrInvalidRange)

	_, err = readCurves(strings.NewReader("1,2\nbad,3\n"), x)
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "row 2")
}

func TestRenderCommand(t *testing.T) {
	out, err := runCLI(t, "x,y\n1,10\n2,100\n3,1000\n", "render", "--y-type", "log", "--width", "300", "--height", "200")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, ">1000</text>")
	assert.Contains(t, out, "<title>y: 2, 100</title>")

	path := filepath.Join(t.TempDir(), "chart.svg")
	in := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("a,1\nb,3\n"), 0o666))
	_, err = runCLI(t, "", "render", "--x-type", "text", "-i", in, "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ">a</text>")
	assert.Contains(t, string(data), ">b</text>")

	_, err = runCLI(t, "", "render", "-i", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
