// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"

	"github.com/aclements/go-plotscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func majors(ticks []Tick) (pos []float64, labels []string) {
	for _, t := range ticks {
		if t.Major {
			pos = append(pos, t.Pos)
			labels = append(labels, t.Label)
		}
	}
	return
}

func TestHorizontalTicks(t *testing.T) {
	a := New(Horizontal, scale.NewLinear())
	a.Length = 700
	require.NoError(t, a.Pick([]float64{0, 3, 10}))

	ticks, err := a.Ticks()
	require.NoError(t, err)
	pos, labels := majors(ticks)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, labels)
	for i, p := range pos {
		assert.InDelta(t, float64(i)*70, p, 1e-9)
	}
	assert.Len(t, ticks, 51)
	for _, tk := range ticks[len(pos):] {
		assert.False(t, tk.Major)
		assert.Empty(t, tk.Label)
		assert.GreaterOrEqual(t, tk.Pos, 0.0)
		assert.LessOrEqual(t, tk.Pos, 700.0)
	}
}

func TestVerticalTicks(t *testing.T) {
	a := New(Vertical, scale.NewLinear())
	a.Length = 500
	require.NoError(t, a.Pick([]float64{0, 10}))
	assert.Equal(t, 2.0, a.Scale().Base().MajorStep)

	ticks, err := a.Ticks()
	require.NoError(t, err)
	pos, labels := majors(ticks)
	assert.Equal(t, []string{"0", "2", "4", "6", "8", "10"}, labels)
	assert.InDelta(t, 500, pos[0], 1e-9)
	assert.InDelta(t, 400, pos[1], 1e-9)
	assert.InDelta(t, 0, pos[5], 1e-9)
}

func TestLogTicks(t *testing.T) {
	a := New(Horizontal, scale.NewLog())
	a.Length = 300
	require.NoError(t, a.Pick([]float64{1, 1000}))

	ticks, err := a.Ticks()
	require.NoError(t, err)
	pos, labels := majors(ticks)
	assert.Equal(t, []string{"1", "10", "100", "1000"}, labels)
	assert.InDelta(t, 100, pos[1], 1e-9)
	require.Len(t, ticks, 4+24)
	assert.InDelta(t, 100*math.Log10(2), ticks[4].Pos, 1e-9)
}

func TestPickErrors(t *testing.T) {
	a := New(Horizontal, scale.NewLinear())
	assert.ErrorIs(t, a.Pick([]float64{math.NaN()}), scale.ErrInvalidRange)

	var empty Axis
	assert.ErrorIs(t, empty.Pick([]float64{1}), scale.ErrInvalidParameter)
	_, err := empty.Ticks()
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)

	l := New(Horizontal, scale.NewLog())
	assert.ErrorIs(t, l.Pick([]float64{-1, 10}), scale.ErrInvalidParameter)
}

func TestOrientationDrivesTargets(t *testing.T) {
	s := scale.NewLinear()
	a := New(Vertical, s)
	require.NoError(t, a.Pick([]float64{0, 10}))
	assert.Equal(t, 2.0, s.MajorStep)

	a.Orientation = Horizontal
	require.NoError(t, a.Pick(nil))
	assert.Equal(t, 1.0, s.MajorStep)
}

func TestClone(t *testing.T) {
	a := New(Vertical, scale.NewLinear())
	a.Length = 500
	a.Options = &scale.Options{TargetXSteps: 3, TargetYSteps: 3, TargetMinorXSteps: 2, TargetMinorYSteps: 2}
	require.NoError(t, a.Pick([]float64{0, 10}))

	c := a.Clone()
	assert.Same(t, c, c.Scale().Base().Owner())
	assert.Same(t, a, a.Scale().Base().Owner())
	assert.NotSame(t, a.Scale(), c.Scale())
	assert.NotSame(t, a.Options, c.Options)
	assert.Equal(t, a.Scale().Base().Max, c.Scale().Base().Max)

	c.Orientation = Horizontal
	c.Scale().Base().SetMax(100)
	require.NoError(t, c.Pick(nil))
	assert.Equal(t, 10.0, a.Scale().Base().Max)
	assert.True(t, c.Scale().Base().Owner().Horizontal())
	assert.False(t, a.Scale().Base().Owner().Horizontal())
}

func TestParseOrientation(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Orientation
	}{
		{"x", Horizontal},
		{"Horizontal", Horizontal},
		{"y", Vertical},
		{"vertical", Vertical},
	} {
		got, err := ParseOrientation(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}
	_, err := ParseOrientation("diagonal")
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)
	assert.Equal(t, "vertical", Vertical.String())
}
