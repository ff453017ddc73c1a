// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"testing"

	"github.com/aclements/go-plotscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	a := &Axis{Length: 100, Metrics: FixedMetrics{10, 12}}
	assert.False(t, a.Overlaps([]Tick{
		{Pos: 0, Label: "0"},
		{Pos: 50, Label: "50"},
		{Pos: 100, Label: "100"},
	}))
	assert.True(t, a.Overlaps([]Tick{
		{Pos: 0, Label: "100"},
		{Pos: 10, Label: "200"},
	}))
	// Minor ticks have no labels.
	assert.False(t, a.Overlaps([]Tick{{Pos: 0, Label: "1"}, {Pos: 1}, {Pos: 2}}))

	// Vertical axes compare heights.
	v := &Axis{Orientation: Vertical, Length: 100, Metrics: FixedMetrics{10, 12}}
	assert.False(t, v.Overlaps([]Tick{
		{Pos: 100, Label: "100"},
		{Pos: 80, Label: "200"},
	}))
	assert.True(t, v.Overlaps([]Tick{
		{Pos: 100, Label: "100"},
		{Pos: 90, Label: "200"},
	}))
}

func TestPreventOverlap(t *testing.T) {
	a := New(Horizontal, scale.NewLinear())
	a.Length = 100
	a.Metrics = FixedMetrics{10, 12}
	require.NoError(t, a.Pick([]float64{0, 100}))
	ticks, err := a.Ticks()
	require.NoError(t, err)
	assert.True(t, a.Overlaps(ticks))

	a.PreventOverlap = true
	require.NoError(t, a.Pick(nil))
	ticks, err = a.Ticks()
	require.NoError(t, err)
	_, labels := majors(ticks)
	assert.Equal(t, []string{"0", "50", "100"}, labels)
	assert.False(t, a.Overlaps(ticks))
}

func TestPreventOverlapFont(t *testing.T) {
	m, err := NewFontMetrics(12)
	require.NoError(t, err)
	defer m.Close()

	for _, length := range []float64{60, 120, 300, 800} {
		for _, r := range [][2]float64{{0, 1}, {-12345, 67890}, {1e6, 9e6}, {0.001, 0.002}} {
			a := New(Horizontal, scale.NewLinear())
			a.Length = length
			a.Metrics = m
			a.PreventOverlap = true
			require.NoError(t, a.Pick(r[:]))
			ticks, err := a.Ticks()
			require.NoError(t, err)
			assert.False(t, a.Overlaps(ticks), "length %v range %v", length, r)
		}
	}
}

func TestFontMetrics(t *testing.T) {
	m, err := NewFontMetrics(12)
	require.NoError(t, err)
	defer m.Close()

	w0, h := m.MeasureLabel("")
	assert.Equal(t, 0.0, w0)
	assert.Greater(t, h, 0.0)

	w1, _ := m.MeasureLabel("0")
	w2, _ := m.MeasureLabel("00")
	assert.Greater(t, w1, 0.0)
	assert.InDelta(t, 2*w1, w2, 0.5)

	w, _ := FixedMetrics{3, 5}.MeasureLabel("héllo")
	assert.Equal(t, 15.0, w)
}
