// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/internal/config"
	"github.com/aclements/go-plotscale/scale"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestBuildDefaults(t *testing.T) {
	cfg := testConfig(t)
	a, err := scaleSpec{}.build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, axis.Horizontal, a.Orientation)
	assert.Equal(t, cfg.Render.Width, a.Length)
	assert.Equal(t, cfg.Render.PreventOverlap, a.PreventOverlap)
	assert.Equal(t, scale.TypeLinear, a.Scale().Type())
	assert.True(t, a.Scale().Base().MinAuto)

	v, err := scaleSpec{"orient": "y"}.build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Render.Height, v.Length)
	assert.Same(t, v, v.Scale().Base().Owner())
}

func TestBuildFixed(t *testing.T) {
	a, err := scaleSpec{
		"min": "1", "max": "9", "major": "2", "minor": "0.5",
		"mag": "3", "format": "%.2f", "length": "300", "overlap": "false",
	}.build(testConfig(t), nil)
	require.NoError(t, err)
	b := a.Scale().Base()
	assert.Equal(t, 1.0, b.Min)
	assert.Equal(t, 9.0, b.Max)
	assert.Equal(t, 2.0, b.MajorStep)
	assert.Equal(t, 0.5, b.MinorStep)
	assert.Equal(t, 3, b.Mag)
	assert.Equal(t, "%.2f", b.Format)
	assert.False(t, b.MinAuto || b.MaxAuto || b.MajorStepAuto || b.MinorStepAuto || b.MagAuto || b.FormatAuto)
	assert.Equal(t, 300.0, a.Length)
	assert.False(t, a.PreventOverlap)
}

func TestBuildFamilies(t *testing.T) {
	cfg := testConfig(t)
	a, err := scaleSpec{"type": "exponent", "exponent": "-2"}.build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, -2.0, a.Scale().(*scale.Exponent).Exponent)

	a, err = scaleSpec{"type": "text", "labels": "x,y"}.build(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, a.Scale().(*scale.Text).Labels)

	a, err = scaleSpec{"type": "date", "loc": "Asia/Tokyo", "unit": "month", "min": "2024-03-01"}.build(cfg, nil)
	require.NoError(t, err)
	d := a.Scale().(*scale.Date)
	assert.Equal(t, "Asia/Tokyo", d.Location.String())
	assert.Equal(t, scale.Month, d.MajorUnit)
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	assert.Equal(t, scale.DateValue(time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo)), d.Min)
	assert.Equal(t, tokyo.String(), location(a).String())
}

func TestBuildErrors(t *testing.T) {
	cfg := testConfig(t)
	for _, sp := range []scaleSpec{
		{"type": "pie"},
		{"orient": "diagonal"},
		{"min": "low"},
		{"major": "big"},
		{"mag": "1.5"},
		{"exponent": "e", "type": "exponent"},
		{"exponent": "0", "type": "exponent"},
		{"type": "date", "loc": "Nowhere/Special"},
		{"type": "date", "unit": "fortnight"},
		{"length": "0"},
		{"overlap": "maybe"},
	} {
		_, err := sp.build(cfg, nil)
		assert.ErrorIs(t, err, scale.ErrInvalidParameter, "%v", sp)
	}
}

func TestParseValue(t *testing.T) {
	v, err := parseValue(scale.TypeLinear, time.UTC, " 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	want := scale.DateValue(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	for _, s := range []string{"2024-05-06T07:08:09Z", "2024-05-06 07:08:09", "2024-05-06T09:08:09+02:00"} {
		v, err := parseValue(scale.TypeDate, time.UTC, s)
		require.NoError(t, err, s)
		assert.Equal(t, want, v, s)
	}
	v, err = parseValue(scale.TypeDate, time.FixedZone("", 3600), "2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, scale.DateValue(time.Date(2024, 5, 5, 23, 0, 0, 0, time.UTC)), v)

	_, err = parseValue(scale.TypeDate, time.UTC, "May 6")
	assert.Error(t, err)

	_, err = parseValues(scale.TypeLinear, time.UTC, []string{"1", "two"})
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)
}

func TestSpecFromQuery(t *testing.T) {
	q, err := url.ParseQuery("type=log&min=1&junk=2&overlap=")
	require.NoError(t, err)
	assert.Equal(t, scaleSpec{"type": "log", "min": "1", "overlap": ""}, specFromQuery(q))
}
