// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis places a scale along one side of a chart.
//
// An Axis owns a scale.Scale and supplies what the scale needs to
// pick itself: its orientation, its length in pixels, and a way to
// measure labels. It then enumerates the resulting ticks in pixel
// coordinates.
package axis

import (
	"fmt"
	"strings"

	"github.com/aclements/go-plotscale/scale"
)

// Orientation is the direction an axis runs in.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation parses "x", "horizontal", "y" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "x", "h", "horizontal":
		return Horizontal, nil
	case "y", "v", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: unknown orientation %q", scale.ErrInvalidParameter, s)
}

// An Axis is one axis of a chart.
type Axis struct {
	Orientation Orientation

	// Length is the extent of the axis in pixels.
	Length float64

	// ScaleFactor scales label sizes. Zero means 1.
	ScaleFactor float64

	// PreventOverlap limits the number of major ticks so labels do
	// not collide. It requires Metrics.
	PreventOverlap bool

	// Metrics measures labels.
	Metrics scale.LabelMeasurer

	// Options overrides scale.DefaultOptions if non-nil.
	Options *scale.Options

	scale scale.Scale
}

// New returns an axis with orientation o over s. s is bound to the
// new axis.
func New(o Orientation, s scale.Scale) *Axis {
	a := &Axis{Orientation: o}
	a.SetScale(s)
	return a
}

// Scale returns the axis's scale.
func (a *Axis) Scale() scale.Scale {
	return a.scale
}

// SetScale replaces the axis's scale and binds s to a.
func (a *Axis) SetScale(s scale.Scale) {
	a.scale = s
	if s != nil {
		s.Base().Bind(a)
	}
}

// Horizontal reports whether a runs left to right.
func (a *Axis) Horizontal() bool {
	return a.Orientation == Horizontal
}

// Clone returns a deep copy of a whose scale is bound to the copy.
func (a *Axis) Clone() *Axis {
	c := *a
	if a.Options != nil {
		opts := *a.Options
		c.Options = &opts
	}
	c.scale = nil
	if a.scale != nil {
		c.SetScale(a.scale.Clone())
	}
	return &c
}

// Context returns the rendering context for picking a's scale.
func (a *Axis) Context() *scale.Context {
	return &scale.Context{
		Length:         a.Length,
		ScaleFactor:    a.ScaleFactor,
		PreventOverlap: a.PreventOverlap,
		Measure:        a.Metrics,
		Options:        a.Options,
	}
}

// Pick sets the data range of the scale from data, ignoring NaNs,
// and picks the scale. With no data, the previously set range is
// used.
func (a *Axis) Pick(data []float64) error {
	if a.scale == nil {
		return fmt.Errorf("%w: axis has no scale", scale.ErrInvalidParameter)
	}
	if len(data) > 0 && !a.scale.Base().SetRangeFrom(data) {
		return fmt.Errorf("%w: no finite data", scale.ErrInvalidRange)
	}
	return a.scale.PickScale(a.Context())
}

// Output returns the mapping from the scale's normalized range to
// pixels along the axis. Vertical axes grow up from Length to 0.
func (a *Axis) Output() scale.OutputScale {
	if a.Horizontal() {
		return scale.NewOutputScale(0, a.Length)
	}
	return scale.NewOutputScale(a.Length, 0)
}
