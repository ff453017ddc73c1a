// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Options holds the tuning constants of the auto-ranging algorithm.
type Options struct {
	// TargetXSteps and TargetYSteps are the desired number of major
	// intervals on horizontal and vertical axes.
	TargetXSteps, TargetYSteps float64

	// TargetMinorXSteps and TargetMinorYSteps are the desired number
	// of minor intervals per major interval.
	TargetMinorXSteps, TargetMinorYSteps float64

	// ZeroLever is the fraction of the span below which a bound of
	// the same sign is snapped to 0.
	ZeroLever float64

	// LabelGap is the minimum space, in pixels, between adjacent
	// labels when preventing overlap.
	LabelGap float64
}

// DefaultOptions are the options used when a Context does not carry
// its own.
var DefaultOptions = Options{
	TargetXSteps:      7,
	TargetYSteps:      5,
	TargetMinorXSteps: 5,
	TargetMinorYSteps: 4,
	ZeroLever:         0.25,
	LabelGap:          4,
}

func (o *Options) majorTarget(horizontal bool) float64 {
	if horizontal {
		return o.TargetXSteps
	}
	return o.TargetYSteps
}

func (o *Options) minorTarget(horizontal bool) float64 {
	if horizontal {
		return o.TargetMinorXSteps
	}
	return o.TargetMinorYSteps
}

// A LabelMeasurer reports the rendered size of a label in pixels.
type LabelMeasurer interface {
	MeasureLabel(text string) (width, height float64)
}

// Context carries the rendering information PickScale needs from the
// owning axis. A nil *Context picks with DefaultOptions and no
// overlap prevention.
type Context struct {
	// Length is the length of the axis in pixels.
	Length float64

	// ScaleFactor scales label sizes for proportional rendering.
	// Zero means 1.
	ScaleFactor float64

	// PreventOverlap bounds the number of major ticks so labels fit
	// along Length. It requires Measure.
	PreventOverlap bool
	Measure        LabelMeasurer

	// Options overrides DefaultOptions if non-nil.
	Options *Options
}

func (c *Context) options() *Options {
	if c == nil || c.Options == nil {
		return &DefaultOptions
	}
	return c.Options
}

func (c *Context) preventOverlap() bool {
	return c != nil && c.PreventOverlap && c.Measure != nil && c.Length > 0
}

// maxLabels returns how many of the largest of labels fit along the
// axis.
func (c *Context) maxLabels(horizontal bool, labels ...string) int {
	var extent float64
	for _, l := range labels {
		w, h := c.Measure.MeasureLabel(l)
		if horizontal {
			h = w
		}
		extent = max(extent, h)
	}
	sf := c.ScaleFactor
	if sf <= 0 {
		sf = 1
	}
	n := int(c.Length / ((extent + c.options().LabelGap) * sf))
	if n < 1 {
		n = 1
	}
	return n
}
