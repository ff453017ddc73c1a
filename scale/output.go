// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// OutputScale maps scaled coordinates of a Scale to an output range,
// typically pixels along an axis. Min and max may be given in either
// order; a vertical axis usually maps ScaledMin to the larger pixel
// coordinate.
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an OutputScale onto [min, max] that crops
// values outside the scale.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes Of reject values outside the scale.
func (o *OutputScale) Crop() {
	o.clamp = clampCrop
}

// Unclamp makes Of extrapolate values outside the scale.
func (o *OutputScale) Unclamp() {
	o.clamp = clampNone
}

// Clamp makes Of pin values outside the scale to its ends.
func (o *OutputScale) Clamp() {
	o.clamp = clampClamp
}

// Of maps x in [0, 1] to the output range. It returns false if x is
// cropped.
func (o OutputScale) Of(x float64) (float64, bool) {
	if o.clamp == clampCrop {
		// Allow for round-off in tick values at the ends.
		if x < -1e-9 || x > 1+1e-9 {
			return 0, false
		}
	} else if o.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(o.max-o.min) + o.min, true
}

// Map maps the scaled coordinate v of s to the output range.
func (o OutputScale) Map(s Scale, v float64) (float64, bool) {
	b := s.Base()
	w := b.ScaledMax - b.ScaledMin
	if w == 0 {
		return o.Of(0.5)
	}
	return o.Of((v - b.ScaledMin) / w)
}

// MapData transforms the data value v through s and maps it to the
// output range.
func (o OutputScale) MapData(s Scale, v float64) (float64, bool) {
	sv, err := s.Transform().Forward(v)
	if err != nil {
		return 0, false
	}
	return o.Map(s, sv)
}
