// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// An Owner is the axis a scale belongs to. The scale uses it only to
// pick orientation-specific tick targets.
type Owner interface {
	Horizontal() bool
}

// State is the mutable state shared by every scale family.
//
// Min, Max and the step sizes are in data units, except on a Log
// scale, where the steps count decades. ScaledMin and ScaledMax are
// the bounds after the family's transform and are what ticks and
// pixels are computed in.
//
// Each field with an Auto flag is chosen by PickScale while the flag
// is true and left untouched once a setter clears it.
type State struct {
	Min, Max             float64
	MajorStep, MinorStep float64
	Mag                  int
	Format               string

	MinAuto, MaxAuto             bool
	MajorStepAuto, MinorStepAuto bool
	MagAuto, FormatAuto          bool

	// RangeMin and RangeMax are the extent of the data. PickScale
	// starts every automatic bound from them.
	RangeMin, RangeMax float64

	ScaledMin, ScaledMax float64

	owner Owner
}

func newState() State {
	s := State{Format: "%g"}
	s.SetAuto()
	return s
}

// SetAuto makes every field automatic.
func (s *State) SetAuto() {
	s.MinAuto, s.MaxAuto = true, true
	s.MajorStepAuto, s.MinorStepAuto = true, true
	s.MagAuto, s.FormatAuto = true, true
}

// SetMin fixes the minimum of the scale.
func (s *State) SetMin(v float64) {
	s.Min, s.MinAuto = v, false
}

// SetMax fixes the maximum of the scale.
func (s *State) SetMax(v float64) {
	s.Max, s.MaxAuto = v, false
}

// SetMajorStep fixes the major tick spacing.
func (s *State) SetMajorStep(v float64) {
	s.MajorStep, s.MajorStepAuto = v, false
}

// SetMinorStep fixes the minor tick spacing.
func (s *State) SetMinorStep(v float64) {
	s.MinorStep, s.MinorStepAuto = v, false
}

// SetMag fixes the display magnitude. Labels are divided by 10^mag.
func (s *State) SetMag(mag int) {
	s.Mag, s.MagAuto = mag, false
}

// SetFormat fixes the label format. For numeric scales this is a fmt
// verb such as "%.2f"; for date scales it is a time layout.
func (s *State) SetFormat(f string) {
	s.Format, s.FormatAuto = f, false
}

// SetRange records the extent of the data.
func (s *State) SetRange(min, max float64) {
	s.RangeMin, s.RangeMax = min, max
}

// SetRangeFrom records the extent of xs, ignoring NaNs. It reports
// false if xs has no usable values.
func (s *State) SetRangeFrom(xs []float64) bool {
	min, max, ok := minmax(xs)
	if ok {
		s.SetRange(min, max)
	}
	return ok
}

// Bind sets the axis that owns the scale.
func (s *State) Bind(o Owner) {
	s.owner = o
}

// Owner returns the axis the scale is bound to, or nil.
func (s *State) Owner() Owner {
	return s.owner
}

func (s *State) horizontal() bool {
	return s.owner == nil || s.owner.Horizontal()
}

// pick runs the auto-ranging algorithm over [Min, Max] in data units.
// If keepSign is set, automatic bounds never move onto or across zero.
func (s *State) pick(ctx *Context, keepSign bool) error {
	opts := ctx.options()
	horiz := s.horizontal()

	if s.MinAuto {
		s.Min = s.RangeMin
	}
	if s.MaxAuto {
		s.Max = s.RangeMax
	}
	if !finite(s.Min) || !finite(s.Max) {
		return rangeErr("bounds [%v, %v] are not finite", s.Min, s.Max)
	}

	// Widen a zero-width range.
	if s.Max-s.Min < 1e-20 {
		if s.MaxAuto {
			s.Max += 0.2 * orOne(s.Max)
		}
		if s.MinAuto {
			s.Min -= 0.2 * orOne(s.Min)
		}
	}
	if !(s.Max-s.Min > 0) || !finite(s.Max-s.Min) {
		return rangeErr("min %v is not below max %v", s.Min, s.Max)
	}

	// Anchor bounds that are close to zero at zero.
	if s.MinAuto && !keepSign && s.Min > 0 && s.Min/(s.Max-s.Min) < opts.ZeroLever {
		s.Min = 0
	}
	if s.MaxAuto && !keepSign && s.Max < 0 && math.Abs(s.Max/(s.Max-s.Min)) < opts.ZeroLever {
		s.Max = 0
	}

	span := s.Max - s.Min
	if s.MajorStepAuto {
		s.MajorStep = CalcStepSize(span, opts.majorTarget(horiz))
		if ctx.preventOverlap() {
			n := ctx.maxLabels(horiz, s.provisionalLabel(s.Min), s.provisionalLabel(s.Max))
			if float64(n) < span/s.MajorStep {
				s.MajorStep = CalcBoundedStepSize(span, n)
			}
		}
	}
	if !(s.MajorStep > 0) || !finite(s.MajorStep) {
		return rangeErr("major step %v", s.MajorStep)
	}

	if s.MinorStepAuto {
		s.MinorStep = CalcStepSize(s.MajorStep, opts.minorTarget(horiz))
	}
	if !(s.MinorStep > 0) || !finite(s.MinorStep) {
		return rangeErr("minor step %v", s.MinorStep)
	}

	if s.MinAuto {
		if m := floorTo(s.Min, s.MajorStep); !keepSign || s.Min <= 0 || m > 0 {
			s.Min = m
		}
	}
	if s.MaxAuto {
		if m := ceilTo(s.Max, s.MajorStep); !keepSign || s.Max >= 0 || m < 0 {
			s.Max = m
		}
	}

	if s.MagAuto {
		s.Mag = pickMag(s.Min, s.Max)
	}
	if s.FormatAuto {
		s.Format = decimalFormat(decimals(s.MajorStep, s.Mag))
	}
	return nil
}

func orOne(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Abs(x)
}

// floorTo and ceilTo round x to a multiple of step, treating values
// within a tiny fraction of a step as already exact.
func floorTo(x, step float64) float64 {
	return math.Floor(x/step+1e-10) * step
}

func ceilTo(x, step float64) float64 {
	return math.Ceil(x/step-1e-10) * step
}

// pickMag returns the engineering magnitude for labels spanning
// [min, max]. Orders of magnitude within ±3 are not worth a
// multiplier.
func pickMag(min, max float64) int {
	var mag, mag2 float64
	if math.Abs(min) > 1e-10 {
		mag = math.Floor(math.Log10(math.Abs(min)))
	}
	if math.Abs(max) > 1e-10 {
		mag2 = math.Floor(math.Log10(math.Abs(max)))
	}
	if math.Abs(mag2) > math.Abs(mag) {
		mag = mag2
	}
	if math.Abs(mag) <= 3 {
		return 0
	}
	return int(math.Floor(mag/3) * 3)
}

// decimals returns the number of decimal places needed to tell apart
// labels step apart once divided by 10^mag.
func decimals(step float64, mag int) int {
	n := -(int(math.Floor(math.Log10(step)+1e-9)) - mag)
	if n < 0 {
		return 0
	}
	return n
}

func decimalFormat(n int) string {
	return fmt.Sprintf("%%.%df", n)
}

// provisionalLabel formats v the way it would be labeled with the
// current major step, before the magnitude is known.
func (s *State) provisionalLabel(v float64) string {
	return fmt.Sprintf(decimalFormat(decimals(s.MajorStep, 0)), v)
}

// formatValue formats a data value for display.
func (s *State) formatValue(v float64) string {
	if s.Mag != 0 {
		v /= math.Pow10(s.Mag)
	}
	return trimNegZero(fmt.Sprintf(s.Format, v))
}

// trimNegZero turns "-0" and "-0.00" into "0" and "0.00".
func trimNegZero(l string) string {
	if len(l) < 2 || l[0] != '-' {
		return l
	}
	for _, c := range l[1:] {
		if c != '0' && c != '.' {
			return l
		}
	}
	return l[1:]
}

// linearBaseTic returns the first multiple of the major step at or
// above Min.
func (s *State) linearBaseTic() float64 {
	return math.Ceil(s.Min/s.MajorStep-1e-8) * s.MajorStep
}

// linearTicCount returns the number of major ticks from base to Max.
func (s *State) linearTicCount(base float64) int {
	n := int((s.Max-base)/s.MajorStep+0.01) + 1
	if n < 1 {
		n = 1
	} else if n > 1000 {
		n = 1000
	}
	return n
}
