// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"time"
)

// A DateUnit is a calendar unit for date ticks.
type DateUnit int

const (
	Second DateUnit = iota
	Minute
	Hour
	Day
	Month
	Year
)

var dateUnitNames = [...]string{"second", "minute", "hour", "day", "month", "year"}

func (u DateUnit) String() string {
	if u < 0 || int(u) >= len(dateUnitNames) {
		return "DateUnit(?)"
	}
	return dateUnitNames[u]
}

// ParseDateUnit parses the name of a DateUnit.
func ParseDateUnit(name string) (DateUnit, error) {
	for u, n := range dateUnitNames {
		if n == name {
			return DateUnit(u), nil
		}
	}
	return 0, paramErr("unknown date unit %q", name)
}

// seconds returns the nominal length of u. Months and years vary;
// this is only used to compare steps.
func (u DateUnit) seconds() float64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	case Month:
		return 30.4375 * 86400
	}
	return 365.25 * 86400
}

// layout returns the default label layout for ticks spaced in u.
func (u DateUnit) layout() string {
	switch u {
	case Second:
		return "15:04:05"
	case Minute:
		return "15:04"
	case Hour:
		return "Jan 2 15:04"
	case Day:
		return "Jan 2"
	case Month:
		return "Jan 2006"
	}
	return "2006"
}

type dateStep struct {
	unit DateUnit
	n    int
}

func (d dateStep) seconds() float64 {
	return float64(d.n) * d.unit.seconds()
}

// dateLadder lists the tick spacings below one year, smallest first.
// Each divides the next larger unit evenly.
var dateLadder = []dateStep{
	{Second, 1}, {Second, 2}, {Second, 5}, {Second, 10}, {Second, 15}, {Second, 30},
	{Minute, 1}, {Minute, 2}, {Minute, 5}, {Minute, 10}, {Minute, 15}, {Minute, 30},
	{Hour, 1}, {Hour, 2}, {Hour, 3}, {Hour, 6}, {Hour, 12},
	{Day, 1}, {Day, 2}, {Day, 5}, {Day, 10},
	{Month, 1}, {Month, 2}, {Month, 3}, {Month, 6},
}

// dateStepFor returns the smallest spacing that divides span seconds
// into no more than target intervals. Spacings of a year or more use
// the nice number sequence.
func dateStepFor(span, target float64) dateStep {
	if target < 1 {
		target = 1
	}
	for _, d := range dateLadder {
		if span/d.seconds() <= target {
			return d
		}
	}
	years := CalcBoundedStepSize(span/Year.seconds(), int(target))
	return dateStep{Year, int(math.Max(1, math.Ceil(years)))}
}

// Date is a scale over instants, stored as Unix seconds. MajorStep
// and MinorStep count MajorUnit and MinorUnit, and ticks are stepped
// with calendar arithmetic in Location. Format is a time layout.
type Date struct {
	State

	MajorUnit, MinorUnit DateUnit

	// Location is the time zone for calendar arithmetic and labels.
	// nil means UTC.
	Location *time.Location
}

// NewDate returns a new automatic date scale.
func NewDate() *Date {
	s := &Date{State: newState(), MajorUnit: Day, MinorUnit: Hour}
	s.Format = time.DateTime
	return s
}

// DateValue returns the scale value of t.
func DateValue(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Time returns the instant at scale value v.
func (s *Date) Time(v float64) time.Time {
	sec := math.Floor(v)
	return time.Unix(int64(sec), int64((v-sec)*1e9)).In(s.loc())
}

// SetTimeRange records the extent of the data.
func (s *Date) SetTimeRange(lo, hi time.Time) {
	s.SetRange(DateValue(lo), DateValue(hi))
}

func (s *Date) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *Date) Type() Type           { return TypeDate }
func (s *Date) Base() *State         { return &s.State }
func (s *Date) Transform() Transform { return Identity{} }

func (s *Date) SetupScaleData() error {
	s.ScaledMin, s.ScaledMax = s.Min, s.Max
	return nil
}

func (s *Date) PickScale(ctx *Context) error {
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

	// Widen a zero-width range by a day each way.
	if s.Max-s.Min < 1e-20 {
		if s.MaxAuto {
			s.Max += Day.seconds()
		}
		if s.MinAuto {
			s.Min -= Day.seconds()
		}
	}
	if !(s.Max > s.Min) {
		return rangeErr("min %v is not below max %v", s.Min, s.Max)
	}

	span := s.Max - s.Min
	if s.MajorStepAuto {
		step := dateStepFor(span, opts.majorTarget(horiz))
		if ctx.preventOverlap() {
			// The label layout depends on the unit, so
			// re-measure after each change of step.
			for i := 0; i < 4; i++ {
				layout := s.Format
				if s.FormatAuto {
					layout = step.unit.layout()
				}
				n := ctx.maxLabels(horiz, s.Time(s.Min).Format(layout), s.Time(s.Max).Format(layout))
				if span/step.seconds() <= float64(n) {
					break
				}
				step = dateStepFor(span, float64(n))
			}
		}
		s.MajorUnit, s.MajorStep = step.unit, float64(step.n)
	}
	if s.MajorStep < 1 || !finite(s.MajorStep) {
		return rangeErr("major step %v %ss", s.MajorStep, s.MajorUnit)
	}

	if s.MinorStepAuto {
		major := dateStep{s.MajorUnit, int(s.MajorStep)}
		minor := dateStepFor(major.seconds(), opts.minorTarget(horiz))
		s.MinorUnit, s.MinorStep = minor.unit, float64(minor.n)
	}
	if s.MinorStep < 1 || !finite(s.MinorStep) {
		return rangeErr("minor step %v %ss", s.MinorStep, s.MinorUnit)
	}

	if s.MinAuto {
		s.Min = DateValue(s.truncate(s.Time(s.Min)))
	}
	if s.MaxAuto {
		t := s.truncate(s.Time(s.Max))
		if DateValue(t) < s.Max {
			t = s.add(t, s.MajorUnit, int(s.MajorStep))
		}
		s.Max = DateValue(t)
	}

	if s.MagAuto {
		s.Mag = 0
	}
	if s.FormatAuto {
		s.Format = s.MajorUnit.layout()
	}
	return s.SetupScaleData()
}

// truncate rounds t down to a multiple of the major step within the
// next larger calendar unit.
func (s *Date) truncate(t time.Time) time.Time {
	n := int(s.MajorStep)
	if n < 1 {
		n = 1
	}
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	loc := s.loc()
	switch s.MajorUnit {
	case Year:
		return time.Date(floorMultiple(y, n), time.January, 1, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, time.Month(floorMultiple(int(mo)-1, n)+1), 1, 0, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, floorMultiple(d-1, n)+1, 0, 0, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, floorMultiple(h, n), 0, 0, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, floorMultiple(mi, n), 0, 0, loc)
	}
	return time.Date(y, mo, d, h, mi, floorMultiple(sec, n), 0, loc)
}

func floorMultiple(x, n int) int {
	q := x / n
	if x%n < 0 {
		q--
	}
	return q * n
}

func (s *Date) add(t time.Time, u DateUnit, k int) time.Time {
	switch u {
	case Year:
		return t.AddDate(k, 0, 0)
	case Month:
		return t.AddDate(0, k, 0)
	case Day:
		return t.AddDate(0, 0, k)
	case Hour:
		return t.Add(time.Duration(k) * time.Hour)
	case Minute:
		return t.Add(time.Duration(k) * time.Minute)
	}
	return t.Add(time.Duration(k) * time.Second)
}

// BaseTic returns the first major tick at or after Min.
func (s *Date) BaseTic() (float64, error) {
	t := s.truncate(s.Time(s.Min))
	if DateValue(t) < s.Min-1e-6 {
		t = s.add(t, s.MajorUnit, int(s.MajorStep))
	}
	return DateValue(t), nil
}

func (s *Date) MajorTicCount() int {
	base, _ := s.BaseTic()
	n := 0
	for ; n < 1000; n++ {
		v, _ := s.CalcMajorTicValue(base, float64(n))
		if v > s.Max+1e-6 {
			break
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (s *Date) CalcMajorTicValue(baseVal, tic float64) (float64, error) {
	return DateValue(s.add(s.Time(baseVal), s.MajorUnit, int(tic)*int(s.MajorStep))), nil
}

func (s *Date) CalcMinorTicValue(baseVal float64, iTic int) (float64, error) {
	return DateValue(s.add(s.Time(baseVal), s.MinorUnit, iTic*int(s.MinorStep))), nil
}

// CalcMinorStart returns minus the number of nominal minor steps from
// Min to baseVal, rounded up.
func (s *Date) CalcMinorStart(baseVal float64) (int, error) {
	minor := dateStep{s.MinorUnit, int(s.MinorStep)}
	return -int(math.Ceil((baseVal - s.Min) / minor.seconds())), nil
}

func (s *Date) MakeLabel(index int, dVal float64) (string, error) {
	return s.Time(dVal).Format(s.Format), nil
}

func (s *Date) Clone() Scale {
	c := *s
	return &c
}
