// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale chooses axis bounds, tick spacing and label formats
// for a range of data under a linear, logarithmic, exponential,
// ordinal, text or date mapping.
//
// A renderer drives a Scale like this:
//
//	s.SetRange(lo, hi)
//	if err := s.PickScale(ctx); err != nil {
//		// skip the axis
//	}
//	base, _ := s.BaseTic()
//	for i := 0; i < s.MajorTicCount(); i++ {
//		v, _ := s.CalcMajorTicValue(base, float64(i))
//		label, _ := s.MakeLabel(i, v)
//		...
//	}
package scale

import (
	"fmt"
	"strings"
)

// A Scale maps data on one axis to scaled coordinates and chooses
// nice bounds and ticks for them.
//
// Tick values passed to and returned by the Calc methods and
// MakeLabel are scaled coordinates.
type Scale interface {
	Type() Type

	// Base returns the state shared by all families.
	Base() *State

	// Transform returns the mapping from data to scaled coordinates.
	Transform() Transform

	// SetupScaleData computes ScaledMin and ScaledMax from Min and
	// Max.
	SetupScaleData() error

	// PickScale chooses every automatic field from the data range
	// and ctx, then calls SetupScaleData.
	PickScale(ctx *Context) error

	// BaseTic returns the scaled value of the first major tick.
	BaseTic() (float64, error)

	// MajorTicCount returns the number of major ticks from BaseTic
	// to Max.
	MajorTicCount() int

	CalcMajorTicValue(baseVal, tic float64) (float64, error)
	CalcMinorTicValue(baseVal float64, iTic int) (float64, error)

	// CalcMinorStart returns the index, relative to the first major
	// tick, of the first minor tick to draw. It may be negative.
	CalcMinorStart(baseVal float64) (int, error)

	// MakeLabel returns the display text of the index'th major tick
	// at scaled value dVal.
	MakeLabel(index int, dVal float64) (string, error)

	// Clone returns a deep copy of the scale. The copy is still
	// bound to the original owner until rebound.
	Clone() Scale
}

// Type identifies a scale family.
type Type int

const (
	TypeLinear Type = iota
	TypeLog
	TypeExponent
	TypeOrdinal
	TypeText
	TypeDate
)

var typeNames = [...]string{
	TypeLinear:   "linear",
	TypeLog:      "log",
	TypeExponent: "exponent",
	TypeOrdinal:  "ordinal",
	TypeText:     "text",
	TypeDate:     "date",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType parses the name of a scale family.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(name)
	if name == "exp" {
		return TypeExponent, nil
	}
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, paramErr("unknown scale type %q", name)
}

// New returns an automatic scale of type t. Exponent scales start
// with an exponent of 1.
func New(t Type) (Scale, error) {
	switch t {
	case TypeLinear:
		return NewLinear(), nil
	case TypeLog:
		return NewLog(), nil
	case TypeExponent:
		return NewExponent(1)
	case TypeOrdinal:
		return NewOrdinal(), nil
	case TypeText:
		return NewText(nil), nil
	case TypeDate:
		return NewDate(), nil
	}
	return nil, paramErr("unknown scale type %v", t)
}
