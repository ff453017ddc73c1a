// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Ordinal is a scale over point indexes 1, 2, ... n. Each point gets
// a slot of width 1 centered on its index, and ticks fall on whole
// indexes.
type Ordinal struct {
	State
}

// NewOrdinal returns a new automatic ordinal scale.
func NewOrdinal() *Ordinal {
	return &Ordinal{newState()}
}

func (s *Ordinal) Type() Type           { return TypeOrdinal }
func (s *Ordinal) Base() *State         { return &s.State }
func (s *Ordinal) Transform() Transform { return Identity{} }

func (s *Ordinal) SetupScaleData() error {
	s.ScaledMin, s.ScaledMax = s.Min, s.Max
	return nil
}

func (s *Ordinal) PickScale(ctx *Context) error {
	return s.pickOrdinal(ctx, func(v float64) string {
		return s.formatValue(math.Round(v))
	}, nil)
}

// pickOrdinal chooses slot bounds and whole-number steps. label
// renders a tick for overlap estimates; widest, if set, lists every
// label the axis could show.
func (s *Ordinal) pickOrdinal(ctx *Context, label func(float64) string, widest []string) error {
	horiz := s.horizontal()

	if s.MinAuto {
		s.Min = s.RangeMin - 0.5
	}
	if s.MaxAuto {
		s.Max = s.RangeMax + 0.5
	}
	if !finite(s.Min) || !finite(s.Max) {
		return rangeErr("bounds [%v, %v] are not finite", s.Min, s.Max)
	}
	if s.Max-s.Min < 0.1 && s.MaxAuto {
		s.Max = s.Min + 1
	}
	if !(s.Max > s.Min) {
		return rangeErr("min %v is not below max %v", s.Min, s.Max)
	}

	span := s.Max - s.Min
	if s.MajorStepAuto {
		s.MajorStep = math.Max(1, math.Ceil(CalcStepSize(span, ctx.options().majorTarget(horiz))))
		if ctx.preventOverlap() {
			if widest == nil {
				widest = []string{label(s.Min), label(s.Max)}
			}
			n := ctx.maxLabels(horiz, widest...)
			if bounded := math.Ceil(span / float64(n)); bounded > s.MajorStep {
				s.MajorStep = bounded
			}
		}
	}
	if !(s.MajorStep > 0) || !finite(s.MajorStep) {
		return rangeErr("major step %v", s.MajorStep)
	}
	if s.MinorStepAuto {
		s.MinorStep = math.Max(1, math.Floor(s.MajorStep/10))
	}
	if !(s.MinorStep > 0) || !finite(s.MinorStep) {
		return rangeErr("minor step %v", s.MinorStep)
	}
	if s.MagAuto {
		s.Mag = 0
	}
	if s.FormatAuto {
		s.Format = "%.0f"
	}
	return s.SetupScaleData()
}

// BaseTic returns the first whole index at or above Min.
func (s *Ordinal) BaseTic() (float64, error) {
	return math.Ceil(s.Min - 1e-8), nil
}

func (s *Ordinal) MajorTicCount() int {
	base, _ := s.BaseTic()
	return s.linearTicCount(base)
}

func (s *Ordinal) CalcMajorTicValue(baseVal, tic float64) (float64, error) {
	return baseVal + s.MajorStep*tic, nil
}

func (s *Ordinal) CalcMinorTicValue(baseVal float64, iTic int) (float64, error) {
	return baseVal + s.MinorStep*float64(iTic), nil
}

func (s *Ordinal) CalcMinorStart(baseVal float64) (int, error) {
	return int((s.Min - baseVal) / s.MinorStep), nil
}

func (s *Ordinal) MakeLabel(index int, dVal float64) (string, error) {
	return s.formatValue(math.Round(dVal)), nil
}

func (s *Ordinal) Clone() Scale {
	c := *s
	return &c
}

// Text is an ordinal scale whose points are named. Point i (1-based)
// is labeled Labels[i-1].
type Text struct {
	Ordinal
	Labels []string
}

// NewText returns a new automatic text scale over labels.
func NewText(labels []string) *Text {
	s := &Text{Ordinal: Ordinal{newState()}}
	s.SetLabels(labels)
	return s
}

// SetLabels replaces the labels of s and sets the range to cover
// them.
func (s *Text) SetLabels(labels []string) {
	s.Labels = append([]string(nil), labels...)
	if len(labels) > 0 {
		s.SetRange(1, float64(len(labels)))
	}
}

func (s *Text) Type() Type { return TypeText }

func (s *Text) PickScale(ctx *Context) error {
	if len(s.Labels) > 0 {
		s.SetRange(1, float64(len(s.Labels)))
	}
	return s.pickOrdinal(ctx, s.label, s.Labels)
}

func (s *Text) label(dVal float64) string {
	i := int(math.Round(dVal)) - 1
	if i < 0 || i >= len(s.Labels) {
		return ""
	}
	return s.Labels[i]
}

// MakeLabel returns the label of the point at dVal, or "" if there is
// none.
func (s *Text) MakeLabel(index int, dVal float64) (string, error) {
	return s.label(dVal), nil
}

func (s *Text) Clone() Scale {
	c := *s
	c.Labels = append([]string(nil), s.Labels...)
	return &c
}
