// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// Log is a base 10 logarithmic scale. Min and Max are data values
// and must be positive; MajorStep and MinorStep count decades.
//
// Major ticks fall on powers of 10 (or of 100, 10000, ... when there
// are too many decades) and minor ticks on 2..9 times each power.
type Log struct {
	State
}

// NewLog returns a new automatic logarithmic scale.
func NewLog() *Log {
	return &Log{newState()}
}

func (s *Log) Type() Type           { return TypeLog }
func (s *Log) Base() *State         { return &s.State }
func (s *Log) Transform() Transform { return Log10{} }

func (s *Log) SetupScaleData() error {
	lo, hi, err := ForwardRange(Log10{}, s.Min, s.Max)
	if err != nil {
		return err
	}
	s.ScaledMin, s.ScaledMax = lo, hi
	return nil
}

func (s *Log) PickScale(ctx *Context) error {
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
	if s.Min <= 0 || s.Max <= 0 {
		return paramErr("log scale bounds [%v, %v] must be positive", s.Min, s.Max)
	}

	// Widen a zero-width range by a factor of 2 each way.
	if s.Max-s.Min < 1e-20 {
		if s.MaxAuto {
			s.Max *= 2
		}
		if s.MinAuto {
			s.Min /= 2
		}
	}
	if !(s.Max > s.Min) {
		return rangeErr("min %v is not below max %v", s.Min, s.Max)
	}

	maxTicks := int(ctx.options().majorTarget(horiz)) + 1
	if ctx.preventOverlap() {
		n := ctx.maxLabels(horiz, s.decadeLabel(s.Min), s.decadeLabel(s.Max)) + 1
		maxTicks = min(maxTicks, n)
	}
	if maxTicks < 2 {
		maxTicks = 2
	}

	if s.MinAuto || s.MaxAuto {
		nice, err := mscale.NewLog(s.Min, s.Max, 10)
		if err != nil {
			return rangeErr("%v", err)
		}
		nice.Nice(mscale.TickOptions{Max: maxTicks})
		if s.MinAuto {
			s.Min = nice.Min
		}
		if s.MaxAuto {
			s.Max = nice.Max
		}
	}

	if s.MajorStepAuto {
		// Double the decades per tick until the ticks fit, the
		// way go-moremath levels a log scale.
		decades := math.Log10(s.Max) - math.Log10(s.Min)
		step := 1.0
		for math.Ceil(decades/step-1e-9)+1 > float64(maxTicks) {
			step *= 2
		}
		s.MajorStep = step
	}
	if !(s.MajorStep > 0) || !finite(s.MajorStep) {
		return rangeErr("major step %v", s.MajorStep)
	}
	if s.MinorStepAuto {
		s.MinorStep = 1
	}
	if s.MagAuto {
		s.Mag = 0
	}
	if s.FormatAuto {
		s.Format = "%g"
	}
	return s.SetupScaleData()
}

// decadeLabel formats the power of 10 at or below v.
func (s *Log) decadeLabel(v float64) string {
	return s.formatValue(math.Pow(10, math.Floor(math.Log10(v))))
}

// BaseTic returns the first whole decade at or above Min.
func (s *Log) BaseTic() (float64, error) {
	lmin, err := Log10{}.Forward(s.Min)
	if err != nil {
		return 0, err
	}
	return math.Ceil(lmin - 1e-8), nil
}

func (s *Log) MajorTicCount() int {
	base, err := s.BaseTic()
	if err != nil {
		return 0
	}
	lmax, err := Log10{}.Forward(s.Max)
	if err != nil {
		return 0
	}
	n := int((lmax-base)/s.MajorStep+0.01) + 1
	if n < 1 {
		n = 1
	} else if n > 1000 {
		n = 1000
	}
	return n
}

func (s *Log) CalcMajorTicValue(baseVal, tic float64) (float64, error) {
	return baseVal + s.MajorStep*tic, nil
}

// CalcMinorTicValue returns the iTic'th minor tick from baseVal. Each
// decade has nine: 1, 2, ... 9 times its power of 10.
func (s *Log) CalcMinorTicValue(baseVal float64, iTic int) (float64, error) {
	m := (iTic%9 + 9) % 9
	return baseVal + math.Floor(float64(iTic)/9) + math.Log10(float64(m+1)), nil
}

// CalcMinorStart starts one decade below the first major tick.
func (s *Log) CalcMinorStart(baseVal float64) (int, error) {
	return -9, nil
}

func (s *Log) MakeLabel(index int, dVal float64) (string, error) {
	v, err := Log10{}.Inverse(dVal)
	if err != nil {
		return "", err
	}
	return s.formatValue(v), nil
}

func (s *Log) Clone() Scale {
	c := *s
	return &c
}
