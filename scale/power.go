// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Exponent is a power scale: data value v is drawn at v^Exponent.
//
// Bounds and steps are chosen in data units. With a negative
// exponent the mapping is decreasing, so ScaledMin is Max^Exponent,
// and automatic bounds are kept away from 0, where v^Exponent is
// undefined.
type Exponent struct {
	State

	// Exponent must not be 0.
	Exponent float64
}

// NewExponent returns a new automatic power scale with the given
// exponent.
func NewExponent(exp float64) (*Exponent, error) {
	if exp == 0 {
		return nil, paramErr("exponent must not be 0")
	}
	return &Exponent{newState(), exp}, nil
}

// SetExponent changes the exponent of s.
func (s *Exponent) SetExponent(exp float64) error {
	if exp == 0 {
		return paramErr("exponent must not be 0")
	}
	s.Exponent = exp
	return nil
}

func (s *Exponent) Type() Type           { return TypeExponent }
func (s *Exponent) Base() *State         { return &s.State }
func (s *Exponent) Transform() Transform { return s.power() }

func (s *Exponent) power() Power {
	return Power{s.Exponent}
}

func (s *Exponent) SetupScaleData() error {
	lo, hi, err := ForwardRange(s.power(), s.Min, s.Max)
	if err != nil {
		return err
	}
	s.ScaledMin, s.ScaledMax = lo, hi
	return nil
}

func (s *Exponent) PickScale(ctx *Context) error {
	if s.Exponent == 0 {
		return paramErr("exponent must not be 0")
	}
	if err := s.pick(ctx, s.Exponent < 0); err != nil {
		return err
	}
	return s.SetupScaleData()
}

func (s *Exponent) BaseTic() (float64, error) {
	return s.power().Forward(s.linearBaseTic())
}

func (s *Exponent) MajorTicCount() int {
	return s.linearTicCount(s.linearBaseTic())
}

// CalcMajorTicValue returns (baseVal^(1/e) + MajorStep*tic)^e.
func (s *Exponent) CalcMajorTicValue(baseVal, tic float64) (float64, error) {
	return s.step(baseVal, s.MajorStep*tic)
}

// CalcMinorTicValue returns (baseVal^(1/e) + MinorStep*iTic)^e.
func (s *Exponent) CalcMinorTicValue(baseVal float64, iTic int) (float64, error) {
	return s.step(baseVal, s.MinorStep*float64(iTic))
}

func (s *Exponent) step(baseVal, delta float64) (float64, error) {
	p := s.power()
	v, err := p.Inverse(baseVal)
	if err != nil {
		return 0, err
	}
	return p.Forward(v + delta)
}

// CalcMinorStart returns the distance from Min to baseVal in scaled
// coordinates, measured in scaled minor steps.
func (s *Exponent) CalcMinorStart(baseVal float64) (int, error) {
	p := s.power()
	min, err := p.Forward(s.Min)
	if err != nil {
		return 0, err
	}
	step, err := p.Forward(s.MinorStep)
	if err != nil {
		return 0, err
	}
	return int((min - baseVal) / step), nil
}

// MakeLabel inverts the transform and formats the data value.
func (s *Exponent) MakeLabel(index int, dVal float64) (string, error) {
	v, err := s.power().Inverse(dVal)
	if err != nil {
		return "", err
	}
	return s.formatValue(v), nil
}

func (s *Exponent) Clone() Scale {
	c := *s
	return &c
}
