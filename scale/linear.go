// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Linear is a scale whose scaled coordinates are the data values
// themselves.
type Linear struct {
	State
}

// NewLinear returns a new linear scale with every field automatic.
func NewLinear() *Linear {
	return &Linear{newState()}
}

func (s *Linear) Type() Type           { return TypeLinear }
func (s *Linear) Base() *State         { return &s.State }
func (s *Linear) Transform() Transform { return Identity{} }

func (s *Linear) SetupScaleData() error {
	s.ScaledMin, s.ScaledMax = s.Min, s.Max
	return nil
}

func (s *Linear) PickScale(ctx *Context) error {
	if err := s.pick(ctx, false); err != nil {
		return err
	}
	return s.SetupScaleData()
}

func (s *Linear) BaseTic() (float64, error) {
	return s.linearBaseTic(), nil
}

func (s *Linear) MajorTicCount() int {
	return s.linearTicCount(s.linearBaseTic())
}

func (s *Linear) CalcMajorTicValue(baseVal, tic float64) (float64, error) {
	return baseVal + s.MajorStep*tic, nil
}

func (s *Linear) CalcMinorTicValue(baseVal float64, iTic int) (float64, error) {
	return baseVal + s.MinorStep*float64(iTic), nil
}

func (s *Linear) CalcMinorStart(baseVal float64) (int, error) {
	return int((s.Min - baseVal) / s.MinorStep), nil
}

func (s *Linear) MakeLabel(index int, dVal float64) (string, error) {
	return s.formatValue(dVal), nil
}

func (s *Linear) Clone() Scale {
	c := *s
	return &c
}
