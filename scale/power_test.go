// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardRange(t *testing.T) {
	lo, hi, err := ForwardRange(Power{2}, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 64.0, hi)

	// A negative exponent reverses the mapping, so the operands are
	// swapped.
	lo, hi, err = ForwardRange(Power{-2}, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, 1.0/64, lo)
	assert.Equal(t, 1.0/4, hi)

	// Even powers fold negative data.
	lo, hi, err = ForwardRange(Power{2}, -8, -2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 64.0, hi)

	lo, hi, err = ForwardRange(Identity{}, -3, 5)
	require.NoError(t, err)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 5.0, hi)

	_, _, err = ForwardRange(Log10{}, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPowerTransform(t *testing.T) {
	for _, test := range []struct {
		exp, v, s float64
	}{
		{2, 4, 16},
		{2, 0, 0},
		{-2, 2, 0.25},
		{0.5, 9, 3},
		{3, -2, -8},
		{-1, 4, 0.25},
	} {
		p := Power{test.exp}
		s, err := p.Forward(test.v)
		require.NoError(t, err)
		assert.InDelta(t, test.s, s, 1e-12, "Power{%v}.Forward(%v)", test.exp, test.v)
		v, err := p.Inverse(test.s)
		require.NoError(t, err)
		assert.InDelta(t, test.v, v, 1e-12, "Power{%v}.Inverse(%v)", test.exp, test.s)
	}

	for _, test := range []struct {
		exp, v float64
	}{
		{0, 3},
		{-2, 0},
		{0.5, -4},
		{-0.5, 0},
	} {
		_, err := Power{test.exp}.Forward(test.v)
		assert.ErrorIs(t, err, ErrInvalidParameter, "Power{%v}.Forward(%v)", test.exp, test.v)
	}
	_, err := Power{2}.Inverse(-4)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Power{0}.Inverse(1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func pickExponent(t *testing.T, exp, lo, hi float64) *Exponent {
	t.Helper()
	s, err := NewExponent(exp)
	require.NoError(t, err)
	s.SetRange(lo, hi)
	require.NoError(t, s.PickScale(nil))
	return s
}

func TestExponentSignSymmetry(t *testing.T) {
	s := pickExponent(t, 2, 2, 8)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 8.0, s.Max)
	assert.Equal(t, 4.0, s.ScaledMin)
	assert.Equal(t, 64.0, s.ScaledMax)

	n := pickExponent(t, -2, 2, 8)
	assert.Equal(t, 1.0/64, n.ScaledMin)
	assert.Equal(t, 1.0/4, n.ScaledMax)
	assert.LessOrEqual(t, n.ScaledMin, n.ScaledMax)

	// Fixed bounds give the same result.
	f, err := NewExponent(-2)
	require.NoError(t, err)
	f.SetMin(2)
	f.SetMax(8)
	require.NoError(t, f.PickScale(nil))
	assert.Equal(t, 1.0/64, f.ScaledMin)
	assert.Equal(t, 1.0/4, f.ScaledMax)
}

func TestExponentLabel(t *testing.T) {
	s := pickExponent(t, 2, 2, 8)
	assert.Equal(t, 0, s.Mag)
	assert.Equal(t, "%.0f", s.Format)
	l, err := s.MakeLabel(0, 16)
	require.NoError(t, err)
	assert.Equal(t, "4", l)

	_, err = s.MakeLabel(0, -16)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestExponentTicks(t *testing.T) {
	s := pickExponent(t, 2, 2, 8)
	base, err := s.BaseTic()
	require.NoError(t, err)
	assert.Equal(t, 4.0, base)
	require.Equal(t, 7, s.MajorTicCount())

	want := []string{"2", "3", "4", "5", "6", "7", "8"}
	for i, w := range want {
		v, err := s.CalcMajorTicValue(base, float64(i))
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(float64(i+2), 2), v, 1e-9)
		l, err := s.MakeLabel(i, v)
		require.NoError(t, err)
		assert.Equal(t, w, l)
	}

	v, err := s.CalcMinorTicValue(base, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.2*2.2, v, 1e-9)

	start, err := s.CalcMinorStart(base)
	require.NoError(t, err)
	assert.Equal(t, 0, start)

	// Minor ticks start before the first major tick when Min is
	// below it.
	s.SetMin(1)
	start, err = s.CalcMinorStart(base)
	require.NoError(t, err)
	assert.Less(t, start, 0)

	n := pickExponent(t, -2, 2, 8)
	base, err = n.BaseTic()
	require.NoError(t, err)
	assert.Equal(t, 0.25, base)
	v, err = n.CalcMajorTicValue(base, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/9, v, 1e-12)
}

func TestExponentZero(t *testing.T) {
	_, err := NewExponent(0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	s := &Exponent{State: newState()}
	s.SetRange(1, 2)
	assert.ErrorIs(t, s.PickScale(nil), ErrInvalidParameter)

	s, err = NewExponent(2)
	require.NoError(t, err)
	assert.ErrorIs(t, s.SetExponent(0), ErrInvalidParameter)
	assert.Equal(t, 2.0, s.Exponent)
}

func TestExponentNegativeKeepsPositive(t *testing.T) {
	// A positive exponent snaps to zero.
	p := pickExponent(t, 1, 0.3, 8)
	assert.Equal(t, 0.0, p.Min)

	// A negative exponent cannot, since 0^-1 is undefined.
	n := pickExponent(t, -1, 0.3, 8)
	assert.Equal(t, 0.3, n.Min)
	assert.Equal(t, 8.0, n.Max)
	assert.Equal(t, 0.125, n.ScaledMin)
	assert.InDelta(t, 1/0.3, n.ScaledMax, 1e-12)

	// All-negative data keeps Max below zero.
	neg := pickExponent(t, -1, -100, -2)
	assert.Equal(t, -100.0, neg.Min)
	assert.Equal(t, -2.0, neg.Max)
	assert.InDelta(t, -0.5, neg.ScaledMin, 1e-15)
	assert.InDelta(t, -0.01, neg.ScaledMax, 1e-15)
	for _, r := range [][2]float64{{-9, -2}, {-8, -2}, {-1000, -0.3}, {-5, -5}} {
		s := pickExponent(t, -1, r[0], r[1])
		assert.Less(t, s.Max, 0.0, "range %v", r)
	}

	// Zero with a negative exponent fails rather than returning 0.
	z, err := NewExponent(-2)
	require.NoError(t, err)
	z.SetMin(0)
	z.SetMax(4)
	assert.ErrorIs(t, z.PickScale(nil), ErrInvalidParameter)
}

func TestExponentMonotonicBounds(t *testing.T) {
	for _, exp := range []float64{-3, -2, -1} {
		for _, r := range [][2]float64{{-8, -2}, {-100, -2}, {-0.02, -0.01}} {
			s := pickExponent(t, exp, r[0], r[1])
			assert.LessOrEqual(t, s.ScaledMin, s.ScaledMax, "exp %v range %v", exp, r)
			assert.Less(t, s.Max, 0.0, "exp %v range %v", exp, r)
		}
	}
	for _, exp := range []float64{-3, -2, -0.5, 0.5, 1, 2, 3} {
		for _, r := range [][2]float64{{2, 8}, {0.01, 0.02}, {1, 1}, {5, 500}, {1e3, 1e6}} {
			s := pickExponent(t, exp, r[0], r[1])
			assert.LessOrEqual(t, s.ScaledMin, s.ScaledMax, "exp %v range %v", exp, r)
			assert.LessOrEqual(t, s.Min, s.Max, "exp %v range %v", exp, r)
			assert.False(t, math.IsInf(s.ScaledMax, 0), "exp %v range %v", exp, r)
		}
	}
}
