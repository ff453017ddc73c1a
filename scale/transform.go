// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// A Transform maps a data value to the scaled coordinate an axis is
// drawn in, and back.
type Transform interface {
	Forward(v float64) (float64, error)
	Inverse(s float64) (float64, error)
}

// Identity is the transform of the linear, ordinal, text and date
// families.
type Identity struct{}

func (Identity) Forward(v float64) (float64, error) { return v, nil }
func (Identity) Inverse(s float64) (float64, error) { return s, nil }

// Log10 maps v to log10(v). v must be positive.
type Log10 struct{}

func (Log10) Forward(v float64) (float64, error) {
	if v <= 0 || !finite(v) {
		return 0, paramErr("logarithm of %v", v)
	}
	return math.Log10(v), nil
}

func (Log10) Inverse(s float64) (float64, error) {
	v := math.Pow(10, s)
	if !finite(v) {
		return 0, paramErr("10^%v overflows", s)
	}
	return v, nil
}

// Power maps v to v^Exp. Exp must not be 0.
type Power struct {
	Exp float64
}

func (p Power) Forward(v float64) (float64, error) {
	if p.Exp == 0 {
		return 0, paramErr("exponent must not be 0")
	}
	s := math.Pow(v, p.Exp)
	if !finite(s) {
		return 0, paramErr("%v^%v is not representable", v, p.Exp)
	}
	return s, nil
}

func (p Power) Inverse(s float64) (float64, error) {
	if p.Exp == 0 {
		return 0, paramErr("exponent must not be 0")
	}
	var v float64
	if s < 0 && isOddInt(p.Exp) {
		// math.Pow returns NaN for a negative base and a
		// fractional power, but odd powers have a real root.
		v = -math.Pow(-s, 1/p.Exp)
	} else {
		v = math.Pow(s, 1/p.Exp)
	}
	if !finite(v) {
		return 0, paramErr("%v^(1/%v) is not representable", s, p.Exp)
	}
	return v, nil
}

func isOddInt(x float64) bool {
	if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
		return false
	}
	return math.Mod(math.Abs(x), 2) == 1
}

// ForwardRange maps the data range [lo, hi] through t and returns the
// scaled range in increasing order. For a decreasing transform, such
// as a negative power of positive data, the scaled minimum comes from
// hi and the scaled maximum from lo.
func ForwardRange(t Transform, lo, hi float64) (slo, shi float64, err error) {
	if slo, err = t.Forward(lo); err != nil {
		return 0, 0, err
	}
	if shi, err = t.Forward(hi); err != nil {
		return 0, 0, err
	}
	if slo > shi {
		slo, shi = shi, slo
	}
	return slo, shi, nil
}
