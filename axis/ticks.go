// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/aclements/go-plotscale/scale"
)

// A Tick is a tick mark on an axis.
type Tick struct {
	// Value is the tick's scaled coordinate.
	Value float64

	// Pos is the tick's pixel offset along the axis.
	Pos float64

	// Label is the tick's label. Minor ticks have none.
	Label string

	Major bool
}

// maxMinorTicks bounds the minor tick walk.
const maxMinorTicks = 10000

// Ticks returns the major ticks of the picked scale, then the minor
// ticks that fall within the scaled range and not on a major tick.
func (a *Axis) Ticks() ([]Tick, error) {
	s := a.scale
	if s == nil {
		return nil, fmt.Errorf("%w: axis has no scale", scale.ErrInvalidParameter)
	}
	b := s.Base()
	lo, hi := b.ScaledMin, b.ScaledMax
	eps := 1e-9 * math.Max(math.Abs(hi-lo), 1e-300)
	out := a.Output()

	base, err := s.BaseTic()
	if err != nil {
		return nil, err
	}
	var ticks []Tick
	n := s.MajorTicCount()
	for i := 0; i < n; i++ {
		v, err := s.CalcMajorTicValue(base, float64(i))
		if err != nil {
			return nil, err
		}
		pos, ok := out.Map(s, v)
		if !ok {
			continue
		}
		label, err := s.MakeLabel(i, v)
		if err != nil {
			return nil, err
		}
		ticks = append(ticks, Tick{Value: v, Pos: pos, Label: label, Major: true})
	}
	nMajor := len(ticks)

	start, err := s.CalcMinorStart(base)
	if err != nil {
		return nil, err
	}
	inRange := false
	for i := start; i < start+maxMinorTicks; i++ {
		v, err := s.CalcMinorTicValue(base, i)
		if err != nil || v < lo-eps || v > hi+eps {
			// Minor ticks run monotonically, so once they
			// leave the range they are done.
			if inRange {
				break
			}
			continue
		}
		inRange = true
		if onMajor(ticks[:nMajor], v, eps) {
			continue
		}
		pos, ok := out.Map(s, v)
		if !ok {
			continue
		}
		ticks = append(ticks, Tick{Value: v, Pos: pos})
	}
	return ticks, nil
}

func onMajor(major []Tick, v, eps float64) bool {
	for _, t := range major {
		if math.Abs(t.Value-v) <= eps {
			return true
		}
	}
	return false
}

// Overlaps reports whether any two labels of ticks would collide
// when centered on their ticks. It marks the pixels each label
// occupies along the axis.
func (a *Axis) Overlaps(ticks []Tick) bool {
	if a.Metrics == nil || a.Length <= 0 {
		return false
	}
	sf := a.ScaleFactor
	if sf <= 0 {
		sf = 1
	}
	size := uint(math.Ceil(a.Length)) + 1
	occupied := bitset.New(size)
	for _, t := range ticks {
		if t.Label == "" {
			continue
		}
		w, h := a.Metrics.MeasureLabel(t.Label)
		if !a.Horizontal() {
			w = h
		}
		w *= sf
		from := clampPixel(t.Pos-w/2, size)
		to := clampPixel(t.Pos+w/2, size)
		if to <= from {
			continue
		}
		label := bitset.New(size).FlipRange(from, to)
		if occupied.IntersectionCardinality(label) > 0 {
			return true
		}
		occupied.InPlaceUnion(label)
	}
	return false
}

func clampPixel(x float64, size uint) uint {
	if x <= 0 {
		return 0
	}
	if p := uint(math.Round(x)); p < size {
		return p
	}
	return size
}
