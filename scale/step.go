// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// CalcStepSize returns a step from the 1, 2, 5 × 10^n sequence that
// divides span into roughly targetSteps intervals.
//
// span must be positive and finite. If span/targetSteps overflows,
// the result is +Inf.
func CalcStepSize(span, targetSteps float64) float64 {
	if targetSteps <= 0 {
		targetSteps = 1
	}
	temp := span / targetSteps
	if math.IsInf(temp, 1) {
		return temp
	}

	// Round the most significant digit of the step and promote it
	// to 1, 2, 5 or 10.
	magPow := math.Pow(10, math.Floor(math.Log10(temp)))
	msd := math.Floor(temp/magPow + 0.5)
	switch {
	case msd > 5:
		msd = 10
	case msd > 2:
		msd = 5
	case msd > 1:
		msd = 2
	}
	return msd * magPow
}

// CalcBoundedStepSize returns the smallest step from the 1, 2, 5 ×
// 10^n sequence that divides span into no more than maxLabels
// intervals.
func CalcBoundedStepSize(span float64, maxLabels int) float64 {
	if maxLabels < 1 {
		maxLabels = 1
	}
	ladder := stepLadder{span}
	o := mscale.TickOptions{Max: maxLabels}
	guess := 3 * int(math.Floor(math.Log10(span/float64(maxLabels))))
	level, ok := o.FindLevel(ladder, guess)
	if !ok {
		return CalcStepSize(span, float64(maxLabels))
	}
	return ladderStep(level)
}

// stepLadder is a go-moremath Ticker over the nice step sequence.
// Level 0 is a step of 1, level 1 is 2, level 2 is 5, level 3 is 10,
// and so on in both directions.
type stepLadder struct {
	span float64
}

func ladderStep(level int) float64 {
	// Round toward negative infinity; Go division truncates.
	d, r := level/3, level%3
	if r < 0 {
		d--
		r += 3
	}
	return [3]float64{1, 2, 5}[r] * math.Pow10(d)
}

func (l stepLadder) CountTicks(level int) int {
	const maxInt = int(^uint(0) >> 1)
	n := math.Ceil(l.span/ladderStep(level) - 1e-9)
	if !(n < float64(maxInt)) {
		return maxInt
	}
	return int(n)
}

// TicksAtLevel completes the Ticker interface. FindLevel without a
// label predicate only counts ticks, so it is not called.
func (l stepLadder) TicksAtLevel(level int) interface{} {
	n := l.CountTicks(level)
	return vec.Linspace(0, float64(n)*ladderStep(level), n+1)
}
