// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputScale(t *testing.T) {
	o := NewOutputScale(0, 100)
	x, ok := o.Of(0.5)
	assert.True(t, ok)
	assert.Equal(t, 50.0, x)

	_, ok = o.Of(1.1)
	assert.False(t, ok)
	_, ok = o.Of(1 + 1e-12)
	assert.True(t, ok)

	o.Clamp()
	x, ok = o.Of(1.1)
	assert.True(t, ok)
	assert.Equal(t, 100.0, x)

	o.Unclamp()
	x, ok = o.Of(-0.5)
	assert.True(t, ok)
	assert.Equal(t, -50.0, x)

	// Vertical axes map up the page.
	v := NewOutputScale(200, 0)
	x, _ = v.Of(0.25)
	assert.Equal(t, 150.0, x)
}

func TestOutputScaleMap(t *testing.T) {
	s := NewLinear()
	s.SetMin(0)
	s.SetMax(10)
	s.SetupScaleData()
	o := NewOutputScale(0, 100)
	x, ok := o.Map(s, 5)
	assert.True(t, ok)
	assert.Equal(t, 50.0, x)

	l := NewLog()
	l.SetMin(1)
	l.SetMax(1000)
	assert.NoError(t, l.SetupScaleData())
	x, ok = o.MapData(l, 10)
	assert.True(t, ok)
	assert.InDelta(t, 100.0/3, x, 1e-9)
	_, ok = o.MapData(l, -1)
	assert.False(t, ok)
}
