// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func majorLabels(t *testing.T, s Scale) []string {
	t.Helper()
	base, err := s.BaseTic()
	require.NoError(t, err)
	var labels []string
	for i := 0; i < s.MajorTicCount(); i++ {
		v, err := s.CalcMajorTicValue(base, float64(i))
		require.NoError(t, err)
		l, err := s.MakeLabel(i, v)
		require.NoError(t, err)
		labels = append(labels, l)
	}
	return labels
}

func TestTextScale(t *testing.T) {
	s := NewText([]string{"apple", "banana", "cherry"})
	require.NoError(t, s.PickScale(nil))
	assert.Equal(t, TypeText, s.Type())
	assert.Equal(t, 0.5, s.Min)
	assert.Equal(t, 3.5, s.Max)
	assert.Equal(t, 1.0, s.MajorStep)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, majorLabels(t, s))

	l, err := s.MakeLabel(0, 4)
	require.NoError(t, err)
	assert.Equal(t, "", l)
}

func TestTextPreventOverlap(t *testing.T) {
	s := NewText([]string{"apple", "banana", "cherry"})
	ctx := &Context{Length: 100, PreventOverlap: true, Measure: runeMetrics{10, 12}}
	require.NoError(t, s.PickScale(ctx))
	assert.Equal(t, 3.0, s.MajorStep)
	assert.Equal(t, []string{"apple"}, majorLabels(t, s))
}

func TestTextClone(t *testing.T) {
	s := NewText([]string{"a", "b"})
	c := s.Clone().(*Text)
	c.Labels[0] = "z"
	assert.Equal(t, "a", s.Labels[0])
}

func TestOrdinalScale(t *testing.T) {
	s := NewOrdinal()
	s.SetRange(1, 20)
	require.NoError(t, s.PickScale(nil))
	assert.Equal(t, 0.5, s.Min)
	assert.Equal(t, 20.5, s.Max)
	assert.Equal(t, 5.0, s.MajorStep)
	assert.Equal(t, 1.0, s.MinorStep)
	assert.Equal(t, []string{"1", "6", "11", "16"}, majorLabels(t, s))
}

func TestOrdinalSinglePoint(t *testing.T) {
	s := NewOrdinal()
	s.SetRange(1, 1)
	require.NoError(t, s.PickScale(nil))
	assert.Equal(t, []string{"1"}, majorLabels(t, s))
}
