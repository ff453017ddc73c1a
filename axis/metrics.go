// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// FontMetrics measures labels in the Go Regular font.
type FontMetrics struct {
	face   font.Face
	height float64
}

// NewFontMetrics returns metrics for Go Regular at size points and 72
// DPI, so one point is one pixel.
func NewFontMetrics(size float64) (*FontMetrics, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	return &FontMetrics{face, fixedToFloat(face.Metrics().Height)}, nil
}

// MeasureLabel returns the advance width and line height of text.
func (m *FontMetrics) MeasureLabel(text string) (width, height float64) {
	return fixedToFloat(font.MeasureString(m.face, text)), m.height
}

// Close releases the font face.
func (m *FontMetrics) Close() error {
	return m.face.Close()
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// FixedMetrics measures every rune as W pixels wide and every label as
// H pixels high.
type FixedMetrics struct {
	W, H float64
}

func (m FixedMetrics) MeasureLabel(text string) (width, height float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n) * m.W, m.H
}
