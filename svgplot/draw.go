// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"image/color"

	"github.com/aclements/go-plotscale/axis"
)

// TicksFormat controls how DrawAxis draws ticks and labels.
type TicksFormat struct {
	TickLen, MinorTickLen, TextSep float64
	TickColor, LabelColor          color.Color
	FontSize                       float64

	// NoLabels suppresses tick labels.
	NoLabels bool
}

// DefaultTicksFormat is used by charts without their own format.
var DefaultTicksFormat = TicksFormat{
	TickLen:      6,
	MinorTickLen: 3,
	TextSep:      3,
	FontSize:     12,
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

// DrawAxis draws a's line, ticks and labels with its origin at
// (x, y). A horizontal axis runs right from the origin with ticks
// and labels below it; a vertical axis runs up from (x, y+a.Length)
// with ticks and labels to its left. a's scale must be picked.
func (f *TicksFormat) DrawAxis(svg *SVG, a *axis.Axis, x, y float64) error {
	ticks, err := a.Ticks()
	if err != nil {
		return err
	}
	horiz := a.Horizontal()

	// Locate a tick at pixel offset pos and direction out, away
	// from the plot.
	at := func(pos float64) (float64, float64) {
		if horiz {
			return x + pos, y
		}
		return x, y + pos
	}
	out := func(px, py, d float64) (float64, float64) {
		if horiz {
			return px, py + d
		}
		return px - d, py
	}

	svg.SetStroke(orBlack(f.TickColor))
	svg.SetLineWidth(1)
	svg.NewPath()
	svg.MoveTo(at(0))
	svg.LineTo(at(a.Length))
	for _, t := range ticks {
		l := f.MinorTickLen
		if t.Major {
			l = f.TickLen
		}
		px, py := at(t.Pos)
		svg.MoveTo(px, py)
		svg.LineTo(out(px, py, l))
	}
	svg.Stroke()
	svg.SetStroke(nil)

	if f.NoLabels {
		return nil
	}
	opts := TextOpts{Anchor: AnchorMiddle, Baseline: BaselineHanging, FontSize: f.FontSize}
	if !horiz {
		opts = TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle, FontSize: f.FontSize}
	}
	svg.SetFill(orBlack(f.LabelColor))
	for _, t := range ticks {
		if !t.Major || t.Label == "" {
			continue
		}
		px, py := at(t.Pos)
		lx, ly := out(px, py, f.TickLen+f.TextSep)
		svg.Text(lx, ly, opts, t.Label)
	}
	svg.SetFill(nil)
	return nil
}
