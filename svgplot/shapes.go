// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"image/color"
	"math"

	"github.com/aclements/go-plotscale/axis"
)

// A Rect is an axis-aligned rectangle. Its corners may be given in
// any order.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Canon returns r with X0 <= X1 and Y0 <= Y1.
func (r Rect) Canon() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

func (r Rect) Contains(x, y float64) bool {
	r = r.Canon()
	return r.X0 <= x && x <= r.X1 && r.Y0 <= y && y <= r.Y1
}

// A Projection maps data coordinates to pixels through a pair of
// picked axes. The plot area's top left corner is at (Left, Top).
type Projection struct {
	X, Y      *axis.Axis
	Left, Top float64
}

// Point returns the pixel location of the data point (x, y). It
// returns false if either coordinate is NaN or cannot be transformed.
// Points outside the axes are extrapolated.
func (p Projection) Point(x, y float64) (px, py float64, ok bool) {
	xo, yo := p.X.Output(), p.Y.Output()
	xo.Unclamp()
	yo.Unclamp()
	px, okx := xo.MapData(p.X.Scale(), x)
	py, oky := yo.MapData(p.Y.Scale(), y)
	ok = okx && oky && !math.IsNaN(px) && !math.IsNaN(py)
	return p.Left + px, p.Top + py, ok
}

// Rect returns the pixel rectangle of the data rectangle r.
func (p Projection) Rect(r Rect) (Rect, bool) {
	x0, y0, ok0 := p.Point(r.X0, r.Y0)
	x1, y1, ok1 := p.Point(r.X1, r.Y1)
	return Rect{x0, y0, x1, y1}.Canon(), ok0 && ok1
}

// Style is the paint of a shape. A nil Fill leaves the shape hollow.
type Style struct {
	Fill, Stroke color.Color
	LineWidth    float64

	// Dash is the outline's dash pattern in pixels. Empty means
	// solid.
	Dash []float64
}

func (st Style) paint(svg *SVG) {
	svg.SetFill(st.Fill)
	svg.SetStroke(orBlack(st.Stroke))
	svg.SetLineWidth(st.LineWidth)
	svg.SetDash(st.Dash...)
	if st.Fill == nil {
		svg.Stroke()
	} else {
		svg.FillStroke()
	}
	svg.SetFill(nil)
	svg.SetStroke(nil)
	svg.SetLineWidth(0)
	svg.SetDash()
}

// hitSlop is how far, in pixels, a point may be from a stroke and
// still hit it.
func (st Style) hitSlop() float64 {
	return math.Max(3, st.LineWidth/2)
}

// A Shape is an annotation positioned in data coordinates.
type Shape interface {
	// Bounds returns the shape's bounding box in data coordinates.
	Bounds() Rect

	// Draw draws the shape.
	Draw(svg *SVG, p Projection)

	// HitTest reports whether the pixel (px, py) touches the
	// shape: anywhere inside it if it is filled, or near its
	// outline if not.
	HitTest(p Projection, px, py float64) bool
}

// Box is a rectangle.
type Box struct {
	Rect
	Style
}

func (b *Box) Bounds() Rect { return b.Rect.Canon() }

func (b *Box) Draw(svg *SVG, p Projection) {
	r, ok := p.Rect(b.Rect)
	if !ok {
		return
	}
	svg.Rect(r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0)
	b.paint(svg)
}

func (b *Box) HitTest(p Projection, px, py float64) bool {
	r, ok := p.Rect(b.Rect)
	if !ok {
		return false
	}
	d := b.hitSlop()
	outer := Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
	if !outer.Contains(px, py) {
		return false
	}
	if b.Fill != nil {
		return true
	}
	inner := Rect{r.X0 + d, r.Y0 + d, r.X1 - d, r.Y1 - d}
	return inner.X0 > inner.X1 || inner.Y0 > inner.Y1 || !inner.Contains(px, py)
}

// Ellipse is the ellipse inscribed in a rectangle.
type Ellipse struct {
	Rect
	Style
}

func (e *Ellipse) Bounds() Rect { return e.Rect.Canon() }

func (e *Ellipse) Draw(svg *SVG, p Projection) {
	r, ok := p.Rect(e.Rect)
	if !ok {
		return
	}
	svg.Ellipse((r.X0+r.X1)/2, (r.Y0+r.Y1)/2, (r.X1-r.X0)/2, (r.Y1-r.Y0)/2)
	e.paint(svg)
}

func (e *Ellipse) HitTest(p Projection, px, py float64) bool {
	r, ok := p.Rect(e.Rect)
	if !ok {
		return false
	}
	cx, cy := (r.X0+r.X1)/2, (r.Y0+r.Y1)/2
	rx, ry := (r.X1-r.X0)/2, (r.Y1-r.Y0)/2
	d := e.hitSlop()
	// norm is 1 on the outline and scales with distance from the
	// center.
	norm := func(rx, ry float64) float64 {
		if rx <= 0 || ry <= 0 {
			return math.Inf(1)
		}
		return math.Hypot((px-cx)/rx, (py-cy)/ry)
	}
	if norm(rx+d, ry+d) > 1 {
		return false
	}
	return e.Fill != nil || norm(rx-d, ry-d) >= 1
}

// Line is a line segment from (X0, Y0) to (X1, Y1).
type Line struct {
	X0, Y0, X1, Y1 float64
	Style
}

func (l *Line) Bounds() Rect { return Rect{l.X0, l.Y0, l.X1, l.Y1}.Canon() }

func (l *Line) Draw(svg *SVG, p Projection) {
	x0, y0, ok0 := p.Point(l.X0, l.Y0)
	x1, y1, ok1 := p.Point(l.X1, l.Y1)
	if !ok0 || !ok1 {
		return
	}
	svg.MoveTo(x0, y0).LineTo(x1, y1)
	st := l.Style
	st.Fill = nil
	st.paint(svg)
}

func (l *Line) HitTest(p Projection, px, py float64) bool {
	x0, y0, ok0 := p.Point(l.X0, l.Y0)
	x1, y1, ok1 := p.Point(l.X1, l.Y1)
	if !ok0 || !ok1 {
		return false
	}
	return segmentDist(px, py, x0, y0, x1, y1) <= l.hitSlop()
}

// segmentDist returns the distance from (px, py) to the segment from
// (x0, y0) to (x1, y1).
func segmentDist(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = math.Max(0, math.Min(1, ((px-x0)*dx+(py-y0)*dy)/l2))
	}
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
