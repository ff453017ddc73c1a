// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/scale"
)

// A Curve is a series of data points joined by straight lines.
type Curve struct {
	Label string
	X, Y  []float64
	Color color.Color
	Width float64
}

// Margins is the space around the plot area, in pixels.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins leave room for the labels of a left Y axis and a
// bottom X axis.
var DefaultMargins = Margins{Left: 60, Right: 20, Top: 10, Bottom: 30}

// A Chart is a pair of axes with curves and annotations.
type Chart struct {
	Width, Height float64
	Margins       Margins

	// X and Y are the axes. Render sets their lengths and picks
	// their scales from the curves.
	X, Y *axis.Axis

	Curves []Curve
	Shapes []Shape

	// Ticks is the tick format. Zero means DefaultTicksFormat.
	Ticks TicksFormat

	// Background, if non-nil, fills the plot area.
	Background color.Color

	// PointTooltips adds a hover region to every data point that
	// shows the curve's label and the point's coordinates.
	PointTooltips bool

	// Logger, if non-nil, receives warnings about skipped axes and
	// debugging output.
	Logger *log.Logger
}

func (c *Chart) ticks() *TicksFormat {
	if c.Ticks == (TicksFormat{}) {
		return &DefaultTicksFormat
	}
	return &c.Ticks
}

func (c *Chart) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

// Projection returns the mapping from data to pixels. The axes must
// be picked.
func (c *Chart) Projection() Projection {
	return Projection{X: c.X, Y: c.Y, Left: c.Margins.Left, Top: c.Margins.Top}
}

// pick sizes a and picks its scale from data. It reports whether a
// has a usable scale.
func (c *Chart) pick(name string, a *axis.Axis, length float64, data []float64) bool {
	lg := c.logger()
	if a == nil || a.Scale() == nil {
		lg.Warn("skipping axis without a scale", "axis", name)
		return false
	}
	a.Length = length
	if err := a.Pick(data); err != nil {
		lg.Warn("skipping axis", "axis", name, "type", a.Scale().Type(), "err", err)
		return false
	}
	b := a.Scale().Base()
	lg.Debug("picked scale", "axis", name, "type", a.Scale().Type(),
		"min", b.Min, "max", b.Max, "major", b.MajorStep, "minor", b.MinorStep, "mag", b.Mag, "format", b.Format)
	if lg.GetLevel() <= log.DebugLevel {
		if ticks, err := a.Ticks(); err == nil && a.Overlaps(ticks) {
			lg.Debug("tick labels overlap", "axis", name)
		}
	}
	return true
}

// Render picks both axes and writes the chart as SVG to w. An axis
// whose scale cannot be picked is skipped with a warning, along with
// everything plotted against it.
func (c *Chart) Render(w io.Writer) error {
	m := c.Margins
	if m == (Margins{}) {
		m = DefaultMargins
		c.Margins = m
	}
	plotW := c.Width - m.Left - m.Right
	plotH := c.Height - m.Top - m.Bottom

	var xs, ys []float64
	for _, cv := range c.Curves {
		xs = append(xs, cv.X...)
		ys = append(ys, cv.Y...)
	}
	for _, sh := range c.Shapes {
		b := sh.Bounds()
		xs = append(xs, b.X0, b.X1)
		ys = append(ys, b.Y0, b.Y1)
	}
	xok := c.pick("x", c.X, plotW, xs)
	yok := c.pick("y", c.Y, plotH, ys)

	svg := NewSVG(w, c.Width, c.Height)
	f := c.ticks()
	if xok {
		if err := f.DrawAxis(svg, c.X, m.Left, m.Top+plotH); err != nil {
			c.logger().Warn("skipping axis", "axis", "x", "err", err)
			xok = false
		}
	}
	if yok {
		if err := f.DrawAxis(svg, c.Y, m.Left, m.Top); err != nil {
			c.logger().Warn("skipping axis", "axis", "y", "err", err)
			yok = false
		}
	}

	if xok && yok {
		if c.Background != nil {
			svg.SetFill(c.Background)
			svg.Rect(m.Left, m.Top, plotW, plotH).Fill()
			svg.SetFill(nil)
		}
		svg.Rect(m.Left, m.Top, plotW, plotH).Clip()
		p := c.Projection()
		for _, cv := range c.Curves {
			c.drawCurve(svg, p, cv)
		}
		for _, sh := range c.Shapes {
			sh.Draw(svg, p)
		}
		svg.ResetClip()
		if c.PointTooltips {
			for _, cv := range c.Curves {
				c.curveTooltips(svg, p, cv)
			}
		}
	} else if len(c.Curves)+len(c.Shapes) > 0 {
		c.logger().Warn("not plotting data without both axes")
	}
	return svg.Done()
}

func (c *Chart) drawCurve(svg *SVG, p Projection, cv Curve) {
	n := min(len(cv.X), len(cv.Y))
	if len(cv.X) != len(cv.Y) {
		c.logger().Warn("curve has unequal X and Y lengths", "curve", cv.Label, "x", len(cv.X), "y", len(cv.Y))
	}
	svg.NewPath()
	pen := false
	for i := 0; i < n; i++ {
		px, py, ok := p.Point(cv.X[i], cv.Y[i])
		if !ok {
			// Break the line at points the scales cannot
			// transform.
			pen = false
			continue
		}
		if pen {
			svg.LineTo(px, py)
		} else {
			svg.MoveTo(px, py)
			pen = true
		}
	}
	svg.SetStroke(orBlack(cv.Color))
	w := cv.Width
	if w == 0 {
		w = 1.5
	}
	svg.SetLineWidth(w)
	svg.Stroke()
	svg.SetStroke(nil)
	svg.SetLineWidth(0)
}

// tooltipRadius is the half-width, in pixels, of a point's hover
// region.
const tooltipRadius = 4

func (c *Chart) curveTooltips(svg *SVG, p Projection, cv Curve) {
	n := min(len(cv.X), len(cv.Y))
	for i := 0; i < n; i++ {
		px, py, ok := p.Point(cv.X[i], cv.Y[i])
		if !ok || !c.inPlot(px, py) {
			continue
		}
		text := fmt.Sprintf("%s: %s, %s", cv.Label, dataLabel(c.X, cv.X[i]), dataLabel(c.Y, cv.Y[i]))
		const r = tooltipRadius
		svg.Rect(px-r, py-r, 2*r, 2*r).Tooltip(text, true)
	}
}

// inPlot reports whether pixel (px, py) lies in c's plot area.
func (c *Chart) inPlot(px, py float64) bool {
	m := c.Margins
	return px >= m.Left && px <= c.Width-m.Right && py >= m.Top && py <= c.Height-m.Bottom
}

// dataLabel formats a data value of a for a tooltip.
func dataLabel(a *axis.Axis, v float64) string {
	switch s := a.Scale().(type) {
	case *scale.Date:
		return s.Time(v).Format(time.DateTime)
	case *scale.Text:
		if i := int(v); float64(i) == v && i >= 1 && i <= len(s.Labels) {
			return s.Labels[i-1]
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
