// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot draws charts built on axis scales as SVG.
package svgplot

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// SVG writes an SVG document. Drawing follows a path model: build a
// path with MoveTo, LineTo and friends, then Stroke or Fill it. The
// first write error is kept and returned by Done.
type SVG struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string
	dash         string
	clipPath     string

	id int

	path []string
}

// NewSVG starts a width by height document on w.
func NewSVG(w io.Writer, width, height float64) *SVG {
	s := &SVG{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%v\" height=\"%v\" font-family=\"Go, sans-serif\">\n", svglen(width), svglen(height))
	s.fprintf("<style>.hover { fill:rgba(0,0,0,0) } .hover:hover { stroke:#000 }</style>\n")
	s.NewPath()
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", cc.R, cc.G, cc.B, svglen(float64(cc.A)/0xff))
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) escape(text string) {
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
}

// SetFill sets the fill color. nil restores the default.
func (s *SVG) SetFill(c color.Color) {
	if c == nil {
		s.fill = ""
	} else {
		s.fill = "fill:" + colorToCSS(c)
	}
}

// SetStroke sets the stroke color. nil means no stroke.
func (s *SVG) SetStroke(c color.Color) {
	if c == nil {
		s.stroke = ""
	} else {
		s.stroke = "stroke:" + colorToCSS(c)
	}
}

func (s *SVG) SetLineWidth(lw float64) {
	if lw == 0 {
		s.lineWidth = ""
		return
	}
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

// SetDash sets the stroke dash pattern. No arguments means solid.
func (s *SVG) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		s.dash = ""
		return
	}
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = svglen(l).String()
	}
	s.dash = "stroke-dasharray:" + strings.Join(parts, ",")
}

func (s *SVG) style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val == "" {
		return ""
	}
	return " style=\"" + val + "\""
}

func (s *SVG) NewPath() *SVG {
	s.path = s.path[:0]
	return s
}

func (s *SVG) MoveTo(x, y float64) *SVG {
	s.path = append(s.path, fmt.Sprintf("M%v %v", svglen(x), svglen(y)))
	return s
}

func (s *SVG) LineTo(x, y float64) *SVG {
	s.path = append(s.path, fmt.Sprintf("L%v %v", svglen(x), svglen(y)))
	return s
}

func (s *SVG) LineToRel(xd, yd float64) *SVG {
	var op string
	if xd == 0 {
		op = fmt.Sprintf("v%v", svglen(yd))
	} else if yd == 0 {
		op = fmt.Sprintf("h%v", svglen(xd))
	} else {
		op = fmt.Sprintf("l%v %v", svglen(xd), svglen(yd))
	}
	s.path = append(s.path, op)
	return s
}

func (s *SVG) Rect(x, y, w, h float64) *SVG {
	return s.MoveTo(x, y).LineToRel(w, 0).LineToRel(0, h).LineToRel(-w, 0).ClosePath()
}

// Ellipse adds a closed ellipse centered at (cx, cy) to the path.
func (s *SVG) Ellipse(cx, cy, rx, ry float64) *SVG {
	s.MoveTo(cx-rx, cy)
	arc := func(dx float64) {
		s.path = append(s.path, fmt.Sprintf("a%v %v 0 1 0 %v 0", svglen(rx), svglen(ry), svglen(dx)))
	}
	arc(2 * rx)
	arc(-2 * rx)
	return s.ClosePath()
}

func (s *SVG) ClosePath() *SVG {
	s.path = append(s.path, "z")
	return s
}

func (s *SVG) pathData() string {
	return strings.Join(s.path, "")
}

func (s *SVG) emptyPath() bool {
	return len(s.path) == 0
}

func (s *SVG) Stroke() *SVG {
	if !s.emptyPath() {
		s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style("fill:none", s.stroke, s.lineWidth, s.dash, s.clipPath))
	}
	return s.NewPath()
}

func (s *SVG) Fill() *SVG {
	if !s.emptyPath() {
		s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style(s.fill, s.clipPath))
	}
	return s.NewPath()
}

func (s *SVG) FillStroke() *SVG {
	if !s.emptyPath() {
		s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style(s.fill, s.stroke, s.lineWidth, s.dash, s.clipPath))
	}
	return s.NewPath()
}

// Clip makes the current path the clip region for later drawing.
func (s *SVG) Clip() *SVG {
	s.fprintf("<clipPath id=\"c%d\"><path d=\"%s\"/></clipPath>\n", s.id, s.pathData())
	s.clipPath = fmt.Sprintf("clip-path:url(#c%d)", s.id)
	s.id++
	return s.NewPath()
}

func (s *SVG) ResetClip() *SVG {
	s.clipPath = ""
	return s
}

// Tooltip covers the current path with an invisible region showing
// text on hover. With highlight, the region is outlined on hover.
func (s *SVG) Tooltip(text string, highlight bool) *SVG {
	class := ""
	if highlight {
		class = " class=\"hover\""
	}
	s.fprintf("<path d=\"%s\" fill=\"rgba(0,0,0,0)\"%s><title>", s.pathData(), class)
	s.escape(text)
	s.fprintf("</title></path>\n")
	return s.NewPath()
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineHanging
	BaselineMiddle
)

type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
	Rotate   float64
	FontSize float64
}

func (s *SVG) Text(x, y float64, opts TextOpts, text string) {
	var attrs strings.Builder
	switch opts.Anchor {
	case AnchorMiddle:
		attrs.WriteString(" text-anchor=\"middle\"")
	case AnchorEnd:
		attrs.WriteString(" text-anchor=\"end\"")
	}
	switch opts.Baseline {
	case BaselineHanging:
		attrs.WriteString(" dominant-baseline=\"hanging\"")
	case BaselineMiddle:
		attrs.WriteString(" dominant-baseline=\"middle\"")
	}
	if opts.Rotate != 0 {
		fmt.Fprintf(&attrs, " transform=\"rotate(%v,%v,%v)\"", svglen(opts.Rotate), svglen(x), svglen(y))
	}
	if opts.FontSize != 0 {
		fmt.Fprintf(&attrs, " font-size=\"%v\"", svglen(opts.FontSize))
	}
	close := ""
	if s.clipPath != "" {
		// Keep rotation out of the clip path's coordinates.
		s.fprintf("<g%s>", s.style(s.clipPath))
		close = "</g>"
	}
	s.fprintf("<text x=\"%v\" y=\"%v\"%s%s>", svglen(x), svglen(y), attrs.String(), s.style(s.fill))
	s.escape(text)
	s.fprintf("</text>%s\n", close)
}

// Done finishes the document and returns the first write error.
func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
