// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSVGPaths(t *testing.T) {
	var buf bytes.Buffer
	svg := NewSVG(&buf, 100, 50)
	svg.SetStroke(color.RGBA{255, 0, 0, 255})
	svg.MoveTo(1, 2).LineToRel(3, 0).LineToRel(0, 4).LineToRel(1.5, 1.5).LineTo(0, 0)
	svg.Stroke()
	svg.Rect(0, 0, 10, 5)
	svg.SetFill(color.NRGBA{0, 0, 255, 0x80})
	svg.Fill()
	svg.Ellipse(10, 10, 4, 2).Fill()
	assert.NoError(t, svg.Done())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`))
	assert.Contains(t, out, `<path d="M1 2h3v4l1.5 1.5L0 0" style="fill:none;stroke:rgb(255,0,0)"/>`)
	assert.Contains(t, out, `<path d="M0 0h10v5h-10z" style="fill:rgba(0,0,255,0.5019608)"/>`)
	assert.Contains(t, out, `<path d="M6 10a4 2 0 1 0 8 0a4 2 0 1 0 -8 0z"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestSVGEmptyPath(t *testing.T) {
	var buf bytes.Buffer
	svg := NewSVG(&buf, 10, 10)
	svg.Stroke()
	svg.Fill()
	assert.NoError(t, svg.Done())
	assert.NotContains(t, buf.String(), "<path")
}

func TestSVGText(t *testing.T) {
	var buf bytes.Buffer
	svg := NewSVG(&buf, 10, 10)
	svg.Text(1, 2, TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle, FontSize: 9}, "a<b")
	svg.Rect(0, 0, 5, 5).Clip()
	svg.Text(3, 4, TextOpts{Rotate: 90}, "c")
	svg.ResetClip()
	svg.Rect(0, 0, 1, 1).Tooltip("x & y", true)
	assert.NoError(t, svg.Done())

	out := buf.String()
	assert.Contains(t, out, `<text x="1" y="2" text-anchor="end" dominant-baseline="middle" font-size="9">a&lt;b</text>`)
	assert.Contains(t, out, `<clipPath id="c0">`)
	assert.Contains(t, out, `<g style="clip-path:url(#c0)"><text x="3" y="4" transform="rotate(90,3,4)">c</text></g>`)
	assert.Contains(t, out, `class="hover"><title>x &amp; y</title>`)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	svg := NewSVG(errWriter{}, 10, 10)
	svg.Rect(0, 0, 1, 1).Fill()
	assert.EqualError(t, svg.Done(), "disk full")
}
