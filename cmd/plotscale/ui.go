// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/scale"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Width(8)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// formatData formats a value in data units for display.
func formatData(s scale.Scale, v float64) string {
	if d, ok := s.(*scale.Date); ok {
		return d.Time(v).Format(time.RFC3339)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatStep formats a step size, with its unit for date scales.
func formatStep(s scale.Scale, v float64, major bool) string {
	str := strconv.FormatFloat(v, 'g', -1, 64)
	if d, ok := s.(*scale.Date); ok {
		u := d.MinorUnit
		if major {
			u = d.MajorUnit
		}
		return str + " " + u.String()
	}
	if s.Type() == scale.TypeLog {
		return str + " decades"
	}
	return str
}

// printScale writes the fields of a's picked scale and its major
// ticks to w.
func printScale(w io.Writer, a *axis.Axis) error {
	s := a.Scale()
	b := s.Base()
	title := fmt.Sprintf("%s scale, %s, %gpx", s.Type(), a.Orientation, a.Length)
	if e, ok := s.(*scale.Exponent); ok {
		title += fmt.Sprintf(", exponent %g", e.Exponent)
	}
	fmt.Fprintln(w, styleTitle.Render(title))

	field := func(name, val string, auto bool) {
		note := ""
		if !auto {
			note = styleDim.Render(" (fixed)")
		}
		fmt.Fprintf(w, "  %s %s%s\n", styleKey.Render(name), styleNumber.Render(val), note)
	}
	field("min", formatData(s, b.Min), b.MinAuto)
	field("max", formatData(s, b.Max), b.MaxAuto)
	field("major", formatStep(s, b.MajorStep, true), b.MajorStepAuto)
	field("minor", formatStep(s, b.MinorStep, false), b.MinorStepAuto)
	field("mag", strconv.Itoa(b.Mag), b.MagAuto)
	field("format", b.Format, b.FormatAuto)

	ticks, err := a.Ticks()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, styleTitle.Render("ticks"))
	for _, t := range ticks {
		if t.Major {
			fmt.Fprintf(w, "  %s %s\n", styleDim.Render(fmt.Sprintf("%8.1f", t.Pos)), t.Label)
		}
	}
	if a.Overlaps(ticks) {
		fmt.Fprintln(w, styleDim.Render("  labels overlap"))
	}
	return nil
}
