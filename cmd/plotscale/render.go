// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/scale"
	"github.com/aclements/go-plotscale/svgplot"
)

// plotBackground fills the plot area.
var plotBackground = color.Gray{0xf8}

// palette colors successive curves.
var palette = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
}

func (c *cli) renderCommand() *cobra.Command {
	var input, output, xType, yType string
	var width, height float64
	var tooltips bool
	cmd := &cobra.Command{
		Use:   "render [flags]",
		Short: "Render CSV data as an SVG chart",
		Long: `Render reads CSV data whose first column is X and whose other
columns are Y series, and writes an SVG line chart. A first row that
does not parse as data names the series. With an X scale of type text,
the X column holds category labels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := log.FromContext(cmd.Context())
			m, err := c.metrics()
			if err != nil {
				return err
			}
			defer m.Close()

			x, err := scaleSpec{"type": xType, "orient": "x"}.build(c.cfg, m)
			if err != nil {
				return err
			}
			y, err := scaleSpec{"type": yType, "orient": "y"}.build(c.cfg, m)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			curves, err := readCurves(r, x)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			lg.Debug("read data", "input", input, "curves", len(curves))

			chart := &svgplot.Chart{
				Width:  width,
				Height: height,
				X:      x,
				Y:      y,
				Curves: curves,
				Logger: lg,

				Background:    plotBackground,
				PointTooltips: tooltips,
			}
			if chart.Width == 0 {
				chart.Width = c.cfg.Render.Width
			}
			if chart.Height == 0 {
				chart.Height = c.cfg.Render.Height
			}

			var w io.Writer = cmd.OutOrStdout()
			var f *os.File
			if output != "-" {
				if f, err = os.Create(output); err != nil {
					return err
				}
				w = f
			}
			err = chart.Render(w)
			if f != nil {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}
			if err != nil {
				return err
			}
			if f != nil {
				printSuccess(cmd.ErrOrStderr(), "wrote %s", output)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "-", "read CSV from `file`")
	f.StringVarP(&output, "output", "o", "-", "write SVG to `file`")
	f.StringVar(&xType, "x-type", "linear", "X scale `type`")
	f.StringVar(&yType, "y-type", "linear", "Y scale `type`")
	f.Float64Var(&width, "width", 0, "chart width in `pixels` (default from config)")
	f.Float64Var(&height, "height", 0, "chart height in `pixels` (default from config)")
	f.BoolVar(&tooltips, "tooltips", true, "show data values when hovering over points")
	return cmd
}

// readCurves reads CSV from r into one curve per Y column. X values
// are parsed for x's scale; empty or unparseable Y cells are skipped
// as NaN.
func readCurves(r io.Reader, x *axis.Axis) ([]svgplot.Curve, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data", scale.ErrInvalidRange)
	}

	typ := x.Scale().Type()
	text, _ := x.Scale().(*scale.Text)
	loc := location(x)
	isData := func(row []string) bool {
		if len(row) < 2 {
			return false
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64); err != nil {
			return false
		}
		if text != nil {
			return true
		}
		_, err := parseValue(typ, loc, row[0])
		return err == nil
	}

	var names []string
	if !isData(rows[0]) {
		names, rows = rows[0][1:], rows[1:]
	}
	n := 0
	for _, row := range rows {
		n = max(n, len(row)-1)
	}
	curves := make([]svgplot.Curve, n)
	for i := range curves {
		curves[i].Label = fmt.Sprintf("y%d", i+1)
		if i < len(names) {
			curves[i].Label = names[i]
		}
		curves[i].Color = palette[i%len(palette)]
	}

	var labels []string
	for lineNo, row := range rows {
		if len(row) == 0 {
			continue
		}
		var xv float64
		if text != nil {
			labels = append(labels, row[0])
			xv = float64(len(labels))
		} else if xv, err = parseValue(typ, loc, row[0]); err != nil {
			return nil, fmt.Errorf("row %d: %w", lineNo+1, badParam("x", row[0], err))
		}
		for i := range curves {
			yv := math.NaN()
			if i+1 < len(row) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64); err == nil {
					yv = v
				}
			}
			curves[i].X = append(curves[i].X, xv)
			curves[i].Y = append(curves[i].Y, yv)
		}
	}
	if text != nil {
		text.SetLabels(labels)
	}
	return curves, nil
}
