// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/internal/config"
	"github.com/aclements/go-plotscale/scale"
)

// A scaleSpec describes an axis and the fields of its scale the user
// fixed, as raw strings keyed by flag or query parameter name. Absent
// keys are automatic.
type scaleSpec map[string]string

var specKeys = []string{
	"type", "orient", "length",
	"min", "max", "major", "minor", "mag", "format",
	"exponent", "unit", "loc", "overlap", "labels",
}

func addScaleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("type", "linear", "scale `type`: linear, log, exponent, ordinal, text or date")
	f.String("orient", "x", "axis orientation: x or y")
	f.Float64("length", 0, "axis length in `pixels` (default from config)")
	f.String("min", "", "fix the scale minimum")
	f.String("max", "", "fix the scale maximum")
	f.Float64("major", 0, "fix the major step")
	f.Float64("minor", 0, "fix the minor step")
	f.Int("mag", 0, "fix the label magnitude")
	f.String("format", "", "fix the label format (a time layout for date scales)")
	f.Float64("exponent", 1, "exponent of an exponent scale")
	f.String("unit", "", "unit of a fixed date step: second, minute, hour, day, month or year")
	f.String("loc", "", "time zone of a date scale")
	f.Bool("overlap", false, "prevent label overlap (default from config)")
}

func specFromFlags(cmd *cobra.Command) scaleSpec {
	sp := make(scaleSpec)
	f := cmd.Flags()
	for _, k := range specKeys {
		if fl := f.Lookup(k); fl != nil && fl.Changed {
			sp[k] = fl.Value.String()
		}
	}
	return sp
}

func specFromQuery(q url.Values) scaleSpec {
	sp := make(scaleSpec)
	for _, k := range specKeys {
		if q.Has(k) {
			sp[k] = q.Get(k)
		}
	}
	return sp
}

func (sp scaleSpec) get(key, def string) string {
	if v, ok := sp[key]; ok {
		return v
	}
	return def
}

func badParam(name, v string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", scale.ErrInvalidParameter, name, v, err)
}

// build returns an unpicked axis as sp describes, with defaults from
// cfg and labels measured by m.
func (sp scaleSpec) build(cfg *config.Config, m scale.LabelMeasurer) (*axis.Axis, error) {
	typ, err := scale.ParseType(sp.get("type", "linear"))
	if err != nil {
		return nil, err
	}
	o, err := axis.ParseOrientation(sp.get("orient", "x"))
	if err != nil {
		return nil, err
	}
	s, err := scale.New(typ)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	switch s := s.(type) {
	case *scale.Exponent:
		if v, ok := sp["exponent"]; ok {
			e, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, badParam("exponent", v, err)
			}
			if err := s.SetExponent(e); err != nil {
				return nil, err
			}
		}
	case *scale.Text:
		if v, ok := sp["labels"]; ok && v != "" {
			s.SetLabels(strings.Split(v, ","))
		}
	case *scale.Date:
		if v, ok := sp["loc"]; ok && v != "" {
			if loc, err = time.LoadLocation(v); err != nil {
				return nil, badParam("loc", v, err)
			}
			s.Location = loc
		}
		if v, ok := sp["unit"]; ok && v != "" {
			if s.MajorUnit, err = scale.ParseDateUnit(v); err != nil {
				return nil, err
			}
		}
	}

	b := s.Base()
	for _, f := range []struct {
		key string
		set func(float64)
	}{
		{"min", b.SetMin},
		{"max", b.SetMax},
	} {
		if v, ok := sp[f.key]; ok && v != "" {
			x, err := parseValue(typ, loc, v)
			if err != nil {
				return nil, badParam(f.key, v, err)
			}
			f.set(x)
		}
	}
	for _, f := range []struct {
		key string
		set func(float64)
	}{
		{"major", b.SetMajorStep},
		{"minor", b.SetMinorStep},
	} {
		if v, ok := sp[f.key]; ok {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, badParam(f.key, v, err)
			}
			f.set(x)
		}
	}
	if v, ok := sp["mag"]; ok {
		mag, err := strconv.Atoi(v)
		if err != nil {
			return nil, badParam("mag", v, err)
		}
		b.SetMag(mag)
	}
	if v, ok := sp["format"]; ok && v != "" {
		b.SetFormat(v)
	}

	a := axis.New(o, s)
	a.Options = cfg.Options()
	a.Metrics = m
	a.PreventOverlap = cfg.Render.PreventOverlap
	if v, ok := sp["overlap"]; ok {
		if a.PreventOverlap, err = strconv.ParseBool(v); err != nil {
			return nil, badParam("overlap", v, err)
		}
	}
	if a.Horizontal() {
		a.Length = cfg.Render.Width
	} else {
		a.Length = cfg.Render.Height
	}
	if v, ok := sp["length"]; ok {
		if a.Length, err = strconv.ParseFloat(v, 64); err != nil || !(a.Length > 0) {
			return nil, fmt.Errorf("%w: length %q must be a positive number", scale.ErrInvalidParameter, v)
		}
	}
	return a, nil
}

// dateLayouts are the accepted spellings of instants.
var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// parseValue parses a data value of a scale of type typ. Date values
// are instants, interpreted in loc if they carry no zone.
func parseValue(typ scale.Type, loc *time.Location, v string) (float64, error) {
	v = strings.TrimSpace(v)
	if typ != scale.TypeDate {
		return strconv.ParseFloat(v, 64)
	}
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, v, loc); err == nil {
			return scale.DateValue(t), nil
		}
	}
	return 0, err
}

// parseValues parses each of vs with parseValue.
func parseValues(typ scale.Type, loc *time.Location, vs []string) ([]float64, error) {
	xs := make([]float64, 0, len(vs))
	for _, v := range vs {
		x, err := parseValue(typ, loc, v)
		if err != nil {
			return nil, badParam("value", v, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// location returns the time zone of a's scale for parsing values.
func location(a *axis.Axis) *time.Location {
	if d, ok := a.Scale().(*scale.Date); ok && d.Location != nil {
		return d.Location
	}
	return time.UTC
}
