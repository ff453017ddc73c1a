// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalefile reads and writes the state of a scale as a TOML
// document.
//
// The document carries a version number. Version 1 documents predate
// the mag_auto, format_auto and exponent keys; they decode with both
// flags set and an exponent of 1. Keys absent from any version take
// their default values.
//
// A decoded scale has its fields but not its scaled bounds; call
// PickScale or SetupScaleData before querying ticks.
package scalefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/aclements/go-plotscale/scale"
)

// Version is the version written by Encode.
const Version = 2

// ErrVersion is returned when decoding a document newer than Version.
var ErrVersion = errors.New("unsupported scale file version")

type document struct {
	Version int    `toml:"version"`
	Type    string `toml:"type"`

	Min       float64 `toml:"min"`
	Max       float64 `toml:"max"`
	MajorStep float64 `toml:"major_step"`
	MinorStep float64 `toml:"minor_step"`
	Mag       int     `toml:"mag"`
	Format    string  `toml:"format"`

	MinAuto       bool `toml:"min_auto"`
	MaxAuto       bool `toml:"max_auto"`
	MajorStepAuto bool `toml:"major_step_auto"`
	MinorStepAuto bool `toml:"minor_step_auto"`
	MagAuto       bool `toml:"mag_auto"`
	FormatAuto    bool `toml:"format_auto"`

	RangeMin float64 `toml:"range_min"`
	RangeMax float64 `toml:"range_max"`

	Exponent  float64  `toml:"exponent,omitempty"`
	Labels    []string `toml:"labels,omitempty"`
	MajorUnit string   `toml:"major_unit,omitempty"`
	MinorUnit string   `toml:"minor_unit,omitempty"`
	Location  string   `toml:"location,omitempty"`
}

// Encode writes s to w.
func Encode(w io.Writer, s scale.Scale) error {
	b := s.Base()
	doc := document{
		Version:       Version,
		Type:          s.Type().String(),
		Min:           b.Min,
		Max:           b.Max,
		MajorStep:     b.MajorStep,
		MinorStep:     b.MinorStep,
		Mag:           b.Mag,
		Format:        b.Format,
		MinAuto:       b.MinAuto,
		MaxAuto:       b.MaxAuto,
		MajorStepAuto: b.MajorStepAuto,
		MinorStepAuto: b.MinorStepAuto,
		MagAuto:       b.MagAuto,
		FormatAuto:    b.FormatAuto,
		RangeMin:      b.RangeMin,
		RangeMax:      b.RangeMax,
	}
	switch s := s.(type) {
	case *scale.Exponent:
		doc.Exponent = s.Exponent
	case *scale.Text:
		doc.Labels = s.Labels
	case *scale.Date:
		doc.MajorUnit = s.MajorUnit.String()
		doc.MinorUnit = s.MinorUnit.String()
		if s.Location != nil {
			doc.Location = s.Location.String()
		}
	}
	return toml.NewEncoder(w).Encode(doc)
}

// Decode reads a scale from r.
func Decode(r io.Reader) (scale.Scale, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined("version") {
		doc.Version = 1
	}
	if doc.Version < 1 || doc.Version > Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}

	typ := scale.TypeLinear
	if md.IsDefined("type") {
		if typ, err = scale.ParseType(doc.Type); err != nil {
			return nil, err
		}
	}
	s, err := scale.New(typ)
	if err != nil {
		return nil, err
	}

	b := s.Base()
	b.Min, b.Max = doc.Min, doc.Max
	b.MajorStep, b.MinorStep = doc.MajorStep, doc.MinorStep
	b.Mag = doc.Mag
	if md.IsDefined("format") {
		b.Format = doc.Format
	}
	b.RangeMin, b.RangeMax = doc.RangeMin, doc.RangeMax

	flag := func(key string, v bool) bool {
		return !md.IsDefined(key) || v
	}
	b.MinAuto = flag("min_auto", doc.MinAuto)
	b.MaxAuto = flag("max_auto", doc.MaxAuto)
	b.MajorStepAuto = flag("major_step_auto", doc.MajorStepAuto)
	b.MinorStepAuto = flag("minor_step_auto", doc.MinorStepAuto)
	b.MagAuto = flag("mag_auto", doc.MagAuto)
	b.FormatAuto = flag("format_auto", doc.FormatAuto)

	switch s := s.(type) {
	case *scale.Exponent:
		if md.IsDefined("exponent") {
			if err := s.SetExponent(doc.Exponent); err != nil {
				return nil, err
			}
		}
	case *scale.Text:
		s.Labels = doc.Labels
	case *scale.Date:
		if doc.MajorUnit != "" {
			if s.MajorUnit, err = scale.ParseDateUnit(doc.MajorUnit); err != nil {
				return nil, err
			}
		}
		if doc.MinorUnit != "" {
			if s.MinorUnit, err = scale.ParseDateUnit(doc.MinorUnit); err != nil {
				return nil, err
			}
		}
		if doc.Location != "" {
			loc, err := time.LoadLocation(doc.Location)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", scale.ErrInvalidParameter, err)
			}
			s.Location = loc
		}
	}
	return s, nil
}

// Save writes s to the named file.
func Save(path string, s scale.Scale) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a scale from the named file.
func Load(path string) (scale.Scale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
