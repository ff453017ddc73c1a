// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads plotscale settings from a TOML file and
// PLOTSCALE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/aclements/go-plotscale/scale"
)

// EnvPrefix prefixes environment overrides. The key scale.zero_lever
// is overridden by PLOTSCALE_SCALE_ZERO_LEVER.
const EnvPrefix = "PLOTSCALE"

type Config struct {
	Scale  ScaleConfig  `mapstructure:"scale"`
	Render RenderConfig `mapstructure:"render"`
	Serve  ServeConfig  `mapstructure:"serve"`
}

// ScaleConfig tunes scale picking. See scale.Options.
type ScaleConfig struct {
	TargetXSteps      float64 `mapstructure:"target_x_steps"`
	TargetYSteps      float64 `mapstructure:"target_y_steps"`
	TargetMinorXSteps float64 `mapstructure:"target_minor_x_steps"`
	TargetMinorYSteps float64 `mapstructure:"target_minor_y_steps"`
	ZeroLever         float64 `mapstructure:"zero_lever"`
	LabelGap          float64 `mapstructure:"label_gap"`
}

type RenderConfig struct {
	Width          float64 `mapstructure:"width"`
	Height         float64 `mapstructure:"height"`
	FontSize       float64 `mapstructure:"font_size"`
	PreventOverlap bool    `mapstructure:"prevent_overlap"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	d := scale.DefaultOptions
	v.SetDefault("scale.target_x_steps", d.TargetXSteps)
	v.SetDefault("scale.target_y_steps", d.TargetYSteps)
	v.SetDefault("scale.target_minor_x_steps", d.TargetMinorXSteps)
	v.SetDefault("scale.target_minor_y_steps", d.TargetMinorYSteps)
	v.SetDefault("scale.zero_lever", d.ZeroLever)
	v.SetDefault("scale.label_gap", d.LabelGap)

	v.SetDefault("render.width", 640)
	v.SetDefault("render.height", 400)
	v.SetDefault("render.font_size", 12)
	v.SetDefault("render.prevent_overlap", true)

	v.SetDefault("serve.addr", "localhost:8080")
}

// Load reads the configuration from path. If path is "", it reads
// plotscale.toml from the current directory if there is one.
// Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		v.SetConfigName("plotscale")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("loading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	s := c.Scale
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"scale.target_x_steps", s.TargetXSteps},
		{"scale.target_y_steps", s.TargetYSteps},
		{"scale.target_minor_x_steps", s.TargetMinorXSteps},
		{"scale.target_minor_y_steps", s.TargetMinorYSteps},
		{"render.width", c.Render.Width},
		{"render.height", c.Render.Height},
		{"render.font_size", c.Render.FontSize},
	} {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", scale.ErrInvalidParameter, f.name, f.v)
		}
	}
	if s.ZeroLever < 0 || s.ZeroLever >= 1 {
		return fmt.Errorf("%w: scale.zero_lever must be in [0, 1), got %v", scale.ErrInvalidParameter, s.ZeroLever)
	}
	if s.LabelGap < 0 {
		return fmt.Errorf("%w: scale.label_gap must not be negative, got %v", scale.ErrInvalidParameter, s.LabelGap)
	}
	return nil
}

// Options returns the scale options c describes.
func (c *Config) Options() *scale.Options {
	return &scale.Options{
		TargetXSteps:      c.Scale.TargetXSteps,
		TargetYSteps:      c.Scale.TargetYSteps,
		TargetMinorXSteps: c.Scale.TargetMinorXSteps,
		TargetMinorYSteps: c.Scale.TargetMinorYSteps,
		ZeroLever:         c.Scale.ZeroLever,
		LabelGap:          c.Scale.LabelGap,
	}
}
