// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aclements/go-plotscale/scale"
	"github.com/aclements/go-plotscale/scalefile"
)

func (c *cli) pickCommand() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "pick [flags] value...",
		Short: "Pick a scale for data and print it",
		Long: `Pick chooses a scale covering the given data values and prints its
bounds, steps, label format and major ticks. Date values are written
as RFC 3339 instants or YYYY-MM-DD dates. For a text scale, the values
are the labels.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := log.FromContext(cmd.Context())
			m, err := c.metrics()
			if err != nil {
				return err
			}
			defer m.Close()

			a, err := specFromFlags(cmd).build(c.cfg, m)
			if err != nil {
				return err
			}
			var data []float64
			if t, ok := a.Scale().(*scale.Text); ok {
				t.SetLabels(args)
			} else if data, err = parseValues(a.Scale().Type(), location(a), args); err != nil {
				return err
			}
			b := a.Scale().Base()
			if len(data) == 0 && b.MinAuto && b.MaxAuto && a.Scale().Type() != scale.TypeText {
				return fmt.Errorf("%w: no data values", scale.ErrInvalidRange)
			}
			if err := a.Pick(data); err != nil {
				return err
			}
			lg.Debug("picked scale", "type", a.Scale().Type(), "min", b.Min, "max", b.Max, "major", b.MajorStep)

			if err := printScale(cmd.OutOrStdout(), a); err != nil {
				return err
			}
			if save != "" {
				if err := scalefile.Save(save, a.Scale()); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "saved %s", save)
			}
			return nil
		},
	}
	addScaleFlags(cmd)
	cmd.Flags().StringVar(&save, "save", "", "write the picked scale to `file`")
	return cmd
}
