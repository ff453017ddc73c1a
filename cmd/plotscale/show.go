// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/scalefile"
)

func (c *cli) showCommand() *cobra.Command {
	var orient string
	var length float64
	cmd := &cobra.Command{
		Use:   "show [flags] file",
		Short: "Print a saved scale",
		Long: `Show loads a scale saved by pick --save, picks it again on an axis
of the given orientation and length, and prints it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scalefile.Load(args[0])
			if err != nil {
				return err
			}
			o, err := axis.ParseOrientation(orient)
			if err != nil {
				return err
			}
			a := axis.New(o, s)
			a.Options = c.cfg.Options()
			a.Length = length
			if length == 0 {
				a.Length = c.cfg.Render.Width
				if !a.Horizontal() {
					a.Length = c.cfg.Render.Height
				}
			}
			if err := a.Pick(nil); err != nil {
				return err
			}
			return printScale(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().StringVar(&orient, "orient", "x", "axis orientation: x or y")
	cmd.Flags().Float64Var(&length, "length", 0, "axis length in `pixels` (default from config)")
	return cmd
}
