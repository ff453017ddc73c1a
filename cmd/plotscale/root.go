// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/internal/config"
)

// cli holds state shared by all commands.
type cli struct {
	logger  *log.Logger
	cfg     *config.Config
	cfgPath string
	verbose bool
}

func newCLI(w io.Writer) *cli {
	return &cli{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "plotscale",
		Short:        "Pick nice axis scales and render charts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Load(c.cfgPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(log.WithContext(cmd.Context(), c.logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "read settings from `file` (default ./plotscale.toml)")

	root.AddCommand(c.pickCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	return root
}

// metrics returns label metrics at the configured font size.
func (c *cli) metrics() (*axis.FontMetrics, error) {
	return axis.NewFontMetrics(c.cfg.Render.FontSize)
}
