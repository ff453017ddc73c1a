// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotscale picks nice axis scales for data and renders
// charts with them.
//
// Usage:
//
//	plotscale pick [flags] value...
//	plotscale show [flags] file
//	plotscale render [flags]
//	plotscale serve [flags]
//
// Settings are read from plotscale.toml in the current directory, or
// the file named by --config, and may be overridden by PLOTSCALE_*
// environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := newCLI(os.Stderr)
	if err := c.rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
