// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned when a scale or transform
	// parameter is out of its domain, such as an exponent of 0 or a
	// non-positive value on a logarithmic scale.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidRange is returned by PickScale when the bounds are
	// non-finite or inverted after the degenerate-span fallback.
	ErrInvalidRange = errors.New("invalid range")
)

func paramErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidParameter}, a...)...)
}

func rangeErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidRange}, a...)...)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
