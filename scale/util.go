// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// minmax returns the extent of the non-NaN values in xs.
func minmax(xs []float64) (min float64, max float64, ok bool) {
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if !ok {
			min, max, ok = x, x, true
			continue
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}
