// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pgfplot

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// ErrTooFewRows is returned by NormalizeX when there are not enough
// rows to infer a step.
var ErrTooFewRows = errors.New("need at least two rows to infer the size step")

// NormalizeX maps each size onto (0, 1] relative to the largest
// problem size the sweep implies.
//
// The sizes are expected in sweep order. The step is the difference
// between the first two sizes and the reference size is
// n = sizes[0] + step - 1. NormalizeX returns sizes[i]/n for every i,
// along with n.
func NormalizeX(sizes []float64) (xs []float64, n float64, err error) {
	if len(sizes) < 2 {
		return nil, 0, ErrTooFewRows
	}
	step := sizes[0] - sizes[1]
	n = sizes[0] + step - 1
	if n == 0 {
		return nil, 0, fmt.Errorf("sizes %v, %v give a zero reference size", sizes[0], sizes[1])
	}
	xs = make([]float64, len(sizes))
	for i, s := range sizes {
		xs[i] = s / n
	}
	return xs, n, nil
}

// IsRate reports whether col names a ratio that should be printed as
// a percentage, that is, whether it ends in "rate" in any case.
func IsRate(col string) bool {
	return strings.HasSuffix(strings.ToLower(col), "rate")
}

// ScaleRate multiplies the y values of xy by 100 in place if col is a
// rate column.
func ScaleRate(col string, xy plotter.XYs) {
	if !IsRate(col) {
		return
	}
	for i := range xy {
		xy[i].Y *= 100
	}
}
