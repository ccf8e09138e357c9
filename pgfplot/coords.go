// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pgfplot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// Coords builds the point list of one plot from parallel x and y
// slices. It panics if their lengths differ.
func Coords(xs, ys []float64) plotter.XYs {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("pgfplot: %d x values but %d y values", len(xs), len(ys)))
	}
	xy := make(plotter.XYs, len(xs))
	for i := range xs {
		xy[i].X, xy[i].Y = xs[i], ys[i]
	}
	return xy
}

// FormatInline returns xy as space-separated "(x,y)" pairs on one
// line, with x to three decimal places and y in shortest form.
func FormatInline(xy plotter.XYs) string {
	var b strings.Builder
	for i, p := range xy {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%.3f,%s)", p.X, shortest(p.Y))
	}
	return b.String()
}

// formatLine formats one point of the expanded layout: x truncated to
// an integer and y to six significant digits.
func formatLine(p plotter.XY) string {
	x := strconv.FormatInt(int64(p.X), 10)
	if math.IsNaN(p.X) {
		x = "nan"
	}
	return fmt.Sprintf("(%s,%s)", x, sigDigits(p.Y, 6))
}

// shortest formats f with the fewest digits that read back exactly.
// Integral values keep a ".0" so they still read as reals, and very
// large or small magnitudes switch to exponent form.
func shortest(f float64) string {
	if s, ok := special(f); ok {
		return s
	}
	abs := math.Abs(f)
	if f != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// sigDigits formats f with at most n significant digits, dropping
// trailing zeros.
func sigDigits(f float64, n int) string {
	if s, ok := special(f); ok {
		return s
	}
	return strconv.FormatFloat(f, 'g', n, 64)
}

func special(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "nan", true
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}
	return "", false
}
