// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pgfplot

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Limits returns the smallest and largest finite Y value across all
// series. ok is false if there are none.
func Limits(series ...plotter.XYs) (min, max float64, ok bool) {
	var ys []float64
	for _, xy := range series {
		for _, p := range xy {
			if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				continue
			}
			ys = append(ys, p.Y)
		}
	}
	if len(ys) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(ys)
	return min, max, true
}

// Ticks returns the labelled major tick positions pgfplots should use
// for the range [min, max].
func Ticks(min, max float64) []float64 {
	if max <= min {
		max = min + 1
	}
	var out []float64
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if t.Label == "" {
			// Minor tick.
			continue
		}
		out = append(out, t.Value)
	}
	return out
}

// AxisOptions returns ymin, ymax and ytick options covering every
// series. The axis starts at zero unless some value is negative.
func AxisOptions(series ...plotter.XYs) []string {
	lo, hi, ok := Limits(series...)
	if !ok {
		return nil
	}
	if lo > 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	ticks := Ticks(lo, hi)
	if len(ticks) > 0 && ticks[len(ticks)-1] < hi {
		// Extend the axis to a round number past the data.
		step := 1.0
		if len(ticks) > 1 {
			step = ticks[1] - ticks[0]
		}
		hi = ticks[len(ticks)-1] + step
		ticks = append(ticks, hi)
	}
	strs := make([]string, len(ticks))
	for i, t := range ticks {
		strs[i] = formatTick(t)
	}
	return []string{
		"ymin=" + formatTick(lo),
		"ymax=" + formatTick(hi),
		"ytick={" + strings.Join(strs, ",") + "}",
	}
}

func formatTick(f float64) string {
	// Round away float noise from tick arithmetic.
	f = math.Round(f*1e9) / 1e9
	return strconv.FormatFloat(f, 'g', -1, 64)
}
