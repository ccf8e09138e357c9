// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pgfplot

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/structures/benchtex/section"
	"gonum.org/v1/plot/plotter"
)

// SplitSeries groups the rows of sec by the value of column key and
// returns the (x, y) points of each group sorted by x. Values of x and
// y that are not numbers become NaN.
func SplitSeries(sec *section.Section, key, x, y string) (map[string]plotter.XYs, error) {
	if key == x || key == y {
		return nil, fmt.Errorf("series key %q cannot also be plotted", key)
	}
	keys, err := sec.Column(key)
	if err != nil {
		return nil, err
	}
	xvals, err := sec.Column(x)
	if err != nil {
		return nil, err
	}
	yvals, err := sec.Column(y)
	if err != nil {
		return nil, err
	}

	var b table.Builder
	b.Add(key, keys).Add(x, parseFloats(xvals)).Add(y, parseFloats(yvals))
	g := table.SortBy(table.GroupBy(b.Done(), key), x)

	out := make(map[string]plotter.XYs)
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		xs := t.MustColumn(x).([]float64)
		ys := t.MustColumn(y).([]float64)
		out[gid.Label().(string)] = Coords(xs, ys)
	}
	return out, nil
}

func parseFloats(vals []string) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			f = math.NaN()
		}
		out[i] = f
	}
	return out
}
