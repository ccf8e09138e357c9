// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pgfplot writes pgfplots source for benchmark series.
//
// It emits \addplot+ commands with inline coordinate lists, grouped
// into \nextgroupplot panels, along with the small numeric helpers the
// report needs: normalizing problem sizes, scaling rates to
// percentages and picking y-axis ticks.
package pgfplot

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// A Plot is one styled series.
type Plot struct {
	Style  Style
	Coords plotter.XYs
	// Legend is the legend entry text. It is escaped for LaTeX
	// when written.
	Legend string
}

// EscapeLegend escapes the characters in s that are special in
// LaTeX text mode and common in series identifiers.
func EscapeLegend(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// writeCompact writes p with all coordinates on one line, each line
// prefixed by indent.
func (p *Plot) writeCompact(b *bytes.Buffer, indent string, legend bool) {
	fmt.Fprintf(b, "%s\\addplot+[%s] coordinates {\n", indent, p.Style.Options())
	fmt.Fprintf(b, "%s  %s\n", indent, FormatInline(p.Coords))
	fmt.Fprintf(b, "%s};\n", indent)
	if legend {
		fmt.Fprintf(b, "%s\\addlegendentry{%s}\n", indent, EscapeLegend(p.Legend))
	}
}

// WriteExpanded writes p with one coordinate per line, followed by its
// legend entry and a blank line.
func (p *Plot) WriteExpanded(w io.Writer) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "\\addplot+[%s]\n", p.Style.Options())
	b.WriteString("  coordinates {\n")
	for _, pt := range p.Coords {
		fmt.Fprintf(&b, "    %s\n", formatLine(pt))
	}
	b.WriteString("  };\n")
	fmt.Fprintf(&b, "\\addlegendentry{%s}\n\n", EscapeLegend(p.Legend))
	_, err := w.Write(b.Bytes())
	return err
}

// A GroupPlot is one panel of a pgfplots groupplot.
type GroupPlot struct {
	Title string
	// Options are the axis options following the title, such as
	// "ylabel={}" or "ymin=0".
	Options []string
	// Plots are written in order. Plots without coordinates are
	// skipped.
	Plots []Plot
	// Legend adds an \addlegendentry after each plot.
	Legend bool
}

const groupIndent = "  "

// Write writes the panel: a comment banner, the \nextgroupplot
// command and its plots.
func (g *GroupPlot) Write(w io.Writer) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%%================= %s =========================\n", g.Title)
	opts := append([]string{"title={" + g.Title + "}"}, g.Options...)
	fmt.Fprintf(&b, "\\nextgroupplot[%s]\n", strings.Join(opts, ", "))
	for i := range g.Plots {
		p := &g.Plots[i]
		if len(p.Coords) == 0 {
			continue
		}
		p.writeCompact(&b, groupIndent, g.Legend)
	}
	_, err := w.Write(b.Bytes())
	return err
}
