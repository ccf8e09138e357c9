// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latextab lays out LaTeX tabular environments with booktabs
// rules.
package latextab

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table builds the body of a tabular environment.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	// Spec is the column specification, such as "S S l".
	Spec string

	// Pad pads every cell to its column's width so the & separators
	// line up in the source.
	Pad bool

	lines []line
	cols  int
}

type line struct {
	rule  Rule
	cells []string
}

// A Rule is a booktabs horizontal rule.
type Rule int

const (
	noRule Rule = iota
	TopRule
	MidRule
	BottomRule
)

func (r Rule) String() string {
	switch r {
	case TopRule:
		return `\toprule`
	case MidRule:
		return `\midrule`
	case BottomRule:
		return `\bottomrule`
	}
	return ""
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.lines = append(t.lines, line{})
	return t
}

// Cell adds a cell at the end of the current row. It starts a row if
// there is none or the last line is a rule.
func (t *Table) Cell(value string) *Table {
	if len(t.lines) == 0 || t.lines[len(t.lines)-1].rule != noRule {
		t.Row()
	}
	l := &t.lines[len(t.lines)-1]
	l.cells = append(l.cells, value)
	if len(l.cells) > t.cols {
		t.cols = len(l.cells)
	}
	return t
}

// Cells adds one cell per value to a new row.
func (t *Table) Cells(values ...string) *Table {
	t.Row()
	for _, v := range values {
		t.Cell(v)
	}
	return t
}

// Rule adds a horizontal rule after the current row.
func (t *Table) Rule(r Rule) *Table {
	t.lines = append(t.lines, line{rule: r})
	return t
}

// Format writes the tabular environment, indenting every line by
// indent and the body by a further two spaces.
func (t *Table) Format(w io.Writer, indent string) error {
	var widths []int
	if t.Pad {
		widths = make([]int, t.cols)
		for _, l := range t.lines {
			for i, c := range l.cells {
				widths[i] = max(widths[i], utf8.RuneCountInString(c))
			}
		}
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\\begin{tabular}{%s}\n", indent, t.Spec)
	body := indent + "  "
	for _, l := range t.lines {
		if l.rule != noRule {
			fmt.Fprintf(&b, "%s%s\n", body, l.rule)
			continue
		}
		cells := l.cells
		if t.Pad {
			cells = make([]string, len(l.cells))
			for i, c := range l.cells {
				cells[i] = fmt.Sprintf("%-*s", widths[i], c)
			}
		}
		fmt.Fprintf(&b, "%s%s \\\\\n", body, strings.Join(cells, " & "))
	}
	fmt.Fprintf(&b, "%s\\end{tabular}\n", indent)
	_, err := w.Write(b.Bytes())
	return err
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
