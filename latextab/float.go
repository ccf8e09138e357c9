// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latextab

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/structures/benchtex/section"
)

// A ColumnType is a tabular column type.
type ColumnType byte

const (
	Numeric ColumnType = 'S' // siunitx number column
	Text    ColumnType = 'l'
)

func (c ColumnType) String() string {
	return string(rune(c))
}

var numberRE = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

// ColumnTypes classifies each value of sample, typically the first
// data row, as Numeric or Text.
func ColumnTypes(sample []string) []ColumnType {
	out := make([]ColumnType, len(sample))
	for i, v := range sample {
		if numberRE.MatchString(v) {
			out[i] = Numeric
		} else {
			out[i] = Text
		}
	}
	return out
}

// ColumnSpec joins types into a tabular column specification.
func ColumnSpec(types []ColumnType) string {
	strs := make([]string, len(types))
	for i, t := range types {
		strs[i] = t.String()
	}
	return strings.Join(strs, " ")
}

var (
	unionNames = map[string]string{
		"QU": "Quick Union",
		"UW": "Union-by-Weight",
		"UR": "Union-by-Rank",
	}
	compressionNames = map[string]string{
		"NC": "No Compression",
		"FC": "Full Compression",
		"PS": "Path Splitting",
		"PH": "Path Halving",
	}
)

// Caption describes a disjoint-set variant tag such as "UR_PS" as
// "Union-by-Rank with Path Splitting". Other tags are returned
// unchanged.
func Caption(tag string) string {
	union, comp, ok := strings.Cut(tag, "_")
	if !ok {
		return tag
	}
	u, ok1 := unionNames[union]
	c, ok2 := compressionNames[comp]
	if !ok1 || !ok2 {
		return tag
	}
	return u + " with " + c
}

// A Float is a table environment holding one tabular.
type Float struct {
	Caption   string
	Label     string
	Placement string // defaults to "H"
	Table     *Table
}

// Write writes the table environment.
func (f *Float) Write(w io.Writer) error {
	placement := f.Placement
	if placement == "" {
		placement = "H"
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "\\begin{table}[%s]\n", placement)
	b.WriteString("  \\centering\n")
	fmt.Fprintf(&b, "  \\caption{%s}\n", f.Caption)
	if f.Label != "" {
		fmt.Fprintf(&b, "  \\label{%s}\n", f.Label)
	}
	if err := f.Table.Format(&b, "  "); err != nil {
		return err
	}
	b.WriteString("\\end{table}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// FromSection builds the table for one section: a captioned float
// with the header between \toprule and \midrule and one row per data
// line. Column types come from the first row; a section without rows
// gets a text column per header field.
func FromSection(sec *section.Section) *Float {
	var types []ColumnType
	if len(sec.Rows) > 0 {
		types = ColumnTypes(sec.Rows[0])
	} else {
		types = make([]ColumnType, len(sec.Header))
		for i := range types {
			types[i] = Text
		}
	}

	t := &Table{Spec: ColumnSpec(types)}
	t.Rule(TopRule)
	t.Cells(sec.Header...)
	t.Rule(MidRule)
	for _, row := range sec.Rows {
		t.Cells(row...)
	}
	t.Rule(BottomRule)

	return &Float{
		Caption: Caption(sec.Tag),
		Label:   "tab:" + sec.Tag,
		Table:   t,
	}
}
