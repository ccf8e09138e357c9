// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pgfplot

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Style is the look of one series: the options of its \addplot+.
type Style struct {
	Color string // xcolor expression, like "green!70!black"
	Line  string // dash pattern, like "dashed"; empty for the default
	Mark  string // marker, like "square*"
	Thick bool   // thick rather than thin lines
	Fill  bool   // fill marks with Color
}

// Options returns the option list for \addplot+[...].
func (s Style) Options() string {
	opts := []string{s.Color}
	if s.Thick {
		opts = append(opts, "thick")
	} else {
		opts = append(opts, "thin")
	}
	if s.Line != "" {
		opts = append(opts, s.Line)
	}
	opts = append(opts, "mark="+s.Mark)
	markOpts := "scale=.7"
	if s.Fill {
		markOpts += ",fill=" + s.Color
	}
	opts = append(opts, "mark options={"+markOpts+"}")
	return strings.Join(opts, ", ")
}

// Styles maps series identifiers to their styles.
type Styles map[string]Style

// BSTOrder lists the binary-search-tree layouts in legend order.
var BSTOrder = []string{
	"BST_VEB",
	"BST_EYT",
	"BST_EYT_PREF",
	"BST_EYT_PREF_TWO",
	"BST_EYT_PREF_THREE",
	"BST_EYT_PREF_FOUR",
	"BST_EYT_PREF_PROB",
}

// BSTStyles styles the binary-search-tree layouts.
var BSTStyles = Styles{
	"BST_VEB":            {Color: "red", Line: "dotted", Mark: "triangle*", Thick: true, Fill: true},
	"BST_EYT":            {Color: "blue", Line: "dashed", Mark: "square*", Thick: true, Fill: true},
	"BST_EYT_PREF":       {Color: "green!70!black", Line: "solid", Mark: "*", Thick: true, Fill: true},
	"BST_EYT_PREF_TWO":   {Color: "orange", Line: "dashdotted", Mark: "diamond*", Thick: true, Fill: true},
	"BST_EYT_PREF_THREE": {Color: "purple", Line: "loosely dotted", Mark: "pentagon*", Thick: true, Fill: true},
	"BST_EYT_PREF_FOUR":  {Color: "brown", Line: "densely dashed", Mark: "x*", Thick: true, Fill: true},
	"BST_EYT_PREF_PROB":  {Color: "black", Line: "densely dotted", Mark: "o", Thick: true, Fill: true},
}

// SizeOrder lists the problem-size classes in legend order.
var SizeOrder = []string{"small", "medium", "large"}

// SizeStyles styles the problem-size classes of the disjoint-set
// plots.
var SizeStyles = Styles{
	"small":  {Color: "green!70", Mark: "*"},
	"medium": {Color: "yellow!80!black", Mark: "triangle*"},
	"large":  {Color: "red!60", Mark: "square*"},
}

// An UnknownStyleError lists series identifiers that have no style.
type UnknownStyleError struct {
	IDs   []string
	Known []string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("no style defined for %s (known: %s)", strings.Join(e.IDs, ", "), strings.Join(e.Known, ", "))
}

// Lookup returns the styles of ids in order. If any id is unknown, it
// returns an *UnknownStyleError naming all of them.
func (s Styles) Lookup(ids []string) ([]Style, error) {
	var missing []string
	out := make([]Style, 0, len(ids))
	for _, id := range ids {
		st, ok := s[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		out = append(out, st)
	}
	if len(missing) > 0 {
		known := maps.Keys(s)
		slices.Sort(known)
		return nil, &UnknownStyleError{IDs: missing, Known: known}
	}
	return out, nil
}
