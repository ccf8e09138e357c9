// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import "strconv"

// A Section is one tagged block of CSV data.
type Section struct {
	// Tag is the identifier from the marker line, such as "UR_PS".
	Tag string

	// Header holds the field names from the first non-blank line
	// after the marker.
	Header []string

	// Rows holds the data lines in input order. Rows are not
	// required to have as many fields as Header.
	Rows [][]string

	// FileName and Line locate the marker line. Line is 1-based.
	FileName string
	Line     int
}

// Index returns the position of col in the header, or -1.
func (s *Section) Index(col string) int {
	for i, h := range s.Header {
		if h == col {
			return i
		}
	}
	return -1
}

// Column returns the values of col from every row. A row that is too
// short to hold col contributes "".
func (s *Section) Column(col string) ([]string, error) {
	i := s.Index(col)
	if i < 0 {
		return nil, &MissingColumnError{FileName: s.FileName, Tag: s.Tag, Column: col}
	}
	out := make([]string, len(s.Rows))
	for j, row := range s.Rows {
		if i < len(row) {
			out[j] = row[i]
		}
	}
	return out, nil
}

// Floats is like Column, but parses every value as a float64.
func (s *Section) Floats(col string) ([]float64, error) {
	vals, err := s.Column(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &SyntaxError{FileName: s.FileName, Line: s.Line, Err: err}
		}
		out[i] = f
	}
	return out, nil
}

// Records returns each row as a map from header name to value. Fields
// beyond the end of the header are dropped, and header names beyond
// the end of a short row are absent from its map.
func (s *Section) Records() []map[string]string {
	out := make([]map[string]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		m := make(map[string]string, len(s.Header))
		for i, h := range s.Header {
			if i >= len(row) {
				break
			}
			m[h] = row[i]
		}
		out = append(out, m)
	}
	return out
}
