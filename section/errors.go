// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import "fmt"

// A NotFoundError reports that no marker for Tag exists in the
// remainder of a file.
type NotFoundError struct {
	FileName string
	Tag      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in %s", e.Tag, e.FileName)
}

// A MalformedSectionError reports a section whose marker was found
// but whose header or rows could not be read. Line is the line of the
// marker.
type MalformedSectionError struct {
	FileName string
	Line     int
	Tag      string
	Msg      string
}

func (e *MalformedSectionError) Error() string {
	return fmt.Sprintf("%s:%d: %s %s", e.FileName, e.Line, e.Tag, e.Msg)
}

// A MissingColumnError reports a column that is not in a header.
type MissingColumnError struct {
	FileName string
	Tag      string
	Column   string
}

func (e *MissingColumnError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%s: no column %q", e.FileName, e.Column)
	}
	return fmt.Sprintf("%s: %s has no column %q", e.FileName, e.Tag, e.Column)
}

// A SyntaxError is an I/O or CSV failure at a particular line.
type SyntaxError struct {
	FileName string
	Line     int
	Err      error
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.FileName, e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
