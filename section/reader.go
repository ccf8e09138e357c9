// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package section reads tagged CSV sections out of benchmark output.
//
// A section starts with a marker line such as
//
//	=== QU_PS ===
//
// followed by a header line of comma-separated field names and zero or
// more comma-separated data lines. The section ends at end of input or
// at the next marker line.
package section

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// A Mode selects how a section's data region is terminated.
type Mode int

const (
	// ScanMode is used when walking every section of a file. Only a
	// marker line ends a section; blank lines are skipped and
	// sections without rows are returned as is.
	ScanMode Mode = iota

	// LookupMode is used when fetching a single tag. A blank line
	// also ends the section, and a section without rows is an error.
	LookupMode
)

// markerPrefix starts every marker line.
const markerPrefix = "==="

// scanMarker matches the marker lines Scan stops at. The tag is two
// upper-case groups joined by an underscore.
var scanMarker = regexp.MustCompile(`^===\s*([A-Z]+_[A-Z]+)\s*===\s*$`)

// lookupMarker returns the pattern Find uses for tag.
func lookupMarker(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^===\s*` + regexp.QuoteMeta(tag) + `\s*===`)
}

// A Reader reads tagged sections from a text stream.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err. Find can be interleaved with Scan; both
// search forward from the current position.
//
// A Reader keeps a one-line lookahead so the marker line that ends
// one section is still seen by the search for the next one.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	err      error

	// line is the 1-based number of the last line returned by next.
	line int

	// held is a line that was pushed back by unread.
	held    string
	hasHeld bool

	sec *Section
}

// NewReader returns a Reader that reads sections from r. fileName is
// used in error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset discards any state and starts reading from r.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.s = bufio.NewScanner(ior)
	r.fileName = fileName
	r.err = nil
	r.line = 0
	r.held, r.hasHeld = "", false
	r.sec = nil
}

// next returns the next input line without its line terminator.
func (r *Reader) next() (string, bool) {
	if r.hasHeld {
		r.hasHeld = false
		r.line++
		return r.held, true
	}
	if !r.s.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimSuffix(r.s.Text(), "\r"), true
}

// unread pushes line back so the following call to next returns it.
// Only one line may be held at a time.
func (r *Reader) unread(line string) {
	if r.hasHeld {
		panic("section: unread called twice")
	}
	r.held, r.hasHeld = line, true
	r.line--
}

// ioErr converts a scanner failure into a *SyntaxError.
func (r *Reader) ioErr() error {
	if err := r.s.Err(); err != nil {
		return &SyntaxError{FileName: r.fileName, Line: r.line, Err: err}
	}
	return nil
}

// locate advances past the next line accepted by match. It returns
// the tag reported by match and the marker's line number.
func (r *Reader) locate(match func(line string) (tag string, ok bool)) (string, int, bool) {
	for {
		line, ok := r.next()
		if !ok {
			return "", 0, false
		}
		if tag, ok := match(line); ok {
			return tag, r.line, true
		}
	}
}

// readHeader returns the fields of the first non-blank line.
func (r *Reader) readHeader() ([]string, bool) {
	for {
		line, ok := r.next()
		if !ok {
			return nil, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.Split(line, ","), true
	}
}

// readRows collects data lines until end of input or a marker line,
// which is left unread.
func (r *Reader) readRows(mode Mode) ([][]string, error) {
	rows := [][]string{}
	for {
		line, ok := r.next()
		if !ok {
			return rows, nil
		}
		if strings.TrimSpace(line) == "" {
			if mode == LookupMode {
				return rows, nil
			}
			continue
		}
		fields, err := splitRecord(line)
		if err != nil {
			return rows, &SyntaxError{FileName: r.fileName, Line: r.line, Err: err}
		}
		if len(fields) == 0 {
			if mode == LookupMode {
				return rows, nil
			}
			continue
		}
		if strings.HasPrefix(fields[0], markerPrefix) {
			r.unread(line)
			return rows, nil
		}
		rows = append(rows, fields)
	}
}

// read parses the header and rows following a marker.
func (r *Reader) read(tag string, markerLine int, mode Mode) (*Section, error) {
	sec := &Section{Tag: tag, FileName: r.fileName, Line: markerLine}
	header, ok := r.readHeader()
	if !ok {
		if err := r.ioErr(); err != nil {
			return nil, err
		}
		return nil, &MalformedSectionError{FileName: r.fileName, Line: markerLine, Tag: tag, Msg: "missing header"}
	}
	sec.Header = header
	rows, err := r.readRows(mode)
	if err != nil {
		return nil, err
	}
	if err := r.ioErr(); err != nil {
		return nil, err
	}
	sec.Rows = rows
	return sec, nil
}

// Scan advances to the next section whose marker matches the
// UNION_COMP tag form and reports whether one was read. The caller
// gets it from Section. Scan returns false at end of input or on
// error; Err distinguishes the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	r.sec = nil
	tag, markerLine, ok := r.locate(func(line string) (string, bool) {
		m := scanMarker.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return m[1], true
	})
	if !ok {
		// Running out of markers ends the scan.
		r.err = r.ioErr()
		return false
	}
	sec, err := r.read(tag, markerLine, ScanMode)
	if err != nil {
		r.err = err
		return false
	}
	r.sec = sec
	return true
}

// Section returns the section read by the last successful call to
// Scan, or nil.
func (r *Reader) Section() *Section {
	return r.sec
}

// Err returns the first error that stopped Scan. Reaching the end of
// the input is not an error.
func (r *Reader) Err() error {
	return r.err
}

// Find searches forward for the first marker naming tag, compared
// without regard to case, and returns its section. The data region
// ends at a blank line as well as at the next marker, and the
// section must have at least one row.
//
// If no marker matches, Find returns a *NotFoundError.
func (r *Reader) Find(tag string) (*Section, error) {
	if r.err != nil {
		return nil, r.err
	}
	pat := lookupMarker(tag)
	_, markerLine, ok := r.locate(func(line string) (string, bool) {
		return tag, pat.MatchString(line)
	})
	if !ok {
		if err := r.ioErr(); err != nil {
			return nil, err
		}
		return nil, &NotFoundError{FileName: r.fileName, Tag: tag}
	}
	sec, err := r.read(tag, markerLine, LookupMode)
	if err != nil {
		return nil, err
	}
	if len(sec.Rows) == 0 {
		return nil, &MalformedSectionError{FileName: r.fileName, Line: markerLine, Tag: tag, Msg: "has no data"}
	}
	return sec, nil
}

// splitRecord parses one line of comma-separated values.
func splitRecord(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("parsing row: %w", perr.Err)
		}
		return nil, err
	}
	return rec, nil
}
