// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// ReadCSV reads an untagged CSV file: a header line followed by rows
// that all have as many fields as the header. The result has no Tag.
func ReadCSV(r io.Reader, fileName string) (*Section, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MalformedSectionError{FileName: fileName, Line: 1, Msg: "missing header"}
	}
	if err != nil {
		return nil, csvError(fileName, err)
	}
	sec := &Section{Header: header, Rows: [][]string{}, FileName: fileName, Line: 1}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return sec, nil
		}
		if err != nil {
			return nil, csvError(fileName, err)
		}
		sec.Rows = append(sec.Rows, rec)
	}
}

// ReadCSVFile is ReadCSV on the named file.
func ReadCSVFile(path string) (*Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}

func csvError(fileName string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &SyntaxError{FileName: fileName, Line: perr.Line, Err: perr.Err}
	}
	return &SyntaxError{FileName: fileName, Err: err}
}
