// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"io"
	"os"
)

// Lookup returns the first section tagged tag in r.
// See Reader.Find.
func Lookup(r io.Reader, fileName, tag string) (*Section, error) {
	return NewReader(r, fileName).Find(tag)
}

// ReadFile returns the first section tagged tag in the named file.
func ReadFile(path, tag string) (*Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Lookup(f, path, tag)
}

// ScanFile calls fn for every section in the named file, in file
// order. It stops at the first error returned by fn.
func ScanFile(path string, fn func(*Section) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := NewReader(f, path)
	for r.Scan() {
		if err := fn(r.Section()); err != nil {
			return err
		}
	}
	return r.Err()
}
