// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/structures/benchtex/internal/diff"
)

func TestTables(t *testing.T) {
	golden(t, "small", "small.txt")
}

func TestAdjacentSections(t *testing.T) {
	// Sections with no blank line between them.
	golden(t, "adjacent", "adjacent.txt")
}

func TestNoSections(t *testing.T) {
	golden(t, "none", "none.txt")
}

func TestPad(t *testing.T) {
	chdir(t)
	var out, errOut bytes.Buffer
	if err := dstables(&out, &errOut, []string{"-pad", "adjacent.txt"}); err != nil {
		t.Fatal(err)
	}
	want := `    Blocks & AvgTPL & AvgTPU & Cost  & TPL_per_n & TPU_per_n & Cost_per_n \\
    \midrule
    10000  & 17350  & 150    & 17500 & 1.735     & 0.015     & 1.75       \\
    8000   & 16820  & 180    & 17000 & 1.682     & 0.018     & 1.7        \\`
	if !strings.Contains(out.String(), want) {
		t.Errorf("padded output missing aligned QU_PS rows:\n%s", out.String())
	}
}

func TestErrors(t *testing.T) {
	chdir(t)
	var out, errOut bytes.Buffer
	if err := dstables(&out, &errOut, []string{"missing.txt"}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want os.ErrNotExist", err)
	}
	if err := dstables(&out, &errOut, nil); !errors.Is(err, errUsage) {
		t.Errorf("no arguments: got %v, want errUsage", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote output before failing:\n%s", out.String())
	}
}

func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	chdir(t)
	var got, gotErr bytes.Buffer
	t.Logf("dstables %s", strings.Join(args, " "))
	if err := dstables(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	diff.Golden(t, name+".stdout", got.Bytes())
	diff.Golden(t, name+".stderr", gotErr.Bytes())
}
