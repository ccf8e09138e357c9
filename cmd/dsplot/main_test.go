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
	"github.com/structures/benchtex/section"
)

func TestGroupPlot(t *testing.T) {
	golden(t, "urPS", "UR_PS", "Cost_per_n", "small.txt", "medium.txt", "large.txt")
}

func TestVariantOnlySelectsCompression(t *testing.T) {
	// Only the compression half of the variant matters.
	golden(t, "urPS", "QU_PS", "Cost_per_n", "small.txt", "medium.txt", "large.txt")
}

func TestAutoAxis(t *testing.T) {
	got, _ := run(t, "-auto-axis", "UR_PS", "Cost_per_n", "small.txt", "medium.txt", "large.txt")
	var heads []string
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, `\nextgroupplot`) {
			heads = append(heads, line)
		}
	}
	if len(heads) != 3 {
		t.Fatalf("got %d panels, want 3", len(heads))
	}
	if strings.Contains(heads[0], "ymin") {
		t.Errorf("first panel has axis limits: %s", heads[0])
	}
	for _, h := range heads[1:] {
		if !strings.Contains(h, "ylabel={}, ymin=0, ymax=") || !strings.Contains(h, "ytick={") {
			t.Errorf("panel without derived limits: %s", h)
		}
	}
}

func TestErrors(t *testing.T) {
	chdir(t)
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"UR_PH", "Cost_per_n", "small.txt", "medium.txt", "large.txt"}, "QU_PH not found in small.txt"},
		{[]string{"URPS", "Cost_per_n", "small.txt", "medium.txt", "large.txt"}, "variant must look like"},
		{[]string{"UR_PS", "Cost", "small.txt", "medium.txt", "missing.txt"}, "missing.txt"},
		{[]string{"UR_PS", "Nope", "small.txt", "medium.txt", "large.txt"}, `QU_PS has no column "Nope"`},
		{[]string{"-x", "Size", "UR_PS", "Cost", "small.txt", "medium.txt", "large.txt"}, `QU_PS has no column "Size"`},
	} {
		var out, errOut bytes.Buffer
		err := dsplot(&out, &errOut, test.args)
		if err == nil {
			t.Errorf("%v: succeeded, want error", test.args)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v: got %q, want it to contain %q", test.args, err, test.want)
		}
		if out.Len() != 0 {
			t.Errorf("%v: wrote output before failing:\n%s", test.args, out.String())
		}
	}
}

func TestNotFoundIsTyped(t *testing.T) {
	chdir(t)
	var out, errOut bytes.Buffer
	err := dsplot(&out, &errOut, []string{"UR_PH", "Cost_per_n", "small.txt", "medium.txt", "large.txt"})
	var nf *section.NotFoundError
	if !errors.As(err, &nf) || nf.Tag != "QU_PH" {
		t.Errorf("got %v, want *section.NotFoundError for QU_PH", err)
	}
}

func TestUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	err := dsplot(&out, &errOut, []string{"UR_PS", "Cost_per_n", "small.txt"})
	if !errors.Is(err, errUsage) {
		t.Errorf("got %v, want errUsage", err)
	}
	if !strings.HasPrefix(errOut.String(), "usage: dsplot") {
		t.Errorf("usage not printed, stderr:\n%s", errOut.String())
	}
}

// chdir switches to testdata for the rest of the test.
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

func run(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	chdir(t)
	var out, errOut bytes.Buffer
	t.Logf("dsplot %s", strings.Join(args, " "))
	if err := dsplot(&out, &errOut, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return out.String(), errOut.String()
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	got, gotErr := run(t, args...)
	diff.Golden(t, name+".stdout", []byte(got))
	diff.Golden(t, name+".stderr", []byte(gotErr))
}
