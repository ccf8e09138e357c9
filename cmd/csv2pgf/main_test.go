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

	"github.com/google/go-cmp/cmp"
	"github.com/structures/benchtex/internal/diff"
	"github.com/structures/benchtex/pgfplot"
	"github.com/structures/benchtex/section"
)

func TestRate(t *testing.T) {
	// miss_rate is scaled to a percentage.
	golden(t, "missRate", "-impls", "BST_VEB,BST_EYT,BST_EYT_PREF", "bst.csv", "miss_rate")
}

func TestDefaultImpls(t *testing.T) {
	golden(t, "nsPerOp", "bst.csv", "ns_per_op")
}

func TestUnknownImpl(t *testing.T) {
	chdir(t)
	var out, errOut bytes.Buffer
	// The unknown implementations are rejected before the
	// (missing) input is opened.
	err := csv2pgf(&out, &errOut, []string{"-impls", "BST_VEB,RB_TREE,AVL", "missing.csv", "ns_per_op"})
	var uerr *pgfplot.UnknownStyleError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want *pgfplot.UnknownStyleError", err)
	}
	if diff := cmp.Diff([]string{"RB_TREE", "AVL"}, uerr.IDs); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(err.Error(), "no style defined for RB_TREE, AVL") {
		t.Errorf("got %q", err)
	}
}

func TestErrors(t *testing.T) {
	chdir(t)
	for _, test := range []struct {
		args  []string
		check func(error) bool
	}{
		{[]string{"missing.csv", "ns_per_op"}, func(err error) bool {
			return errors.Is(err, os.ErrNotExist)
		}},
		{[]string{"bst.csv", "l3_rate"}, func(err error) bool {
			var merr *section.MissingColumnError
			return errors.As(err, &merr) && merr.Column == "l3_rate"
		}},
		{[]string{"-x", "size", "bst.csv", "ns_per_op"}, func(err error) bool {
			var merr *section.MissingColumnError
			return errors.As(err, &merr) && merr.Column == "size"
		}},
		{[]string{"ragged.csv", "cost"}, func(err error) bool {
			var serr *section.SyntaxError
			return errors.As(err, &serr)
		}},
		{[]string{"-impls", " , ", "bst.csv", "ns_per_op"}, func(err error) bool {
			return err != nil && strings.Contains(err.Error(), "no implementations")
		}},
		{[]string{"bst.csv"}, func(err error) bool {
			return errors.Is(err, errUsage)
		}},
	} {
		var out, errOut bytes.Buffer
		err := csv2pgf(&out, &errOut, test.args)
		if !test.check(err) {
			t.Errorf("%v: unexpected error %v", test.args, err)
		}
		if out.Len() != 0 {
			t.Errorf("%v: wrote output before failing:\n%s", test.args, out.String())
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" BST_VEB, ,BST_EYT ,")
	if diff := cmp.Diff([]string{"BST_VEB", "BST_EYT"}, got); diff != "" {
		t.Errorf("splitList mismatch (-want +got):\n%s", diff)
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
	t.Logf("csv2pgf %s", strings.Join(args, " "))
	if err := csv2pgf(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	diff.Golden(t, name+".stdout", got.Bytes())
	diff.Golden(t, name+".stderr", gotErr.Bytes())
}
