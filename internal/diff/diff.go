// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares command output against golden files.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// Diff returns a human-readable description of the differences between
// want and got, or "" if they are equal. If the "diff" command is
// available, it returns its unified output.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}
	d, err := os.MkdirTemp("", "benchtex-diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(d)

	wantPath, gotPath := filepath.Join(d, "want"), filepath.Join(d, "got")
	if err := os.WriteFile(wantPath, []byte(want), 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(gotPath, []byte(got), 0666); err != nil {
		return err.Error()
	}

	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	data, err := exec.Command(cmd, "-u", wantPath, gotPath).CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't match.
		// Ignore that failure as long as we get output.
		err = nil
	}
	if err != nil {
		data = append(data, []byte(err.Error())...)
	}
	return string(data)
}

// Golden compares got with the contents of path. A missing file is
// treated as empty. On a mismatch it reports the diff and writes got
// next to path with a ".got" suffix for inspection.
func Golden(t testing.TB, path string, got []byte) {
	t.Helper()
	want, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	d := Diff(string(want), string(got))
	if d == "" {
		return
	}
	t.Errorf("%s mismatch:\n%s", path, d)
	if err := os.WriteFile(path+".got", got, 0666); err != nil {
		t.Errorf("error writing %s.got: %s", path, err)
	}
}
