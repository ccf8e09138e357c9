// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dstables prints a LaTeX table for every tagged section of a
// disjoint-set benchmark output file.
//
// Usage:
//
//	dstables [-pad] file.txt
//
// Each section introduced by a marker such as "=== UR_PS ===" becomes a
// booktabs table captioned with the variant's name and labelled
// tab:UR_PS. Numeric columns use siunitx S columns, others l.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/structures/benchtex/latextab"
	"github.com/structures/benchtex/section"
)

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("dstables: ")
	log.SetFlags(0)
	if err := dstables(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func dstables(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("dstables", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: dstables [flags] file.txt\n")
		flags.PrintDefaults()
	}
	flagPad := flags.Bool("pad", false, "align table columns in the LaTeX source")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}

	var out bytes.Buffer
	err := section.ScanFile(flags.Arg(0), func(sec *section.Section) error {
		f := latextab.FromSection(sec)
		f.Table.Pad = *flagPad
		if err := f.Write(&out); err != nil {
			return err
		}
		out.WriteString("\n\n")
		return nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write(out.Bytes())
	return err
}
