// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Csv2pgf converts a CSV produced by the binary-search-tree benchmark
// into pgfplots \addplot commands.
//
// Usage:
//
//	csv2pgf [-impls list] [-x column] file.csv column
//
// The x axis is the dataset size (column "n" unless -x says
// otherwise); the y axis is the named column. One \addplot is printed
// for each implementation, in the order given by -impls, which is a
// comma-separated list and defaults to every known layout. Columns
// whose name ends in "rate" are printed as percentages.
//
// Every implementation in -impls must have a style. Implementations
// missing from the CSV are reported on stderr and skipped.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/structures/benchtex/pgfplot"
	"github.com/structures/benchtex/section"
)

var errUsage = errors.New("usage")

// implColumn names the column identifying each row's implementation.
const implColumn = "impl"

func main() {
	log.SetPrefix("csv2pgf: ")
	log.SetFlags(0)
	if err := csv2pgf(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func csv2pgf(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("csv2pgf", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: csv2pgf [flags] file.csv column\n")
		flags.PrintDefaults()
	}
	flagImpls := flags.String("impls", strings.Join(pgfplot.BSTOrder, ","), "comma-separated `implementations` to include, in legend order")
	flagX := flags.String("x", "n", "dataset-size `column` used for the x axis")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return errUsage
	}
	path, column := flags.Arg(0), flags.Arg(1)

	impls := splitList(*flagImpls)
	if len(impls) == 0 {
		return fmt.Errorf("-impls lists no implementations")
	}
	styles, err := pgfplot.BSTStyles.Lookup(impls)
	if err != nil {
		return err
	}

	sec, err := section.ReadCSVFile(path)
	if err != nil {
		return err
	}
	series, err := pgfplot.SplitSeries(sec, implColumn, *flagX, column)
	if err != nil {
		return err
	}

	for _, xy := range series {
		pgfplot.ScaleRate(column, xy)
	}

	var out bytes.Buffer
	for i, impl := range impls {
		xy, ok := series[impl]
		if !ok {
			fmt.Fprintf(wErr, "%% Warning: %s not found in CSV\n", impl)
			continue
		}
		p := pgfplot.Plot{Style: styles[i], Coords: xy, Legend: impl}
		if err := p.WriteExpanded(&out); err != nil {
			return err
		}
	}
	_, err = w.Write(out.Bytes())
	return err
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
