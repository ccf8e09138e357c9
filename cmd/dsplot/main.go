// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dsplot prints pgfplots groupplot panels comparing disjoint-set
// union strategies across three problem sizes.
//
// Usage:
//
//	dsplot [flags] variant column small.txt medium.txt large.txt
//
// The variant is a tag such as UR_PS. Its compression part (PS)
// selects the sections QU_PS, UW_PS and UR_PS from each of the three
// input files, giving one panel per union strategy with one series per
// input file. Each series plots column against the block count
// normalized to the size of the sweep.
//
// The -x flag names the block-count column (default "Blocks").
// With -auto-axis, the y-axis limits and ticks of the second and third
// panels are derived from the data instead of being fixed to [0, 2].
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
	"gonum.org/v1/plot/plotter"
)

var errUsage = errors.New("usage")

type panel struct {
	code, title string
}

var panels = []panel{
	{"QU", "Quick-Union"},
	{"UW", "Union-by-Weight"},
	{"UR", "Union-by-Rank"},
}

// fixedAxis bounds every panel but the first when -auto-axis is off.
var fixedAxis = []string{"ymin=0", "ymax=2", "ytick={0,1,2}"}

func main() {
	log.SetPrefix("dsplot: ")
	log.SetFlags(0)
	if err := dsplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func dsplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("dsplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: dsplot [flags] variant column small.txt medium.txt large.txt\n")
		flags.PrintDefaults()
	}
	flagX := flags.String("x", "Blocks", "block-count `column` used for the x axis")
	flagAuto := flags.Bool("auto-axis", false, "derive y-axis limits and ticks from the data")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 5 {
		flags.Usage()
		return errUsage
	}

	variant, column, files := flags.Arg(0), flags.Arg(1), flags.Args()[2:]
	_, comp, ok := strings.Cut(variant, "_")
	if !ok {
		return fmt.Errorf("variant must look like QU_PS, UW_FC, …; got %q", variant)
	}

	var out bytes.Buffer
	for i, p := range panels {
		tag := p.code + "_" + comp
		g := pgfplot.GroupPlot{Title: p.title, Legend: i == 0}
		for j, file := range files {
			xy, err := readSeries(file, tag, *flagX, column)
			if err != nil {
				return err
			}
			size := pgfplot.SizeOrder[j]
			g.Plots = append(g.Plots, pgfplot.Plot{
				Style:  pgfplot.SizeStyles[size],
				Coords: xy,
				Legend: size,
			})
		}

		if i == 0 {
			g.Options = []string{`ylabel={Normalised $\mathrm{Cost}$}`}
		} else {
			g.Options = []string{"ylabel={}"}
			if *flagAuto {
				series := make([]plotter.XYs, len(g.Plots))
				for k, pl := range g.Plots {
					series[k] = pl.Coords
				}
				g.Options = append(g.Options, pgfplot.AxisOptions(series...)...)
			} else {
				g.Options = append(g.Options, fixedAxis...)
			}
		}

		if err := g.Write(&out); err != nil {
			return err
		}
		out.WriteString("\n")
	}
	_, err := w.Write(out.Bytes())
	return err
}

// readSeries returns the normalized points of column in the section
// tagged tag of file.
func readSeries(file, tag, xcol, column string) (plotter.XYs, error) {
	sec, err := section.ReadFile(file, tag)
	if err != nil {
		return nil, err
	}
	sizes, err := sec.Floats(xcol)
	if err != nil {
		return nil, err
	}
	xs, _, err := pgfplot.NormalizeX(sizes)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", file, tag, err)
	}
	ys, err := sec.Floats(column)
	if err != nil {
		return nil, err
	}
	return pgfplot.Coords(xs, ys), nil
}
