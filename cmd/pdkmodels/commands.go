// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/pdkmodels/models"
	"github.com/katalvlaran/pdkmodels/xsection"
)

// newFlagSet returns a flag set reporting to stderr without exiting.
func (e *env) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parse maps flag errors onto exit codes; -h is a success.
func parse(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK, false
		}
		return exitUsage, false
	}
	return exitOK, true
}

func (e *env) list(args []string) int {
	fs := e.newFlagSet("list")
	all := fs.Bool("all", false, "include registered entries that are not models")
	if code, ok := parse(fs, args); !ok {
		return code
	}

	discovered := e.registry.Models()
	for _, name := range e.registry.Names() {
		_, isModel := discovered[name]
		switch {
		case isModel:
			fmt.Fprintln(e.stdout, name)
		case *all:
			fmt.Fprintf(e.stdout, "%s (not a model)\n", name)
		}
	}
	e.logger.Debug("listed models", "count", len(discovered))

	return exitOK
}

func (e *env) describe(args []string) int {
	fs := e.newFlagSet("describe")
	name := fs.String("model", "", "model name")
	if code, ok := parse(fs, args); !ok {
		return code
	}
	if *name == "" {
		fmt.Fprintln(e.stderr, "describe: -model is required")
		return exitUsage
	}

	m, err := e.registry.Model(*name)
	if err != nil {
		e.logger.Error("describe failed", tint.Err(err))
		return exitError
	}
	g := m.Base()

	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model:\t%s\n", *name)
	fmt.Fprintf(w, "generator:\t%s\n", g.Name())
	fmt.Fprintf(w, "kind:\t%s\n", g.Kind())
	fmt.Fprintf(w, "default wavelength:\t%g µm\n", g.DefaultWavelength())
	fmt.Fprintf(w, "bound:\t%s\n", m.Overrides().Describe())
	fmt.Fprintln(w, "parameters:")
	defaults := m.Defaults()
	for _, k := range defaults.Keys() {
		fmt.Fprintf(w, "  %s\t%s\n", k, strings.TrimPrefix(models.Params{k: defaults[k]}.Describe(), k+"="))
	}

	if err := w.Flush(); err != nil {
		e.logger.Error("write failed", tint.Err(err))
		return exitError
	}
	return exitOK
}

func (e *env) xsections(args []string) int {
	fs := e.newFlagSet("xsections")
	if code, ok := parse(fs, args); !ok {
		return code
	}

	table := xsection.Default()
	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBAND\tMATERIAL\tGEOMETRY\tWL0\tNEFF\tNG\tWIDTH\tALIASES")
	for _, id := range table.Names() {
		xs, err := table.Lookup(id)
		if err != nil {
			e.logger.Error("lookup failed", "id", id, tint.Err(err))
			return exitError
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%g\t%g\t%g\t%s\n",
			xs.Name, xs.Band, xs.Material, xs.Geometry, xs.WL0, xs.Neff, xs.Ng, xs.Width,
			strings.Join(xs.Aliases, ","))
	}

	if err := w.Flush(); err != nil {
		e.logger.Error("write failed", tint.Err(err))
		return exitError
	}
	return exitOK
}
