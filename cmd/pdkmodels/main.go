// SPDX-License-Identifier: MIT

// Command pdkmodels lists, inspects and sweeps the photonic model catalog.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"

	"github.com/katalvlaran/pdkmodels/models"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env carries what every subcommand needs.
type env struct {
	stdout   io.Writer
	stderr   io.Writer
	runID    string
	logger   *slog.Logger
	registry *models.Registry
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	runID := uuid.New().String()
	logger := newLogger(stderr, getEnvOrDefault("PDKMODELS_LOG_LEVEL", "info")).
		With(slog.String("run", runID))

	reg := models.NewRegistry(models.WithLogger(logger))
	if err := models.RegisterCatalog(reg); err != nil {
		logger.Error("catalog registration failed", tint.Err(err))
		return exitError
	}
	e := &env{stdout: stdout, stderr: stderr, runID: runID, logger: logger, registry: reg}

	command := args[0]
	switch command {
	case "list":
		return e.list(args[1:])
	case "describe":
		return e.describe(args[1:])
	case "sweep":
		return e.sweep(args[1:])
	case "xsections":
		return e.xsections(args[1:])
	case "help", "--help", "-h":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return exitUsage
	}
}

// newLogger builds a tint handler at the named level; unknown levels fall
// back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printUsage(w io.Writer) {
	usage := `pdkmodels - photonic S-parameter model catalog

Usage:
  pdkmodels <command> [options]

Available Commands:
  list        List discovered models (-all includes helper entries)
  describe    Show generator, kind and defaults of a model
  sweep       Evaluate a model over a wavelength range
  xsections   List the technology cross-sections
  help        Show this help message

Environment:
  PDKMODELS_LOG_LEVEL   debug, info, warn or error (default: info)
  NO_COLOR              disable colored log output

Examples:
  pdkmodels describe -model mmi1x2_so
  pdkmodels sweep -model straight -param cross_section=rib -param length=100
  pdkmodels sweep -model gc_rectangular_c -start 1.5 -stop 1.6 -points 5 -format table
`
	fmt.Fprint(w, usage)
}
