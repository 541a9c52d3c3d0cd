// Command cardlangctl is the analysis server's command-line front end:
// parse a source file, report its diagnostics, and optionally record
// the run to the history store.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/cardlang/analysis/internal/config"
	"github.com/cardlang/analysis/internal/history"
	"github.com/cardlang/analysis/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		runParse(os.Args[2:], false)
	case "check":
		runParse(os.Args[2:], true)
	case "history":
		runHistory(os.Args[2:])
	case "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <parse|check|history> <file>\n", os.Args[0])
}

// runParse reads, parses, and validates a source file, then prints its
// diagnostics. recordHistory additionally appends the run to the
// configured history store when one is enabled.
func runParse(args []string, recordHistory bool) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "expected a source file path")
		os.Exit(1)
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(1)
	}

	started := time.Now()
	ctx := pipeline.Standard().Run(&pipeline.Context{File: path, Source: string(data)})

	colorize := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, e := range ctx.Errs {
		printDiagnostic(e, colorize)
	}

	if recordHistory {
		recordRun(path, started, len(ctx.Errs))
	}

	if len(ctx.Errs) > 0 {
		os.Exit(1)
	}
}

// printDiagnostic prints a diagnostic's own Error() string, which already
// carries the file:line:col prefix (internal/diagnostics.Error.Error()).
func printDiagnostic(e error, colorize bool) {
	if colorize {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", e.Error())
		return
	}
	fmt.Fprintln(os.Stderr, e.Error())
}

func recordRun(path string, started time.Time, diagnosticCount int) {
	cfg, err := config.Load("cardlang.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return
	}
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening history store: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Append(path, started, diagnosticCount); err != nil {
		fmt.Fprintf(os.Stderr, "recording history: %v\n", err)
	}
}

func runHistory(args []string) {
	cfg, err := config.Load("cardlang.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening history store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	runs, err := store.Recent(path, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "querying history: %v\n", err)
		os.Exit(1)
	}
	for _, run := range runs {
		fmt.Printf("%s  %s  %s  %d diagnostics\n", run.ID, run.StartedAt.Format(time.RFC3339), run.FilePath, run.DiagnosticCount)
	}
}
