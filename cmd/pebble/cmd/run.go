package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/GaryLuck/pebble/eval"
	"github.com/GaryLuck/pebble/lexer"
	"github.com/GaryLuck/pebble/parser"
	"github.com/GaryLuck/pebble/pebbleerr"
)

var errColor = color.New(color.FgRed, color.Bold)

// classify maps a fatal error to the diagnostic prefix spec §6.2 requires.
func classify(err error) string {
	switch {
	case errors.Is(err, pebbleerr.Lex):
		return "Lexer Error:"
	case errors.Is(err, pebbleerr.Parse):
		return "Parse Error:"
	default:
		return "Runtime Error:"
	}
}

// runPebble lexes, parses, and evaluates the source file at path against
// stdout/stdin. It is the testable core of the run command: plain error
// return, no process exit, so tests can drive it directly the way
// CWBudde-go-dws's run_unit_test.go drives runScript directly and
// captures its output, rather than spawning the binary.
func runPebble(stdout io.Writer, stdin io.Reader, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(lexer.New(string(src)))
	if err != nil {
		return err
	}

	ev := eval.New(stdout, stdin)
	return ev.Run(prog)
}

// runFile is the RunE body for the root command: it drives runPebble and
// is the one place that turns a fatal error into the colorized
// "<Category> Error:" diagnostic on stderr and a nonzero exit (spec §6.2).
func runFile(c *cobra.Command, path string) error {
	if err := runPebble(os.Stdout, os.Stdin, path); err != nil {
		errColor.Fprintf(os.Stderr, "%s %v\n", classify(err), err)
		os.Exit(1)
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "pebble: execution finished")
	}
	return nil
}
