// Package cmd implements the pebble command-line surface (spec §6.2),
// following the cobra subcommand structure used by the sibling example
// repo CWBudde-go-dws's cmd/dwscript/cmd package: a root command with a
// persistent --verbose flag, and one subcommand per pipeline stage one
// might want to inspect in isolation.
package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pebble <file>",
	Short: "Pebble language lexer, parser, and evaluator",
	Long: `pebble runs programs written in the Pebble language: a small
statically-typed, dynamically-executed procedural language with no
compilation step. "pebble <file>" lexes, parses, and evaluates a source
file directly, per spec §6.2; "pebble lex"/"pebble parse" expose the
earlier pipeline stages for debugging.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runFile(c, args[0])
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic detail to stderr")
}
