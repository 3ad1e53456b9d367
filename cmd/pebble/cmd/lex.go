package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GaryLuck/pebble/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the token stream produced by the lexer",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		l := lexer.New(string(src))
		for {
			tok, err := l.NextToken()
			if err != nil {
				errColor.Fprintf(os.Stderr, "Lexer Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(tok)
			if tok.Type == lexer.EOF {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
