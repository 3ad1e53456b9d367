package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaryLuck/pebble/ast"
	"github.com/GaryLuck/pebble/lexer"
	"github.com/GaryLuck/pebble/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the AST produced by the parser",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		prog, err := parser.Parse(lexer.New(string(src)))
		if err != nil {
			errColor.Fprintf(os.Stderr, "%s %v\n", classify(err), err)
			os.Exit(1)
		}
		printProgram(prog)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// printProgram renders prog as an indented tree, one declaration per line
// with nested blocks indented beneath it — a debug aid, not a serializer.
func printProgram(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		printNode(decl, 0)
	}
}

func printNode(n ast.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	switch d := n.(type) {
	case *ast.VarDecl:
		fmt.Printf("%sVarDecl %s %s\n", pad, d.Type, d.Name)
	case *ast.ArrayDecl:
		fmt.Printf("%sArrayDecl %s %s\n", pad, d.Type, d.Name)
	case *ast.FunctionDecl:
		fmt.Printf("%sFunctionDecl %s %s(%d params)\n", pad, d.ReturnType, d.Name, len(d.Params))
		printNode(d.Body, depth+1)
	case *ast.Block:
		fmt.Printf("%sBlock\n", pad)
		for _, s := range d.Statements {
			printNode(s, depth+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		printNode(d.Then, depth+1)
		if d.Else != nil {
			printNode(d.Else, depth+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		printNode(d.Body, depth+1)
	case *ast.For:
		fmt.Printf("%sFor\n", pad)
		printNode(d.Body, depth+1)
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", pad, d.TargetName)
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt\n", pad)
	default:
		fmt.Printf("%s%T\n", pad, d)
	}
}
