// Package eval implements Pebble's tree-walking evaluator (spec §4.3). It
// keys dispatch on the AST node's concrete type via a Go type switch —
// the mechanism the teacher's own Eval actually uses under its unused
// Visitor/Accept machinery, confirmed by reading eval/eval_expressions.go
// in the teacher repo.
package eval

import (
	"bufio"
	"io"

	"github.com/GaryLuck/pebble/ast"
	"github.com/GaryLuck/pebble/env"
	"github.com/GaryLuck/pebble/pebbleerr"
	"github.com/GaryLuck/pebble/value"
)

// Evaluator walks a Program's AST against a chain of environment frames.
// It implements builtin.Runtime so the built-in table can write to stdout
// and read from stdin through it.
type Evaluator struct {
	functions map[string]*ast.FunctionDecl
	global    *env.Env
	out       io.Writer
	in        *bufio.Reader
}

// New creates an Evaluator writing to out and reading from in.
func New(out io.Writer, in io.Reader) *Evaluator {
	return &Evaluator{
		functions: make(map[string]*ast.FunctionDecl),
		global:    env.New(nil),
		out:       out,
		in:        bufio.NewReader(in),
	}
}

// Stdout implements builtin.Runtime.
func (e *Evaluator) Stdout() io.Writer { return e.out }

// ReadLine implements builtin.Runtime.
func (e *Evaluator) ReadLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", io.EOF
	}
	return line, nil
}

// outcome is the "Continue | Returning(Value)" control-outcome sum of
// spec §9: a portable replacement for the reference's exception-based
// return ascent. Blocks and loops propagate a returning outcome
// unchanged; a function call is the only place that consumes one.
type outcome struct {
	returning bool
	value     value.Value
}

var cont = outcome{}

func returning(v value.Value) outcome { return outcome{returning: true, value: v} }

// Run executes prog: it registers every function, evaluates top-level
// var/array declarations in source order against the global frame, then
// calls main with no arguments and discards its return (spec §4.3).
func (e *Evaluator) Run(prog *ast.Program) error {
	for _, decl := range prog.Declarations {
		if fn, ok := decl.(*ast.FunctionDecl); ok {
			e.functions[fn.Name] = fn
		}
	}
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.VarDecl:
			if _, err := e.evalVarDecl(d, e.global); err != nil {
				return err
			}
		case *ast.ArrayDecl:
			if _, err := e.evalArrayDecl(d, e.global); err != nil {
				return err
			}
		}
	}

	main, ok := e.functions["main"]
	if !ok {
		return pebbleerr.Runtimef("no main function found")
	}
	if len(main.Params) != 0 {
		return pebbleerr.Runtimef("main must declare zero parameters")
	}
	_, err := e.callFunction(main, nil)
	return err
}

// callFunction arity-checks, pushes a fresh frame enclosed by the global
// frame (never the caller's frame — functions are not lexically nested,
// spec §4.3), binds parameters, evaluates the body, and unwraps a
// returning outcome into its value.
func (e *Evaluator) callFunction(fn *ast.FunctionDecl, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, pebbleerr.Runtimef("function %s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	frame := env.New(e.global)
	for i, param := range fn.Params {
		frame.Define(param.Name, args[i])
	}

	out, err := e.evalBlockIn(fn.Body, frame)
	if err != nil {
		return nil, err
	}
	if out.returning {
		if out.value == nil {
			return value.Void{}, nil
		}
		return out.value, nil
	}
	return value.Void{}, nil
}

// evalBlock pushes a new frame enclosing parent, evaluates each statement
// in order, and pops on any exit (spec §4.3's "push/pop on any exit,
// including through a return" is satisfied automatically in Go since the
// child frame is simply discarded when evalBlock returns).
func (e *Evaluator) evalBlock(b *ast.Block, parent *env.Env) (outcome, error) {
	return e.evalBlockIn(b, env.New(parent))
}

// evalBlockIn evaluates b's statements directly in frame, used both by
// evalBlock (fresh child frame) and callFunction (the call frame that
// already holds the bound parameters).
func (e *Evaluator) evalBlockIn(b *ast.Block, frame *env.Env) (outcome, error) {
	for _, stmt := range b.Statements {
		out, err := e.evalStatement(stmt, frame)
		if err != nil {
			return outcome{}, err
		}
		if out.returning {
			return out, nil
		}
	}
	return cont, nil
}
