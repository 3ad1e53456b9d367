package eval

import (
	"github.com/GaryLuck/pebble/ast"
	"github.com/GaryLuck/pebble/builtin"
	"github.com/GaryLuck/pebble/env"
	"github.com/GaryLuck/pebble/lexer"
	"github.com/GaryLuck/pebble/pebbleerr"
	"github.com/GaryLuck/pebble/value"
)

// evalExpr dispatches on expr's concrete type and returns its Value.
func (e *Evaluator) evalExpr(expr ast.Expr, frame *env.Env) (value.Value, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(ex), nil
	case *ast.Var:
		v, ok := frame.Get(ex.Name)
		if !ok {
			return nil, pebbleerr.Runtimef("undefined variable '%s'", ex.Name)
		}
		return v, nil
	case *ast.ArrayAccess:
		return e.evalArrayAccess(ex, frame)
	case *ast.UnaryOp:
		return e.evalUnaryOp(ex, frame)
	case *ast.BinOp:
		return e.evalBinOp(ex, frame)
	case *ast.Call:
		return e.evalCall(ex, frame)
	default:
		return nil, pebbleerr.Runtimef("unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteral(l *ast.Literal) value.Value {
	switch l.Kind {
	case ast.LiteralInt:
		return value.Int(l.IntVal)
	case ast.LiteralString:
		return value.Text(l.StrVal)
	case ast.LiteralBool:
		return value.Bool(l.BoolVal)
	default:
		return value.Void{}
	}
}

func (e *Evaluator) evalArrayAccess(a *ast.ArrayAccess, frame *env.Env) (value.Value, error) {
	arrVal, ok := frame.Get(a.Name)
	if !ok {
		return nil, pebbleerr.Runtimef("undefined variable '%s'", a.Name)
	}
	arr, ok := arrVal.(value.Array)
	if !ok {
		return nil, pebbleerr.Runtimef("variable '%s' is not an array", a.Name)
	}
	idxVal, err := e.evalExpr(a.Index, frame)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return nil, pebbleerr.Runtimef("array index must be an integer")
	}
	if int(idx) < 0 || int(idx) >= arr.Len() {
		return nil, pebbleerr.Runtimef("array index out of bounds: %d", idx)
	}
	return arr.Get(int(idx)), nil
}

func (e *Evaluator) evalUnaryOp(u *ast.UnaryOp, frame *env.Env) (value.Value, error) {
	v, err := e.evalExpr(u.Operand, frame)
	if err != nil {
		return nil, err
	}
	switch u.OpKind {
	case lexer.NOT:
		return value.Bool(!value.Truthy(v)), nil
	case lexer.MINUS:
		i, ok := v.(value.Int)
		if !ok {
			return nil, pebbleerr.Runtimef("unary - requires an integer operand, got %s", v.Kind())
		}
		return -i, nil
	case lexer.PLUS:
		i, ok := v.(value.Int)
		if !ok {
			return nil, pebbleerr.Runtimef("unary + requires an integer operand, got %s", v.Kind())
		}
		return i, nil
	default:
		return nil, pebbleerr.Runtimef("unhandled unary operator %s", u.OpKind)
	}
}

// evalBinOp implements spec §4.3's expression semantics table: short-
// circuit && / ||, string-coercing +, truncated integer division, value
// equality across all scalar kinds, and numeric/lexicographic ordering.
func (e *Evaluator) evalBinOp(b *ast.BinOp, frame *env.Env) (value.Value, error) {
	if b.OpKind == lexer.AND {
		left, err := e.evalExpr(b.Left, frame)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return value.Bool(false), nil
		}
		right, err := e.evalExpr(b.Right, frame)
		if err != nil {
			return nil, err
		}
		return value.Bool(value.Truthy(right)), nil
	}
	if b.OpKind == lexer.OR {
		left, err := e.evalExpr(b.Left, frame)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return value.Bool(true), nil
		}
		right, err := e.evalExpr(b.Right, frame)
		if err != nil {
			return nil, err
		}
		return value.Bool(value.Truthy(right)), nil
	}

	left, err := e.evalExpr(b.Left, frame)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(b.Right, frame)
	if err != nil {
		return nil, err
	}

	switch b.OpKind {
	case lexer.PLUS:
		return evalPlus(left, right)
	case lexer.MINUS, lexer.MUL, lexer.DIV, lexer.MOD:
		return evalArith(b.OpKind, left, right)
	case lexer.EQ:
		return value.Bool(valuesEqual(left, right)), nil
	case lexer.NEQ:
		return value.Bool(!valuesEqual(left, right)), nil
	case lexer.LT, lexer.LTE, lexer.GT, lexer.GTE:
		return evalCompare(b.OpKind, left, right)
	default:
		return nil, pebbleerr.Runtimef("unhandled binary operator %s", b.OpKind)
	}
}

// evalPlus coerces either operand's printed form and concatenates when
// either side is a string; otherwise it requires two integers.
func evalPlus(left, right value.Value) (value.Value, error) {
	if left.Kind() == value.KindText || right.Kind() == value.KindText {
		return value.Text(left.String() + right.String()), nil
	}
	li, lok := left.(value.Int)
	ri, rok := right.(value.Int)
	if !lok || !rok {
		return nil, pebbleerr.Runtimef("cannot apply + to %s and %s", left.Kind(), right.Kind())
	}
	return li + ri, nil
}

func evalArith(op lexer.TokenType, left, right value.Value) (value.Value, error) {
	li, lok := left.(value.Int)
	ri, rok := right.(value.Int)
	if !lok || !rok {
		return nil, pebbleerr.Runtimef("cannot apply %s to %s and %s", op, left.Kind(), right.Kind())
	}
	switch op {
	case lexer.MINUS:
		return li - ri, nil
	case lexer.MUL:
		return li * ri, nil
	case lexer.DIV:
		if ri == 0 {
			return nil, pebbleerr.Runtimef("division by zero")
		}
		// Go's integer division already truncates toward zero.
		return li / ri, nil
	case lexer.MOD:
		if ri == 0 {
			return nil, pebbleerr.Runtimef("division by zero")
		}
		// Floor mod, matching the original's Python `%` (sign follows the
		// divisor), not Go's native `%` (sign follows the dividend).
		r := li % ri
		if r != 0 && (r < 0) != (ri < 0) {
			r += ri
		}
		return r, nil
	default:
		return nil, pebbleerr.Runtimef("unhandled arithmetic operator %s", op)
	}
}

// valuesEqual compares by value: integers numerically, booleans
// structurally, strings character-wise; cross-type comparisons are false
// rather than an error (spec §4.3).
func valuesEqual(left, right value.Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case value.Int:
		return l == right.(value.Int)
	case value.Text:
		return l == right.(value.Text)
	case value.Bool:
		return l == right.(value.Bool)
	default:
		return false
	}
}

func evalCompare(op lexer.TokenType, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, value.TypeMismatch(string(op), left, right)
		}
		return value.Bool(compareInts(op, int64(l), int64(r))), nil
	case value.Text:
		r, ok := right.(value.Text)
		if !ok {
			return nil, value.TypeMismatch(string(op), left, right)
		}
		return value.Bool(compareStrings(op, string(l), string(r))), nil
	default:
		return nil, value.TypeMismatch(string(op), left, right)
	}
}

func compareInts(op lexer.TokenType, l, r int64) bool {
	switch op {
	case lexer.LT:
		return l < r
	case lexer.LTE:
		return l <= r
	case lexer.GT:
		return l > r
	case lexer.GTE:
		return l >= r
	}
	return false
}

func compareStrings(op lexer.TokenType, l, r string) bool {
	switch op {
	case lexer.LT:
		return l < r
	case lexer.LTE:
		return l <= r
	case lexer.GT:
		return l > r
	case lexer.GTE:
		return l >= r
	}
	return false
}

// evalCall dispatches through the built-in table first, then the user
// function table (spec §4.4): a built-in name is never shadowable.
func (e *Evaluator) evalCall(c *ast.Call, frame *env.Env) (value.Value, error) {
	args := make([]value.Value, len(c.Args))
	for i, argExpr := range c.Args {
		v, err := e.evalExpr(argExpr, frame)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn, ok := builtin.Table[c.Name]; ok {
		return fn(e, args)
	}

	fn, ok := e.functions[c.Name]
	if !ok {
		return nil, pebbleerr.Runtimef("undefined function '%s'", c.Name)
	}
	return e.callFunction(fn, args)
}
