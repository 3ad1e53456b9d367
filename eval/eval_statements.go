package eval

import (
	"github.com/GaryLuck/pebble/ast"
	"github.com/GaryLuck/pebble/env"
	"github.com/GaryLuck/pebble/pebbleerr"
	"github.com/GaryLuck/pebble/value"
)

// evalStatement dispatches on stmt's concrete type and returns the
// resulting control outcome.
func (e *Evaluator) evalStatement(stmt ast.Statement, frame *env.Env) (outcome, error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return e.evalVarDecl(s, frame)
	case *ast.ArrayDecl:
		return e.evalArrayDecl(s, frame)
	case *ast.Block:
		return e.evalBlock(s, frame)
	case *ast.Assign:
		return e.evalAssign(s, frame)
	case *ast.If:
		return e.evalIf(s, frame)
	case *ast.While:
		return e.evalWhile(s, frame)
	case *ast.For:
		return e.evalFor(s, frame)
	case *ast.Return:
		return e.evalReturn(s, frame)
	case *ast.ExprStmt:
		if _, err := e.evalExpr(s.Expr, frame); err != nil {
			return outcome{}, err
		}
		return cont, nil
	default:
		return outcome{}, pebbleerr.Runtimef("unhandled statement type %T", stmt)
	}
}

func defaultValue(typ ast.TypeName) value.Value {
	switch typ {
	case ast.TypeInt:
		return value.Int(0)
	case ast.TypeString:
		return value.Text("")
	case ast.TypeBool:
		return value.Bool(false)
	default:
		return value.Void{}
	}
}

// evalVarDecl defines name in frame: the initializer's value if present,
// otherwise the type's zero value (spec §4.3).
func (e *Evaluator) evalVarDecl(d *ast.VarDecl, frame *env.Env) (outcome, error) {
	var v value.Value
	if d.Initializer != nil {
		var err error
		v, err = e.evalExpr(d.Initializer, frame)
		if err != nil {
			return outcome{}, err
		}
	} else {
		v = defaultValue(d.Type)
	}
	frame.Define(d.Name, v)
	return cont, nil
}

// evalArrayDecl defines name as an Array in frame: sized with the element
// default repeated, or built from an evaluated initializer list.
func (e *Evaluator) evalArrayDecl(d *ast.ArrayDecl, frame *env.Env) (outcome, error) {
	if d.Initializers != nil {
		elems := make([]value.Value, len(d.Initializers))
		for i, initExpr := range d.Initializers {
			v, err := e.evalExpr(initExpr, frame)
			if err != nil {
				return outcome{}, err
			}
			elems[i] = v
		}
		frame.Define(d.Name, value.NewArray(elems))
		return cont, nil
	}

	sizeVal, err := e.evalExpr(d.Size, frame)
	if err != nil {
		return outcome{}, err
	}
	size, ok := sizeVal.(value.Int)
	if !ok {
		return outcome{}, pebbleerr.Runtimef("array size must be an integer")
	}
	elemDefault := defaultValue(d.Type)
	elems := make([]value.Value, int(size))
	for i := range elems {
		elems[i] = elemDefault
	}
	frame.Define(d.Name, value.NewArray(elems))
	return cont, nil
}

// evalAssign mutates an existing binding: a scalar reassignment via
// Env.Assign, or an in-place array element mutation after a bounds check.
func (e *Evaluator) evalAssign(a *ast.Assign, frame *env.Env) (outcome, error) {
	v, err := e.evalExpr(a.Value, frame)
	if err != nil {
		return outcome{}, err
	}

	if a.Index == nil {
		if !frame.Assign(a.TargetName, v) {
			return outcome{}, pebbleerr.Runtimef("undefined variable '%s'", a.TargetName)
		}
		return cont, nil
	}

	idxVal, err := e.evalExpr(a.Index, frame)
	if err != nil {
		return outcome{}, err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return outcome{}, pebbleerr.Runtimef("array index must be an integer")
	}
	arrVal, found := frame.Get(a.TargetName)
	if !found {
		return outcome{}, pebbleerr.Runtimef("undefined variable '%s'", a.TargetName)
	}
	arr, ok := arrVal.(value.Array)
	if !ok {
		return outcome{}, pebbleerr.Runtimef("variable '%s' is not an array", a.TargetName)
	}
	if int(idx) < 0 || int(idx) >= arr.Len() {
		return outcome{}, pebbleerr.Runtimef("array index out of bounds: %d", idx)
	}
	arr.Set(int(idx), v)
	return cont, nil
}

func (e *Evaluator) evalIf(s *ast.If, frame *env.Env) (outcome, error) {
	cond, err := e.evalExpr(s.Condition, frame)
	if err != nil {
		return outcome{}, err
	}
	if value.Truthy(cond) {
		return e.evalStatement(s.Then, frame)
	}
	if s.Else != nil {
		return e.evalStatement(s.Else, frame)
	}
	return cont, nil
}

func (e *Evaluator) evalWhile(s *ast.While, frame *env.Env) (outcome, error) {
	for {
		cond, err := e.evalExpr(s.Condition, frame)
		if err != nil {
			return outcome{}, err
		}
		if !value.Truthy(cond) {
			return cont, nil
		}
		out, err := e.evalStatement(s.Body, frame)
		if err != nil {
			return outcome{}, err
		}
		if out.returning {
			return out, nil
		}
	}
}

// evalFor evaluates init once in a dedicated loop frame enclosing the
// caller's frame, so a variable declared in init is scoped to the loop
// (spec §4.3), then repeats condition/body/update against that same frame.
func (e *Evaluator) evalFor(s *ast.For, frame *env.Env) (outcome, error) {
	loopFrame := env.New(frame)

	if s.Init != nil {
		if _, err := e.evalStatement(s.Init, loopFrame); err != nil {
			return outcome{}, err
		}
	}

	for {
		if s.Condition != nil {
			cond, err := e.evalExpr(s.Condition, loopFrame)
			if err != nil {
				return outcome{}, err
			}
			if !value.Truthy(cond) {
				return cont, nil
			}
		}

		out, err := e.evalStatement(s.Body, loopFrame)
		if err != nil {
			return outcome{}, err
		}
		if out.returning {
			return out, nil
		}

		if s.Update != nil {
			if _, err := e.evalStatement(s.Update, loopFrame); err != nil {
				return outcome{}, err
			}
		}
	}
}

func (e *Evaluator) evalReturn(s *ast.Return, frame *env.Env) (outcome, error) {
	if s.Value == nil {
		return returning(value.Void{}), nil
	}
	v, err := e.evalExpr(s.Value, frame)
	if err != nil {
		return outcome{}, err
	}
	return returning(v), nil
}
