package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaryLuck/pebble/ast"
	"github.com/GaryLuck/pebble/lexer"
)

func parseSrc(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(lexer.New(src))
	require.NoError(t, err)
	return prog
}

func TestParse_VarDecl(t *testing.T) {
	prog := parseSrc(t, "int x = 5;")
	require.Len(t, prog.Declarations, 1)
	decl, ok := prog.Declarations[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, ast.TypeInt, decl.Type)
	assert.Equal(t, "x", decl.Name)
	lit, ok := decl.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 5, lit.IntVal)
}

func TestParse_ArrayDeclWithSize(t *testing.T) {
	prog := parseSrc(t, "int[5] a;")
	decl := prog.Declarations[0].(*ast.ArrayDecl)
	assert.Equal(t, "a", decl.Name)
	require.NotNil(t, decl.Size)
	assert.Nil(t, decl.Initializers)
}

func TestParse_ArrayDeclWithValues(t *testing.T) {
	prog := parseSrc(t, "int[] a = {1, 2, 3};")
	decl := prog.Declarations[0].(*ast.ArrayDecl)
	assert.Nil(t, decl.Size)
	require.Len(t, decl.Initializers, 3)
}

func TestParse_FunctionDecl(t *testing.T) {
	prog := parseSrc(t, "int add(int a, int b) { return a + b; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, ast.TypeInt, fn.ReturnType)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body.Statements, 1)
}

func TestParse_AssignVsExprStmt(t *testing.T) {
	prog := parseSrc(t, "void main() { int x = 0; x = 1; foo(); }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	_, isAssign := fn.Body.Statements[1].(*ast.Assign)
	assert.True(t, isAssign)
	_, isExprStmt := fn.Body.Statements[2].(*ast.ExprStmt)
	assert.True(t, isExprStmt)
}

func TestParse_ArrayAssignment(t *testing.T) {
	prog := parseSrc(t, "void main() { int[3] a; a[0] = 9; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	assign := fn.Body.Statements[1].(*ast.Assign)
	assert.Equal(t, "a", assign.TargetName)
	assert.NotNil(t, assign.Index)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, err := Parse(lexer.New("void main() { 1 + 2 = 3; }"))
	assert.Error(t, err)
}

func TestParse_Precedence(t *testing.T) {
	prog := parseSrc(t, "void main() { int x = 1 + 2 * 3; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	top := decl.Initializer.(*ast.BinOp)
	assert.Equal(t, lexer.PLUS, top.OpKind)
	right := top.Right.(*ast.BinOp)
	assert.Equal(t, lexer.MUL, right.OpKind)
}

func TestParse_DanglingElseBindsToNearestIf(t *testing.T) {
	prog := parseSrc(t, "void main() { if (1) if (2) x = 1; else x = 2; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	outer := fn.Body.Statements[0].(*ast.If)
	inner := outer.Then.(*ast.If)
	assert.Nil(t, outer.Else)
	assert.NotNil(t, inner.Else)
}

func TestParse_ForHeaderVariants(t *testing.T) {
	prog := parseSrc(t, "void main() { for (int i = 0; i < 3; i = i + 1) print(i); }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Statements[0].(*ast.For)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Condition)
	require.NotNil(t, forStmt.Update)
}

func TestParse_ForWithNoCondition(t *testing.T) {
	prog := parseSrc(t, "void main() { for (;;) return; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Statements[0].(*ast.For)
	assert.Nil(t, forStmt.Init)
	assert.Nil(t, forStmt.Condition)
	assert.Nil(t, forStmt.Update)
}

func TestParse_UnexpectedTokenIsFatal(t *testing.T) {
	_, err := Parse(lexer.New("int x = ;"))
	assert.Error(t, err)
}

func TestParse_MissingDelimiterIsFatal(t *testing.T) {
	_, err := Parse(lexer.New("void main() { print(1); "))
	assert.Error(t, err)
}

func TestParse_Determinism(t *testing.T) {
	src := "int fib(int n){if(n<=1)return n;return fib(n-1)+fib(n-2);}"
	a := parseSrc(t, src)
	b := parseSrc(t, src)
	assert.Equal(t, a, b)
}
