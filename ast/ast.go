// Package ast defines Pebble's abstract syntax tree. Nodes are immutable
// once constructed (spec §3): every field is set at construction time by
// the parser and never mutated afterward, unlike the teacher's own node
// types which fold constant values into the tree during parsing.
package ast

import "github.com/GaryLuck/pebble/lexer"

// Node is the root of the AST sum type. It carries nothing but a marker
// method; the evaluator dispatches on concrete type via a type switch,
// the same mechanism the teacher's Eval actually uses under its unused
// Visitor interface.
type Node interface {
	node()
}

// TopDecl is a top-level declaration: VarDecl, ArrayDecl, or FunctionDecl.
type TopDecl interface {
	Node
	topDecl()
}

// Statement is any statement inside a Block or loop/if body.
type Statement interface {
	Node
	statement()
}

// Expr is any expression.
type Expr interface {
	Node
	expr()
}

// Program is the root node: the ordered sequence of top-level declarations.
type Program struct {
	Declarations []TopDecl
}

func (*Program) node() {}

// TypeName is one of "int", "string", "bool", "void".
type TypeName string

const (
	TypeInt    TypeName = "int"
	TypeString TypeName = "string"
	TypeBool   TypeName = "bool"
	TypeVoid   TypeName = "void"
)

// VarDecl declares a single scalar variable, optionally with an initializer.
type VarDecl struct {
	Type        TypeName
	Name        string
	Initializer Expr // nil if absent
}

func (*VarDecl) node()     {}
func (*VarDecl) topDecl()  {}
func (*VarDecl) statement() {}

// ArrayDecl declares an array variable. Exactly one of Size or Initializers
// is non-nil.
type ArrayDecl struct {
	Type         TypeName
	Name         string
	Size         Expr   // literal size expression, or nil
	Initializers []Expr // initializer list, or nil
}

func (*ArrayDecl) node()     {}
func (*ArrayDecl) topDecl()  {}
func (*ArrayDecl) statement() {}

// Param is one formal parameter of a FunctionDecl.
type Param struct {
	Type    TypeName
	Name    string
	IsArray bool
}

// FunctionDecl declares a named function with a fixed parameter list.
type FunctionDecl struct {
	ReturnType TypeName
	Name       string
	Params     []Param
	Body       *Block
}

func (*FunctionDecl) node()    {}
func (*FunctionDecl) topDecl() {}

// Block is a brace-delimited sequence of statements; evaluating one pushes
// and pops its own scope frame (spec §4.3).
type Block struct {
	Statements []Statement
}

func (*Block) node()      {}
func (*Block) statement() {}

// Assign is `name = value;` or `name[index] = value;`.
type Assign struct {
	TargetName string
	Index      Expr // nil for scalar assignment
	Value      Expr
}

func (*Assign) node()      {}
func (*Assign) statement() {}

// If is `if (condition) then_stmt [else else_stmt]`.
type If struct {
	Condition Expr
	Then      Statement
	Else      Statement // nil if absent
}

func (*If) node()      {}
func (*If) statement() {}

// While is `while (condition) body`.
type While struct {
	Condition Expr
	Body      Statement
}

func (*While) node()      {}
func (*While) statement() {}

// For is `for (init; condition; update) body`. Init and Update are
// themselves statements (VarDecl, Assign, or ExprStmt); any may be nil.
type For struct {
	Init      Statement
	Condition Expr // nil means "always true"
	Update    Statement
	Body      Statement
}

func (*For) node()      {}
func (*For) statement() {}

// Return is `return [value];`.
type Return struct {
	Value Expr // nil for a bare return
}

func (*Return) node()      {}
func (*Return) statement() {}

// ExprStmt is an expression evaluated for its side effect, e.g. a bare call.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) node()      {}
func (*ExprStmt) statement() {}

// BinOp is a binary expression; OpKind is the lexer token type of the
// operator (e.g. lexer.PLUS).
type BinOp struct {
	Left   Expr
	OpKind lexer.TokenType
	Right  Expr
}

func (*BinOp) node() {}
func (*BinOp) expr() {}

// UnaryOp is `+expr`, `-expr`, or `!expr`.
type UnaryOp struct {
	OpKind  lexer.TokenType
	Operand Expr
}

func (*UnaryOp) node() {}
func (*UnaryOp) expr() {}

// LiteralKind distinguishes the three literal value shapes.
type LiteralKind string

const (
	LiteralInt    LiteralKind = "int"
	LiteralString LiteralKind = "string"
	LiteralBool   LiteralKind = "bool"
)

// Literal is a constant int/string/bool appearing directly in source.
type Literal struct {
	Kind    LiteralKind
	IntVal  int
	StrVal  string
	BoolVal bool
}

func (*Literal) node() {}
func (*Literal) expr() {}

// Var is a bare identifier reference, resolved via outward scope walk.
type Var struct {
	Name string
}

func (*Var) node() {}
func (*Var) expr() {}

// ArrayAccess is `name[index]`.
type ArrayAccess struct {
	Name  string
	Index Expr
}

func (*ArrayAccess) node() {}
func (*ArrayAccess) expr() {}

// Call is `name(args...)`, dispatched through the built-in table first,
// then the user function table (spec §4.4).
type Call struct {
	Name string
	Args []Expr
}

func (*Call) node() {}
func (*Call) expr() {}
