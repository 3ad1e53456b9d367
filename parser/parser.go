// Package parser implements Pebble's hand-written recursive-descent parser
// (spec §4.2). It buffers a single current token and recovers from fatal
// parse errors at exactly one boundary — the public Parse function — using
// panic/recover internally, the same pattern text/template's own parser
// uses (see Tree.errorf/Tree.Parse in the Go standard library's template
// parser, confirmed in this corpus's josharian-gotmplfmt fork). No error
// is ever allowed to escape a helper via a second path: every parsing
// method either returns a node or panics with a parseError.
package parser

import (
	"github.com/GaryLuck/pebble/ast"
	"github.com/GaryLuck/pebble/lexer"
	"github.com/GaryLuck/pebble/pebbleerr"
)

// parseError is the panic payload used for internal fatal-error unwinding.
// It is never observed outside this package.
type parseError struct {
	err error
}

// Parser holds the lexer and the single buffered lookahead token.
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token
}

// New creates a Parser and primes curr with the first token. A lex error
// encountered while priming is returned immediately.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: l}
	tok, err := l.NextToken()
	if err != nil {
		return nil, err
	}
	p.curr = tok
	return p, nil
}

func (p *Parser) errorf(format string, args ...any) {
	pos := pebbleerr.Position{Line: p.curr.Line, Column: p.curr.Column}
	panic(parseError{err: pebbleerr.Parsef(pos, format, args...)})
}

// advance fetches the next token into curr, turning any lex error into a
// fatal parse-time panic so callers never need to thread a lex error
// through every grammar production.
func (p *Parser) advance() {
	tok, err := p.lex.NextToken()
	if err != nil {
		panic(parseError{err: err})
	}
	p.curr = tok
}

// eat verifies curr has the expected type, consumes it, and returns the
// consumed token; otherwise it raises a fatal parse error naming what was
// expected and what was found.
func (p *Parser) eat(tt lexer.TokenType) lexer.Token {
	if p.curr.Type != tt {
		p.errorf("expected %s, got %s %q", tt, p.curr.Type, p.curr.Literal)
	}
	tok := p.curr
	p.advance()
	return tok
}

// Parse runs the parser to completion, returning the Program tree or the
// first fatal parse/lex error encountered. This is the single recovery
// point for the panic/recover mechanism used throughout the package.
func Parse(l *lexer.Lexer) (prog *ast.Program, err error) {
	p, err := New(l)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			prog, err = nil, pe.err
		}
	}()
	return p.program(), nil
}

func (p *Parser) program() *ast.Program {
	var decls []ast.TopDecl
	for p.curr.Type != lexer.EOF {
		decls = append(decls, p.declaration())
	}
	return &ast.Program{Declarations: decls}
}

func (p *Parser) typeSpec() ast.TypeName {
	switch p.curr.Type {
	case lexer.INT:
		p.advance()
		return ast.TypeInt
	case lexer.STRING:
		p.advance()
		return ast.TypeString
	case lexer.BOOL:
		p.advance()
		return ast.TypeBool
	case lexer.VOID:
		p.advance()
		return ast.TypeVoid
	default:
		p.errorf("expected a type, got %s %q", p.curr.Type, p.curr.Literal)
		panic("unreachable")
	}
}

// declaration ::= type ( array_decl | ident ( fn_decl | var_tail ) )
func (p *Parser) declaration() ast.TopDecl {
	typ := p.typeSpec()

	if p.curr.Type == lexer.LBRACKET {
		return p.arrayDecl(typ)
	}

	name := p.eat(lexer.IDENTIFIER).Literal
	if p.curr.Type == lexer.LPAREN {
		return p.functionDecl(typ, name)
	}
	return p.variableDecl(typ, name)
}

func (p *Parser) arrayDecl(typ ast.TypeName) *ast.ArrayDecl {
	p.eat(lexer.LBRACKET)
	if p.curr.Type == lexer.RBRACKET {
		// type [] name = { expr, ... } ;
		p.eat(lexer.RBRACKET)
		name := p.eat(lexer.IDENTIFIER).Literal
		p.eat(lexer.ASSIGN)
		p.eat(lexer.LBRACE)
		values := []ast.Expr{}
		if p.curr.Type != lexer.RBRACE {
			values = append(values, p.expr())
			for p.curr.Type == lexer.COMMA {
				p.advance()
				values = append(values, p.expr())
			}
		}
		p.eat(lexer.RBRACE)
		p.eat(lexer.SEMI)
		return &ast.ArrayDecl{Type: typ, Name: name, Initializers: values}
	}

	// type [size] name ;
	sizeTok := p.eat(lexer.INTEGER_LIT)
	size := &ast.Literal{Kind: ast.LiteralInt, IntVal: sizeTok.IntValue}
	p.eat(lexer.RBRACKET)
	name := p.eat(lexer.IDENTIFIER).Literal
	p.eat(lexer.SEMI)
	return &ast.ArrayDecl{Type: typ, Name: name, Size: size}
}

func (p *Parser) functionDecl(retType ast.TypeName, name string) *ast.FunctionDecl {
	p.eat(lexer.LPAREN)
	var params []ast.Param
	if p.curr.Type != lexer.RPAREN {
		params = append(params, p.param())
		for p.curr.Type == lexer.COMMA {
			p.advance()
			params = append(params, p.param())
		}
	}
	p.eat(lexer.RPAREN)
	body := p.block()
	return &ast.FunctionDecl{ReturnType: retType, Name: name, Params: params, Body: body}
}

func (p *Parser) param() ast.Param {
	typ := p.typeSpec()
	name := p.eat(lexer.IDENTIFIER).Literal
	isArray := false
	if p.curr.Type == lexer.LBRACKET {
		p.advance()
		p.eat(lexer.RBRACKET)
		isArray = true
	}
	return ast.Param{Type: typ, Name: name, IsArray: isArray}
}

func (p *Parser) variableDecl(typ ast.TypeName, name string) *ast.VarDecl {
	var init ast.Expr
	if p.curr.Type == lexer.ASSIGN {
		p.advance()
		init = p.expr()
	}
	p.eat(lexer.SEMI)
	return &ast.VarDecl{Type: typ, Name: name, Initializer: init}
}

func (p *Parser) block() *ast.Block {
	p.eat(lexer.LBRACE)
	var stmts []ast.Statement
	for p.curr.Type != lexer.RBRACE && p.curr.Type != lexer.EOF {
		stmts = append(stmts, p.statement())
	}
	p.eat(lexer.RBRACE)
	return &ast.Block{Statements: stmts}
}

func (p *Parser) isTypeToken() bool {
	switch p.curr.Type {
	case lexer.INT, lexer.STRING, lexer.BOOL, lexer.VOID:
		return true
	}
	return false
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.isTypeToken():
		typ := p.typeSpec()
		if p.curr.Type == lexer.LBRACKET {
			return p.arrayDecl(typ)
		}
		name := p.eat(lexer.IDENTIFIER).Literal
		return p.variableDecl(typ, name)
	case p.curr.Type == lexer.LBRACE:
		return p.block()
	case p.curr.Type == lexer.IF:
		return p.ifStmt()
	case p.curr.Type == lexer.WHILE:
		return p.whileStmt()
	case p.curr.Type == lexer.FOR:
		return p.forStmt()
	case p.curr.Type == lexer.RETURN:
		return p.returnStmt()
	default:
		return p.exprOrAssignStmt()
	}
}

// exprOrAssignStmt parses a full expression, then decides whether it is an
// assignment (next token is `=` and the expression is a valid target) or a
// plain expression statement. This single rule replaces any dedicated
// assignment-vs-call lookahead (spec §4.2).
func (p *Parser) exprOrAssignStmt() ast.Statement {
	e := p.expr()
	if p.curr.Type == lexer.ASSIGN {
		p.advance()
		value := p.expr()
		p.eat(lexer.SEMI)
		return p.toAssign(e, value)
	}
	p.eat(lexer.SEMI)
	return &ast.ExprStmt{Expr: e}
}

func (p *Parser) toAssign(target ast.Expr, value ast.Expr) *ast.Assign {
	switch t := target.(type) {
	case *ast.Var:
		return &ast.Assign{TargetName: t.Name, Value: value}
	case *ast.ArrayAccess:
		return &ast.Assign{TargetName: t.Name, Index: t.Index, Value: value}
	default:
		p.errorf("invalid assignment target")
		panic("unreachable")
	}
}

func (p *Parser) ifStmt() *ast.If {
	p.eat(lexer.IF)
	p.eat(lexer.LPAREN)
	cond := p.expr()
	p.eat(lexer.RPAREN)
	then := p.statement()
	var els ast.Statement
	if p.curr.Type == lexer.ELSE {
		p.advance()
		els = p.statement()
	}
	return &ast.If{Condition: cond, Then: then, Else: els}
}

func (p *Parser) whileStmt() *ast.While {
	p.eat(lexer.WHILE)
	p.eat(lexer.LPAREN)
	cond := p.expr()
	p.eat(lexer.RPAREN)
	body := p.statement()
	return &ast.While{Condition: cond, Body: body}
}

// forStmt parses `for (init? ; cond? ; update?) body` per spec §4.2: init
// consumes its own trailing `;` (or is a lone `;` meaning no init); the
// update has no trailing `;`, since `)` closes the header.
func (p *Parser) forStmt() *ast.For {
	p.eat(lexer.FOR)
	p.eat(lexer.LPAREN)

	var init ast.Statement
	switch {
	case p.curr.Type == lexer.SEMI:
		p.advance()
	case p.isTypeToken():
		typ := p.typeSpec()
		name := p.eat(lexer.IDENTIFIER).Literal
		init = p.variableDecl(typ, name)
	default:
		e := p.expr()
		if p.curr.Type == lexer.ASSIGN {
			p.advance()
			value := p.expr()
			p.eat(lexer.SEMI)
			init = p.toAssign(e, value)
		} else {
			p.eat(lexer.SEMI)
			init = &ast.ExprStmt{Expr: e}
		}
	}

	var cond ast.Expr
	if p.curr.Type != lexer.SEMI {
		cond = p.expr()
	}
	p.eat(lexer.SEMI)

	var update ast.Statement
	if p.curr.Type != lexer.RPAREN {
		e := p.expr()
		if p.curr.Type == lexer.ASSIGN {
			p.advance()
			value := p.expr()
			update = p.toAssign(e, value)
		} else {
			update = &ast.ExprStmt{Expr: e}
		}
	}
	p.eat(lexer.RPAREN)
	body := p.statement()
	return &ast.For{Init: init, Condition: cond, Update: update, Body: body}
}

func (p *Parser) returnStmt() *ast.Return {
	p.eat(lexer.RETURN)
	var value ast.Expr
	if p.curr.Type != lexer.SEMI {
		value = p.expr()
	}
	p.eat(lexer.SEMI)
	return &ast.Return{Value: value}
}

// Expression grammar, lowest to highest precedence (spec §4.2 table).

func (p *Parser) expr() ast.Expr { return p.logicOr() }

func (p *Parser) logicOr() ast.Expr {
	node := p.logicAnd()
	for p.curr.Type == lexer.OR {
		op := p.curr.Type
		p.advance()
		node = &ast.BinOp{Left: node, OpKind: op, Right: p.logicAnd()}
	}
	return node
}

func (p *Parser) logicAnd() ast.Expr {
	node := p.equality()
	for p.curr.Type == lexer.AND {
		op := p.curr.Type
		p.advance()
		node = &ast.BinOp{Left: node, OpKind: op, Right: p.equality()}
	}
	return node
}

func (p *Parser) equality() ast.Expr {
	node := p.relational()
	for p.curr.Type == lexer.EQ || p.curr.Type == lexer.NEQ {
		op := p.curr.Type
		p.advance()
		node = &ast.BinOp{Left: node, OpKind: op, Right: p.relational()}
	}
	return node
}

func (p *Parser) relational() ast.Expr {
	node := p.additive()
	for p.curr.Type == lexer.LT || p.curr.Type == lexer.LTE ||
		p.curr.Type == lexer.GT || p.curr.Type == lexer.GTE {
		op := p.curr.Type
		p.advance()
		node = &ast.BinOp{Left: node, OpKind: op, Right: p.additive()}
	}
	return node
}

func (p *Parser) additive() ast.Expr {
	node := p.term()
	for p.curr.Type == lexer.PLUS || p.curr.Type == lexer.MINUS {
		op := p.curr.Type
		p.advance()
		node = &ast.BinOp{Left: node, OpKind: op, Right: p.term()}
	}
	return node
}

func (p *Parser) term() ast.Expr {
	node := p.unary()
	for p.curr.Type == lexer.MUL || p.curr.Type == lexer.DIV || p.curr.Type == lexer.MOD {
		op := p.curr.Type
		p.advance()
		node = &ast.BinOp{Left: node, OpKind: op, Right: p.unary()}
	}
	return node
}

func (p *Parser) unary() ast.Expr {
	switch p.curr.Type {
	case lexer.PLUS, lexer.MINUS, lexer.NOT:
		op := p.curr.Type
		p.advance()
		return &ast.UnaryOp{OpKind: op, Operand: p.unary()}
	default:
		return p.primary()
	}
}

func (p *Parser) primary() ast.Expr {
	tok := p.curr
	switch tok.Type {
	case lexer.INTEGER_LIT:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralInt, IntVal: tok.IntValue}
	case lexer.STRING_LIT:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralString, StrVal: tok.Literal}
	case lexer.TRUE:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralBool, BoolVal: true}
	case lexer.FALSE:
		p.advance()
		return &ast.Literal{Kind: ast.LiteralBool, BoolVal: false}
	case lexer.LPAREN:
		p.advance()
		node := p.expr()
		p.eat(lexer.RPAREN)
		return node
	case lexer.IDENTIFIER:
		return p.identifierExpr()
	default:
		p.errorf("unexpected token %s %q", tok.Type, tok.Literal)
		panic("unreachable")
	}
}

func (p *Parser) identifierExpr() ast.Expr {
	name := p.eat(lexer.IDENTIFIER).Literal
	switch p.curr.Type {
	case lexer.LBRACKET:
		p.advance()
		index := p.expr()
		p.eat(lexer.RBRACKET)
		return &ast.ArrayAccess{Name: name, Index: index}
	case lexer.LPAREN:
		p.advance()
		var args []ast.Expr
		if p.curr.Type != lexer.RPAREN {
			args = append(args, p.expr())
			for p.curr.Type == lexer.COMMA {
				p.advance()
				args = append(args, p.expr())
			}
		}
		p.eat(lexer.RPAREN)
		return &ast.Call{Name: name, Args: args}
	default:
		return &ast.Var{Name: name}
	}
}
