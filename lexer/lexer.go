// Package lexer turns Pebble source text into a stream of Tokens (spec §4.1).
// It mirrors the cursor/line/column scanning style of the teacher's own
// lexer package: a byte cursor, one character of lookahead via peek, and a
// big switch in NextToken driving greedy multi-character operator lexing.
package lexer

import (
	"github.com/GaryLuck/pebble/pebbleerr"
)

// Lexer scans a fixed source buffer on demand. It holds no other resource
// and is safe to discard once EOF has been observed.
type Lexer struct {
	src      string
	pos      int
	line     int
	column   int
	current  byte
	hasCurr  bool
}

// New creates a Lexer positioned before the first character of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, line: 1, column: 1}
	l.hasCurr = len(src) > 0
	if l.hasCurr {
		l.current = src[0]
	}
	return l
}

func (l *Lexer) advance() {
	if l.hasCurr && l.current == '\n' {
		l.line++
		l.column = 0
	}
	l.pos++
	if l.pos >= len(l.src) {
		l.hasCurr = false
		return
	}
	l.current = l.src[l.pos]
	l.column++
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) pos2tok() pebbleerr.Position {
	return pebbleerr.Position{Line: l.line, Column: l.column}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.hasCurr {
		if isSpace(l.current) {
			l.advance()
			continue
		}
		if l.current == '/' && l.peek() == '/' {
			for l.hasCurr && l.current != '\n' {
				l.advance()
			}
			continue
		}
		break
	}
}

func (l *Lexer) number() Token {
	line, col := l.line, l.column
	start := l.pos
	for l.hasCurr && isDigit(l.current) {
		l.advance()
	}
	text := l.src[start:l.pos]
	tok := newToken(INTEGER_LIT, text, line, col)
	for _, d := range text {
		tok.IntValue = tok.IntValue*10 + int(d-'0')
	}
	return tok
}

func (l *Lexer) string() (Token, error) {
	line, col := l.line, l.column
	l.advance() // opening quote
	start := l.pos
	for l.hasCurr && l.current != '"' {
		l.advance()
	}
	if !l.hasCurr {
		return Token{}, pebbleerr.Lexf(pebbleerr.Position{Line: line, Column: col}, "unterminated string literal")
	}
	text := l.src[start:l.pos]
	l.advance() // closing quote
	return newToken(STRING_LIT, text, line, col), nil
}

func (l *Lexer) identifier() Token {
	line, col := l.line, l.column
	start := l.pos
	for l.hasCurr && isAlnum(l.current) {
		l.advance()
	}
	text := l.src[start:l.pos]
	return newToken(LookupIdent(text), text, line, col)
}

// NextToken returns the next token in the stream, skipping whitespace and
// line comments. Once the input is exhausted it returns EOF on every call
// thereafter. Lex errors are fatal: no token is produced on failure.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()
	if !l.hasCurr {
		return newToken(EOF, "", l.line, l.column), nil
	}

	line, col := l.line, l.column
	c := l.current

	switch {
	case isDigit(c):
		return l.number(), nil
	case c == '"':
		return l.string()
	case isAlpha(c):
		return l.identifier(), nil
	}

	two := func(tt TokenType, lit string) Token {
		l.advance()
		l.advance()
		return newToken(tt, lit, line, col)
	}
	one := func(tt TokenType, lit string) Token {
		l.advance()
		return newToken(tt, lit, line, col)
	}

	switch c {
	case '&':
		if l.peek() == '&' {
			return two(AND, "&&"), nil
		}
		return Token{}, pebbleerr.Lexf(l.pos2tok(), "expected '&'")
	case '|':
		if l.peek() == '|' {
			return two(OR, "||"), nil
		}
		return Token{}, pebbleerr.Lexf(l.pos2tok(), "expected '|'")
	case '=':
		if l.peek() == '=' {
			return two(EQ, "=="), nil
		}
		return one(ASSIGN, "="), nil
	case '!':
		if l.peek() == '=' {
			return two(NEQ, "!="), nil
		}
		return one(NOT, "!"), nil
	case '<':
		if l.peek() == '=' {
			return two(LTE, "<="), nil
		}
		return one(LT, "<"), nil
	case '>':
		if l.peek() == '=' {
			return two(GTE, ">="), nil
		}
		return one(GT, ">"), nil
	case '+':
		return one(PLUS, "+"), nil
	case '-':
		return one(MINUS, "-"), nil
	case '*':
		return one(MUL, "*"), nil
	case '/':
		return one(DIV, "/"), nil
	case '%':
		return one(MOD, "%"), nil
	case '(':
		return one(LPAREN, "("), nil
	case ')':
		return one(RPAREN, ")"), nil
	case '{':
		return one(LBRACE, "{"), nil
	case '}':
		return one(RBRACE, "}"), nil
	case '[':
		return one(LBRACKET, "["), nil
	case ']':
		return one(RBRACKET, "]"), nil
	case ';':
		return one(SEMI, ";"), nil
	case ',':
		return one(COMMA, ","), nil
	}

	return Token{}, pebbleerr.Lexf(l.pos2tok(), "unexpected character %q", c)
}
