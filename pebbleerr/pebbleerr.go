// Package pebbleerr defines the three fatal error categories a Pebble
// program can raise: lexing, parsing, and evaluation. Every stage wraps
// its failures in one of these sentinels so the CLI can print the right
// "<Category> Error:" prefix without inspecting message text.
package pebbleerr

import (
	"errors"
	"fmt"
)

var (
	// Lex marks a character-stream error: an unexpected character or an
	// unterminated string literal.
	Lex = errors.New("lexer error")
	// Parse marks a token-stream error: an unexpected token, a missing
	// delimiter, an invalid assignment target, or a malformed declaration.
	Parse = errors.New("parser error")
	// Runtime marks an evaluation-time error: unbound names, arity
	// mismatches, division by zero, out-of-bounds access, and the like.
	Runtime = errors.New("runtime error")
)

// Position is the 1-based line/column of the token or node an error
// refers to, mirroring Token's own position fields.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Lexf builds a position-carrying lex error.
func Lexf(pos Position, format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", Lex, pos, fmt.Sprintf(format, args...))
}

// Parsef builds a position-carrying parse error.
func Parsef(pos Position, format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", Parse, pos, fmt.Sprintf(format, args...))
}

// Runtimef builds a runtime error. Runtime errors do not always have a
// meaningful source position (e.g. "missing main"), so position is omitted.
func Runtimef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", Runtime, fmt.Sprintf(format, args...))
}
