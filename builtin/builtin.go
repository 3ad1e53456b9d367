// Package builtin implements Pebble's fixed built-in function table (spec
// §4.4): print, read_int, read_line, length, left, right, mid, instr. It
// follows the teacher's std package shape — a Runtime interface the host
// evaluator satisfies, and CallbackFunc signatures registered by name —
// trimmed to exactly these eight entries instead of the teacher's
// sprawling per-domain registration files (arrays, maps, sets, json,
// http, crypto, ...), none of which this language's closed builtin set
// admits.
package builtin

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/GaryLuck/pebble/pebbleerr"
	"github.com/GaryLuck/pebble/value"
)

// Runtime is the subset of evaluator behavior a built-in needs: writing
// output and reading input lines. The evaluator implements this directly.
type Runtime interface {
	Stdout() io.Writer
	ReadLine() (string, error)
}

// Func is the signature every built-in implements.
type Func func(rt Runtime, args []value.Value) (value.Value, error)

// Table maps a built-in's name to its implementation. Names in this table
// are resolved before user functions and can never be shadowed (spec
// §4.4) — the evaluator checks Table before its own function table.
var Table = map[string]Func{
	"print":     print_,
	"read_int":  readInt,
	"read_line": readLine,
	"length":    length,
	"left":      left,
	"right":     right,
	"mid":       mid,
	"instr":     instr,
}

func arityError(name string, want, got int) error {
	return pebbleerr.Runtimef("%s expects %d argument(s), got %d", name, want, got)
}

// print writes the value's canonical textual form followed by a newline.
// Integers print decimal, booleans print lowercase true/false (spec's
// chosen resolution, see SPEC_FULL.md §5.1), strings print verbatim.
func print_(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("print", 1, len(args))
	}
	fmt.Fprintln(rt.Stdout(), args[0].String())
	return value.Void{}, nil
}

// readInt reads one line from standard input and parses it as a signed
// decimal integer. A non-integer line yields 0 (non-fatal, reproducing
// the reference implementation); end-of-input is a fatal error.
func readInt(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError("read_int", 0, len(args))
	}
	line, err := rt.ReadLine()
	if err != nil {
		return nil, pebbleerr.Runtimef("end of input during read_int")
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return value.Int(0), nil
	}
	return value.Int(n), nil
}

// readLine reads one line from standard input with the trailing line
// terminator stripped; end-of-input is a fatal error.
func readLine(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError("read_line", 0, len(args))
	}
	line, err := rt.ReadLine()
	if err != nil {
		return nil, pebbleerr.Runtimef("end of input during read_line")
	}
	return value.Text(strings.TrimRight(line, "\r\n")), nil
}

func asText(name string, v value.Value) (string, error) {
	t, ok := v.(value.Text)
	if !ok {
		return "", pebbleerr.Runtimef("%s expects a string argument, got %s", name, v.Kind())
	}
	return string(t), nil
}

func asInt(name string, v value.Value) (int, error) {
	i, ok := v.(value.Int)
	if !ok {
		return 0, pebbleerr.Runtimef("%s expects an integer argument, got %s", name, v.Kind())
	}
	return int(i), nil
}

func length(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("length", 1, len(args))
	}
	s, err := asText("length", args[0])
	if err != nil {
		return nil, err
	}
	return value.Int(utf8.RuneCountInString(s)), nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// left returns the first n characters of s, n clamped to [0, length(s)].
// Operates on runes, not bytes, so a multi-byte character counts as one
// character the way the reference implementation's Python str does.
func left(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("left", 2, len(args))
	}
	s, err := asText("left", args[0])
	if err != nil {
		return nil, err
	}
	n, err := asInt("left", args[1])
	if err != nil {
		return nil, err
	}
	r := []rune(s)
	n = clamp(n, 0, len(r))
	return value.Text(string(r[:n])), nil
}

// right returns the last n characters of s, with the same clamping as left.
func right(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("right", 2, len(args))
	}
	s, err := asText("right", args[0])
	if err != nil {
		return nil, err
	}
	n, err := asInt("right", args[1])
	if err != nil {
		return nil, err
	}
	r := []rune(s)
	n = clamp(n, 0, len(r))
	return value.Text(string(r[len(r)-n:])), nil
}

// mid returns the substring of s starting at the zero-based start of the
// given length. Indices beyond the string yield whatever overlaps it,
// matching Python's forgiving slice semantics (no panic on out-of-range).
func mid(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return nil, arityError("mid", 3, len(args))
	}
	s, err := asText("mid", args[0])
	if err != nil {
		return nil, err
	}
	start, err := asInt("mid", args[1])
	if err != nil {
		return nil, err
	}
	ln, err := asInt("mid", args[2])
	if err != nil {
		return nil, err
	}
	r := []rune(s)
	lo := clamp(start, 0, len(r))
	hi := clamp(start+ln, 0, len(r))
	if hi < lo {
		hi = lo
	}
	return value.Text(string(r[lo:hi])), nil
}

// instr returns the zero-based character index of the first occurrence of
// sub in s, or -1 when absent. Indexed by rune, not byte, to match Python
// str.find's codepoint semantics.
func instr(rt Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("instr", 2, len(args))
	}
	s, err := asText("instr", args[0])
	if err != nil {
		return nil, err
	}
	sub, err := asText("instr", args[1])
	if err != nil {
		return nil, err
	}
	sr := []rune(s)
	subr := []rune(sub)
	if len(subr) == 0 {
		return value.Int(0), nil
	}
	for i := 0; i+len(subr) <= len(sr); i++ {
		if string(sr[i:i+len(subr)]) == string(subr) {
			return value.Int(i), nil
		}
	}
	return value.Int(-1), nil
}

