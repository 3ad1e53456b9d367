// Package value defines Pebble's runtime value sum type (spec §3): a
// trimmed descendant of the teacher's objects package, carrying only the
// variants this language actually has — no Float, Map, Set, List, Tuple,
// Range, Break, or Continue, none of which Pebble's spec admits.
package value

import (
	"strconv"
	"strings"

	"github.com/GaryLuck/pebble/pebbleerr"
)

// Kind identifies a Value's runtime type.
type Kind string

const (
	KindInt   Kind = "int"
	KindText  Kind = "string"
	KindBool  Kind = "bool"
	KindArray Kind = "array"
	KindVoid  Kind = "void"
)

// Value is any Pebble runtime value. Scalars (Int, Text, Bool, Void) have
// copy-on-bind value semantics in Go simply by being passed by value;
// Array is the one reference-semantic variant, backed by a pointer to a
// shared slice so aliasing survives across bindings (spec §9).
type Value interface {
	Kind() Kind
	String() string
}

// Int is a 64-bit signed integer value.
type Int int64

func (Int) Kind() Kind        { return KindInt }
func (i Int) String() string  { return strconv.FormatInt(int64(i), 10) }

// Text is an immutable string value.
type Text string

func (Text) Kind() Kind       { return KindText }
func (t Text) String() string { return string(t) }

// Bool is a boolean value. It prints lowercase (SPEC_FULL.md §5.1),
// deviating from the Python reference's capitalized True/False.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Void is the absent value, the result of a bare return or of falling off
// the end of a function body. The evaluator does not check declared types,
// so nothing stops a Void from being bound to a name (e.g. the default of a
// `void` variable, or `int x = print(1);`).
type Void struct{}

func (Void) Kind() Kind       { return KindVoid }
func (Void) String() string   { return "" }

// Array is a mutable, reference-semantic ordered sequence of Values. The
// backing slice lives behind a pointer so that copying an Array value
// (e.g. binding a parameter) shares the same storage, matching spec §3's
// "arrays are held in frames by reference."
type Array struct {
	elems *[]Value
}

// NewArray allocates an Array holding a copy of elems.
func NewArray(elems []Value) Array {
	buf := make([]Value, len(elems))
	copy(buf, elems)
	return Array{elems: &buf}
}

func (Array) Kind() Kind { return KindArray }

func (a Array) String() string {
	parts := make([]string, len(*a.elems))
	for i, e := range *a.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Len returns the array's length.
func (a Array) Len() int { return len(*a.elems) }

// Get returns the element at index, which must already be bounds-checked
// by the caller.
func (a Array) Get(index int) Value { return (*a.elems)[index] }

// Set mutates the element at index in place, visible through every binding
// aliasing this array.
func (a Array) Set(index int, v Value) { (*a.elems)[index] = v }

// Truthy implements spec §4.3's truthiness rule: nonzero integer, nonempty
// string, or literal true. Arrays and Void are never used as conditions by
// a well-formed program, but are defined as always-truthy/always-falsy
// respectively to keep the function total.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Int:
		return t != 0
	case Text:
		return len(t) > 0
	case Bool:
		return bool(t)
	case Array:
		return true
	case Void:
		return false
	default:
		return false
	}
}

// TypeMismatch builds the runtime error for an ordering operator applied to
// incompatible kinds. Equality operators never use it: a cross-kind
// comparison with == or != is simply false.
func TypeMismatch(op string, a, b Value) error {
	return pebbleerr.Runtimef("cannot apply %s to %s and %s", op, a.Kind(), b.Kind())
}
