// Package env implements Pebble's cons-style environment chain (spec §3):
// a frame is a name→Value mapping plus a pointer to its enclosing frame.
// It descends from the teacher's scope package, stripped of the const/let
// bookkeeping and the closure-support Copy method Pebble has no use for —
// functions here always enclose the global frame, never a definer's scope.
package env

import "github.com/GaryLuck/pebble/value"

// Env is a single scope frame.
type Env struct {
	vars      map[string]value.Value
	enclosing *Env
}

// New creates a frame enclosed by parent. A nil parent marks the global
// frame, the root of every chain.
func New(parent *Env) *Env {
	return &Env{vars: make(map[string]value.Value), enclosing: parent}
}

// Define binds name in this frame, shadowing any outer binding for the
// frame's lifetime. Redefining an existing name in the same frame
// overwrites it.
func (e *Env) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Get walks outward from e until a frame defines name, returning its value
// and true, or the zero value and false if no frame in the chain defines it.
func (e *Env) Get(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.enclosing {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks outward from e to find the frame that owns name and
// overwrites its binding there. It reports false if no frame owns name.
func (e *Env) Assign(name string, v value.Value) bool {
	for f := e; f != nil; f = f.enclosing {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return true
		}
	}
	return false
}
