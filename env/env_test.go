package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GaryLuck/pebble/value"
)

func TestDefineAndGet(t *testing.T) {
	e := New(nil)
	e.Define("x", value.Int(1))
	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int(1), v)
}

func TestGetWalksOutward(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Int(1))
	inner := New(outer)
	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int(1), v)
}

func TestDefineShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Int(1))
	inner := New(outer)
	inner.Define("x", value.Int(2))

	v, _ := inner.Get("x")
	assert.Equal(t, value.Int(2), v)

	ov, _ := outer.Get("x")
	assert.Equal(t, value.Int(1), ov)
}

func TestAssignUpdatesOwningFrame(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Int(1))
	inner := New(outer)

	ok := inner.Assign("x", value.Int(5))
	assert.True(t, ok)

	v, _ := outer.Get("x")
	assert.Equal(t, value.Int(5), v)
	_, definedLocally := inner.vars["x"]
	assert.False(t, definedLocally)
}

func TestAssignUndefinedNameFails(t *testing.T) {
	e := New(nil)
	assert.False(t, e.Assign("missing", value.Int(1)))
}

func TestGetUndefinedNameFails(t *testing.T) {
	e := New(nil)
	_, ok := e.Get("missing")
	assert.False(t, ok)
}
