package builtin

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaryLuck/pebble/value"
)

type fakeRuntime struct {
	out   bytes.Buffer
	lines []string
}

func (f *fakeRuntime) Stdout() io.Writer { return &f.out }

func (f *fakeRuntime) ReadLine() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func TestPrint(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := Table["print"](rt, []value.Value{value.Int(42)})
	require.NoError(t, err)
	assert.Equal(t, "42\n", rt.out.String())
}

func TestReadInt_ValidLine(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"7\n"}}
	v, err := Table["read_int"](rt, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Int(7), v)
}

func TestReadInt_NonIntegerYieldsZero(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"nope\n"}}
	v, err := Table["read_int"](rt, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Int(0), v)
}

func TestReadInt_EndOfInputIsFatal(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := Table["read_int"](rt, nil)
	assert.Error(t, err)
}

func TestReadLine_StripsTerminator(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"hi\r\n"}}
	v, err := Table["read_line"](rt, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Text("hi"), v)
}

func TestLength(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := Table["length"](rt, []value.Value{value.Text("hello")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)
}

func TestLength_CountsRunesNotBytes(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := Table["length"](rt, []value.Value{value.Text("café")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(4), v)
}

func TestLeftRightMidInstr_MultibyteCharacters(t *testing.T) {
	rt := &fakeRuntime{}

	l, err := Table["left"](rt, []value.Value{value.Text("café"), value.Int(3)})
	require.NoError(t, err)
	assert.Equal(t, value.Text("caf"), l)

	r, err := Table["right"](rt, []value.Value{value.Text("café"), value.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, value.Text("é"), r)

	m, err := Table["mid"](rt, []value.Value{value.Text("café"), value.Int(3), value.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, value.Text("é"), m)

	i, err := Table["instr"](rt, []value.Value{value.Text("café"), value.Text("é")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(3), i)
}

func TestLeftAndRightClamping(t *testing.T) {
	rt := &fakeRuntime{}
	left, err := Table["left"](rt, []value.Value{value.Text("abc"), value.Int(10)})
	require.NoError(t, err)
	assert.Equal(t, value.Text("abc"), left)

	right, err := Table["right"](rt, []value.Value{value.Text("abc"), value.Int(0)})
	require.NoError(t, err)
	assert.Equal(t, value.Text(""), right)
}

func TestMid_OverlapOnly(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := Table["mid"](rt, []value.Value{value.Text("hello"), value.Int(3), value.Int(10)})
	require.NoError(t, err)
	assert.Equal(t, value.Text("lo"), v)
}

func TestInstr_Fixpoints(t *testing.T) {
	rt := &fakeRuntime{}
	v, _ := Table["instr"](rt, []value.Value{value.Text("hello"), value.Text("")})
	assert.Equal(t, value.Int(0), v)

	v, _ = Table["instr"](rt, []value.Value{value.Text("hello"), value.Text("hello")})
	assert.Equal(t, value.Int(0), v)

	v, _ = Table["instr"](rt, []value.Value{value.Text("hello"), value.Text("zz")})
	assert.Equal(t, value.Int(-1), v)
}

func TestArityErrors(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := Table["length"](rt, nil)
	assert.Error(t, err)
}
