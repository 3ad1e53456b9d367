package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaryLuck/pebble/lexer"
	"github.com/GaryLuck/pebble/parser"
	"github.com/GaryLuck/pebble/pebbleerr"
)

func TestClassify(t *testing.T) {
	_, lexErr := parser.Parse(lexer.New("&"))
	_, parseErr := parser.Parse(lexer.New("int x = ;"))
	runtimeErr := pebbleerr.Runtimef("boom")

	assert.Equal(t, "Lexer Error:", classify(lexErr))
	assert.Equal(t, "Parse Error:", classify(parseErr))
	assert.Equal(t, "Runtime Error:", classify(runtimeErr))
}

// writeTempSource writes src to a .pebble file in a fresh temp dir and
// returns its path, mirroring CWBudde-go-dws's run_unit_test.go pattern of
// exercising the command's handler against a real file on disk rather than
// a string fixture.
func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.pebble")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunPebble_PrintsToStdout(t *testing.T) {
	path := writeTempSource(t, `void main(){ print(1+2); }`)

	var out bytes.Buffer
	err := runPebble(&out, strings.NewReader(""), path)

	require.NoError(t, err)
	assert.Equal(t, "3\n", out.String())
}

func TestRunPebble_ReadsFromStdin(t *testing.T) {
	path := writeTempSource(t, `void main(){ int n = read_int(); print(n * 2); }`)

	var out bytes.Buffer
	err := runPebble(&out, strings.NewReader("21\n"), path)

	require.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
}

func TestRunPebble_LexErrorPropagates(t *testing.T) {
	path := writeTempSource(t, `void main(){ int x = 1 & 2; }`)

	var out bytes.Buffer
	err := runPebble(&out, strings.NewReader(""), path)

	require.Error(t, err)
	assert.Equal(t, "Lexer Error:", classify(err))
}

func TestRunPebble_ParseErrorPropagates(t *testing.T) {
	path := writeTempSource(t, `void main(){ int x = ; }`)

	var out bytes.Buffer
	err := runPebble(&out, strings.NewReader(""), path)

	require.Error(t, err)
	assert.Equal(t, "Parse Error:", classify(err))
}

func TestRunPebble_RuntimeErrorPropagates(t *testing.T) {
	path := writeTempSource(t, `void main(){ print(1/0); }`)

	var out bytes.Buffer
	err := runPebble(&out, strings.NewReader(""), path)

	require.Error(t, err)
	assert.Equal(t, "Runtime Error:", classify(err))
	assert.Contains(t, err.Error(), "division by zero")
}

func TestRunPebble_MissingFileIsAnError(t *testing.T) {
	var out bytes.Buffer
	err := runPebble(&out, strings.NewReader(""), filepath.Join(t.TempDir(), "missing.pebble"))
	assert.Error(t, err)
}
