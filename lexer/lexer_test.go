package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestNextToken_Keywords(t *testing.T) {
	toks := allTokens(t, "if else while for return int string bool void true false")
	want := []TokenType{IF, ELSE, WHILE, FOR, RETURN, INT, STRING, BOOL, VOID, TRUE, FALSE, EOF}
	require.Len(t, toks, len(want))
	for i, tt := range want {
		assert.Equal(t, tt, toks[i].Type, "token %d", i)
	}
}

func TestNextToken_Operators(t *testing.T) {
	cases := []struct {
		src  string
		want TokenType
	}{
		{"==", EQ}, {"!=", NEQ}, {"<=", LTE}, {">=", GTE},
		{"&&", AND}, {"||", OR},
		{"+", PLUS}, {"-", MINUS}, {"*", MUL}, {"/", DIV}, {"%", MOD},
		{"=", ASSIGN}, {"<", LT}, {">", GT}, {"!", NOT},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks := allTokens(t, c.src)
			require.Len(t, toks, 2)
			assert.Equal(t, c.want, toks[0].Type)
		})
	}
}

func TestNextToken_IntegerLiteral(t *testing.T) {
	toks := allTokens(t, "12345")
	require.Len(t, toks, 2)
	assert.Equal(t, INTEGER_LIT, toks[0].Type)
	assert.Equal(t, 12345, toks[0].IntValue)
}

func TestNextToken_StringLiteral(t *testing.T) {
	toks := allTokens(t, `"hello world"`)
	require.Len(t, toks, 2)
	assert.Equal(t, STRING_LIT, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestNextToken_StrayAmpersand(t *testing.T) {
	l := New("&")
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestNextToken_LineColumnTracking(t *testing.T) {
	toks := allTokens(t, "a\nb")
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}

func TestNextToken_CommentsAndWhitespaceIgnored(t *testing.T) {
	a := allTokens(t, "x+y")
	b := allTokens(t, "  x   +   y  // trailing comment\n")
	require.Len(t, a, len(b))
	for i := range a {
		assert.Equal(t, a[i].Type, b[i].Type)
		assert.Equal(t, a[i].Literal, b[i].Literal)
	}
}

func TestNextToken_EOFIsIdempotent(t *testing.T) {
	l := New("")
	first, err := l.NextToken()
	require.NoError(t, err)
	second, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, EOF, first.Type)
	assert.Equal(t, EOF, second.Type)
}
