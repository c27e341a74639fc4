package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexBinary(t *testing.T) {
	toks, err := Lex(`status == 200`)
	require.NoError(t, err)
	require.Len(t, toks, 4) // ident, op, number, eof
	assert.Equal(t, TokenIdent, toks[0].Kind)
	assert.Equal(t, TokenOperator, toks[1].Kind)
	assert.Equal(t, "==", toks[1].Text)
	assert.Equal(t, TokenNumber, toks[2].Kind)
}

func TestLexGreedyOperators(t *testing.T) {
	toks, err := Lex(`body.code >= 10`)
	require.NoError(t, err)
	op := toks[3]
	assert.Equal(t, TokenOperator, op.Kind)
	assert.Equal(t, ">=", op.Text)
}

func TestLexInList(t *testing.T) {
	toks, err := Lex(`status IN [200, 201]`)
	require.NoError(t, err)
	kinds := []TokenKind{}
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, TokenIn)
	assert.Contains(t, kinds, TokenLBracket)
	assert.Contains(t, kinds, TokenComma)
	assert.Contains(t, kinds, TokenRBracket)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex(`body.name == "alice`)
	require.Error(t, err)
}

func TestLexDottedPath(t *testing.T) {
	toks, err := Lex(`body.user.name == "alice"`)
	require.NoError(t, err)
	assert.Equal(t, "body", toks[0].Text)
	assert.Equal(t, TokenDot, toks[1].Kind)
	assert.Equal(t, "user", toks[2].Text)
	assert.Equal(t, TokenDot, toks[3].Kind)
	assert.Equal(t, "name", toks[4].Text)
}
