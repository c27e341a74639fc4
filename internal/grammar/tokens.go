// Package grammar tokenizes the surface syntax of .ax files: the
// EXPECT-clause mini-language (paths, operators, values, keywords).
// File-level structure (TEST/END/BODY blocks, headers) is scanned directly
// by internal/parser line-by-line; this package handles the nested
// expression grammar within a single EXPECT line.
package grammar

// TokenKind classifies a lexed token from an EXPECT expression.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenNumber
	TokenString
	TokenBool
	TokenOperator
	TokenIn
	TokenBetween
	TokenAnd
	TokenExists
	TokenComma
	TokenLBracket
	TokenRBracket
	TokenDot
)

// Token is one lexical unit with its source text and column (1-based) for
// diagnostics.
type Token struct {
	Kind Tok
	Text string
	Col  int
}

// Tok is an alias kept separate from TokenKind so Token.Kind can be
// re-typed without a ripple; both currently resolve to TokenKind.
type Tok = TokenKind

var keywords = map[string]TokenKind{
	"IN":      TokenIn,
	"BETWEEN": TokenBetween,
	"AND":     TokenAnd,
	"EXISTS":  TokenExists,
	"true":    TokenBool,
	"false":   TokenBool,
}
