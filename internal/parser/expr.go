package parser

import (
	"strconv"

	"axotly/internal/ast"
	"axotly/internal/grammar"
)

// parseExpectExpr turns the text following "EXPECT " into an Assertion,
// mirroring the original's parse_assertion dispatch over binary_op,
// in_op, between_op, exists_op and the unary_path fallback.
func parseExpectExpr(line int, expr string) (ast.Assertion, error) {
	toks, err := grammar.Lex(expr)
	if err != nil {
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: err.Error()}
	}

	path, rest, err := takePath(line, toks)
	if err != nil {
		return ast.Assertion{}, err
	}

	if len(rest) == 0 {
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: "EXPECT clause missing predicate"}
	}

	switch rest[0].Kind {
	case grammar.TokenOperator:
		return parseBinaryOp(line, path, rest)
	case grammar.TokenIn:
		return parseInOp(line, path, rest)
	case grammar.TokenBetween:
		return parseBetweenOp(line, path, rest)
	case grammar.TokenExists:
		return ast.Assertion{Kind: ast.KindExists, Path: path}, nil
	case grammar.TokenEOF:
		return ast.Assertion{Kind: ast.KindUnary, Path: path}, nil
	default:
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: "unexpected token after path: " + rest[0].Text}
	}
}

// takePath consumes a dotted ident chain from the front of toks and
// returns the remaining tokens.
func takePath(line int, toks []grammar.Token) (string, []grammar.Token, error) {
	if len(toks) == 0 || toks[0].Kind != grammar.TokenIdent {
		return "", nil, &ParseError{Kind: Syntax, Line: line, Detail: "expected a path"}
	}
	parts := []string{toks[0].Text}
	i := 1
	for i+1 < len(toks) && toks[i].Kind == grammar.TokenDot && toks[i+1].Kind == grammar.TokenIdent {
		parts = append(parts, toks[i+1].Text)
		i += 2
	}
	return grammar.JoinPath(parts), toks[i:], nil
}

func parseOperator(line int, tok grammar.Token) (ast.Operator, error) {
	switch tok.Text {
	case "==":
		return ast.Eq, nil
	case "!=":
		return ast.Ne, nil
	case ">":
		return ast.Gt, nil
	case "<":
		return ast.Lt, nil
	case ">=":
		return ast.Gte, nil
	case "<=":
		return ast.Lte, nil
	default:
		return 0, &ParseError{Kind: UnknownOperator, Line: line, Context: tok.Text}
	}
}

func parseValue(line int, tok grammar.Token) (ast.Value, []grammar.Token, error) {
	switch tok.Kind {
	case grammar.TokenString:
		return ast.String(tok.Text), nil, nil
	case grammar.TokenNumber:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return ast.Value{}, nil, &ParseError{Kind: InvalidNumber, Line: line, Context: tok.Text}
		}
		return ast.Number(n), nil, nil
	case grammar.TokenBool:
		return ast.Bool(tok.Text == "true"), nil, nil
	default:
		return ast.Value{}, nil, &ParseError{Kind: Syntax, Line: line, Detail: "expected a value, got " + tok.Text}
	}
}

func parseBinaryOp(line int, path string, toks []grammar.Token) (ast.Assertion, error) {
	op, err := parseOperator(line, toks[0])
	if err != nil {
		return ast.Assertion{}, err
	}
	if len(toks) < 2 {
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: "missing value after operator"}
	}
	val, _, err := parseValue(line, toks[1])
	if err != nil {
		return ast.Assertion{}, err
	}
	return ast.Assertion{Kind: ast.KindBinaryAssertion, Path: path, Op: op, Value: val}, nil
}

func parseInOp(line int, path string, toks []grammar.Token) (ast.Assertion, error) {
	// toks[0] == IN, toks[1] == '['
	if len(toks) < 2 || toks[1].Kind != grammar.TokenLBracket {
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: "expected '[' after IN"}
	}
	var values []ast.Value
	i := 2
	for i < len(toks) && toks[i].Kind != grammar.TokenRBracket {
		if toks[i].Kind == grammar.TokenComma {
			i++
			continue
		}
		v, _, err := parseValue(line, toks[i])
		if err != nil {
			return ast.Assertion{}, err
		}
		values = append(values, v)
		i++
	}
	if len(values) == 0 {
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: "IN list must not be empty"}
	}
	return ast.Assertion{Kind: ast.KindIn, Path: path, Values: values}, nil
}

func parseBetweenOp(line int, path string, toks []grammar.Token) (ast.Assertion, error) {
	// toks[0] == BETWEEN, toks[1] == min, toks[2] == AND, toks[3] == max
	if len(toks) < 4 || toks[2].Kind != grammar.TokenAnd {
		return ast.Assertion{}, &ParseError{Kind: Syntax, Line: line, Detail: "expected 'X BETWEEN a AND b'"}
	}
	min, _, err := parseValue(line, toks[1])
	if err != nil {
		return ast.Assertion{}, err
	}
	max, _, err := parseValue(line, toks[3])
	if err != nil {
		return ast.Assertion{}, err
	}
	if min.Kind != ast.KindNumber {
		return ast.Assertion{}, &ParseError{Kind: InvalidNumber, Line: line, Context: toks[1].Text}
	}
	if max.Kind != ast.KindNumber {
		return ast.Assertion{}, &ParseError{Kind: InvalidNumber, Line: line, Context: toks[3].Text}
	}
	return ast.Assertion{Kind: ast.KindBetween, Path: path, Min: min, Max: max}, nil
}
