package parser

import (
	"net/url"
	"strings"

	"axotly/internal/ast"
)

// ParseFile parses the full contents of an .ax file into test cases in
// source order. filePath is recorded on each TestCase for diagnostics; it
// may be empty for in-memory/ad-hoc parses.
func ParseFile(filePath, text string) ([]*ast.TestCase, error) {
	lines := strings.Split(text, "\n")
	var cases []*ast.TestCase

	i := 0
	for i < len(lines) {
		line := strings.TrimRight(lines[i], "\r")
		trimmed := strings.TrimSpace(stripComment(line))
		if trimmed == "" || trimmed == "END" {
			i++
			continue
		}
		if !strings.HasPrefix(trimmed, "TEST") {
			i++
			continue
		}

		tc, next, err := parseTestBlock(filePath, lines, i)
		if err != nil {
			return nil, err
		}
		cases = append(cases, tc)
		i = next
	}

	return cases, nil
}

// stripComment removes a trailing "# ..." comment, ignoring '#' inside a
// double-quoted string.
func stripComment(line string) string {
	inString := false
	for idx, r := range line {
		switch r {
		case '"':
			inString = !inString
		case '#':
			if !inString {
				return line[:idx]
			}
		}
	}
	return line
}

func parseTestBlock(filePath string, lines []string, start int) (*ast.TestCase, int, error) {
	headerLine := strings.TrimSpace(stripComment(lines[start]))
	name := strings.TrimSpace(strings.TrimPrefix(headerLine, "TEST"))

	i := start + 1
	i = skipBlank(lines, i)
	if i >= len(lines) {
		return nil, i, &ParseError{Kind: MissingRequest, Line: start + 1, Context: name}
	}

	method, urlStr, err := parseRequestLine(i+1, lines[i])
	if err != nil {
		return nil, i, err
	}
	if _, perr := url.ParseRequestURI(urlStr); perr != nil || !strings.Contains(urlStr, "://") {
		return nil, i, &ParseError{Kind: InvalidURL, Line: i + 1, Context: urlStr}
	}
	i++

	headers := map[string]string{}
	for i < len(lines) {
		raw := strings.TrimRight(lines[i], "\r")
		trimmed := strings.TrimSpace(stripComment(raw))
		if trimmed == "" {
			i++
			break
		}
		if trimmed == "BODY" || strings.HasPrefix(trimmed, "EXPECT") || trimmed == "END" {
			break
		}
		key, val, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, i, &ParseError{Kind: Syntax, Line: i + 1, Detail: "expected 'Header: value'"}
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(val)
		i++
	}

	body := ast.Body{Kind: ast.BodyNone}
	if i < len(lines) && strings.TrimSpace(stripComment(lines[i])) == "BODY" {
		i++
		var sb strings.Builder
		for i < len(lines) && strings.TrimSpace(lines[i]) != "BODYEND" {
			sb.WriteString(lines[i])
			sb.WriteString("\n")
			i++
		}
		if i >= len(lines) {
			return nil, i, &ParseError{Kind: Syntax, Line: start + 1, Detail: "BODY without BODYEND"}
		}
		i++ // consume BODYEND
		body = ast.Body{Kind: ast.BodyText, Text: strings.TrimSuffix(sb.String(), "\n")}
	}

	var assertions []ast.Assertion
	for i < len(lines) {
		trimmed := strings.TrimSpace(stripComment(lines[i]))
		if trimmed == "" {
			i++
			continue
		}
		if trimmed == "END" {
			i++
			break
		}
		if !strings.HasPrefix(trimmed, "EXPECT") {
			break
		}
		exprText := strings.TrimSpace(strings.TrimPrefix(trimmed, "EXPECT"))
		assertion, err := parseExpectExpr(i+1, exprText)
		if err != nil {
			return nil, i, err
		}
		assertions = append(assertions, assertion)
		i++
	}

	tc := &ast.TestCase{
		Name:     name,
		FilePath: filePath,
		Line:     start + 1,
		Request: ast.HttpRequest{
			Method:  strings.ToUpper(method),
			URL:     urlStr,
			Headers: headers,
			Body:    body,
		},
		Assertions: assertions,
	}
	return tc, i, nil
}

func parseRequestLine(lineNo int, line string) (method, rawURL string, err error) {
	trimmed := strings.TrimSpace(stripComment(line))
	parts := strings.Fields(trimmed)
	if len(parts) != 2 {
		return "", "", &ParseError{Kind: Syntax, Line: lineNo, Detail: "expected 'METHOD URL'"}
	}
	return parts[0], parts[1], nil
}

func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(stripComment(lines[i])) == "" {
		i++
	}
	return i
}

func countBlank(lines []string, i int) int {
	n := 0
	for i+n < len(lines) && strings.TrimSpace(stripComment(lines[i+n])) == "" {
		n++
	}
	return n
}
