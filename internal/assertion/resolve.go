// Package assertion resolves dotted paths against an HTTP response and
// evaluates assertion operators over the resolved values.
package assertion

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"axotly/internal/ast"
)

// Resolve implements the path resolution rules of the assertion engine:
// "status" -> Number(status), "body" -> String(raw body), and
// "body.<key>(.<key>)*" -> a JSON-path lookup rooted at the parsed body,
// with leaf coercion per coerceLeaf. Any failure to find or coerce a value
// returns ok=false, never an error — a missing path is data, not a fault.
func Resolve(resp *ast.HttpResponse, path string) (ast.Value, bool) {
	switch {
	case path == "status":
		return ast.Number(int64(resp.Status)), true
	case path == "body":
		if resp.Body == nil {
			return ast.Value{}, false
		}
		return ast.String(*resp.Body), true
	case strings.HasPrefix(path, "body."):
		return resolveBodyPath(resp, path[len("body."):])
	default:
		return ast.Value{}, false
	}
}

func resolveBodyPath(resp *ast.HttpResponse, rest string) (ast.Value, bool) {
	if resp.Body == nil || rest == "" {
		return ast.Value{}, false
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(*resp.Body)))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return ast.Value{}, false
	}

	query := "$." + rest
	result, err := jsonpath.Get(query, root)
	if err != nil {
		return ast.Value{}, false
	}

	return coerceLeaf(result)
}

// coerceLeaf maps a decoded JSON node onto the narrow Value domain: JSON
// strings and bools pass straight through; JSON numbers must fit an int64
// with no fractional part or they resolve to not-found; arrays, objects
// and null are never representable and resolve to not-found.
func coerceLeaf(node any) (ast.Value, bool) {
	switch v := node.(type) {
	case string:
		return ast.String(v), true
	case bool:
		return ast.Bool(v), true
	case json.Number:
		if strings.ContainsAny(string(v), ".eE") {
			return ast.Value{}, false
		}
		n, err := v.Int64()
		if err != nil {
			return ast.Value{}, false
		}
		return ast.Number(n), true
	default:
		return ast.Value{}, false
	}
}
