package assertion

import (
	"testing"

	"axotly/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respWithBody(status int, body string) *ast.HttpResponse {
	b := body
	return &ast.HttpResponse{Status: status, Body: &b}
}

func TestResolveStatus(t *testing.T) {
	resp := respWithBody(200, "")
	v, ok := Resolve(resp, "status")
	require.True(t, ok)
	assert.Equal(t, ast.Number(200), v)
}

func TestResolveBodyPath(t *testing.T) {
	resp := respWithBody(200, `{"user":{"name":"alice","age":30}}`)
	v, ok := Resolve(resp, "body.user.name")
	require.True(t, ok)
	assert.Equal(t, ast.String("alice"), v)

	v, ok = Resolve(resp, "body.user.age")
	require.True(t, ok)
	assert.Equal(t, ast.Number(30), v)
}

func TestResolveMissingKey(t *testing.T) {
	resp := respWithBody(200, `{}`)
	_, ok := Resolve(resp, "body.missing")
	assert.False(t, ok)
}

func TestResolveNonFittingNumber(t *testing.T) {
	resp := respWithBody(200, `{"price": 19.99}`)
	_, ok := Resolve(resp, "body.price")
	assert.False(t, ok)
}

func TestResolveNonJSONBody(t *testing.T) {
	resp := respWithBody(200, "not json")
	_, ok := Resolve(resp, "body.x")
	assert.False(t, ok)
}

func TestCheckBinaryEq(t *testing.T) {
	resp := respWithBody(200, "")
	a := ast.Assertion{Kind: ast.KindBinaryAssertion, Path: "status", Op: ast.Eq, Value: ast.Number(200)}
	assert.Nil(t, Check(a, resp))

	a.Value = ast.Number(404)
	f := Check(a, resp)
	require.NotNil(t, f)
	assert.Equal(t, "status", f.Path)
}

func TestCheckNeOnMissingFails(t *testing.T) {
	resp := respWithBody(200, `{}`)
	a := ast.Assertion{Kind: ast.KindBinaryAssertion, Path: "body.missing", Op: ast.Ne, Value: ast.String("x")}
	f := Check(a, resp)
	require.NotNil(t, f, "missing path must not pass Ne")
}

func TestCheckIn(t *testing.T) {
	resp := respWithBody(201, "")
	a := ast.Assertion{Kind: ast.KindIn, Path: "status", Values: []ast.Value{ast.Number(200), ast.Number(201)}}
	assert.Nil(t, Check(a, resp))

	resp2 := respWithBody(500, "")
	assert.NotNil(t, Check(a, resp2))
}

func TestCheckBetween(t *testing.T) {
	resp := respWithBody(200, `{"count": 5}`)
	a := ast.Assertion{Kind: ast.KindBetween, Path: "body.count", Min: ast.Number(1), Max: ast.Number(10)}
	assert.Nil(t, Check(a, resp))

	a.Max = ast.Number(4)
	assert.NotNil(t, Check(a, resp))
}

func TestCheckExists(t *testing.T) {
	resp := respWithBody(200, `{}`)
	assert.NotNil(t, Check(ast.Assertion{Kind: ast.KindExists, Path: "body.missing"}, resp))
	assert.Nil(t, Check(ast.Assertion{Kind: ast.KindExists, Path: "status"}, resp))
}

func TestCheckUnary(t *testing.T) {
	resp := respWithBody(200, `{"active": true, "flag": false}`)
	assert.Nil(t, Check(ast.Assertion{Kind: ast.KindUnary, Path: "body.active"}, resp))
	assert.NotNil(t, Check(ast.Assertion{Kind: ast.KindUnary, Path: "body.flag"}, resp))
}

func TestGtOnlyForNumbers(t *testing.T) {
	resp := respWithBody(200, `{"name":"alice"}`)
	a := ast.Assertion{Kind: ast.KindBinaryAssertion, Path: "body.name", Op: ast.Gt, Value: ast.Number(5)}
	assert.NotNil(t, Check(a, resp))
}
