package render

import (
	"bytes"
	"testing"
	"time"

	"axotly/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestHumanRendersPassAndFail(t *testing.T) {
	var buf bytes.Buffer
	h := &Human{Out: &buf}
	h.Start(2)

	pass := &ast.TestCase{Name: "ok", Result: &ast.TestResult{Kind: ast.Passed, Duration: time.Millisecond}}
	fail := &ast.TestCase{Name: "bad", Result: &ast.TestResult{
		Kind:   ast.Failed,
		Errors: []ast.AssertionFailure{{Path: "status", Message: "mismatch"}},
	}}
	h.Test(pass, nil)
	h.Test(fail, nil)
	h.Summary([]*ast.TestCase{pass, fail}, 5*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "bad")
	assert.Contains(t, out, "mismatch")
}

func TestDiffRendersMultilineDiff(t *testing.T) {
	var buf bytes.Buffer
	d := &Diff{Out: &buf}
	expected := "line1\nline2"
	actual := "line1\nline3"
	fail := &ast.TestCase{Name: "bad", Result: &ast.TestResult{
		Kind: ast.Failed,
		Errors: []ast.AssertionFailure{
			{Path: "body", Expected: &expected, Actual: &actual, Message: "mismatch"},
		},
	}}
	d.Start(1)
	d.Test(fail, nil)
	d.Summary([]*ast.TestCase{fail}, time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "-line2")
	assert.Contains(t, out, "+line3")
}
