// Package render turns a stream of executed test cases into terminal
// output. Renderers never re-run or mutate a test case; they only read
// its Result.
package render

import (
	"time"

	"axotly/internal/ast"
)

// Renderer is the contract the core calls into: Start once before any
// results, Test once per completed case (the runner always passes the
// case's file; a nil file shows the test name alone), Summary once after
// every file has streamed.
type Renderer interface {
	Start(total int)
	Test(tc *ast.TestCase, file *string)
	Summary(all []*ast.TestCase, total time.Duration)
}
