package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"axotly/internal/ast"
)

// Diff streams a pass/fail line per test and, for each failed assertion
// with multi-line expected/actual strings, a unified diff between them.
// Single-line mismatches are rendered as one expected/actual line.
type Diff struct {
	Out io.Writer
}

func NewDiff() *Diff { return &Diff{Out: os.Stdout} }

func (d *Diff) Start(total int) {
	fmt.Fprintf(d.writer(), "running %d test(s)\n", total)
}

func (d *Diff) Test(tc *ast.TestCase, file *string) {
	label := tc.Name
	if file != nil {
		label = fmt.Sprintf("%s (%s)", tc.Name, *file)
	}

	if tc.Result == nil {
		return
	}
	if tc.Result.Kind == ast.Passed {
		color.New(color.FgGreen).Fprintf(d.writer(), "  ✔ %s\n", label)
		return
	}

	color.New(color.FgRed).Fprintf(d.writer(), "  ✖ %s\n", label)
	for _, e := range tc.Result.Errors {
		d.renderFailure(e)
	}
}

func (d *Diff) renderFailure(e ast.AssertionFailure) {
	if e.Expected == nil || e.Actual == nil {
		fmt.Fprintf(d.writer(), "      %s: %s\n", e.Path, e.Message)
		return
	}

	expected, actual := *e.Expected, *e.Actual
	if !strings.Contains(expected, "\n") && !strings.Contains(actual, "\n") {
		fmt.Fprintf(d.writer(), "      %s: expected %s, got %s\n", e.Path, expected, actual)
		return
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(ud)
	fmt.Fprintf(d.writer(), "      %s:\n%s\n", e.Path, text)
}

func (d *Diff) Summary(all []*ast.TestCase, total time.Duration) {
	passed, failed := countResults(all)
	fmt.Fprintf(d.writer(), "\n%d passed, %d failed, %d total (%s)\n", passed, failed, len(all), total.Round(time.Millisecond))
}

func (d *Diff) writer() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}
