package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"axotly/internal/ast"
)

// Human streams a colored pass/fail line per test as it completes, then a
// counts/duration table once the run finishes.
type Human struct {
	Out io.Writer
}

func NewHuman() *Human { return &Human{Out: os.Stdout} }

func (h *Human) Start(total int) {
	fmt.Fprintf(h.writer(), "running %d test(s)\n", total)
}

func (h *Human) Test(tc *ast.TestCase, file *string) {
	label := tc.Name
	if file != nil {
		label = fmt.Sprintf("%s (%s)", tc.Name, *file)
	}

	if tc.Result == nil {
		return
	}
	if tc.Result.Kind == ast.Passed {
		color.New(color.FgGreen).Fprintf(h.writer(), "  ✓ %s\n", label)
		return
	}

	color.New(color.FgRed).Fprintf(h.writer(), "  ✗ %s\n", label)
	for _, e := range tc.Result.Errors {
		fmt.Fprintf(h.writer(), "      %s: %s\n", e.Path, e.Message)
	}
}

func (h *Human) Summary(all []*ast.TestCase, total time.Duration) {
	passed, failed := countResults(all)

	table := tablewriter.NewWriter(h.writer())
	table.SetHeader([]string{"Passed", "Failed", "Total", "Duration"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.Append([]string{
		fmt.Sprintf("%d", passed),
		fmt.Sprintf("%d", failed),
		fmt.Sprintf("%d", len(all)),
		total.Round(time.Millisecond).String(),
	})
	table.Render()
}

func (h *Human) writer() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stdout
}

func countResults(all []*ast.TestCase) (passed, failed int) {
	for _, tc := range all {
		if tc.Result == nil {
			continue
		}
		if tc.Result.Kind == ast.Passed {
			passed++
		} else {
			failed++
		}
	}
	return
}
