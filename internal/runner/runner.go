// Package runner discovers .ax files, parses them eagerly, drives the
// executor per file, and streams results to a renderer.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"axotly/internal/ast"
	"axotly/internal/executor"
	"axotly/internal/parser"
	"axotly/internal/render"
)

// fileCases pairs a discovered file with its parsed test cases.
type fileCases struct {
	path  string
	cases []*ast.TestCase
}

// Runner orchestrates discovery, parsing, execution and rendering.
type Runner struct {
	exec *executor.Executor
	log  *zap.SugaredLogger
}

func New(exec *executor.Executor, log *zap.SugaredLogger) *Runner {
	return &Runner{exec: exec, log: log}
}

// Run discovers .ax files under path (a single file or a directory
// walked recursively), parses every one eagerly, then executes and
// streams results file-by-file to r. concurrency bounds the executor's
// permit count. Returns every executed test case (for a final summary)
// and an error if discovery or parsing failed — in which case zero tests
// are executed.
func (rn *Runner) Run(ctx context.Context, path string, concurrency int, r render.Renderer) ([]*ast.TestCase, error) {
	files, err := discover(path)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		if rn.log != nil {
			rn.log.Infow("no .ax files found", "path", path)
		}
		r.Start(0)
		r.Summary(nil, 0)
		return nil, nil
	}

	var parseErrs *multierror.Error
	var groups []fileCases
	total := 0
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			parseErrs = multierror.Append(parseErrs, fmt.Errorf("%s: %w", f, err))
			continue
		}
		cases, err := parser.ParseFile(f, string(data))
		if err != nil {
			parseErrs = multierror.Append(parseErrs, fmt.Errorf("%s: %w", f, err))
			continue
		}
		groups = append(groups, fileCases{path: f, cases: cases})
		total += len(cases)
	}
	if parseErrs.ErrorOrNil() != nil {
		return nil, parseErrs
	}

	r.Start(total)
	start := time.Now()

	var all []*ast.TestCase
	for _, g := range groups {
		results := rn.exec.Run(ctx, g.cases, concurrency)
		filePath := g.path
		for _, tc := range results {
			r.Test(tc, &filePath)
		}
		all = append(all, results...)
	}

	r.Summary(all, time.Since(start))
	return all, nil
}

// discover resolves path to a sorted list of .ax files: the path itself
// if it is a regular file with that extension, or every .ax file found
// walking it if it is a directory. Symlinked directories are not
// followed, matching filepath.WalkDir's default.
func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Kind: NotFileOrDir, Path: path}
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(path), ".ax") {
			return []string{path}, nil
		}
		return nil, &PathError{Kind: NotFileOrDir, Path: path}
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ".ax") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
