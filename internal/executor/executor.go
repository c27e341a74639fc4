// Package executor runs a batch of test cases with bounded parallelism,
// gating dispatch behind a counting semaphore built from a buffered
// channel, in the style of the goroutine-per-job pattern this module
// grew from.
package executor

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"axotly/internal/assertion"
	"axotly/internal/ast"
	"axotly/internal/httpclient"
)

// MinPermits and MaxPermits bound the concurrency argument to Run.
const (
	MinPermits = 1
	MaxPermits = 200
)

// Executor dispatches test cases through a shared Invoker.
type Executor struct {
	invoker *httpclient.Invoker
	log     *zap.SugaredLogger
}

func New(invoker *httpclient.Invoker, log *zap.SugaredLogger) *Executor {
	return &Executor{invoker: invoker, log: log}
}

// Run executes every test case in tests, never running more than n at
// once. Results are returned in source order. A test case whose unit
// panics is recovered and silently omitted from the result, matching the
// documented drop-on-panic behavior; callers detect loss by comparing
// len(result) against len(tests).
func (e *Executor) Run(ctx context.Context, tests []*ast.TestCase, n int) []*ast.TestCase {
	if n < MinPermits {
		n = MinPermits
	}
	if n > MaxPermits {
		n = MaxPermits
	}

	sem := make(chan struct{}, n)
	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make(map[int]*ast.TestCase, len(tests))

	for idx, tc := range tests {
		wg.Add(1)
		go func(idx int, tc *ast.TestCase) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					if e.log != nil {
						e.log.Errorw("test unit panicked, dropping", "test", tc.Name, "panic", r)
					}
				}
			}()

			sem <- struct{}{}
			defer func() { <-sem }()

			e.runOne(ctx, tc)

			mu.Lock()
			results[idx] = tc
			mu.Unlock()
		}(idx, tc)
	}

	wg.Wait()

	out := make([]*ast.TestCase, 0, len(results))
	keys := make([]int, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		out = append(out, results[k])
	}
	return out
}

func (e *Executor) runOne(ctx context.Context, tc *ast.TestCase) {
	start := time.Now()
	resp, err := e.invoker.Send(ctx, tc.Request)
	if err != nil {
		tc.Result = &ast.TestResult{
			Kind:     ast.Failed,
			Duration: time.Since(start),
			Errors:   []ast.AssertionFailure{{Path: "request", Message: err.Error()}},
		}
		return
	}
	tc.Response = resp

	var failures []ast.AssertionFailure
	for _, a := range tc.Assertions {
		if f := assertion.Check(a, resp); f != nil {
			failures = append(failures, *f)
		}
	}

	if len(failures) == 0 {
		tc.Result = &ast.TestResult{Kind: ast.Passed, Duration: resp.Duration}
		return
	}
	tc.Result = &ast.TestResult{Kind: ast.Failed, Duration: resp.Duration, Errors: failures}
}
