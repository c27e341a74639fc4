package runner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"axotly/internal/ast"
	"axotly/internal/executor"
	"axotly/internal/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	started  int
	tests    []*ast.TestCase
	summoned bool
}

func (r *recordingRenderer) Start(total int)                       { r.started = total }
func (r *recordingRenderer) Test(tc *ast.TestCase, file *string)    { r.tests = append(r.tests, tc) }
func (r *recordingRenderer) Summary(all []*ast.TestCase, d time.Duration) { r.summoned = true }

func TestRunnerDiscoverAndRunSingleFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dir := t.TempDir()
	axFile := filepath.Join(dir, "sample.ax")
	content := "TEST hello\nGET " + srv.URL + "\n\nEXPECT status == 200\nEND\n"
	require.NoError(t, os.WriteFile(axFile, []byte(content), 0o644))

	rn := New(executor.New(httpclient.New(nil), nil), nil)
	rec := &recordingRenderer{}

	all, err := rn.Run(context.Background(), axFile, 2, rec)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, ast.Passed, all[0].Result.Kind)
	assert.Equal(t, 1, rec.started)
	assert.True(t, rec.summoned)
}

func TestRunnerWalksDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	content := "TEST t\nGET " + srv.URL + "\n\nEXPECT status == 200\nEND\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ax"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.ax"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("not a test"), 0o644))

	rn := New(executor.New(httpclient.New(nil), nil), nil)
	rec := &recordingRenderer{}

	all, err := rn.Run(context.Background(), dir, 2, rec)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRunnerEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	rn := New(executor.New(httpclient.New(nil), nil), nil)
	rec := &recordingRenderer{}

	all, err := rn.Run(context.Background(), dir, 2, rec)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.True(t, rec.summoned)
}

func TestRunnerRejectsBadPath(t *testing.T) {
	rn := New(executor.New(httpclient.New(nil), nil), nil)
	_, err := rn.Run(context.Background(), "/does/not/exist", 2, &recordingRenderer{})
	require.Error(t, err)
	_, ok := err.(*PathError)
	assert.True(t, ok)
}

func TestRunnerParseFailureAbortsWholeRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.ax"), []byte("TEST x\nGET not-a-url\n\nEXPECT status == 200\n"), 0o644))

	rn := New(executor.New(httpclient.New(nil), nil), nil)
	all, err := rn.Run(context.Background(), dir, 2, &recordingRenderer{})
	require.Error(t, err)
	assert.Nil(t, all)
}
