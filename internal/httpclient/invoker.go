// Package httpclient dispatches a single HttpRequest and captures the
// resulting HttpResponse, including wall-clock duration.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"axotly/internal/ast"
)

// Invoker owns the shared *http.Client a whole test run dispatches
// through, so all goroutines reuse one connection pool.
type Invoker struct {
	client *http.Client
	log    *zap.SugaredLogger
}

// New builds an Invoker with default pooling and the default redirect
// policy (net/http's zero-value Transport/CheckRedirect already provide
// both, which is why no custom RoundTripper is configured here).
func New(log *zap.SugaredLogger) *Invoker {
	return &Invoker{
		client: &http.Client{},
		log:    log,
	}
}

// Send dispatches one request. Any transport-level failure is wrapped in
// a single HttpError; callers fold that into a synthetic "request"
// assertion failure rather than aborting the run.
func (inv *Invoker) Send(ctx context.Context, req ast.HttpRequest) (*ast.HttpResponse, error) {
	method := strings.ToUpper(req.Method)
	if !ast.AllowedMethods[method] {
		return nil, &HttpError{Kind: InvalidMethod, Value: req.Method}
	}

	var bodyReader io.Reader
	contentType := ""
	switch req.Body.Kind {
	case ast.BodyText:
		bodyReader = strings.NewReader(req.Body.Text)
	case ast.BodyJSON:
		encoded, err := json.Marshal(req.Body.JSON)
		if err != nil {
			return nil, &HttpError{Kind: Transport, Cause: err}
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, bodyReader)
	if err != nil {
		return nil, &HttpError{Kind: Transport, Cause: err}
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := inv.client.Do(httpReq)
	if err != nil {
		if inv.log != nil {
			inv.log.Warnw("request failed", "url", req.URL, "err", err)
		}
		return nil, &HttpError{Kind: Transport, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, &HttpError{Kind: Transport, Cause: err}
	}
	bodyStr := strings.ToValidUTF8(string(raw), "�")

	headers := map[string]string{}
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	return &ast.HttpResponse{
		Status:   resp.StatusCode,
		Headers:  headers,
		Body:     &bodyStr,
		Duration: duration,
		Request:  req,
	}, nil
}
