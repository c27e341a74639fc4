package ast

import "time"

// HttpResponse is the mutable result of dispatching an HttpRequest.
type HttpResponse struct {
	Status   int
	Headers  map[string]string
	Body     *string
	Duration time.Duration
	Request  HttpRequest
}
