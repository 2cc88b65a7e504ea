// Package httpkit is what modules build handlers and routes with. It re-exports
// the platform http seam so modules never import platform/net/http or chi
package httpkit

import (
	"net/http"

	phttp "commentsweep/internal/platform/net/http"
	"commentsweep/internal/platform/net/http/bind"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

func OK(data any) Response     { return phttp.OK(data) }
func NoContent() Response      { return phttp.NoContent() }
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a return-style handler
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Call adapts fn, whose value is answered as a 200 unless it already is a Response
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return respond(fn(r)) })
}

// JSON is Call for handlers that take a body: fn only runs once the body
// decoded into T and passed validation
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return respond(fn(r, in))
	})
}

func respond(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
