// Package httpkit is what stage handlers are written against
// Handlers return (value, error) and httpkit turns that into the response envelope
package httpkit

import (
	"net/http"

	phttp "creatorscout/internal/platform/net/http"
	"creatorscout/internal/platform/net/http/bind"
)

type (
	// Router is the route seam modules mount on
	Router = phttp.Router

	// Handler is a net/http handler func
	Handler = phttp.Handler

	// Envelope is the body of every answer
	Envelope = phttp.Envelope

	// Response lets a handler pick a status other than 200
	Response = phttp.Response
)

// Get mounts a bodiless handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a handler whose body is decoded and validated into T first
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// JSON decodes and validates the body into T before calling fn
// Unknown fields and trailing data are rejected
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return phttp.Error(err)
		}
		return respond(fn(r, in))
	})
}

// Call adapts a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response { return respond(fn(r)) })
}

// respond wraps out as 200 unless err is set or out is already a Response
func respond(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return phttp.OK(out)
}
