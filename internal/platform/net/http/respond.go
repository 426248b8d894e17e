// Package http is the HTTP seam: the chi backed Router, the server and the response envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "creatorscout/internal/platform/errors"
	pnet "creatorscout/internal/platform/net"
)

// Envelope wraps every API answer
// Failures fill code and error, successes fill data
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Response is what return-style handlers produce
// Body is the payload, or an error that decides the status
type Response struct {
	Status int
	Body   any
}

// OK answers 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error answers with the status err's code maps to
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return-style handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		JSON(w, h(r).envelope(pnet.RequestID(r.Context())))
	}
}

// RespondError writes err as an envelope, for middleware outside return-style handlers
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	JSON(w, Error(err).envelope(pnet.RequestID(r.Context())))
}

// JSON writes env with its own status code
func JSON(w stdhttp.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}

func (resp Response) envelope(reqID string) Envelope {
	if err, ok := resp.Body.(error); ok && err != nil {
		status := perr.HTTPStatus(err)
		wire := perr.WireFrom(err)
		return Envelope{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			Code:       wire.Code,
			Error:      wire.Message,
			RequestID:  reqID,
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       resp.Body,
	}
}
