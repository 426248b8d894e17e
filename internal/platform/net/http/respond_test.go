package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "creatorscout/internal/platform/errors"
	pnet "creatorscout/internal/platform/net"
	phttp "creatorscout/internal/platform/net/http"
)

// reqWithReqID builds a request with a request id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestJSON_UsesEnvelopeStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, phttp.Envelope{StatusCode: http.StatusAccepted, Status: "Accepted"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestHandle_OKEnvelopeCarriesRequestID(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]any{"accepted": []string{"alice"}})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("POST", "/screening/filter", "rid-1"))

	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusOK || env.StatusCode != 200 || env.RequestID != "rid-1" {
		t.Fatalf("bad envelope: %d %+v", rec.Code, env)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["accepted"] == nil {
		t.Fatalf("data not round tripped: %#v", env.Data)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		status   int
		wireCode perr.ErrorCode
	}{
		{perr.Validationf("K cannot exceed N"), http.StatusBadRequest, perr.ErrorCodeValidation},
		{perr.NotFoundf("object x not found"), http.StatusNotFound, perr.ErrorCodeNotFound},
		{perr.TooManyRequestsf("rate limit"), http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests},
		{perr.Upstreamf("following returned 500"), http.StatusBadGateway, perr.ErrorCodeUpstream},
		{errors.New("boom"), http.StatusInternalServerError, perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		err := tc.err
		h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(err) })
		rec := httptest.NewRecorder()
		h(rec, reqWithReqID("GET", "/x", "rid-err"))

		env := decodeEnvelope(t, rec)
		if rec.Code != tc.status || env.StatusCode != tc.status {
			t.Fatalf("%v: status = %d want %d", err, rec.Code, tc.status)
		}
		if env.Code != tc.wireCode || env.Error == "" || env.RequestID != "rid-err" {
			t.Fatalf("%v: bad error envelope %+v", err, env)
		}
	}
}

func TestHandle_CustomStatusAndEmptyList(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Status: http.StatusAccepted, Body: []string{}}
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("POST", "/ranking/aggregate", "rid"))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty list should stay in the envelope: %s", rec.Body.String())
	}

	zero := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Response{Body: "x"} })
	rec = httptest.NewRecorder()
	zero(rec, reqWithReqID("GET", "/x", ""))
	if rec.Code != http.StatusOK || strings.Contains(rec.Body.String(), "request_id") {
		t.Fatalf("zero status: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRespondError_WritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/x", "rid-3"), perr.NotFoundf("missing"))
	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %d %+v", rec.Code, env)
	}
}
