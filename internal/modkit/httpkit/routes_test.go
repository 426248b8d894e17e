package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pnet "creatorscout/internal/platform/net"
	phttp "creatorscout/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMountAPIV1_AndMountUnder_ComposePaths(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	var order []string
	mark := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, req)
			})
		}
	}

	MountAPIV1(r, []func(http.Handler) http.Handler{mark("api")}, func(api Router) {
		MountUnder(api, "/ranking", []func(http.Handler) http.Handler{mark("mod")}, func(sub Router) {
			Get(sub, "/ping", func(*http.Request) (any, error) { return "pong", nil })
			PostJSON(sub, "/echo", func(_ *http.Request, in filterIn) (any, error) { return in.Niche, nil })
		})
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ranking/ping", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "pong") {
		t.Fatalf("GET ping = %d %q", rec.Code, rec.Body.String())
	}
	if strings.Join(order, ",") != "api,mod" {
		t.Fatalf("middleware order = %v", order)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ranking/echo", strings.NewReader(`{"niche":"travel"}`))
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "travel") {
		t.Fatalf("POST echo = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/ranking/ping", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unversioned path should 404, got %d", rec.Code)
	}
}

func TestCommonStack_HealthAndRequestID(t *testing.T) {
	stack := CommonStack(StackOptions{})
	if len(stack) == 0 {
		t.Fatal("expected non-empty middleware stack")
	}
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pnet.RequestID(r.Context()) == "" {
			t.Errorf("request id missing on context")
		}
		w.WriteHeader(http.StatusTeapot)
	})
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("handler not reached, got %d", rec.Code)
	}
}
