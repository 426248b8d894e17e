package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type seen struct {
	path  string
	query map[string]string
	key   string
	host  string
}

func capture(t *testing.T, body string) (*httptest.Server, *seen) {
	t.Helper()
	s := &seen{query: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.path = r.URL.Path
		for k := range r.URL.Query() {
			s.query[k] = r.URL.Query().Get(k)
		}
		s.key = r.Header.Get("x-rapidapi-key")
		s.host = r.Header.Get("x-rapidapi-host")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, s
}

func TestEndpoints_PathsAndQuery(t *testing.T) {
	srv, s := capture(t, `{}`)
	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k", APIHost: "h", Unit: unit}, WithPacer(&recPacer{}))
	ctx := context.Background()

	cases := []struct {
		name  string
		call  func() (*Response, error)
		path  string
		query map[string]string
	}{
		{"posts", func() (*Response, error) { return c.Posts(ctx, "alice", 15) }, "/user/posts/alice", map[string]string{"count": "15"}},
		{"reels", func() (*Response, error) { return c.Reels(ctx, " bob ", 30) }, "/user/reels/bob", map[string]string{"count": "30"}},
		{"profile", func() (*Response, error) { return c.Profile(ctx, "carol") }, "/user/info/carol", map[string]string{}},
		{"following", func() (*Response, error) { return c.Following(ctx, "dave", 25) }, "/following",
			map[string]string{"username_or_id": "dave", "count": "25", "version": "v2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s.query = map[string]string{}
			resp, err := tc.call()
			if err != nil || !resp.OK() {
				t.Fatalf("call: resp=%v err=%v", resp, err)
			}
			if s.path != tc.path {
				t.Fatalf("path = %q, want %q", s.path, tc.path)
			}
			if len(s.query) != len(tc.query) {
				t.Fatalf("query = %v, want %v", s.query, tc.query)
			}
			for k, v := range tc.query {
				if s.query[k] != v {
					t.Fatalf("query[%s] = %q, want %q", k, s.query[k], v)
				}
			}
			if s.key != "k" || s.host != "h" {
				t.Fatalf("auth headers = %q %q", s.key, s.host)
			}
		})
	}
}

func TestEndpoints_EmptyUsername(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://unused"}, WithPacer(&recPacer{}))
	if _, err := c.Posts(context.Background(), "  ", 15); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := c.Following(context.Background(), "", 1); err == nil {
		t.Fatal("expected validation error")
	}
}
