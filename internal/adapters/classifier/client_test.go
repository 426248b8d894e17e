package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creatorscout/internal/core/niche"
	"creatorscout/internal/platform/config"
	perr "creatorscout/internal/platform/errors"
)

func stub(t *testing.T, status int, body string, got *payload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClassify_SendsPayload(t *testing.T) {
	var got payload
	srv := stub(t, 200, `{"fit":"1"}`, &got)
	c := NewClient(Options{URL: srv.URL})

	ans, err := c.Classify(context.Background(), Query{Message: "m", Niche: "fitness", Level: "micro"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if ans.Outcome != niche.Accepted || ans.Status != 200 {
		t.Fatalf("answer = %+v", ans)
	}
	want := payload{Model: "gpt-4o-mini", Message: "m", Niche: "fitness", Level: "micro"}
	if got != want {
		t.Fatalf("payload = %+v, want %+v", got, want)
	}
}

func TestClassify_Statuses(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   niche.Outcome
	}{
		{200, `{"fit":"0"}`, niche.Rejected},
		{200, `{}`, niche.Rejected},
		{500, `boom`, niche.Accepted},
		{404, `{"fit":"1"}`, niche.Skipped},
		{429, ``, niche.Skipped},
	}
	for _, tc := range cases {
		srv := stub(t, tc.status, tc.body, nil)
		ans, err := NewClient(Options{URL: srv.URL}).Classify(context.Background(), Query{})
		if err != nil {
			t.Fatalf("%d: %v", tc.status, err)
		}
		if ans.Outcome != tc.want || ans.Status != tc.status {
			t.Fatalf("%d: answer = %+v, want %s", tc.status, ans, tc.want)
		}
	}
}

func TestClassify_Errors(t *testing.T) {
	srv := stub(t, 200, `not json`, nil)
	if _, err := NewClient(Options{URL: srv.URL}).Classify(context.Background(), Query{}); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json", err)
	}

	dead := httptest.NewServer(http.NotFoundHandler())
	url := dead.URL
	dead.Close()
	if _, err := NewClient(Options{URL: url}).Classify(context.Background(), Query{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}

	if _, err := NewClient(Options{}).Classify(context.Background(), Query{}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_CLASSIFIER_URL", "http://classifier")
	t.Setenv("CORE_CLASSIFIER_TIMEOUT", "5s")
	o := FromConfig(config.New())
	if o.URL != "http://classifier" || o.Model != "gpt-4o-mini" || o.Timeout != 5*time.Second {
		t.Fatalf("opts = %+v", o)
	}
}
