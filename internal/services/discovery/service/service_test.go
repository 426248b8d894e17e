package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"creatorscout/internal/adapters/scraper"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/store"
	"creatorscout/internal/platform/testkit"
	"creatorscout/internal/services/discovery/domain"
)

type fakeFollowing struct {
	resp  *scraper.Response
	err   error
	user  string
	count int
}

func (f *fakeFollowing) Following(_ context.Context, username string, count int) (*scraper.Response, error) {
	f.user, f.count = username, count
	return f.resp, f.err
}

func ok(body string) *scraper.Response { return &scraper.Response{Status: 200, Body: []byte(body)} }

func TestSeed_StoresDedupedList(t *testing.T) {
	src := &fakeFollowing{resp: ok(`{"data":{"users":[{"username":"Alice"},{"username":"bob"},{"username":"alice"},{"username":"carol"}]}}`)}
	objs := store.NewMemoryObjects()
	s := New(src, objs, Config{})

	res, err := s.Seed(context.Background(), domain.SeedInput{Username: "@fit_al"})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if src.user != "fit_al" || src.count != 25 {
		t.Fatalf("upstream called with %q %d", src.user, src.count)
	}
	want := []string{"Alice", "bob", "carol"}
	if !slices.Equal(res.SuccessfulUsernames, want) {
		t.Fatalf("usernames = %v", res.SuccessfulUsernames)
	}
	if res.RunID == "" || !strings.Contains(res.Message, "fit_al/usernames.json") {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Logs) != 1 || !strings.Contains(res.Logs[0], "dropped 1 duplicate") {
		t.Fatalf("logs = %v", res.Logs)
	}

	body, err := objs.Get(context.Background(), "fit_al/usernames.json")
	if err != nil {
		t.Fatalf("stored object: %v", err)
	}
	if string(body) != `["Alice","bob","carol"]` {
		t.Fatalf("stored body = %s", body)
	}
	if ct, _ := objs.ContentType("fit_al/usernames.json"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	got, err := s.Seeds(context.Background(), "fit_al")
	if err != nil || !slices.Equal(got.Usernames, want) {
		t.Fatalf("Seeds = %+v %v", got, err)
	}
}

func TestSeed_ExplicitCount(t *testing.T) {
	src := &fakeFollowing{resp: ok(`{"data":{"users":[{"username":"a"}]}}`)}
	s := New(src, store.NewMemoryObjects(), Config{FollowingCount: 10})
	if _, err := s.Seed(context.Background(), domain.SeedInput{Username: "x", Count: 3}); err != nil {
		t.Fatal(err)
	}
	if src.count != 3 {
		t.Fatalf("count = %d", src.count)
	}
}

func TestSeed_Failures(t *testing.T) {
	cases := []struct {
		name string
		src  *fakeFollowing
		user string
		code perr.ErrorCode
	}{
		{"transport", &fakeFollowing{err: perr.Wrapf(errors.New("dial"), perr.ErrorCodeUnavailable, "down")}, "x", perr.ErrorCodeUnavailable},
		{"rate limited", &fakeFollowing{err: perr.TooManyRequestsf("slow down")}, "x", perr.ErrorCodeTooManyRequests},
		{"non 200", &fakeFollowing{resp: &scraper.Response{Status: 403}}, "x", perr.ErrorCodeUpstream},
		{"garbage", &fakeFollowing{resp: ok(`<html>`)}, "x", perr.ErrorCodeUpstream},
		{"no users", &fakeFollowing{resp: ok(`{"data":{"users":[]}}`)}, "x", perr.ErrorCodeNotFound},
		{"no data", &fakeFollowing{resp: ok(`{}`)}, "x", perr.ErrorCodeNotFound},
		{"blank user", &fakeFollowing{}, " @ ", perr.ErrorCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			objs := store.NewMemoryObjects()
			_, err := New(tc.src, objs, Config{}).Seed(context.Background(), domain.SeedInput{Username: tc.user})
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v (code %d), want code %d", err, perr.CodeOf(err), tc.code)
			}
			if objs.Len() != 0 {
				t.Fatal("nothing may be stored on failure")
			}
		})
	}
}

func TestSeeds_MissingIsNotFound(t *testing.T) {
	s := New(&fakeFollowing{}, store.NewMemoryObjects(), Config{})
	_, err := s.Seeds(context.Background(), "ghost")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestNew_PanicsOnMissingDeps(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, store.NewMemoryObjects(), Config{}) })
	testkit.MustPanic(t, func() { New(&fakeFollowing{}, nil, Config{}) })
}
