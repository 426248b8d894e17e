package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"creatorscout/internal/platform/testkit"
)

type fakeStore struct {
	err         error
	hadDeadline bool
}

func (f *fakeStore) Guard(ctx context.Context) error {
	_, f.hadDeadline = ctx.Deadline()
	return f.err
}

func TestGuard_AddsDeadline(t *testing.T) {
	st := &fakeStore{}
	if err := Guard(context.Background(), st); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if !st.hadDeadline {
		t.Fatalf("store guard ran without a deadline")
	}
}

func TestGuard_KeepsCallerDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	st := &fakeStore{}
	if err := Guard(ctx, st); err != nil || !st.hadDeadline {
		t.Fatalf("Guard = %v, deadline %v", err, st.hadDeadline)
	}
}

func TestGuard_WrapsFailure(t *testing.T) {
	cause := errors.New("pg: connection refused")
	err := Guard(context.Background(), &fakeStore{err: cause})
	if !errors.Is(err, cause) || !strings.HasPrefix(err.Error(), "dependency guard: ") {
		t.Fatalf("err = %v", err)
	}
	if err := Guard(context.Background(), nil); err == nil {
		t.Fatalf("nil store should fail")
	}
}

func TestMustGuard(t *testing.T) {
	testkit.MustNotPanic(t, func() { MustGuard(context.Background(), &fakeStore{}) })
	testkit.MustPanic(t, func() {
		MustGuard(context.Background(), &fakeStore{err: errors.New("objects: backend not configured")})
	})
}
