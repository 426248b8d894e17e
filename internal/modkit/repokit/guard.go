package repokit

import (
	"context"
	"fmt"
	"time"
)

// GuardTimeout bounds a startup guard when the caller gives no deadline
const GuardTimeout = 5 * time.Second

type guarder interface {
	Guard(context.Context) error
}

// Guard checks the store's backends answer before any stage runs
func Guard(ctx context.Context, st guarder) error {
	if st == nil {
		return fmt.Errorf("dependency guard: nil store")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		return fmt.Errorf("dependency guard: %w", err)
	}
	return nil
}

// MustGuard is Guard for service startup, it panics on failure
func MustGuard(ctx context.Context, st guarder) {
	if err := Guard(ctx, st); err != nil {
		panic(err)
	}
}
