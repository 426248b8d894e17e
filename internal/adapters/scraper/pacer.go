package scraper

import (
	"context"
	"time"
)

// Pacer blocks the caller between upstream calls
// Implementations must return early with ctx.Err() when ctx is done
type Pacer interface {
	Pause(ctx context.Context, d time.Duration) error
}

// TimerPacer sleeps on a real timer
type TimerPacer struct{}

// Pause waits for d or until ctx is done
func (TimerPacer) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// PacerFunc adapts a function to the Pacer interface
type PacerFunc func(ctx context.Context, d time.Duration) error

// Pause calls f
func (f PacerFunc) Pause(ctx context.Context, d time.Duration) error { return f(ctx, d) }
