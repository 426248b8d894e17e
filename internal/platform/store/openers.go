package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creatorscout/internal/platform/store/pg"
)

// openPG opens the pool, pings it until healthy and wraps it in pgDB
func openPG(ctx context.Context, cfg Config, s *Store) (DB, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	// ping the raw pool so boot retries stay out of the SQL trace
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)
	maxAttempts := cfg.PG.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			db := newPGDB(p)
			s.PG = db
			return db, nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openObjects picks the object store backend named by cfg.Objects
func openObjects(ctx context.Context, cfg Config, s *Store) (ObjectStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Objects.Backend)) {
	case "", BackendMemory:
		return NewMemoryObjects(), nil
	case BackendPG:
		if s.PG == nil {
			return nil, fmt.Errorf("objects backend %q needs postgres enabled", BackendPG)
		}
		objs, err := NewPGObjects(ctx, s.PG)
		if err != nil {
			return nil, err
		}
		return objs, nil
	default:
		return nil, fmt.Errorf("unknown objects backend %q", cfg.Objects.Backend)
	}
}
