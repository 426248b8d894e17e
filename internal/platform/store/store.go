// Package store opens the object store pipeline stages exchange JSON through, optionally on postgres
package store

import (
	"context"
	"errors"
	"fmt"

	"creatorscout/internal/platform/logger"
)

// Store bundles the opened backends
type Store struct {
	// Log feeds the SQL tracer, zero is a no op logger
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG DB

	// Objects is the blob seam pipeline stages exchange JSON through
	Objects ObjectStore
}

// Row is the scan side of a single row read
type Row interface {
	Scan(dest ...any) error
}

// DB is the postgres seam the objects table runs on
// Exec reports rows affected
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
	Ping(ctx context.Context) error
}

// Open connects the backends cfg enables
// PG stays nil when disabled, Objects falls back to memory
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}

	if cfg.PG.Enabled {
		pgClient, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = pgClient
	}

	objs, err := openObjects(ctx, cfg, s)
	if err != nil {
		if cerr := s.Close(ctx); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return nil, err
	}
	s.Objects = objs

	return s, nil
}

// Guard pings postgres when enabled and checks an object store is wired
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.PG != nil {
		if err := s.PG.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("pg: %w", err))
		}
	}
	if s.Objects == nil {
		errs = append(errs, errors.New("objects: backend not configured"))
	}
	return errors.Join(errs...)
}

// Close releases the postgres pool, a nil PG is fine
func (s *Store) Close(_ context.Context) error {
	var errs []error

	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}
