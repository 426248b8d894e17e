package store

import (
	"context"
	"errors"
	"time"

	"creatorscout/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
)

// pgPool is the slice of pgxpool the adapter calls
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgDB adapts pg.PG to DB and traces every statement
type pgDB struct {
	pool   pgPool
	tracer pg.QueryTracer
	slowMs int
	close  func()
}

func newPGDB(p *pg.PG) *pgDB {
	return &pgDB{
		pool:   poolFuncs{p: p},
		tracer: p.Tracer,
		slowMs: p.SlowMs,
		close:  p.Close,
	}
}

func (d *pgDB) Ping(ctx context.Context) error {
	if d == nil || d.pool == nil {
		return errors.New("pg: not connected")
	}
	var one int
	return d.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (d *pgDB) Close() error {
	if d.close != nil {
		d.close()
	}
	return nil
}

func (d *pgDB) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	start := time.Now()
	n, err := d.pool.Exec(ctx, sql, args...)
	d.trace(ctx, sql, args, start, err)
	return n, err
}

// QueryRow traces once Scan returns so the event carries the scan error
func (d *pgDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := d.pool.QueryRow(ctx, sql, args...)
	return tracedRow{r: r, done: func(err error) { d.trace(ctx, sql, args, start, err) }}
}

func (d *pgDB) trace(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if d.tracer == nil {
		return
	}
	elapsed := time.Since(start)
	d.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsed.Microseconds(),
		Err:       err,
		Slow:      d.slowMs >= 0 && elapsed >= time.Duration(d.slowMs)*time.Millisecond,
	})
}

type tracedRow struct {
	r    pgx.Row
	done func(error)
}

func (t tracedRow) Scan(dest ...any) error {
	err := t.r.Scan(dest...)
	t.done(err)
	return err
}

// poolFuncs narrows *pgxpool.Pool to pgPool
type poolFuncs struct{ p *pg.PG }

func (f poolFuncs) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := f.p.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (f poolFuncs) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.p.Pool.QueryRow(ctx, sql, args...)
}
