package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	perr "creatorscout/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

func TestMemoryObjects_PutGetRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryObjects()

	if err := m.Put(ctx, "alice/usernames.json", []byte(`["bob"]`), ContentTypeJSON); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := m.Get(ctx, "alice/usernames.json")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `["bob"]` {
		t.Fatalf("body = %s", got)
	}
	if ct, ok := m.ContentType("alice/usernames.json"); !ok || ct != ContentTypeJSON {
		t.Fatalf("content type = %q %v", ct, ok)
	}
}

func TestMemoryObjects_CopiesInAndOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryObjects()
	body := []byte("abc")
	_ = m.Put(ctx, "k", body, ContentTypeJSON)
	body[0] = 'z'

	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored body aliased caller slice: %s", got)
	}
	got[1] = 'z'
	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("returned body aliased stored slice: %s", again)
	}
}

func TestMemoryObjects_OverwriteAndMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryObjects()
	_ = m.Put(ctx, "k", []byte("1"), ContentTypeJSON)
	_ = m.Put(ctx, "k", []byte("2"), ContentTypeJSON)
	if got, _ := m.Get(ctx, "k"); string(got) != "2" {
		t.Fatalf("overwrite lost: %s", got)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d", m.Len())
	}

	_, err := m.Get(ctx, "nope")
	if !IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if perr.HTTPStatus(err) != 404 {
		t.Fatalf("status = %d", perr.HTTPStatus(err))
	}
}

func TestMemoryObjects_EmptyKeyRejected(t *testing.T) {
	t.Parallel()

	err := NewMemoryObjects().Put(context.Background(), "", []byte("x"), ContentTypeJSON)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}

func TestMemoryObjects_ConcurrentPuts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryObjects()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.Put(ctx, string(rune('a'+i%8)), []byte{byte(i)}, ContentTypeJSON)
		}(i)
	}
	wg.Wait()
	if m.Len() != 8 {
		t.Fatalf("Len = %d want 8", m.Len())
	}
}

type scanFunc func(dest ...any) error

func (s scanFunc) Scan(dest ...any) error { return s(dest...) }

// objectsDB understands the statements PGObjects issues
type objectsDB struct {
	mu      sync.Mutex
	rows    map[string][]byte
	ddl     int
	execErr error
	readErr error
}

func newObjectsDB() *objectsDB { return &objectsDB{rows: map[string][]byte{}} }

func (d *objectsDB) Exec(_ context.Context, sql string, args ...any) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.execErr != nil {
		return 0, d.execErr
	}
	switch {
	case strings.HasPrefix(sql, "CREATE TABLE"):
		d.ddl++
		return 0, nil
	case strings.HasPrefix(sql, "INSERT INTO objects"):
		d.rows[args[0].(string)] = append([]byte(nil), args[1].([]byte)...)
		return 1, nil
	}
	return 0, errors.New("unexpected sql: " + sql)
}

func (d *objectsDB) QueryRow(_ context.Context, _ string, args ...any) Row {
	return scanFunc(func(dest ...any) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.readErr != nil {
			return d.readErr
		}
		b, ok := d.rows[args[0].(string)]
		if !ok {
			return pgx.ErrNoRows
		}
		*(dest[0].(*[]byte)) = append([]byte(nil), b...)
		return nil
	})
}

func (d *objectsDB) Ping(context.Context) error { return nil }

func TestPGObjects_EnsuresTableOnConstruct(t *testing.T) {
	t.Parallel()

	db := newObjectsDB()
	if _, err := NewPGObjects(context.Background(), db); err != nil {
		t.Fatalf("NewPGObjects: %v", err)
	}
	if db.ddl != 1 {
		t.Fatalf("ddl runs = %d", db.ddl)
	}
}

func TestPGObjects_NilRunnerRejected(t *testing.T) {
	t.Parallel()

	if _, err := NewPGObjects(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

func TestPGObjects_PutGetAndMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p, err := NewPGObjects(ctx, newObjectsDB())
	if err != nil {
		t.Fatalf("NewPGObjects: %v", err)
	}
	if err := p.Put(ctx, "alice_reels.json", []byte(`{"a":1}`), ""); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := p.Get(ctx, "alice_reels.json")
	if err != nil || string(got) != `{"a":1}` {
		t.Fatalf("Get = %s, %v", got, err)
	}

	_, err = p.Get(ctx, "bob_reels.json")
	if !IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := p.Put(ctx, "", nil, ContentTypeJSON); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument for empty key, got %v", err)
	}
}

func TestPGObjects_DriverErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newObjectsDB()
	p, err := NewPGObjects(ctx, db)
	if err != nil {
		t.Fatalf("NewPGObjects: %v", err)
	}

	db.readErr = errors.New("conn reset")
	if _, err := p.Get(ctx, "k"); err == nil || IsNotFound(err) {
		t.Fatalf("want wrapped driver error, got %v", err)
	}

	db.execErr = errors.New("disk full")
	if err := p.Put(ctx, "k", []byte("x"), ContentTypeJSON); err == nil {
		t.Fatalf("want put error")
	}
	if _, ok := perr.As(p.Put(ctx, "k", []byte("x"), ContentTypeJSON)); !ok {
		t.Fatalf("put error should carry a platform error code")
	}
}
