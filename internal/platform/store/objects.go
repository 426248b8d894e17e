package store

import (
	"context"
	stderrs "errors"
	"sync"

	perr "creatorscout/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// ContentTypeJSON is the content type every pipeline stage writes
const ContentTypeJSON = "application/json"

// ObjectStore is a key to blob store
// Get returns a NotFound coded error when the key is absent
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// IsNotFound reports whether err is the object store's missing key error
func IsNotFound(err error) bool { return perr.IsCode(err, perr.ErrorCodeNotFound) }

// MemoryObjects keeps objects in process, useful for tests and single shot CLI runs
type MemoryObjects struct {
	mu   sync.RWMutex
	objs map[string]memObject
}

type memObject struct {
	body        []byte
	contentType string
}

// NewMemoryObjects returns an empty in-memory object store
func NewMemoryObjects() *MemoryObjects {
	return &MemoryObjects{objs: map[string]memObject{}}
}

// Get returns a copy of the stored body
func (m *MemoryObjects) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	o, ok := m.objs[key]
	m.mu.RUnlock()
	if !ok {
		return nil, perr.NotFoundf("object %s not found", key)
	}
	return append([]byte(nil), o.body...), nil
}

// Put stores a copy of body under key, replacing any previous value
func (m *MemoryObjects) Put(_ context.Context, key string, body []byte, contentType string) error {
	if key == "" {
		return perr.InvalidArgf("object key is empty")
	}
	m.mu.Lock()
	m.objs[key] = memObject{body: append([]byte(nil), body...), contentType: contentType}
	m.mu.Unlock()
	return nil
}

// ContentType returns the content type recorded for key
func (m *MemoryObjects) ContentType(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objs[key]
	return o.contentType, ok
}

// Len returns the number of stored objects
func (m *MemoryObjects) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objs)
}

const objectsDDL = `CREATE TABLE IF NOT EXISTS objects (
	key          text PRIMARY KEY,
	body         bytea NOT NULL,
	content_type text NOT NULL DEFAULT 'application/json',
	updated_at   timestamptz NOT NULL DEFAULT now()
)`

const objectsUpsert = `INSERT INTO objects (key, body, content_type, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (key) DO UPDATE
SET body = EXCLUDED.body, content_type = EXCLUDED.content_type, updated_at = now()`

// PGObjects stores objects in a postgres table
type PGObjects struct {
	db DB
}

// NewPGObjects ensures the objects table exists and returns the store
func NewPGObjects(ctx context.Context, db DB) (*PGObjects, error) {
	if db == nil {
		return nil, perr.InvalidArgf("pg objects requires a database")
	}
	if _, err := db.Exec(ctx, objectsDDL); err != nil {
		return nil, perr.FromPostgres(err, "ensure objects table")
	}
	return &PGObjects{db: db}, nil
}

// Get reads the body stored under key
func (p *PGObjects) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	if err := p.db.QueryRow(ctx, `SELECT body FROM objects WHERE key = $1`, key).Scan(&body); err != nil {
		if stderrs.Is(err, pgx.ErrNoRows) {
			return nil, perr.NotFoundf("object %s not found", key)
		}
		return nil, perr.FromPostgresf(err, "get object %s", key)
	}
	return body, nil
}

// Put upserts body under key
func (p *PGObjects) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if key == "" {
		return perr.InvalidArgf("object key is empty")
	}
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	if _, err := p.db.Exec(ctx, objectsUpsert, key, body, contentType); err != nil {
		return perr.FromPostgresf(err, "put object %s", key)
	}
	return nil
}
