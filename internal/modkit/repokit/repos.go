// Package repokit holds the JSON object helpers stage services persist through
package repokit

import (
	"context"
	"encoding/json"

	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/store"
)

// DB is the postgres seam, nil when the objects live in memory
type DB = store.DB

// Objects is the blob seam stage repos read and write JSON through
type Objects = store.ObjectStore

// GetJSON loads key and decodes it into T
// a missing key keeps its NotFound code so callers can branch on it
func GetJSON[T any](ctx context.Context, objs Objects, key string) (T, error) {
	var out T
	body, err := objs.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeJSON, "decode object %s", key)
	}
	return out, nil
}

// PutJSON encodes v and writes it under key
func PutJSON(ctx context.Context, objs Objects, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode object %s", key)
	}
	return objs.Put(ctx, key, body, store.ContentTypeJSON)
}

// PutJSONIndent is PutJSON with four space indentation, used for results people read
func PutJSONIndent(ctx context.Context, objs Objects, key string, v any) error {
	body, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode object %s", key)
	}
	return objs.Put(ctx, key, body, store.ContentTypeJSON)
}
