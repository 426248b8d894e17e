package scraper

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	perr "creatorscout/internal/platform/errors"
)

// DecodeEnvelope decodes a scraper answer keeping numbers as json.Number
func DecodeEnvelope(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var env map[string]any
	if err := dec.Decode(&env); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "decode scraper envelope")
	}
	return env, nil
}

// Data returns the envelope's data object
func Data(env map[string]any) (map[string]any, bool) {
	d, ok := env["data"].(map[string]any)
	return d, ok
}

// Items returns data.items when it is a list
func Items(env map[string]any) ([]any, bool) {
	d, ok := Data(env)
	if !ok {
		return nil, false
	}
	items, ok := d["items"].([]any)
	return items, ok
}

// FollowerCount reads data.edge_followed_by.count
// A missing, null or non numeric count is reported as absent
func FollowerCount(env map[string]any) (int64, bool) {
	d, ok := Data(env)
	if !ok {
		return 0, false
	}
	edge, ok := d["edge_followed_by"].(map[string]any)
	if !ok {
		return 0, false
	}
	raw, present := edge["count"]
	if !present || raw == nil {
		return 0, false
	}
	return toInt(raw)
}

// FollowingUsernames returns data.users[].username in upstream order
func FollowingUsernames(env map[string]any) []string {
	d, ok := Data(env)
	if !ok {
		return nil
	}
	users, _ := d["users"].([]any)
	out := make([]string, 0, len(users))
	for _, u := range users {
		m, ok := u.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := m["username"].(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return int64(f), true
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}
