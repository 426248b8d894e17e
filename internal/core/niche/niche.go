// Package niche turns a candidate's recent posts into a classifier prompt and
// reads the classifier's loosely shaped answer back into a verdict
package niche

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	perr "creatorscout/internal/platform/errors"
)

// EmptyDigest is sent when a candidate has no posts at all
const EmptyDigest = "Return "

// Outcome is the classifier's decision for one candidate
type Outcome uint8

const (
	// Skipped means the classifier gave no usable answer, the candidate is dropped without a verdict
	Skipped Outcome = iota
	// Accepted means the candidate fits the niche
	Accepted
	// Rejected means the classifier answered and the answer was negative
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "skipped"
	}
}

// Digest renders the post items of one candidate as concatenated JSON objects
// with caption, username, full_name, text, hashtags and is_verified taken from each media
func Digest(items []any) string {
	if len(items) == 0 {
		return EmptyDigest
	}
	var b strings.Builder
	for _, it := range items {
		item, _ := it.(map[string]any)
		media, _ := item["media"].(map[string]any)
		user, _ := media["user"].(map[string]any)

		var caption any
		if c, ok := media["caption"].(map[string]any); ok {
			caption = c["text"]
		}
		hashtags, ok := media["hashtags"].([]any)
		if !ok {
			hashtags = []any{}
		}

		b.WriteString(Dumps([]Field{
			{"caption", caption},
			{"username", user["username"]},
			{"full_name", user["full_name"]},
			{"text", caption},
			{"hashtags", hashtags},
			{"is_verified", user["is_verified"]},
		}))
	}
	return b.String()
}

// ContainsOne reports whether the character "1" occurs anywhere in v
// Containers are walked recursively and each element is also probed in its
// rendered form, so keys of nested objects count too
// This is intentionally loose: ids, timestamps and counts all match
func ContainsOne(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case map[string]any:
		for _, e := range x {
			if ContainsOne(e) || strings.Contains(Str(e), "1") {
				return true
			}
		}
		return false
	case []any:
		for _, e := range x {
			if ContainsOne(e) || strings.Contains(Str(e), "1") {
				return true
			}
		}
		return false
	}
	return strings.Contains(Str(v), "1")
}

// Truthy reports whether v is a non empty, non zero value
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}

// Decode parses a classifier body keeping numbers in their literal form
func Decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "decode classifier answer")
	}
	return v, nil
}

// Match applies the acceptance rule to a decoded answer
func Match(v any) Outcome {
	if Truthy(v) && ContainsOne(v) {
		return Accepted
	}
	return Rejected
}

// Interpret maps a classifier status and body to an Outcome
// 200 follows Match, exactly 500 fails open to Accepted and anything else is Skipped
func Interpret(status int, body []byte) (Outcome, error) {
	switch status {
	case http.StatusOK:
		v, err := Decode(body)
		if err != nil {
			return Skipped, err
		}
		return Match(v), nil
	case http.StatusInternalServerError:
		return Accepted, nil
	default:
		return Skipped, nil
	}
}
