// Package normalize cleans creator handles and derives their comparison keys
// Key pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Drop control and format runes (ZWJ ZWNJ FEFF etc)
// 3 Unicode NFKC normalization
// 4 Case folding
// 5 Width fold fullwidth to ASCII
// 6 Trim surrounding whitespace and a leading @
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			runes.Remove(runes.In(unicode.Cc)),
			runes.Remove(runes.In(unicode.Cf)),
			norm.NFKC,
			cases.Fold(),
			width.Fold,
		)
	},
}

var cleanPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.In(unicode.Cc)),
			runes.Remove(runes.In(unicode.Cf)),
		)
	},
}

func run(p *sync.Pool, s string) string {
	tr := p.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	p.Put(tr)
	if err != nil {
		return s
	}
	return out
}

func trimHandle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "@")
	return strings.TrimSpace(s)
}

// Username returns the handle as it should be sent upstream and used in keys
// Spelling and case are kept, only invisible runes, whitespace and a leading @ go
func Username(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	return trimHandle(run(&cleanPool, s))
}

// Key returns the comparison form of a handle, two handles are the same
// account when their keys are equal
func Key(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	return trimHandle(run(&chainPool, s))
}

// Dedupe drops blank handles and later case or width variants of an earlier
// handle, the first spelling wins and input order is kept
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		clean := Username(n)
		k := Key(clean)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, clean)
	}
	return out
}
