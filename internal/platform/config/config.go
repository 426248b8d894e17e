// Package config reads settings from the environment under nested prefixes
// Modules take the root view and add their own prefix, e.g. CORE_HARVEST_
package config

import (
	"strconv"
	"strings"
	"time"

	"creatorscout/internal/platform/config/raw"
	"creatorscout/internal/platform/logger"
)

// Conf is a prefixed view over the environment
type Conf struct{ env raw.Conf }

// New returns the root view
func New() Conf { return Conf{env: raw.New()} }

// Prefix returns a child view, cfg.Prefix("CORE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

func (c Conf) key(k string) string { return c.env.Key(k) }

// parsed returns def for an unset key and logs a warning when the value does not parse
func parsed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.env.Get(key, "")
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("unparsable setting, using default")
		return def
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string { return c.env.Get(key, def) }

// MayInt returns the value as an int or def
func (c Conf) MayInt(key string, def int) int { return parsed(c, key, def, strconv.Atoi) }

// MayBool returns the value as a bool or def, strconv.ParseBool spellings only
func (c Conf) MayBool(key string, def bool) bool { return parsed(c, key, def, strconv.ParseBool) }

// MayDuration returns the value as a duration such as 250ms or 3s, or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated value dropping blanks, def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.env.Get(key, ""), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it matches one of allowed ignoring case, def when unset
// Any other value is a misconfiguration and panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
