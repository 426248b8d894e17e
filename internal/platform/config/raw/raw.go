// Package raw reads environment variables without logging
// The logger bootstraps from it, so it must not import the logger
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads variables under a prefix such as "LOG_"
type Conf struct{ prefix string }

// New returns a Conf without prefix
func New() Conf { return Conf{} }

// Prefix appends p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

// Get returns the trimmed value of k, def when unset or blank
func (c Conf) Get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.Key(k))); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1, true and yes in any case, anything else set is false
func (c Conf) GetBool(k string, def bool) bool {
	switch v := strings.ToLower(c.Get(k, "")); v {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt returns a non negative integer, def when unset or not a plain number
func (c Conf) GetInt(k string, def int) int {
	n, err := strconv.ParseUint(c.Get(k, ""), 10, 31)
	if err != nil {
		return def
	}
	return int(n)
}
