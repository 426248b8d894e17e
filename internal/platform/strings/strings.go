// Package strings holds the name and route prefix guards modules run at construction
package strings

import std "strings"

// MustString returns s, panicking with "<name> is required" when s is blank
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix turns s into a mount prefix with one leading slash and no trailing one
// A prefix that collapses to the root panics
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
