// Package strings holds small slice helpers shared by config and classification
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// NonBlank drops entries that are empty or only whitespace.
// Kept entries are returned untouched, order and duplicates preserved
func NonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if std.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
