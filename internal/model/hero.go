// Package model defines the core data types for the heroes service.
// Struct tags (`json:"..."` and `db:"..."`) tell serialization libraries how
// to map fields.
package model

import "strings"

// Wildcard is the suffix that turns a name filter into a prefix match.
const Wildcard = "%"

// Hero is the only entity the service exposes. It is a value type: once
// built by a repository it is never modified.
type Hero struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// NormalizeNameFilter turns the optional `name` query parameter into the
// pattern handed to a repository. A missing parameter matches everything,
// and a name without a trailing wildcard gets one appended.
func NormalizeNameFilter(raw string, present bool) string {
	if !present {
		return Wildcard
	}
	if strings.HasSuffix(raw, Wildcard) {
		return raw
	}
	return raw + Wildcard
}

// NamePattern is a parsed filter pattern.
type NamePattern struct {
	Value  string // name (exact) or prefix, wildcard stripped
	Prefix bool
}

// ParseNamePattern splits a filter pattern into its value and match mode.
// Only a single trailing wildcard is stripped.
func ParseNamePattern(pattern string) NamePattern {
	if value, ok := strings.CutSuffix(pattern, Wildcard); ok {
		return NamePattern{Value: value, Prefix: true}
	}
	return NamePattern{Value: pattern}
}

// Matches reports whether name satisfies the pattern. Comparison is
// case-sensitive and byte exact.
func (p NamePattern) Matches(name string) bool {
	if p.Prefix {
		return strings.HasPrefix(name, p.Value)
	}
	return name == p.Value
}
