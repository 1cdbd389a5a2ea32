// Package normalize holds the provider-independent building blocks used by
// the mappers: text cleanup, date normalization, party and act parsing, and
// ordered key-path probing over raw JSON payloads.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespace = regexp.MustCompile(`\s+`)

// nullTokens are the placeholder values providers use for "no value".
var nullTokens = map[string]struct{}{
	"":          {},
	"-":         {},
	"--":        {},
	"—":         {},
	"#":         {},
	"n/a":       {},
	"na":        {},
	"nil":       {},
	"null":      {},
	"undefined": {},
}

// Clean folds compatibility characters (non-breaking spaces, full-width
// digits), collapses runs of whitespace and trims.
func Clean(s string) string {
	s = norm.NFKC.String(s)
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// IsNull reports whether s is empty or one of the provider null placeholders.
func IsNull(s string) bool {
	_, ok := nullTokens[strings.ToLower(Clean(s))]
	return ok
}

// Text returns the cleaned value, or nil for null placeholders.
func Text(s string) *string {
	s = Clean(s)
	if IsNull(s) {
		return nil
	}
	return &s
}

// Ptr returns a pointer to a copy of s.
func Ptr(s string) *string {
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
