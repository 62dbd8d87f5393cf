// utils/normalize.go
package utils

import "strings"

// NormalizeDate trims raw form input destined for a date column and returns
// nil for blank input. Non-blank input passes through trimmed and otherwise
// unchanged: the database is the only date validator here, the normalizer
// only keeps empty strings out of date columns.
func NormalizeDate(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeNumeric applies the same blank-to-NULL rule to numeric-typed text
// fields (amounts, screen counts, rates).
func NormalizeNumeric(raw string) *string {
	return NormalizeDate(raw)
}

// Flatten joins a multi-valued form field with ", ". A single value passes
// through unchanged and an absent field becomes the empty string.
func Flatten(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ", ")
	}
}
