package util

import "strings"

// IsTitle reports whether s is capitalized like "Iranian".
func IsTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) &&
		strings.ToLower(string(r[1:])) == string(r[1:])
}

// IsUpper reports whether s is entirely upper case.
func IsUpper(s string) bool { return s != "" && strings.ToUpper(s) == s }

// Title upper-cases the first rune and lower-cases the rest.
func Title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// MatchCase re-applies the casing pattern of original to replacement:
// Title and ALL-UPPER shapes survive a correction, anything else is taken
// as the replacement's canonical form.
func MatchCase(original, replacement string) string {
	switch {
	case IsUpper(original) && len([]rune(original)) > 1:
		return strings.ToUpper(replacement)
	case IsTitle(original):
		return Title(replacement)
	default:
		return replacement
	}
}
