// Package textparse holds the small keyword heuristics used to pull
// parameters out of free-form user messages.
package textparse

import (
	"strings"
	"unicode/utf8"
)

// ExtractLocation returns the text after the last "in " (any case),
// trimmed and without a trailing question mark. fallback is returned
// when there is no marker or nothing follows it.
func ExtractLocation(text, fallback string) string {
	idx := lastIndexIn(text)
	if idx < 0 {
		return fallback
	}

	loc := strings.TrimSpace(text[idx+3:])
	loc = strings.TrimSpace(strings.TrimRight(loc, "?"))
	if loc == "" {
		return fallback
	}
	return loc
}

func lastIndexIn(text string) int {
	for i := len(text) - 3; i >= 0; i-- {
		if (text[i] == 'i' || text[i] == 'I') && (text[i+1] == 'n' || text[i+1] == 'N') && text[i+2] == ' ' {
			return i
		}
	}
	return -1
}

// ContainsAny reports whether the lower-cased text contains any of the
// given lower-case keywords as a substring.
func ContainsAny(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Truncate shortens s to at most n runes. The suffix is appended only
// when something was cut.
func Truncate(s string, n int, suffix string) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + suffix
}
