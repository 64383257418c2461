// Package strutil provides small string helpers for display output.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// Truncate shortens s to at most maxLen runes, ending with "..." when
// anything was cut. The ellipsis counts toward maxLen. Rune-aware:
// multi-byte characters are never split.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

// CollapseSpace replaces runs of whitespace (including newlines) with a
// single space, for one-line evidence display.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
