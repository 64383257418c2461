package strutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"no_cut", "short", 10, "short"},
		{"exact", "short", 5, "short"},
		{"cut", "a longer evidence string", 10, "a longe..."},
		{"tiny_max", "abcdef", 2, "ab"},
		{"zero_max", "abcdef", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.maxLen))
		})
	}
}

// Truncation must never split a multi-byte rune.
func TestTruncate_MultiByteRunes(t *testing.T) {
	in := "привет мир тест"
	for maxLen := 1; maxLen < 20; maxLen++ {
		out := Truncate(in, maxLen)
		assert.True(t, utf8.ValidString(out),
			"Truncate(%q, %d) = %q is invalid UTF-8", in, maxLen, out)
		assert.LessOrEqual(t, utf8.RuneCountInString(out), maxLen)
	}
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpace("a\n\n b\t c "))
	assert.Equal(t, "", CollapseSpace("  \n\t "))
}
