package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for text resolution.
var (
	// ErrNoText indicates that no text source was provided at all.
	ErrNoText = errors.New("input: no text provided")

	// ErrUnreadable indicates a text source exists but could not be read.
	ErrUnreadable = errors.New("input: unable to read input text")
)

// ResolveText picks the text to check. Precedence: the -text flag, then
// the -file flag, then piped stdin. An empty result after trimming is
// treated the same as no text.
func ResolveText(text, file string, stdin io.Reader, stdinPiped bool) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, file, err)
		}
		return string(data), nil
	}
	if stdinPiped {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrUnreadable, err)
		}
		if s := strings.TrimSpace(string(data)); s != "" {
			return string(data), nil
		}
	}
	return "", ErrNoText
}

// StdinPiped reports whether stdin is a pipe or redirect rather than a TTY.
func StdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
