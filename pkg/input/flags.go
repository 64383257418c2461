// Package input handles CLI input plumbing: repeatable list flags and
// resolution of the text to be checked.
package input

import "strings"

// StringSliceFlag implements flag.Value for flags that accept
// comma-separated values and/or repetition (-apps a,b -apps c).
type StringSliceFlag []string

func (s *StringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

// Set splits on commas, trims whitespace, and appends non-empty values.
func (s *StringSliceFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}
