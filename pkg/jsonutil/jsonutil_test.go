package jsonutil

import (
	"strings"
	"testing"
)

func TestMarshalRoundTrip(t *testing.T) {
	in := map[string]any{"status": "REVIEW", "score": 5.0}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !Valid(data) {
		t.Fatalf("Marshal() produced invalid JSON: %s", data)
	}
	var out map[string]any
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out["status"] != "REVIEW" {
		t.Errorf("round trip status = %v, want REVIEW", out["status"])
	}
}

func TestEncoderWritesLines(t *testing.T) {
	var sb strings.Builder
	enc := NewEncoder(&sb)
	if err := enc.Encode(map[string]string{"a": "1"}); err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(map[string]string{"b": "2"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), sb.String())
	}
	for _, line := range lines {
		if !Valid([]byte(line)) {
			t.Errorf("line is not valid JSON: %q", line)
		}
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(map[string]int{"n": 1}, "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Errorf("MarshalIndent() produced single-line output: %s", data)
	}
}
