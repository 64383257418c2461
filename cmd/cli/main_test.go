package main

import (
	"fmt"
	"testing"

	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/input"
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/scope"
)

func TestSplitArgv(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags int
		wantArgv  []string
	}{
		{"with_separator", []string{"-action", "post", "--", "python3", "-c", "x"}, 2, []string{"python3", "-c", "x"}},
		{"no_separator", []string{"-action", "post"}, 2, nil},
		{"separator_first", []string{"--", "ls"}, 0, []string{"ls"}},
		{"empty", nil, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, argv := splitArgv(tt.args)
			if len(flags) != tt.wantFlags {
				t.Errorf("flags = %v, want %d entries", flags, tt.wantFlags)
			}
			if len(argv) != len(tt.wantArgv) {
				t.Fatalf("argv = %v, want %v", argv, tt.wantArgv)
			}
			for i := range argv {
				if argv[i] != tt.wantArgv[i] {
					t.Errorf("argv[%d] = %q, want %q", i, argv[i], tt.wantArgv[i])
				}
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", input.ErrUnreadable), defaults.ExitInputError},
		{fmt.Errorf("wrap: %w", input.ErrNoText), defaults.ExitUserError},
		{fmt.Errorf("wrap: %w", policy.ErrUnknownPolicy), defaults.ExitUserError},
		{fmt.Errorf("wrap: %w", scope.ErrInvalidMode), defaults.ExitUserError},
		{fmt.Errorf("anything else"), defaults.ExitUserError},
	}
	for _, tt := range tests {
		if got := exitCodeFor(tt.err); got != tt.want {
			t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
