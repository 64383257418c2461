package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/input"
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/scope"
	"github.com/guardcheck/guardcheck/pkg/ui"
)

// exitWithError prints a formatted error message and exits with code.
// Use this instead of ui.PrintError + os.Exit for consistent CLI errors.
func exitWithError(code int, format string, args ...any) {
	ui.PrintError(fmt.Sprintf(format, args...))
	os.Exit(code)
}

// exitCodeFor classifies an error into its exit code: unreadable input
// gets its own code, everything else is a configuration error.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, input.ErrUnreadable):
		return defaults.ExitInputError
	case errors.Is(err, input.ErrNoText),
		errors.Is(err, policy.ErrUnknownPolicy),
		errors.Is(err, policy.ErrInvalidRules),
		errors.Is(err, policy.ErrRulesNotFound),
		errors.Is(err, scope.ErrInvalidMode):
		return defaults.ExitUserError
	default:
		return defaults.ExitUserError
	}
}
