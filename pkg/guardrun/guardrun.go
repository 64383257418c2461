// Package guardrun wraps an external command behind a guardrail check:
// the wrapped command only runs when the verdict allows it. This is the
// single place in the codebase that spawns processes.
package guardrun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/guardcheck/guardcheck/pkg/checker"
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// Sentinel errors for guard failure modes.
var (
	// ErrBlocked means the verdict refused the wrapped command. The text is
	// capitalized on purpose: wrapper scripts grep stderr for this exact
	// phrase.
	ErrBlocked = errors.New("Blocked by enterprise legal guardrails")

	// ErrNotAllowed means the wrapped binary is not in the allowlist.
	ErrNotAllowed = errors.New("guardrun: command not in the allowlist")

	// ErrTimeout means the wrapped command exceeded its timeout.
	ErrTimeout = errors.New("guardrun: command timed out")
)

// Options controls how the wrapped command is executed.
type Options struct {
	// Strict also blocks on REVIEW, not just BLOCK.
	Strict bool

	// AllowedCommands, when non-empty, restricts which binaries may be
	// wrapped. Matched against the command's base name.
	AllowedCommands []string

	// SanitizeEnv passes only a minimal allowlisted environment to the
	// child.
	SanitizeEnv bool

	// Timeout kills the wrapped command after this duration.
	// Zero means no timeout.
	Timeout time.Duration

	// DryRun reports what would happen without spawning anything.
	DryRun bool
}

// Decision is the gate outcome before any process is spawned.
type Decision struct {
	Allowed bool
	Warning string // non-empty for REVIEW pass-through
}

// Decide applies the gate policy to a report: BLOCK always refuses,
// REVIEW refuses under Strict and otherwise passes with a warning.
func Decide(rep *checker.Report, strict bool) Decision {
	switch {
	case rep.Status == verdict.Block:
		return Decision{Allowed: false}
	case rep.Status == verdict.Review && strict:
		return Decision{Allowed: false}
	case rep.Status == verdict.Review:
		return Decision{Allowed: true, Warning: "Guardrail REVIEW: output flagged, proceeding (use -strict to block)"}
	default:
		return Decision{Allowed: true}
	}
}

// CheckAllowed verifies argv[0] against the allowlist. An empty
// allowlist allows everything.
func CheckAllowed(argv []string, allowed []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty command", ErrNotAllowed)
	}
	if len(allowed) == 0 {
		return nil
	}
	name := filepath.Base(argv[0])
	for _, a := range allowed {
		if name == a || argv[0] == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotAllowed, name)
}

// Run gates and executes argv. The returned int is the exit code to
// propagate: the child's own code on normal completion, or a guardrun
// code when the child never ran (ErrBlocked → 2, other errors → 1).
func Run(ctx context.Context, rep *checker.Report, argv []string, opts Options) (int, error) {
	dec := Decide(rep, opts.Strict)
	if !dec.Allowed {
		return defaults.ExitBlock, fmt.Errorf("%w: verdict %s", ErrBlocked, rep.Status)
	}
	if dec.Warning != "" {
		fmt.Fprintln(os.Stderr, dec.Warning)
	}

	if err := CheckAllowed(argv, opts.AllowedCommands); err != nil {
		return 1, err
	}

	if opts.DryRun {
		fmt.Printf("dry-run: would execute %s\n", strings.Join(argv, " "))
		return 0, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.SanitizeEnv {
		cmd.Env = sanitizedEnv()
	}

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return 1, fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("running command: %w", err)
	}
	return 0, nil
}

// sanitizedEnv returns only the allowlisted environment variables.
func sanitizedEnv() []string {
	var env []string
	for _, key := range defaults.SanitizedEnvKeys {
		if v, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+v)
		}
	}
	return env
}
