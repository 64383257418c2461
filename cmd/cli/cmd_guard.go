package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/guardcheck/guardcheck/pkg/audit"
	"github.com/guardcheck/guardcheck/pkg/checker"
	"github.com/guardcheck/guardcheck/pkg/config"
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/guardrun"
	"github.com/guardcheck/guardcheck/pkg/input"
	"github.com/guardcheck/guardcheck/pkg/ui"
)

// =============================================================================
// GUARD COMMAND - check text, then run a wrapped command only if allowed
// =============================================================================

func runGuard(args []string) {
	// Everything after "--" is the wrapped command.
	flagArgs, argv := splitArgv(args)

	cfg := config.New()
	fs := flag.NewFlagSet("guard", flag.ExitOnError)
	registerCheckFlags(fs, cfg)

	var allowedCommands input.StringSliceFlag
	strict := fs.Bool("strict", false, "Also block on REVIEW, not just BLOCK")
	dryRun := fs.Bool("dry-run", false, "Report the decision without running the command")
	sanitizeEnv := fs.Bool("sanitize-env", false, "Pass only a minimal environment to the command")
	commandTimeout := fs.Int("command-timeout", defaults.CommandTimeoutNone, "Kill the command after N seconds (0 = no timeout)")
	auditLog := fs.String("audit-log", "", "Append a redacted JSONL audit record to this file")
	fs.Var(&allowedCommands, "allowed-command", "Allowed wrapped binaries - repeatable (default: any)")

	fs.Parse(flagArgs)
	ui.ConfigureColor(cfg.NoColor || cfg.JSON)

	if len(argv) == 0 {
		exitWithError(defaults.ExitUserError, "guard needs a command after --")
	}
	if *commandTimeout < 0 {
		exitWithError(defaults.ExitUserError, "command-timeout must be a positive integer")
	}

	req, err := buildRequest(fs, cfg)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	rep, err := checker.Run(req)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	opts := guardrun.Options{
		Strict:          *strict,
		AllowedCommands: allowedCommands,
		SanitizeEnv:     *sanitizeEnv,
		Timeout:         time.Duration(*commandTimeout) * time.Second,
		DryRun:          *dryRun,
	}

	code, runErr := guardrun.Run(context.Background(), rep, argv, opts)

	if *auditLog != "" {
		rec := audit.NewRecord(rep, filepath.Base(argv[0]), *dryRun, code)
		if err := audit.Append(*auditLog, rec); err != nil {
			ui.PrintWarning(fmt.Sprintf("audit log: %v", err))
		}
	}

	if runErr != nil {
		// Keep this phrasing stable; wrapper scripts grep for it.
		fmt.Fprintln(os.Stderr, runErr.Error())
	}
	os.Exit(code)
}

// splitArgv separates guard's own flags from the wrapped command.
func splitArgv(args []string) (flags, argv []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}
