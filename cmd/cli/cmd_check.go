package main

import (
	"flag"
	"os"

	"github.com/guardcheck/guardcheck/pkg/checker"
	"github.com/guardcheck/guardcheck/pkg/config"
	"github.com/guardcheck/guardcheck/pkg/output"
	"github.com/guardcheck/guardcheck/pkg/ui"
)

// =============================================================================
// CHECK COMMAND - classify a draft text, report, set exit status
// =============================================================================

func runCheck(args []string) {
	cfg := config.New()
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	registerCheckFlags(fs, cfg)
	fs.Parse(args)

	ui.ConfigureColor(cfg.NoColor || cfg.JSON)

	req, err := buildRequest(fs, cfg)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	rep, err := checker.Run(req)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	switch {
	case cfg.JSON:
		if err := output.WriteJSON(os.Stdout, rep); err != nil {
			exitWithError(exitCodeFor(err), "writing report: %v", err)
		}
	case cfg.Quiet:
		if err := output.WriteQuiet(os.Stdout, rep); err != nil {
			exitWithError(exitCodeFor(err), "writing report: %v", err)
		}
	default:
		if cfg.Verbose {
			ui.PrintBanner()
		}
		if err := output.WriteHuman(os.Stdout, rep, cfg.Verbose); err != nil {
			exitWithError(exitCodeFor(err), "writing report: %v", err)
		}
	}

	os.Exit(output.ExitCode(rep.Status))
}
