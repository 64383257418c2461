package main

import (
	"flag"
	"os"

	"github.com/guardcheck/guardcheck/pkg/checker"
	"github.com/guardcheck/guardcheck/pkg/config"
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/input"
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/scope"
	"github.com/guardcheck/guardcheck/pkg/scoring"
)

// registerCheckFlags wires the flags shared by the check and guard
// commands onto fs.
func registerCheckFlags(fs *flag.FlagSet, cfg *config.Check) {
	// === CONTEXT ===
	fs.StringVar(&cfg.Action, "action", "", "Declared action (post, comment, message, trade, market-analysis, email, hr-note, ...)")
	fs.StringVar(&cfg.App, "app", "", "App identifier the text is bound for")

	// === SCOPE ===
	fs.StringVar(&cfg.Scope, "scope", "", "Scope mode: all, include, exclude (default all)")
	fs.Var(&cfg.Apps, "apps", "App list for include/exclude scoping - comma-separated or repeated")

	// === PROFILE ===
	fs.Var(&cfg.Policies, "policies", "Explicit policy list, overrides action defaults (social,antispam,hr,privacy,market,legal,financial)")

	// === INPUT ===
	fs.StringVar(&cfg.Text, "text", "", "Text to check")
	fs.StringVar(&cfg.File, "file", "", "Read text from file")

	// === RULES & THRESHOLDS ===
	fs.StringVar(&cfg.Rules, "rules", "", "Alternate YAML rule map (default: embedded table)")
	fs.IntVar(&cfg.ReviewThreshold, "review-threshold", defaults.ReviewThreshold, "Score at which the verdict escalates to REVIEW")
	fs.IntVar(&cfg.BlockThreshold, "block-threshold", defaults.BlockThreshold, "Score at which the verdict escalates to BLOCK")
	fs.BoolVar(&cfg.Enabled, "enabled", true, "Set false to disable checking entirely (always PASS)")

	// === OUTPUT ===
	fs.BoolVar(&cfg.JSON, "json", false, "JSON output to stdout")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress everything except the verdict line")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
}

// flagPresence returns a lookup over the flags actually given on the
// command line, for env-fallback decisions.
func flagPresence(fs *flag.FlagSet) func(name string) bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return func(name string) bool { return set[name] }
}

// buildRequest turns resolved configuration into a check request:
// env fallback, threshold validation, scope parsing, rule table load,
// and text resolution, in that order.
func buildRequest(fs *flag.FlagSet, cfg *config.Check) (checker.Request, error) {
	var req checker.Request

	if err := cfg.ApplyEnv(flagPresence(fs)); err != nil {
		return req, err
	}
	if err := cfg.Validate(); err != nil {
		return req, err
	}

	mode, err := scope.ParseMode(cfg.Scope)
	if err != nil {
		return req, err
	}

	table, err := policy.LoadTable(cfg.Rules)
	if err != nil {
		return req, err
	}

	text, err := input.ResolveText(cfg.Text, cfg.File, os.Stdin, input.StdinPiped())
	if err != nil {
		return req, err
	}

	return checker.Request{
		Text:       text,
		Action:     cfg.Action,
		App:        cfg.App,
		Policies:   cfg.Policies,
		Scope:      scope.NewConfig(mode, cfg.Apps),
		Thresholds: scoring.Thresholds{Review: cfg.ReviewThreshold, Block: cfg.BlockThreshold},
		Enabled:    cfg.Enabled,
		Table:      table,
	}, nil
}
