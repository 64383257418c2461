package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/jsonutil"
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/ui"
)

// =============================================================================
// RULES COMMAND - list the loaded rule table
// =============================================================================

type ruleListing struct {
	ID       string `json:"id"`
	Policy   string `json:"policy"`
	Severity string `json:"severity"`
	Weight   int    `json:"weight"`
	Pattern  string `json:"pattern"`
	Suggest  string `json:"suggestion,omitempty"`
}

func runRules(args []string) {
	fs := flag.NewFlagSet("rules", flag.ExitOnError)
	rulesFile := fs.String("rules", "", "Alternate YAML rule map (default: embedded table)")
	jsonOutput := fs.Bool("json", false, "JSON output to stdout")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	var policies []string
	fs.Func("policies", "Only list these policies (comma-separated)", func(v string) error {
		policies = append(policies, v)
		return nil
	})
	fs.Parse(args)

	ui.ConfigureColor(*noColor || *jsonOutput)

	path := *rulesFile
	if path == "" {
		path = os.Getenv(defaults.EnvRules)
	}
	table, err := policy.LoadTable(path)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	selected := table.Policies()
	if len(policies) > 0 {
		parsed, err := policy.ParseList(policies)
		if err != nil {
			exitWithError(exitCodeFor(err), "%v", err)
		}
		selected = parsed
	}

	var listings []ruleListing
	for _, p := range selected {
		for _, r := range table.Rules(p) {
			listings = append(listings, ruleListing{
				ID:       r.ID,
				Policy:   p.String(),
				Severity: r.Severity.String(),
				Weight:   r.Weight,
				Pattern:  r.Pattern,
				Suggest:  r.Suggest,
			})
		}
	}

	if *jsonOutput {
		data, err := jsonutil.MarshalIndent(listings, "  ")
		if err != nil {
			exitWithError(defaults.ExitUserError, "encoding rules: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	ui.PrintSection(fmt.Sprintf("RULE TABLE v%s (%d rules)", table.Version, len(listings)))
	for _, l := range listings {
		fmt.Printf("  %s%s%s %s%s%s %s  %s\n",
			ui.BracketStyle.Render("["), ui.PolicyStyle.Render(l.Policy), ui.BracketStyle.Render("]"),
			ui.BracketStyle.Render("["), l.Severity, ui.BracketStyle.Render("]"),
			ui.RuleIDStyle.Render(l.ID),
			ui.SubtitleStyle.Render(l.Pattern))
	}
}
