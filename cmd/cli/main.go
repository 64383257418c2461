package main

import (
	"fmt"
	"os"

	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/ui"
)

func printUsage() {
	fmt.Println(ui.SectionStyle.Render("PRE-PUBLICATION TEXT GUARDRAILS"))
	fmt.Println()
	fmt.Printf("  %s\n", ui.SubtitleStyle.Render("Check a draft before it goes out:"))
	fmt.Println()
	fmt.Printf("    %s  Classify text against compliance policies\n", ui.ValueStyle.Render("check"))
	fmt.Printf("    %s  Check text, then run a command only if it passes\n", ui.ValueStyle.Render("guard"))
	fmt.Printf("    %s  List the loaded rule table\n", ui.ValueStyle.Render("rules"))
	fmt.Println()
	fmt.Printf("  %s\n", ui.SubtitleStyle.Render("Quick Examples:"))
	fmt.Printf("    %s\n", ui.ValueStyle.Render(`guardcheck check -action post -app website -text "draft..."`))
	fmt.Printf("    %s\n", ui.ValueStyle.Render(`guardcheck check -policies hr -file draft.txt -json`))
	fmt.Printf("    %s\n", ui.ValueStyle.Render(`guardcheck guard -action post -text "draft..." -- ./publish.sh`))
	fmt.Println()
	fmt.Printf("  %s\n", ui.SubtitleStyle.Render("Exit codes: 0 pass/watch, 1 review, 2 block, 3 config error, 4 unreadable input"))
	fmt.Println()
	fmt.Println("  Run 'guardcheck <command> -h' for command flags.")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(defaults.ExitUserError)
	}

	switch os.Args[1] {
	case "check":
		runCheck(os.Args[2:])
	case "guard":
		runGuard(os.Args[2:])
	case "rules":
		runRules(os.Args[2:])
	case "version", "-version", "--version":
		fmt.Println(defaults.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Bare flags mean an implicit check, the common scripted form:
		// guardcheck -action post -text "..."
		if len(os.Args[1]) > 0 && os.Args[1][0] == '-' {
			runCheck(os.Args[1:])
			return
		}
		ui.PrintError(fmt.Sprintf("unknown command %q", os.Args[1]))
		printUsage()
		os.Exit(defaults.ExitUserError)
	}
}
