// Package output formats check reports for humans and machines and maps
// verdicts to process exit codes. All writers target stdout; nothing here
// persists anything.
package output

import (
	"fmt"
	"io"

	"github.com/guardcheck/guardcheck/pkg/checker"
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/jsonutil"
	"github.com/guardcheck/guardcheck/pkg/strutil"
	"github.com/guardcheck/guardcheck/pkg/ui"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// WriteJSON writes the report as an indented JSON object.
func WriteJSON(w io.Writer, rep *checker.Report) error {
	data, err := jsonutil.MarshalIndent(rep, "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteQuiet writes only the verdict, for scripts that read one word.
func WriteQuiet(w io.Writer, rep *checker.Report) error {
	_, err := fmt.Fprintln(w, rep.Status.String())
	return err
}

// WriteHuman writes the human-readable summary: verdict line, findings
// with evidence and suggested rewrites, and the per-policy breakdown.
func WriteHuman(w io.Writer, rep *checker.Report, verbose bool) error {
	badge := ui.VerdictStyle(rep.Status).Render(rep.Status.String())
	fmt.Fprintf(w, "%s %s\n", badge,
		ui.SubtitleStyle.Render(fmt.Sprintf("(score %d, review at %d, block at %d)",
			rep.Score, rep.Thresholds.Review, rep.Thresholds.Block)))

	if rep.Annotation != "" {
		fmt.Fprintf(w, "  %s\n", ui.SubtitleStyle.Render(rep.Annotation))
		return nil
	}

	if verbose {
		if rep.Action != "" {
			fmt.Fprintf(w, "  %s %s\n", ui.LabelStyle.Render("action:"), ui.ValueStyle.Render(rep.Action))
		}
		if rep.App != "" {
			fmt.Fprintf(w, "  %s %s\n", ui.LabelStyle.Render("app:"), ui.ValueStyle.Render(rep.App))
		}
		fmt.Fprintf(w, "  %s %s\n", ui.LabelStyle.Render("profile:"), ui.ValueStyle.Render(joinPolicies(rep)))
	}

	if len(rep.Findings) == 0 {
		fmt.Fprintf(w, "  %s\n", ui.SubtitleStyle.Render("no findings"))
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", ui.SectionStyle.Render(fmt.Sprintf("FINDINGS (%d)", len(rep.Findings))))
	for _, h := range rep.Findings {
		evidence := strutil.Truncate(strutil.CollapseSpace(h.Evidence), defaults.EvidenceMaxRunes)
		fmt.Fprintf(w, "  %s %s %s %s\n",
			bracket(ui.VerdictStyle(h.Severity).Render(lower(h.Severity))),
			bracket(ui.PolicyStyle.Render(h.Policy.String())),
			ui.RuleIDStyle.Render(h.RuleID),
			ui.SubtitleStyle.Render(fmt.Sprintf("%q", evidence)))
		if h.Suggest != "" {
			fmt.Fprintf(w, "      %s\n",
				ui.SubtitleStyle.Render("-> "+strutil.Truncate(h.Suggest, defaults.SuggestionMaxRunes)))
		}
	}

	fmt.Fprintf(w, "\n%s\n", ui.SectionStyle.Render("BY POLICY"))
	for _, p := range rep.Profile {
		v, ok := rep.ByPolicy[p]
		if !ok {
			v = verdict.Pass
		}
		fmt.Fprintf(w, "  %s %s\n",
			ui.LabelStyle.Render(p.String()+":"),
			ui.VerdictStyle(v).Render(v.String()))
	}
	return nil
}

func bracket(s string) string {
	return ui.BracketStyle.Render("[") + s + ui.BracketStyle.Render("]")
}

func lower(v verdict.Verdict) string {
	switch v {
	case verdict.Watch:
		return "watch"
	case verdict.Review:
		return "review"
	case verdict.Block:
		return "block"
	default:
		return "pass"
	}
}

func joinPolicies(rep *checker.Report) string {
	out := ""
	for i, p := range rep.Profile {
		if i > 0 {
			out += ", "
		}
		out += p.String()
	}
	return out
}
