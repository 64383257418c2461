// Package checker is the one-shot check engine. Control flow:
// scope resolution (short-circuit to PASS when out of scope) → profile
// resolution → rule matching → verdict aggregation. Single-threaded,
// synchronous, no state kept across invocations.
package checker

import (
	"unicode/utf8"

	"github.com/guardcheck/guardcheck/pkg/matcher"
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/profile"
	"github.com/guardcheck/guardcheck/pkg/scope"
	"github.com/guardcheck/guardcheck/pkg/scoring"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// Annotations attached to short-circuited reports.
const (
	AnnotationOutOfScope = "out of scope"
	AnnotationDisabled   = "disabled"
)

// Request describes one check invocation.
type Request struct {
	Text   string
	Action string
	App    string

	// Policies, when non-empty, overrides the action-derived profile.
	Policies []string

	Scope      scope.Config
	Thresholds scoring.Thresholds

	// Enabled false short-circuits to PASS.
	Enabled bool

	// Table is the loaded rule map.
	Table *policy.Table
}

// Report is the complete outcome of one check.
type Report struct {
	Status        verdict.Verdict                   `json:"status"`
	Score         int                               `json:"score"`
	Thresholds    scoring.Thresholds                `json:"thresholds"`
	Action        string                            `json:"action,omitempty"`
	App           string                            `json:"app,omitempty"`
	Profile       []policy.Policy                   `json:"profile,omitempty"`
	ByPolicy      map[policy.Policy]verdict.Verdict `json:"by_policy,omitempty"`
	Findings      []matcher.Hit                     `json:"findings,omitempty"`
	FindingsCount int                               `json:"findings_count"`
	Annotation    string                            `json:"annotation,omitempty"`
	RulesVersion  string                            `json:"rules_version,omitempty"`

	// TextLen counts runes, not bytes.
	TextLen int `json:"text_len"`
}

// Run executes one check. Configuration problems (unknown policy names)
// abort with an error before any verdict is produced; a returned Report
// is always complete.
func Run(req Request) (*Report, error) {
	th := req.Thresholds.Normalize()

	rep := &Report{
		Status:     verdict.Pass,
		Thresholds: th,
		Action:     req.Action,
		App:        req.App,
		TextLen:    utf8.RuneCountInString(req.Text),
	}
	if req.Table != nil {
		rep.RulesVersion = req.Table.Version
	}

	if !req.Enabled {
		rep.Annotation = AnnotationDisabled
		return rep, nil
	}

	if !req.Scope.InScope(req.App) {
		rep.Annotation = AnnotationOutOfScope
		return rep, nil
	}

	selected, err := profile.Resolve(req.Policies, req.Action)
	if err != nil {
		return nil, err
	}
	rep.Profile = selected

	hits := matcher.Match(req.Text, selected, req.Table)
	summary := scoring.Aggregate(hits, th)

	rep.Status = summary.Verdict
	rep.Score = summary.Score
	rep.ByPolicy = summary.ByPolicy
	rep.Findings = hits
	rep.FindingsCount = len(hits)
	return rep, nil
}
