// Package matcher applies the rule table to input text and records every
// rule hit. Rules are evaluated independently and exhaustively; there is
// no cross-rule interaction and no early exit.
package matcher

import (
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// Hit is one matched rule against the input text.
// Ephemeral: it exists only within one check invocation.
type Hit struct {
	RuleID   string          `json:"rule_id"`
	Policy   policy.Policy   `json:"policy"`
	Severity verdict.Verdict `json:"severity"`
	Weight   int             `json:"weight"`
	Evidence string          `json:"evidence"`
	Suggest  string          `json:"suggestion,omitempty"`
}

// Match tests every rule of every selected policy against text.
// Hits come back in deterministic order: canonical policy order, then
// table order within a policy, then match position within a rule.
func Match(text string, policies []policy.Policy, table *policy.Table) []Hit {
	var hits []Hit
	for _, p := range ordered(policies) {
		for _, rule := range table.Rules(p) {
			for _, m := range rule.Regexp().FindAllString(text, -1) {
				hits = append(hits, Hit{
					RuleID:   rule.ID,
					Policy:   p,
					Severity: rule.Severity,
					Weight:   rule.Weight,
					Evidence: m,
					Suggest:  rule.Suggest,
				})
			}
		}
	}
	return hits
}

// ordered filters policy.All down to the selected set, giving a stable
// evaluation order regardless of how the selection was expressed.
func ordered(selected []policy.Policy) []policy.Policy {
	want := make(map[policy.Policy]bool, len(selected))
	for _, p := range selected {
		want[p] = true
	}
	var out []policy.Policy
	for _, p := range policy.All {
		if want[p] {
			out = append(out, p)
		}
	}
	return out
}
