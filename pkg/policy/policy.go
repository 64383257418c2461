// Package policy defines the compliance policy identifiers and the rule
// table that maps each policy to its detection rules. The rule map is a
// YAML document; a default table ships embedded in the binary and can be
// overridden with an external file.
package policy

import (
	"fmt"
	"strings"
)

// Policy is a named compliance category.
type Policy string

const (
	Social    Policy = "social"
	Antispam  Policy = "antispam"
	HR        Policy = "hr"
	Privacy   Policy = "privacy"
	Market    Policy = "market"
	Legal     Policy = "legal"
	Financial Policy = "financial"
)

// All lists every known policy in canonical evaluation order.
// Matching iterates in this order so results are deterministic.
var All = []Policy{Social, Antispam, HR, Privacy, Market, Legal, Financial}

// IsValid reports whether p is a recognized policy.
func (p Policy) IsValid() bool {
	switch p {
	case Social, Antispam, HR, Privacy, Market, Legal, Financial:
		return true
	}
	return false
}

// String returns the policy name.
func (p Policy) String() string {
	return string(p)
}

// Parse maps a name (any case, trimmed) to a Policy.
// Returns ErrUnknownPolicy for names outside the known set.
func Parse(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

// ParseList parses a comma-separated or pre-split list of policy names,
// dropping duplicates while preserving first-seen order.
func ParseList(names []string) ([]Policy, error) {
	var out []Policy
	seen := make(map[Policy]bool)
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			p, err := Parse(name)
			if err != nil {
				return nil, err
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}
