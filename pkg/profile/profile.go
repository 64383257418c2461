// Package profile resolves which policies apply to one check: an explicit
// -policies list wins, otherwise the declared action selects a default set.
package profile

import (
	"strings"

	"github.com/guardcheck/guardcheck/pkg/policy"
)

// actionDefaults maps known actions to their default policy sets.
// Unrecognized actions fall back to genericDefault.
var actionDefaults = map[string][]policy.Policy{
	"post":            {policy.Social, policy.Legal},
	"comment":         {policy.Social, policy.Legal},
	"message":         {policy.Social, policy.Legal},
	"trade":           {policy.Market, policy.Financial},
	"market-analysis": {policy.Market, policy.Financial},
	"email":           {policy.Antispam, policy.Privacy, policy.Legal},
	"outreach":        {policy.Antispam, policy.Privacy, policy.Legal},
	"newsletter":      {policy.Antispam, policy.Privacy, policy.Legal},
	"hr-note":         {policy.HR, policy.Privacy, policy.Legal},
}

var genericDefault = []policy.Policy{policy.Legal, policy.Social}

// Resolve returns the policy set for one check. When explicit names are
// given they are used verbatim; unknown names surface as a configuration
// error from policy.ParseList.
func Resolve(explicit []string, action string) ([]policy.Policy, error) {
	if len(explicit) > 0 {
		return policy.ParseList(explicit)
	}
	return Defaults(action), nil
}

// Defaults returns the default policy set for an action.
func Defaults(action string) []policy.Policy {
	action = strings.ToLower(strings.TrimSpace(action))
	if set, ok := actionDefaults[action]; ok {
		return append([]policy.Policy(nil), set...)
	}
	return append([]policy.Policy(nil), genericDefault...)
}

// KnownActions lists the actions with a non-generic default profile.
func KnownActions() []string {
	out := make([]string, 0, len(actionDefaults))
	for a := range actionDefaults {
		out = append(out, a)
	}
	return out
}
