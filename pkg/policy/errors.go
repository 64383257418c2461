package policy

import "errors"

// Sentinel errors for rule table failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrUnknownPolicy indicates a policy name outside the known set.
	ErrUnknownPolicy = errors.New("policy: unknown policy")

	// ErrRulesNotFound is returned when a rule map file does not exist.
	ErrRulesNotFound = errors.New("policy: rule map file not found")

	// ErrInvalidRules is returned when a rule map is malformed: bad YAML,
	// an uncompilable pattern, an unknown severity, or a duplicate rule id.
	ErrInvalidRules = errors.New("policy: invalid rule map")
)
