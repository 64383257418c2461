// Package config resolves CLI configuration for one check invocation.
// Flags are parsed by the command layer; this package fills the gaps from
// environment variables (including legacy aliases) and validates the
// result. CLI flags always take precedence over the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/input"
)

// Check holds all configuration for the check and guard commands.
type Check struct {
	// Context settings
	Action string
	App    string

	// Scope settings
	Scope string
	Apps  input.StringSliceFlag

	// Profile settings
	Policies input.StringSliceFlag

	// Input settings
	Text string
	File string

	// Rule table settings
	Rules string

	// Threshold settings
	ReviewThreshold int
	BlockThreshold  int

	// Enable toggle
	Enabled bool

	// Output settings
	JSON    bool
	Quiet   bool
	NoColor bool
	Verbose bool
}

// New returns a Check with defaults applied.
func New() *Check {
	return &Check{
		Enabled:         true,
		ReviewThreshold: defaults.ReviewThreshold,
		BlockThreshold:  defaults.BlockThreshold,
	}
}

// envAliases maps a primary environment variable to its legacy alias.
// The primary name wins when both are set.
var envAliases = map[string]string{
	defaults.EnvScope:   defaults.EnvScopeLegacy,
	defaults.EnvApps:    defaults.EnvAppsLegacy,
	defaults.EnvEnabled: defaults.EnvEnabledLegacy,
}

// getenv looks up name, falling back to its legacy alias if one exists.
func getenv(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v, true
	}
	if legacy, ok := envAliases[name]; ok {
		if v, ok := os.LookupEnv(legacy); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ApplyEnv fills unset fields from the environment. flagSet reports
// whether the named CLI flag was given explicitly; set flags are never
// overridden.
func (c *Check) ApplyEnv(flagSet func(name string) bool) error {
	if !flagSet("scope") {
		if v, ok := getenv(defaults.EnvScope); ok {
			c.Scope = v
		}
	}
	if !flagSet("apps") {
		if v, ok := getenv(defaults.EnvApps); ok {
			c.Apps = nil
			if err := c.Apps.Set(v); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, defaults.EnvApps, err)
			}
		}
	}
	if !flagSet("enabled") {
		if v, ok := getenv(defaults.EnvEnabled); ok {
			enabled, err := parseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, defaults.EnvEnabled, v)
			}
			c.Enabled = enabled
		}
	}
	if !flagSet("review-threshold") {
		if v, ok := getenv(defaults.EnvReviewThreshold); ok {
			n, err := parsePositiveInt(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, defaults.EnvReviewThreshold, err)
			}
			c.ReviewThreshold = n
		}
	}
	if !flagSet("block-threshold") {
		if v, ok := getenv(defaults.EnvBlockThreshold); ok {
			n, err := parsePositiveInt(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, defaults.EnvBlockThreshold, err)
			}
			c.BlockThreshold = n
		}
	}
	if !flagSet("rules") {
		if v, ok := getenv(defaults.EnvRules); ok {
			c.Rules = v
		}
	}
	return nil
}

// Validate checks threshold sanity. Scope mode and policy names are
// validated where they are parsed (pkg/scope, pkg/policy).
func (c *Check) Validate() error {
	if c.ReviewThreshold < 1 {
		return fmt.Errorf("%w: review threshold must be a positive integer", ErrInvalidConfig)
	}
	if c.BlockThreshold < 1 {
		return fmt.Errorf("%w: block threshold must be a positive integer", ErrInvalidConfig)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q must be a positive integer", s)
	}
	return n, nil
}
