// Package scope decides whether a given app should be checked at all.
// Scope is an app-level filter resolved once per invocation; text content
// never influences it.
package scope

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode indicates a scope mode outside {all, include, exclude}.
var ErrInvalidMode = errors.New("scope: invalid mode")

// Mode controls how the app list is interpreted.
type Mode string

const (
	// ModeAll checks every app (the app list is ignored).
	ModeAll Mode = "all"

	// ModeInclude checks only apps present in the list.
	ModeInclude Mode = "include"

	// ModeExclude checks every app except those in the list.
	ModeExclude Mode = "exclude"
)

// ParseMode maps a string (any case, trimmed) to a Mode.
// Empty input defaults to ModeAll.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAll:
		return ModeAll, nil
	case ModeInclude:
		return ModeInclude, nil
	case ModeExclude:
		return ModeExclude, nil
	}
	return "", fmt.Errorf("%w: %q (want all, include, or exclude)", ErrInvalidMode, s)
}

// Config is the resolved scope filter for one invocation.
type Config struct {
	Mode Mode
	apps map[string]bool
}

// NewConfig builds a scope config from a mode and app identifiers.
// App names are matched case-insensitively.
func NewConfig(mode Mode, apps []string) Config {
	set := make(map[string]bool, len(apps))
	for _, a := range apps {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			set[a] = true
		}
	}
	return Config{Mode: mode, apps: set}
}

// InScope reports whether a check should run for the given app.
// An absent app can never be scoped out.
func (c Config) InScope(app string) bool {
	if app == "" {
		return true
	}
	app = strings.ToLower(strings.TrimSpace(app))
	switch c.Mode {
	case ModeInclude:
		return c.apps[app]
	case ModeExclude:
		return !c.apps[app]
	default:
		return true
	}
}

// Apps returns the configured app identifiers, lowercased.
func (c Config) Apps() []string {
	out := make([]string, 0, len(c.apps))
	for a := range c.apps {
		out = append(out, a)
	}
	return out
}
