package policy

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guardcheck/guardcheck/pkg/verdict"
)

//go:embed rules.yaml
var defaultRules []byte

// Rule is one detection rule belonging to exactly one policy.
// Patterns are case-insensitive regular expressions matched anywhere
// in the text; every match produces a hit.
type Rule struct {
	ID       string          `yaml:"id"`
	Pattern  string          `yaml:"pattern"`
	Severity verdict.Verdict `yaml:"-"`
	Weight   int             `yaml:"weight"`
	Suggest  string          `yaml:"suggest"`

	// RawSeverity holds the YAML severity string until validation.
	RawSeverity string `yaml:"severity"`

	re *regexp.Regexp
}

// Regexp returns the compiled pattern. Nil until the table is parsed.
func (r *Rule) Regexp() *regexp.Regexp {
	return r.re
}

// Table is the immutable rule map: policy → rules, loaded once per run.
type Table struct {
	Version string
	rules   map[Policy][]Rule
}

// tableDoc is the YAML shape of a rule map document.
type tableDoc struct {
	Version  string            `yaml:"version"`
	Policies map[string][]Rule `yaml:"policies"`
}

// Default weights per severity, applied when a rule omits its weight.
var severityWeights = map[verdict.Verdict]int{
	verdict.Watch:  2,
	verdict.Review: 3,
	verdict.Block:  6,
}

// LoadDefault parses the embedded rule map.
// The embedded document is validated at build time by tests, so a failure
// here means a broken binary and is returned as ErrInvalidRules.
func LoadDefault() (*Table, error) {
	return ParseTable(defaultRules)
}

// LoadTable loads and parses a rule map from path, falling back to the
// embedded default when path is empty.
// Returns ErrRulesNotFound if the file doesn't exist.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRulesNotFound, path)
		}
		return nil, fmt.Errorf("reading rule map: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parses and validates rule map YAML data: every policy name
// must be known, every severity recognized, every pattern compilable,
// and rule ids unique across the whole table.
func ParseTable(data []byte) (*Table, error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if doc.Version == "" {
		doc.Version = "1.0"
	}

	t := &Table{
		Version: doc.Version,
		rules:   make(map[Policy][]Rule, len(doc.Policies)),
	}

	seenIDs := make(map[string]bool)
	for name, rules := range doc.Policies {
		p, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: policy %q", ErrInvalidRules, name)
		}
		for i := range rules {
			r := rules[i]
			if r.ID == "" {
				return nil, fmt.Errorf("%w: policy %q rule %d has no id", ErrInvalidRules, name, i)
			}
			if seenIDs[r.ID] {
				return nil, fmt.Errorf("%w: duplicate rule id %q", ErrInvalidRules, r.ID)
			}
			seenIDs[r.ID] = true

			sev, ok := verdict.Parse(r.RawSeverity)
			if !ok || sev == verdict.Pass {
				return nil, fmt.Errorf("%w: rule %q has invalid severity %q", ErrInvalidRules, r.ID, r.RawSeverity)
			}
			r.Severity = sev

			if r.Weight <= 0 {
				r.Weight = severityWeights[sev]
			}

			re, err := compilePattern(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q pattern: %v", ErrInvalidRules, r.ID, err)
			}
			r.re = re

			t.rules[p] = append(t.rules[p], r)
		}
	}

	return t, nil
}

// compilePattern compiles a rule pattern case-insensitively.
// A pattern that already carries its own flag group is compiled as-is.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	if !strings.HasPrefix(pattern, "(?") {
		pattern = "(?is)" + pattern
	}
	return regexp.Compile(pattern)
}

// Rules returns the rules for one policy, in table order.
// The returned slice must not be modified.
func (t *Table) Rules(p Policy) []Rule {
	return t.rules[p]
}

// Policies returns the policies that have at least one rule,
// in canonical order.
func (t *Table) Policies() []Policy {
	var out []Policy
	for _, p := range All {
		if len(t.rules[p]) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the total number of rules in the table.
func (t *Table) Len() int {
	n := 0
	for _, rules := range t.rules {
		n += len(rules)
	}
	return n
}
