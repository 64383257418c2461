package profile

import (
	"errors"
	"testing"

	"github.com/guardcheck/guardcheck/pkg/policy"
)

func policiesEqual(a, b []policy.Policy) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		action string
		want   []policy.Policy
	}{
		{"post", []policy.Policy{policy.Social, policy.Legal}},
		{"comment", []policy.Policy{policy.Social, policy.Legal}},
		{"message", []policy.Policy{policy.Social, policy.Legal}},
		{"trade", []policy.Policy{policy.Market, policy.Financial}},
		{"market-analysis", []policy.Policy{policy.Market, policy.Financial}},
		{"email", []policy.Policy{policy.Antispam, policy.Privacy, policy.Legal}},
		{"hr-note", []policy.Policy{policy.HR, policy.Privacy, policy.Legal}},
		{"", []policy.Policy{policy.Legal, policy.Social}},
		{"interpretive-dance", []policy.Policy{policy.Legal, policy.Social}},
		{"POST", []policy.Policy{policy.Social, policy.Legal}},
	}
	for _, tt := range tests {
		if got := Defaults(tt.action); !policiesEqual(got, tt.want) {
			t.Errorf("Defaults(%q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestResolveExplicitWins(t *testing.T) {
	got, err := Resolve([]string{"hr"}, "post")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !policiesEqual(got, []policy.Policy{policy.HR}) {
		t.Errorf("Resolve() = %v, want [hr]", got)
	}
}

func TestResolveCommaSeparated(t *testing.T) {
	got, err := Resolve([]string{"market,financial"}, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !policiesEqual(got, []policy.Policy{policy.Market, policy.Financial}) {
		t.Errorf("Resolve() = %v, want [market financial]", got)
	}
}

func TestResolveUnknownPolicy(t *testing.T) {
	_, err := Resolve([]string{"astrology"}, "post")
	if err == nil {
		t.Fatal("Resolve() error = nil, want ErrUnknownPolicy")
	}
	if !errors.Is(err, policy.ErrUnknownPolicy) {
		t.Errorf("Resolve() error = %v, want ErrUnknownPolicy", err)
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	a := Defaults("post")
	a[0] = policy.Privacy
	b := Defaults("post")
	if b[0] != policy.Social {
		t.Error("Defaults() shares its backing array with callers")
	}
}
