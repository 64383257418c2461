// Package scoring reduces a hit list to one overall verdict.
//
// The base verdict is the maximum severity across all hits (PASS when
// empty). On top of that, the aggregate weight can escalate — never
// lower — the verdict: a score at or above the review threshold forces
// at least REVIEW, at or above the block threshold forces BLOCK. The
// result is monotonic in hits and independent of hit order.
package scoring

import (
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/matcher"
	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// Thresholds are the score levels at which a check escalates.
type Thresholds struct {
	Review int `json:"review"`
	Block  int `json:"block"`
}

// DefaultThresholds returns the stock escalation thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Review: defaults.ReviewThreshold, Block: defaults.BlockThreshold}
}

// Normalize clamps thresholds to sane values: both at least 1, and block
// strictly above review. Returns the adjusted copy.
func (t Thresholds) Normalize() Thresholds {
	if t.Review < 1 {
		t.Review = defaults.ReviewThreshold
	}
	if t.Block < 1 {
		t.Block = defaults.BlockThreshold
	}
	if t.Block <= t.Review {
		t.Block = t.Review + 1
	}
	return t
}

// Summary is the aggregated outcome of one check.
type Summary struct {
	Verdict  verdict.Verdict                   `json:"status"`
	Score    int                               `json:"score"`
	ByPolicy map[policy.Policy]verdict.Verdict `json:"by_policy,omitempty"`
}

// Aggregate reduces hits to a Summary under the given thresholds.
// Deterministic: the same hit list yields the same summary regardless
// of ordering.
func Aggregate(hits []matcher.Hit, t Thresholds) Summary {
	s := Summary{
		Verdict:  verdict.Pass,
		ByPolicy: make(map[policy.Policy]verdict.Verdict),
	}

	for _, h := range hits {
		s.Score += h.Weight
		s.Verdict = verdict.Max(s.Verdict, h.Severity)
		s.ByPolicy[h.Policy] = verdict.Max(s.ByPolicy[h.Policy], h.Severity)
	}

	// Score escalation only ever raises the verdict.
	if len(hits) > 0 {
		if s.Score >= t.Block {
			s.Verdict = verdict.Block
		} else if s.Score >= t.Review {
			s.Verdict = verdict.Max(s.Verdict, verdict.Review)
		}
	}

	return s
}
