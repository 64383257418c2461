package checker

import (
	"errors"
	"testing"

	"github.com/guardcheck/guardcheck/pkg/policy"
	"github.com/guardcheck/guardcheck/pkg/scope"
	"github.com/guardcheck/guardcheck/pkg/scoring"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// riskyText is the long-standing calibration sentence: one social hit
// (weight 3) plus one legal hit (weight 2) under the post profile.
const riskyText = "John is a scammer and this is a guaranteed 100% win."

func request(t *testing.T) Request {
	t.Helper()
	table, err := policy.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	return Request{
		Action:     "post",
		App:        "website",
		Scope:      scope.NewConfig(scope.ModeAll, nil),
		Thresholds: scoring.DefaultThresholds(),
		Enabled:    true,
		Table:      table,
	}
}

func TestBenignTextPasses(t *testing.T) {
	req := request(t)
	req.Text = "Hello colleague, we have a stable release update."
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Status != verdict.Pass {
		t.Errorf("Status = %s, want PASS", rep.Status)
	}
	if rep.FindingsCount != 0 {
		t.Errorf("FindingsCount = %d, want 0", rep.FindingsCount)
	}
}

func TestRiskyTextReviewsAtDefaults(t *testing.T) {
	req := request(t)
	req.Text = riskyText
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Status != verdict.Review {
		t.Errorf("Status = %s, want REVIEW (score %d)", rep.Status, rep.Score)
	}
	if rep.Thresholds.Review != 5 || rep.Thresholds.Block != 9 {
		t.Errorf("Thresholds = %+v, want {5 9}", rep.Thresholds)
	}
	if rep.Score != 5 {
		t.Errorf("Score = %d, want 5", rep.Score)
	}
}

func TestRaisedReviewThresholdWatches(t *testing.T) {
	req := request(t)
	req.Text = riskyText
	req.Thresholds = scoring.Thresholds{Review: 9, Block: 9}
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Status != verdict.Watch {
		t.Errorf("Status = %s, want WATCH", rep.Status)
	}
	// block <= review is normalized to review+1.
	if rep.Thresholds != (scoring.Thresholds{Review: 9, Block: 10}) {
		t.Errorf("Thresholds = %+v, want {9 10}", rep.Thresholds)
	}
}

func TestLoweredBlockThresholdBlocks(t *testing.T) {
	req := request(t)
	req.Text = riskyText
	req.Thresholds = scoring.Thresholds{Review: 2, Block: 4}
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Status != verdict.Block {
		t.Errorf("Status = %s, want BLOCK", rep.Status)
	}
}

func TestScopeExcludeShortCircuits(t *testing.T) {
	req := request(t)
	req.Text = riskyText
	req.App = "whatsapp"
	req.Scope = scope.NewConfig(scope.ModeExclude, []string{"whatsapp", "babylon"})
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Status != verdict.Pass {
		t.Errorf("Status = %s, want PASS for out-of-scope app", rep.Status)
	}
	if rep.FindingsCount != 0 {
		t.Errorf("FindingsCount = %d, want 0", rep.FindingsCount)
	}
	if rep.Annotation != AnnotationOutOfScope {
		t.Errorf("Annotation = %q, want %q", rep.Annotation, AnnotationOutOfScope)
	}
}

func TestDisabledAlwaysPasses(t *testing.T) {
	req := request(t)
	req.Text = riskyText
	req.Enabled = false
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Status != verdict.Pass {
		t.Errorf("Status = %s, want PASS when disabled", rep.Status)
	}
	if rep.Score != 0 {
		t.Errorf("Score = %d, want 0 when disabled", rep.Score)
	}
	if rep.Annotation != AnnotationDisabled {
		t.Errorf("Annotation = %q, want %q", rep.Annotation, AnnotationDisabled)
	}
}

func TestMarketAnalysisReviews(t *testing.T) {
	req := request(t)
	req.Action = "market-analysis"
	req.Text = "This stock will definitely double by Friday"
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var marketHit bool
	for _, h := range rep.Findings {
		if h.Policy == policy.Market && h.Severity.AtLeast(verdict.Review) {
			marketHit = true
		}
	}
	if !marketHit {
		t.Error("expected a market hit with severity >= REVIEW")
	}
	if !rep.Status.AtLeast(verdict.Review) {
		t.Errorf("Status = %s, want >= REVIEW", rep.Status)
	}
}

func TestPostProfileSkipsMarketRules(t *testing.T) {
	req := request(t)
	req.Text = "We promise guaranteed returns, a true 100% win."
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, h := range rep.Findings {
		if h.Policy == policy.Market || h.Policy == policy.Financial {
			t.Errorf("%s rule %q fired under the post profile", h.Policy, h.RuleID)
		}
	}
}

func TestExplicitHRPolicy(t *testing.T) {
	req := request(t)
	req.Policies = []string{"hr"}
	req.Text = "We should terminate him immediately for poor performance."
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var hrHit bool
	for _, h := range rep.Findings {
		if h.Policy == policy.HR {
			hrHit = true
		}
	}
	if !hrHit {
		t.Error("expected an hr hit")
	}
	if !rep.Status.AtLeast(verdict.Watch) {
		t.Errorf("Status = %s, want >= WATCH", rep.Status)
	}
}

func TestUnknownPolicyRejected(t *testing.T) {
	req := request(t)
	req.Policies = []string{"astrology"}
	req.Text = "anything"
	_, err := Run(req)
	if !errors.Is(err, policy.ErrUnknownPolicy) {
		t.Errorf("Run() error = %v, want ErrUnknownPolicy", err)
	}
}

func TestTextLenCountsRunes(t *testing.T) {
	req := request(t)
	req.Text = "привет коллега" // 14 runes, 27 bytes
	rep, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.TextLen != 14 {
		t.Errorf("TextLen = %d, want 14 (runes, not bytes)", rep.TextLen)
	}
}

func TestDeterministicAcrossRuns(t *testing.T) {
	req := request(t)
	req.Text = riskyText
	first, err := Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		rep, err := Run(req)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if rep.Status != first.Status || rep.Score != first.Score ||
			rep.FindingsCount != first.FindingsCount {
			t.Fatalf("run %d differs: %+v vs %+v", i, rep, first)
		}
	}
}
