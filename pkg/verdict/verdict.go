// Package verdict defines the ordered severity lattice for check results.
// PASS < WATCH < REVIEW < BLOCK. Aggregation is monotonic: adding a hit
// can raise a verdict, never lower it.
package verdict

// Verdict represents the outcome classification of a checked text.
// All values are uppercase strings matching the report wire format.
type Verdict string

const (
	// Pass means no rule fired, or the check was out of scope/disabled.
	Pass Verdict = "PASS"

	// Watch means low-grade hits worth a glance before publishing.
	Watch Verdict = "WATCH"

	// Review means the text needs a human look before it goes out.
	Review Verdict = "REVIEW"

	// Block means the text should not be published as written.
	Block Verdict = "BLOCK"
)

// IsValid reports whether v is a recognized verdict.
func (v Verdict) IsValid() bool {
	switch v {
	case Pass, Watch, Review, Block:
		return true
	}
	return false
}

// Rank returns a numeric rank for comparison.
// Pass=0, Watch=1, Review=2, Block=3, unknown=-1.
func (v Verdict) Rank() int {
	switch v {
	case Pass:
		return 0
	case Watch:
		return 1
	case Review:
		return 2
	case Block:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether v is at or above other in the lattice.
func (v Verdict) AtLeast(other Verdict) bool {
	return v.Rank() >= other.Rank()
}

// String returns the verdict as a string.
func (v Verdict) String() string {
	return string(v)
}

// Max returns the higher of a and b.
func Max(a, b Verdict) Verdict {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Parse maps a string (any case) to a Verdict.
// Returns Pass, false for unrecognized input.
func Parse(s string) (Verdict, bool) {
	switch s {
	case "PASS", "pass":
		return Pass, true
	case "WATCH", "watch":
		return Watch, true
	case "REVIEW", "review":
		return Review, true
	case "BLOCK", "block":
		return Block, true
	}
	return Pass, false
}
