package output

import (
	"github.com/guardcheck/guardcheck/pkg/defaults"
	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// ExitCode maps a verdict to the process exit status for scripting:
// PASS and WATCH succeed, REVIEW is an advisory non-zero, BLOCK is the
// hard failure code.
func ExitCode(v verdict.Verdict) int {
	switch v {
	case verdict.Review:
		return defaults.ExitReview
	case verdict.Block:
		return defaults.ExitBlock
	default:
		return defaults.ExitPass
	}
}
