// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for runtime configuration defaults.
//
// Usage:
//
//	cfg.ReviewThreshold = defaults.ReviewThreshold
//	os.Getenv(defaults.EnvScope)
//
// DO NOT hardcode values like `ReviewThreshold: 5` anywhere.
// Reference the appropriate constant from this package instead.
package defaults

// Version is the current guardcheck version.
const Version = "1.2.0"

// ============================================================================
// VERDICT THRESHOLDS
// ============================================================================
//
// Aggregate hit weights are compared against these. A score at or above
// ReviewThreshold escalates the verdict to at least REVIEW; at or above
// BlockThreshold to BLOCK. BlockThreshold is always kept strictly greater
// than ReviewThreshold (normalized at config resolution).
// ============================================================================

const (
	// ReviewThreshold is the default score at which a check escalates to REVIEW (5).
	ReviewThreshold = 5

	// BlockThreshold is the default score at which a check escalates to BLOCK (9).
	BlockThreshold = 9
)

// ============================================================================
// ENVIRONMENT VARIABLES
// ============================================================================
//
// Read only when the corresponding CLI flag is absent; CLI flags always win.
// Legacy names are kept for operators migrating from the old enterprise
// guardrail scripts.
// ============================================================================

const (
	// EnvScope selects the scope mode (all, include, exclude).
	EnvScope = "GUARDCHECK_SCOPE"

	// EnvScopeLegacy is the legacy alias for EnvScope.
	EnvScopeLegacy = "GUARDRAILS_SCOPE"

	// EnvApps is the comma-separated app list for include/exclude scoping.
	EnvApps = "GUARDCHECK_APPS"

	// EnvAppsLegacy is the legacy alias for EnvApps.
	EnvAppsLegacy = "GUARDRAILS_APP_TARGETS"

	// EnvEnabled toggles checking entirely ("false"/"0" disables).
	EnvEnabled = "GUARDCHECK_ENABLED"

	// EnvEnabledLegacy is the legacy alias for EnvEnabled.
	EnvEnabledLegacy = "GUARDRAILS_ENABLED"

	// EnvReviewThreshold overrides the REVIEW score threshold.
	EnvReviewThreshold = "GUARDCHECK_REVIEW_THRESHOLD"

	// EnvBlockThreshold overrides the BLOCK score threshold.
	EnvBlockThreshold = "GUARDCHECK_BLOCK_THRESHOLD"

	// EnvRules points at an alternate YAML rule map file.
	EnvRules = "GUARDCHECK_RULES"
)

// ============================================================================
// DISPLAY SETTINGS
// ============================================================================

const (
	// EvidenceMaxRunes caps matched-evidence snippets in human output (60).
	EvidenceMaxRunes = 60

	// SuggestionMaxRunes caps suggested-rewrite snippets in human output (100).
	SuggestionMaxRunes = 100
)

// ============================================================================
// GUARD COMMAND SETTINGS
// ============================================================================

const (
	// CommandTimeoutNone disables the wrapped-command timeout (0).
	CommandTimeoutNone = 0

	// AuditFileMode is the permission mode for audit log files.
	AuditFileMode = 0o600
)

// SanitizedEnvKeys are the only variables passed to a wrapped command
// when -sanitize-env is set.
var SanitizedEnvKeys = []string{
	"PATH", "HOME", "LANG", "LC_ALL", "TMPDIR", "USER", "SHELL", "TERM", "PWD",
}
