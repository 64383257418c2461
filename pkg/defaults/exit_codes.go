package defaults

// Exit codes for the CLI.
const (
	ExitPass       = 0 // PASS or WATCH verdict
	ExitReview     = 1 // REVIEW verdict (advisory non-zero for scripting)
	ExitBlock      = 2 // BLOCK verdict, or guard refused to run the command
	ExitUserError  = 3 // Invalid arguments or configuration
	ExitInputError = 4 // Input text could not be read
)
