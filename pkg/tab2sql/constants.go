package tab2sql

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0   // Conversion completed successfully
	ExitGeneralError = 1   // Unknown or unclassified error
	ExitUsageError   = 2   // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3   // Internal panic (unexpected crash)
	ExitConfigError  = 10  // Invalid configuration
	ExitLoadError    = 20  // Source file unreadable, malformed, or unsupported
	ExitEmptyData    = 21  // Source file contained no records
	ExitWriteError   = 22  // Output .sql file could not be written
	ExitInterrupted  = 130 // Run cancelled by SIGINT/SIGTERM
)

const (
	// PlaceholderTableName is substituted when no table name is available.
	// The token is deliberately conspicuous so the operator can find-and-replace
	// it before running the generated script.
	PlaceholderTableName = "§§TableName§§"

	// DefaultLogFileName is the append-only run log, created in the working
	// directory unless overridden by configuration.
	DefaultLogFileName = "tab2sql.log"

	// OutputExtension is appended to the resolved table name to form the
	// generated script's file name.
	OutputExtension = ".sql"
)
