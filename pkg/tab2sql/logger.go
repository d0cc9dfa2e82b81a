package tab2sql

// Logger provides a pluggable logging interface for tab2sql operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warning logs recoverable conditions, such as a missing table name
	// being replaced by the placeholder token.
	Warning(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
