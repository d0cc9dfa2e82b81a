package logging

import "github.com/vvka-141/tab2sql/pkg/tab2sql"

// NullLogger is a no-op logger that discards all log messages.
// Safe for concurrent use by multiple goroutines.
// Useful for testing and when logging is not desired.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Warning is a no-op.
func (l *NullLogger) Warning(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

// Verify NullLogger implements the interface at compile time
var _ tab2sql.Logger = (*NullLogger)(nil)
