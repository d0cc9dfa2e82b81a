// Package logging provides concrete implementations of the tab2sql.Logger interface.
//
// Available implementations:
//   - FileLogger: Appends timestamped lines to the run log file and echoes them to stdout
//   - MemoryLogger: Captures entries in memory (useful for testing)
//   - NullLogger: Discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
