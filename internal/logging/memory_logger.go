package logging

import (
	"fmt"
	"sync"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// Entry is a single captured log message.
type Entry struct {
	Level   string
	Message string
}

// MemoryLogger captures log entries in memory so tests can assert on them.
// Safe for concurrent use by multiple goroutines.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryLogger creates a new MemoryLogger.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

// Info captures an INFO entry.
func (l *MemoryLogger) Info(format string, args ...interface{}) {
	l.append("INFO", format, args)
}

// Warning captures a WARNING entry.
func (l *MemoryLogger) Warning(format string, args ...interface{}) {
	l.append("WARNING", format, args)
}

// Error captures an ERROR entry.
func (l *MemoryLogger) Error(format string, args ...interface{}) {
	l.append("ERROR", format, args)
}

func (l *MemoryLogger) append(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	l.entries = append(l.entries, Entry{Level: level, Message: message})
}

// Entries returns a copy of all captured entries in order.
func (l *MemoryLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the messages captured at the given level, in order.
func (l *MemoryLogger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

var _ tab2sql.Logger = (*MemoryLogger)(nil)
