package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// timestampLayout matches the log line format `<timestamp> [<LEVEL>] <message>`.
const timestampLayout = "2006-01-02 15:04:05"

// FileLogger appends every message as a timestamped line to a log file and
// echoes the same line to stdout. The file is opened and closed per message,
// so concurrent runs can share the same append-only log.
// Safe for concurrent use by multiple goroutines.
type FileLogger struct {
	path string
	echo io.Writer
	mu   sync.Mutex
}

// NewFileLogger creates a FileLogger appending to the given path and echoing
// to stdout.
func NewFileLogger(path string) *FileLogger {
	return &FileLogger{
		path: path,
		echo: os.Stdout,
	}
}

// NewFileLoggerWithEcho creates a FileLogger that echoes to the given writer
// instead of stdout. This is primarily useful for testing.
func NewFileLoggerWithEcho(path string, echo io.Writer) *FileLogger {
	return &FileLogger{
		path: path,
		echo: echo,
	}
}

// Info logs informational messages about normal operations.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.log("INFO", format, args)
}

// Warning logs recoverable conditions.
func (l *FileLogger) Warning(format string, args ...interface{}) {
	l.log("WARNING", format, args)
}

// Error logs error messages.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.log("ERROR", format, args)
}

func (l *FileLogger) log(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	line := fmt.Sprintf("%s [%s] %s\n", time.Now().Format(timestampLayout), level, message)

	fmt.Fprint(l.echo, line)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// The console echo above already carried the message; a broken log
		// file must not take the run down with it.
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", l.path, err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to append to log file %s: %v\n", l.path, err)
	}
}

// Verify FileLogger implements the interface at compile time
var _ tab2sql.Logger = (*FileLogger)(nil)
