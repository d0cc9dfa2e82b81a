package tab2sql

import (
	"context"
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := converter.ConvertFile(ctx, cfg)
//	if errors.Is(err, tab2sql.ErrEmptyData) {
//	    // Handle a source file with no records
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates the source file extension is neither
	// .csv nor .xml.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrLoadFailed indicates the source file could not be read or parsed.
	ErrLoadFailed = errors.New("load failed")

	// ErrEmptyData indicates the source file parsed to zero records.
	ErrEmptyData = errors.New("no records in source file")

	// ErrWriteFailed indicates the output .sql file could not be written.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedFormat), errors.Is(err, ErrLoadFailed):
		return ExitLoadError
	case errors.Is(err, ErrEmptyData):
		return ExitEmptyData
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteError
	}

	return ExitGeneralError
}
