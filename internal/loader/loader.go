// Package loader reads CSV and XML source files into ordered record
// sequences. The whole file is loaded into memory; these are small,
// operator-curated datasets, not streaming inputs.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// Loader dispatches on file extension to the CSV or XML parser.
type Loader struct {
	logger tab2sql.Logger
}

// New creates a Loader reporting through the given logger.
// Panics if logger is nil.
func New(logger tab2sql.Logger) *Loader {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{logger: logger}
}

// Load reads the file at path into a sequence of records.
//
// Returns:
//   - tab2sql.ErrUnsupportedFormat for extensions other than .csv/.xml
//   - tab2sql.ErrLoadFailed when the file is unreadable or malformed
//   - tab2sql.ErrEmptyData when the file parses to zero records
func (l *Loader) Load(path string) ([]tab2sql.Record, error) {
	var (
		records []tab2sql.Record
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = l.loadCSV(path)
	case ".xml":
		records, err = l.loadXML(path)
	default:
		return nil, fmt.Errorf("cannot convert %s (extension %q): %w", path, ext, tab2sql.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %v: %w", path, err, tab2sql.ErrLoadFailed)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, tab2sql.ErrEmptyData)
	}

	return records, nil
}

// Verify Loader implements the interface at compile time
var _ tab2sql.SourceLoader = (*Loader)(nil)
