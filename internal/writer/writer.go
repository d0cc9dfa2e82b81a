// Package writer persists generated statements as .sql script files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// Writer writes one script file per conversion, named after the table.
type Writer struct{}

// New creates a new Writer.
func New() *Writer {
	return &Writer{}
}

// Write renders the statements into <outputDir>/<table>.sql and returns the
// written path. The layout is all DELETE statements, one blank line, then all
// INSERT statements, each on its own line. An existing file is overwritten.
func (w *Writer) Write(outputDir string, stmts tab2sql.Statements) (string, error) {
	path := filepath.Join(outputDir, stmts.Table+tab2sql.OutputExtension)

	var b strings.Builder
	for _, stmt := range stmts.Deletes {
		b.WriteString(stmt)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, stmt := range stmts.Inserts {
		b.WriteString(stmt)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %v: %w", path, err, tab2sql.ErrWriteFailed)
	}
	return path, nil
}

// Verify Writer implements the interface at compile time
var _ tab2sql.OutputWriter = (*Writer)(nil)
