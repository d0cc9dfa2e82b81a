// Package scanner discovers convertible source files in a directory tree.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// Scanner recursively enumerates .csv and .xml files under a root path.
type Scanner struct{}

// New creates a new Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan walks root and returns the paths of all convertible files in lexical
// walk order. Files with other extensions are ignored; walk errors abort the
// scan.
func (s *Scanner) Scan(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if isConvertibleExtension(filepath.Ext(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// isConvertibleExtension checks if the file extension belongs to a supported
// source format.
func isConvertibleExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".csv", ".xml":
		return true
	default:
		return false
	}
}

// Verify Scanner implements the interface at compile time
var _ tab2sql.FileScanner = (*Scanner)(nil)
