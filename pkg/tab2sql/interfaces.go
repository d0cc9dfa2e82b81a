package tab2sql

// SourceLoader reads a source file into an ordered sequence of Records.
// Implementations fail with ErrUnsupportedFormat for unknown extensions,
// ErrLoadFailed for unreadable or malformed files, and ErrEmptyData when
// the file parses to zero records.
type SourceLoader interface {
	Load(path string) ([]Record, error)
}

// StatementGenerator turns a non-empty record sequence into SQL statement
// text for the given table. An empty table name resolves to
// PlaceholderTableName with a logged warning.
type StatementGenerator interface {
	Generate(records []Record, tableName string) (Statements, error)
}

// OutputWriter persists generated statements as <outputDir>/<table>.sql,
// overwriting any existing file. It returns the written path.
type OutputWriter interface {
	Write(outputDir string, stmts Statements) (string, error)
}

// FileScanner recursively discovers convertible (.csv/.xml) files under a
// root directory, in lexical walk order.
type FileScanner interface {
	Scan(root string) ([]string, error)
}
