// Package generator synthesizes SQL INSERT and DELETE statement text from
// record sequences. Statement order follows input record order.
package generator

import (
	"fmt"
	"strings"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// Generator builds statements for one table at a time. It holds no state
// between calls and is safe to reuse across files.
type Generator struct {
	logger tab2sql.Logger
}

// New creates a Generator reporting through the given logger.
// Panics if logger is nil.
func New(logger tab2sql.Logger) *Generator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Generator{logger: logger}
}

// Generate produces one INSERT and one DELETE statement per record.
//
// The INSERT column list is fixed from the FIRST record's field names; later
// records are iterated with their own fields in their own order. When the
// records are heterogeneous the values can therefore diverge from the column
// list. That mirrors how the source files are produced and is accepted as a
// known correctness gap rather than silently reconciled.
//
// The DELETE statement keys on the first column of the fixed column list,
// interpolating the raw value unquoted. For textual keys this yields invalid
// SQL; the operator reviews the script before use.
func (g *Generator) Generate(records []tab2sql.Record, tableName string) (tab2sql.Statements, error) {
	if len(records) == 0 {
		return tab2sql.Statements{}, fmt.Errorf("no records to generate statements for: %w", tab2sql.ErrEmptyData)
	}

	if strings.TrimSpace(tableName) == "" {
		g.logger.Warning("No table name provided, substituting placeholder %q; replace it before running the script", tab2sql.PlaceholderTableName)
		tableName = tab2sql.PlaceholderTableName
	}

	columns := records[0].Names()
	if len(columns) == 0 {
		// A bare element with no attributes and no children parses to a
		// record with zero fields; there is no column list to build from it.
		return tab2sql.Statements{}, fmt.Errorf("first record has no fields, cannot derive a column list: %w", tab2sql.ErrEmptyData)
	}
	columnList := strings.Join(columns, ", ")
	keyColumn := columns[0]

	stmts := tab2sql.Statements{
		Table:   tableName,
		Inserts: make([]string, 0, len(records)),
		Deletes: make([]string, 0, len(records)),
	}

	for _, rec := range records {
		values := make([]string, 0, rec.Len())
		for _, f := range rec.Fields() {
			values = append(values, renderValue(f.Value))
		}
		stmts.Inserts = append(stmts.Inserts, fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s);", tableName, columnList, strings.Join(values, ", ")))

		id, _ := rec.Get(keyColumn)
		stmts.Deletes = append(stmts.Deletes, fmt.Sprintf(
			"DELETE FROM %s WHERE %s = %s;", tableName, keyColumn, id))
	}

	return stmts, nil
}

// Verify Generator implements the interface at compile time
var _ tab2sql.StatementGenerator = (*Generator)(nil)
