// Package tab2sql defines the public contracts of the tab2sql converter:
// the record model shared by the loaders and the statement generator, the
// pipeline component interfaces, sentinel errors, and exit codes.
package tab2sql

import (
	"errors"
	"fmt"
)

// Field is a single named value within a Record. Values are raw strings as
// read from the source file; an empty string renders as SQL NULL.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered mapping from column name to raw string value.
// Field order is the order of appearance in the source file (CSV header
// order, or XML attribute-then-child-element order). Records from one file
// may expose differing field sets; the generator fixes the INSERT column
// list from the first record only and does not reconcile the rest.
type Record struct {
	fields []Field
}

// Append adds a field to the end of the record.
func (r *Record) Append(name, value string) {
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Get returns the value of the first field with the given name, and whether
// such a field exists.
func (r *Record) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the record's fields in their original order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Names returns the field names in their original order.
func (r *Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.fields)
}

// Statements holds the generated SQL for one source file. Both sequences
// preserve input record order; the writer emits Deletes first, a blank line,
// then Inserts, so the script forms a delete-then-insert refresh.
type Statements struct {
	// Table is the resolved table name (explicit, derived from the file
	// base name, or the placeholder token).
	Table string

	Inserts []string
	Deletes []string
}

// ConvertConfig contains all parameters for a single-file conversion.
type ConvertConfig struct {
	// SourcePath is the .csv or .xml file to convert.
	SourcePath string

	// TableName is the target table name. When empty, the generator
	// substitutes PlaceholderTableName and logs a warning.
	TableName string

	// OutputDir is the directory for the generated .sql file.
	// When empty, the source file's own directory is used.
	OutputDir string
}

// Validate checks if the ConvertConfig has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *ConvertConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
