package writer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

func TestWriteLayout(t *testing.T) {
	dir := t.TempDir()
	stmts := tab2sql.Statements{
		Table:   "people",
		Deletes: []string{"DELETE FROM people WHERE id = 1;", "DELETE FROM people WHERE id = 2;"},
		Inserts: []string{"INSERT INTO people (id) VALUES (1);", "INSERT INTO people (id) VALUES (2);"},
	}

	path, err := New().Write(dir, stmts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "people.sql"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"DELETE FROM people WHERE id = 1;\n"+
			"DELETE FROM people WHERE id = 2;\n"+
			"\n"+
			"INSERT INTO people (id) VALUES (1);\n"+
			"INSERT INTO people (id) VALUES (2);\n",
		string(data))
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.sql")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	stmts := tab2sql.Statements{
		Table:   "people",
		Deletes: []string{"DELETE FROM people WHERE id = 1;"},
		Inserts: []string{"INSERT INTO people (id) VALUES (1);"},
	}
	_, err := New().Write(dir, stmts)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteFailure(t *testing.T) {
	stmts := tab2sql.Statements{Table: "people"}

	_, err := New().Write(filepath.Join(t.TempDir(), "missing"), stmts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tab2sql.ErrWriteFailed), "expected ErrWriteFailed, got: %v", err)
}
