package loader

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/tab2sql/internal/logging"
	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

func TestLoadXMLAttributesAndChildren(t *testing.T) {
	path := writeFile(t, "people.xml",
		`<people><person id="1" dept="IT"><name>Alice</name><age>30</age></person>`+
			`<person id="2"><name>Bob</name><age></age></person></people>`)

	records, err := New(logging.NewNullLogger()).Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Attributes come first, in document order, then child elements.
	assert.Equal(t, []string{"id", "dept", "name", "age"}, records[0].Names())

	dept, ok := records[0].Get("dept")
	require.True(t, ok)
	assert.Equal(t, "IT", dept)

	name, ok := records[1].Get("name")
	require.True(t, ok)
	assert.Equal(t, "Bob", name)

	age, ok := records[1].Get("age")
	require.True(t, ok)
	assert.Equal(t, "", age)

	// Records may expose differing field sets; no reconciliation happens here.
	assert.Equal(t, []string{"id", "name", "age"}, records[1].Names())
}

func TestLoadXMLStripsLegacyDeclaration(t *testing.T) {
	content := legacyDeclaration + "\n<rows><row id=\"1\"/></rows>"
	path := writeFile(t, "legacy.xml", content)

	records, err := New(logging.NewNullLogger()).Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The declaration line is removed from the file on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<rows><row id=\"1\"/></rows>", string(data))
}

func TestLoadXMLKeepsOtherDeclarations(t *testing.T) {
	content := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<rows><row id=\"1\"/></rows>"
	path := writeFile(t, "regular.xml", content)

	_, err := New(logging.NewNullLogger()).Load(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "a version 1.0 declaration must be left untouched")
}

func TestLoadXMLMalformed(t *testing.T) {
	path := writeFile(t, "broken.xml", "<rows><row></rows>")

	_, err := New(logging.NewNullLogger()).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tab2sql.ErrLoadFailed), "expected ErrLoadFailed, got: %v", err)
}

func TestLoadXMLEmptyRoot(t *testing.T) {
	path := writeFile(t, "empty.xml", "<rows></rows>")

	_, err := New(logging.NewNullLogger()).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tab2sql.ErrEmptyData), "expected ErrEmptyData, got: %v", err)
}
