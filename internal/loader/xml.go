package loader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// legacyDeclaration is the single-quoted XML 1.1 declaration some upstream
// exports carry. encoding/xml rejects version="1.1", so a first line matching
// this exact form is removed from the file on disk before parsing. Any other
// declaration is left untouched.
const legacyDeclaration = `<?xml version='1.1' encoding='UTF-8'?>`

// xmlDocument captures the root element and its direct children, each of
// which is treated as one record.
type xmlDocument struct {
	XMLName xml.Name
	Nodes   []xmlNode `xml:",any"`
}

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlChild `xml:",any"`
}

type xmlChild struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// loadXML parses an element-per-record XML document. For each child of the
// root, attributes become fields first (document order), then child elements
// keyed by tag name and valued by their direct text content.
func (l *Loader) loadXML(path string) ([]tab2sql.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data, err = l.stripLegacyDeclaration(path, data)
	if err != nil {
		return nil, err
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	records := make([]tab2sql.Record, 0, len(doc.Nodes))
	for _, node := range doc.Nodes {
		var rec tab2sql.Record
		for _, attr := range node.Attrs {
			rec.Append(attr.Name.Local, attr.Value)
		}
		for _, child := range node.Children {
			rec.Append(child.XMLName.Local, child.Text)
		}
		records = append(records, rec)
	}
	return records, nil
}

// stripLegacyDeclaration removes the legacy declaration line from the file on
// disk when the first line matches it exactly, and returns the content to
// parse. The in-place rewrite keeps the file valid for later runs and for
// other XML tooling.
func (l *Loader) stripLegacyDeclaration(path string, data []byte) ([]byte, error) {
	firstLine, rest, found := bytes.Cut(data, []byte("\n"))
	if !found {
		return data, nil
	}
	if strings.TrimRight(string(firstLine), "\r") != legacyDeclaration {
		return data, nil
	}

	if err := os.WriteFile(path, rest, 0644); err != nil {
		return nil, fmt.Errorf("removing legacy XML declaration: %w", err)
	}
	l.logger.Info("Removed legacy XML declaration from %s", path)
	return rest, nil
}
