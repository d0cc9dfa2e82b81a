package loader

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// loadCSV parses a header-plus-rows CSV file. Fields map to header names
// positionally; rows shorter than the header produce records carrying only
// the columns that are present.
func (l *Loader) loadCSV(path string) ([]tab2sql.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Row widths may vary in real-world exports; width handling happens
	// during the positional mapping below.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	records := make([]tab2sql.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec tab2sql.Record
		for i, name := range header {
			if i >= len(row) {
				break
			}
			rec.Append(name, row[i])
		}
		records = append(records, rec)
	}
	return records, nil
}
