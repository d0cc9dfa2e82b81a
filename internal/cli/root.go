// Package cli wires the cobra command surface to the conversion pipeline.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tab2sql",
	Short: "Convert CSV and XML data files into SQL scripts",
	Long: `tab2sql converts tabular data files (CSV, and element-per-record XML)
into SQL INSERT and DELETE statement scripts for manual review or execution.

For each source file it infers the column list from the first record, emits
one DELETE and one INSERT per record (deletes first, so the script behaves
as a refresh), and writes <table>.sql next to the source file.

Point it at a single file with --file, or at a directory tree with --folder
to convert every .csv and .xml file found, one table per file.

Every operation is appended to tab2sql.log in the working directory and
echoed to stdout. An optional tab2sql.yaml and a .env file can override the
log path, output directory, and default table name.

Exit Codes:
  0   - Success
  1   - General error
  2   - CLI usage error (invalid arguments or flags)
  3   - Panic or unexpected system error
  10  - Invalid configuration
  20  - Source file unreadable, malformed, or unsupported
  21  - Source file contained no records
  22  - Output file could not be written
  130 - Interrupted`,
	SilenceUsage: true,
	RunE:         runConvert,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Path to a single .csv or .xml file to convert (takes precedence over --folder)")
	rootCmd.Flags().StringVarP(&flagFolder, "folder", "d", "", "Root directory to scan recursively for .csv and .xml files")
	rootCmd.Flags().StringVarP(&flagTable, "table", "t", "", "Table name for single-file mode (ignored with --folder)")
}
