// Package convert drives the conversion pipeline: load source records,
// generate statements, write the script. It orchestrates single-file runs
// and directory runs over the scanner's results.
package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tab2sql/internal/generator"
	"github.com/vvka-141/tab2sql/internal/loader"
	"github.com/vvka-141/tab2sql/internal/scanner"
	"github.com/vvka-141/tab2sql/internal/writer"
	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// Converter wires the pipeline components together. Components never
// terminate the process; every failure is logged here and returned to the
// caller, which decides the exit status.
type Converter struct {
	loader    tab2sql.SourceLoader
	generator tab2sql.StatementGenerator
	writer    tab2sql.OutputWriter
	scanner   tab2sql.FileScanner
	logger    tab2sql.Logger
}

// New creates a Converter with the default pipeline components.
// Panics if logger is nil.
func New(logger tab2sql.Logger) *Converter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Converter{
		loader:    loader.New(logger),
		generator: generator.New(logger),
		writer:    writer.New(),
		scanner:   scanner.New(),
		logger:    logger,
	}
}

// NewWithComponents creates a Converter with explicit collaborators.
// This is primarily useful for testing with substituted components.
func NewWithComponents(
	ld tab2sql.SourceLoader,
	gen tab2sql.StatementGenerator,
	wr tab2sql.OutputWriter,
	sc tab2sql.FileScanner,
	logger tab2sql.Logger,
) *Converter {
	return &Converter{
		loader:    ld,
		generator: gen,
		writer:    wr,
		scanner:   sc,
		logger:    logger,
	}
}

// ConvertFile runs the pipeline for a single source file. The first failing
// stage logs an ERROR and aborts; there is no retry and no partial-output
// cleanup.
func (c *Converter) ConvertFile(ctx context.Context, cfg tab2sql.ConvertConfig) error {
	if err := cfg.Validate(); err != nil {
		c.logger.Error("Invalid conversion parameters: %v", err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Info("Converting %s", cfg.SourcePath)

	records, err := c.loader.Load(cfg.SourcePath)
	if err != nil {
		c.logger.Error("%v", err)
		return err
	}
	c.logger.Info("Loaded %d records from %s", len(records), cfg.SourcePath)

	if err := ctx.Err(); err != nil {
		return err
	}

	stmts, err := c.generator.Generate(records, cfg.TableName)
	if err != nil {
		c.logger.Error("%v", err)
		return err
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(cfg.SourcePath)
	}

	path, err := c.writer.Write(outputDir, stmts)
	if err != nil {
		c.logger.Error("%v", err)
		return err
	}

	c.logger.Info("Wrote %d DELETE and %d INSERT statements to %s", len(stmts.Deletes), len(stmts.Inserts), path)
	return nil
}

// ConvertDirectory runs the single-file pipeline for every .csv/.xml file
// under root. Table names derive from file base names and each script lands
// next to its source file. The first failing file aborts the whole run.
func (c *Converter) ConvertDirectory(ctx context.Context, root string) error {
	c.logger.Info("Scanning %s for convertible files", root)

	paths, err := c.scanner.Scan(root)
	if err != nil {
		c.logger.Error("Scan failed: %v", err)
		return err
	}
	if len(paths) == 0 {
		c.logger.Info("No .csv or .xml files found under %s", root)
		return nil
	}
	c.logger.Info("Found %d convertible files", len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg := tab2sql.ConvertConfig{
			SourcePath: path,
			TableName:  TableNameForFile(path),
			OutputDir:  filepath.Dir(path),
		}
		if err := c.ConvertFile(ctx, cfg); err != nil {
			return fmt.Errorf("converting %s: %w", path, err)
		}
	}

	return nil
}

// TableNameForFile derives a table name from a source file path: the base
// name with the extension stripped.
func TableNameForFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
