package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/tab2sql/internal/config"
	"github.com/vvka-141/tab2sql/internal/convert"
	"github.com/vvka-141/tab2sql/internal/logging"
	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

var (
	flagFile   string
	flagFolder string
	flagTable  string
)

// runConvert is the root command body: resolve configuration, build the
// pipeline, and run it in file or folder mode. With neither --file nor
// --folder the help text is shown and the run succeeds.
func runConvert(cmd *cobra.Command, args []string) error {
	if flagFile == "" && flagFolder == "" {
		return cmd.Help()
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// SIGINT/SIGTERM cancel the run between pipeline stages. No cleanup of
	// partially written output is attempted.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewFileLogger(settings.LogFile)
	converter := convert.New(logger)

	runID := uuid.New()
	logger.Info("Run %s started", runID)

	var runErr error
	switch {
	case flagFile != "":
		tableName := flagTable
		if tableName == "" {
			tableName = settings.Table
		}
		runErr = converter.ConvertFile(ctx, tab2sql.ConvertConfig{
			SourcePath: flagFile,
			TableName:  tableName,
			OutputDir:  settings.OutputDir,
		})
	default:
		if flagTable != "" {
			logger.Warning("--table is ignored in folder mode; table names derive from file names")
		}
		runErr = converter.ConvertDirectory(ctx, flagFolder)
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			logger.Info("Run %s interrupted", runID)
		}
		return runErr
	}

	logger.Info("Run %s completed", runID)
	return nil
}

// loadSettings loads .env (best effort), the optional tab2sql.yaml from the
// working directory, and applies environment overrides.
func loadSettings() (config.Settings, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return config.Settings{}, fmt.Errorf("loading %s: %v: %w", config.ConfigFileName, err, tab2sql.ErrInvalidConfig)
	}
	return config.Resolve(cfg), nil
}
