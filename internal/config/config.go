// Package config loads the optional tab2sql.yaml project file and applies
// environment overrides. All settings have working defaults; a missing
// config file is not an error for callers that treat ErrConfigNotFound
// as "use defaults".
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory.
const ConfigFileName = "tab2sql.yaml"

// Environment variable overrides. These sit between CLI flags and the yaml
// file in precedence: flag > environment > yaml > default.
const (
	EnvLogFile   = "TAB2SQL_LOG_FILE"
	EnvOutputDir = "TAB2SQL_OUTPUT_DIR"
)

// ProjectConfig holds the optional per-project settings.
type ProjectConfig struct {
	// LogFile is the append-only run log path.
	LogFile string `yaml:"log_file,omitempty"`

	// OutputDir overrides where generated .sql files are written.
	// Empty means next to each source file.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Table is the default table name for single-file runs.
	Table string `yaml:"table,omitempty"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Settings is the fully resolved configuration for one run.
type Settings struct {
	LogFile   string
	OutputDir string
	Table     string
}

// Resolve merges the yaml config (may be nil) with environment overrides and
// defaults. Flag-level overrides are applied by the CLI on top of the result.
func Resolve(cfg *ProjectConfig) Settings {
	s := Settings{
		LogFile: tab2sql.DefaultLogFileName,
	}
	if cfg != nil {
		if cfg.LogFile != "" {
			s.LogFile = cfg.LogFile
		}
		s.OutputDir = cfg.OutputDir
		s.Table = cfg.Table
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.LogFile = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		s.OutputDir = v
	}
	return s
}
