package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ExecutableDir string `yaml:"executable_dir" envconfig:"EXECUTABLE_DIR"`
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR"`
	OutputDir     string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// ProcessingConfig contains defaults for interactively collected parameters
type ProcessingConfig struct {
	DefaultKabCode      int    `yaml:"default_kab_code" envconfig:"DEFAULT_KAB_CODE"`
	DefaultRefTable     string `yaml:"default_ref_table" envconfig:"DEFAULT_REF_TABLE"`
	DefaultDerivedTable string `yaml:"default_derived_table" envconfig:"DEFAULT_DERIVED_TABLE"`
}

// defaultConfig returns the built-in configuration defaults
func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: filepath.Join(DefaultLogsDir, "checkna.log"),
		},
		Paths: PathsConfig{
			DataDir:   DefaultDataDir,
			OutputDir: DefaultOutputDir,
			LogsDir:   DefaultLogsDir,
		},
		Processing: ProcessingConfig{
			DefaultKabCode:      DefaultKabCode,
			DefaultRefTable:     DefaultRefTable,
			DefaultDerivedTable: DefaultDerivedTable,
		},
	}
}

// Load loads configuration in precedence order: built-in defaults, then the
// optional config.yaml next to the executable, then environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables take precedence over the file
	if err := envconfig.Process("CHECKNA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Resolve relative paths
	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile merges configuration from a YAML file over the current values
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// resolvePaths sets up the executable directory reference for relative paths
func (c *Config) resolvePaths() error {
	if c.Paths.ExecutableDir != "" {
		return nil
	}
	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("failed to get paths: %w", err)
	}
	c.Paths.ExecutableDir = paths.ExecutableDir
	return nil
}

// validate checks configuration consistency
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}

	if c.Paths.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	return nil
}

// GetDataDir returns the resolved data directory path
func (c *Config) GetDataDir() string {
	if filepath.IsAbs(c.Paths.DataDir) {
		return c.Paths.DataDir
	}
	return filepath.Join(c.Paths.ExecutableDir, c.Paths.DataDir)
}

// GetOutputDir returns the resolved output directory path
func (c *Config) GetOutputDir() string {
	if filepath.IsAbs(c.Paths.OutputDir) {
		return c.Paths.OutputDir
	}
	return filepath.Join(c.Paths.ExecutableDir, c.Paths.OutputDir)
}

// GetLogsDir returns the resolved logs directory path
func (c *Config) GetLogsDir() string {
	if filepath.IsAbs(c.Paths.LogsDir) {
		return c.Paths.LogsDir
	}
	return filepath.Join(c.Paths.ExecutableDir, c.Paths.LogsDir)
}

// getConfigFilePath returns the path to the configuration file
func getConfigFilePath() string {
	// Check environment variable first
	if path := os.Getenv("CHECKNA_CONFIG_FILE"); path != "" {
		return path
	}

	// Default to config.yaml next to the executable
	if paths, err := GetPaths(); err == nil {
		return filepath.Join(paths.ExecutableDir, "config.yaml")
	}
	return "config.yaml"
}
