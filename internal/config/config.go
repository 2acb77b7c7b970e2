// Package config assembles the immutable run configuration for a scan.
//
// Precedence, lowest to highest: built-in defaults, the optional
// .hassmap.yaml file in the scanned root, environment variables (seeded from
// an optional .env file in the root), and finally command-line flags applied
// by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-repository configuration file.
const ConfigFileName = ".hassmap.yaml"

// DefaultOutputFile is where the manifest is written, relative to the root.
const DefaultOutputFile = "project_structure.json"

// DefaultProjectName is used when PROJECT_NAME is not set anywhere.
const DefaultProjectName = "Home Assistant Configuration"

// HistoryConfig controls the scan-history database.
type HistoryConfig struct {
	// Enabled turns history recording on or off
	Enabled bool `yaml:"enabled"`

	// DBPath is the history database location, relative to the root
	DBPath string `yaml:"db_path"`
}

// Config holds everything a single run needs. It is built once and passed
// explicitly; nothing reads the environment after Load returns.
type Config struct {
	// RootDir is the repository root being scanned
	RootDir string `yaml:"-"`

	// OutputFile is the manifest filename, relative to RootDir
	OutputFile string `yaml:"output_file"`

	// ProjectName is the project_name manifest field
	ProjectName string `yaml:"project_name"`

	// RepoURL is the repository manifest field
	RepoURL string `yaml:"repo_url"`

	// LogLevel sets console verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// History controls scan-history recording
	History HistoryConfig `yaml:"history"`
}

// Default returns a Config with the documented default values.
func Default() *Config {
	return &Config{
		RootDir:     ".",
		OutputFile:  DefaultOutputFile,
		ProjectName: DefaultProjectName,
		RepoURL:     "",
		LogLevel:    "info",
		History: HistoryConfig{
			Enabled: true,
			DBPath:  filepath.Join(".hassmap", "history.db"),
		},
	}
}

// Load builds the configuration for scanning root. A missing .hassmap.yaml
// or .env is not an error; a malformed .hassmap.yaml is.
func Load(root string) (*Config, error) {
	cfg := Default()
	cfg.RootDir = root

	// Seed the environment from the repository's .env, if present. Existing
	// variables win over the file.
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := loadFile(filepath.Join(root, ConfigFileName), cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// loadFile merges settings from a YAML config file into cfg. A missing file
// leaves cfg untouched.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// applyEnv overrides the metadata fields from the environment. Variables
// that are set but empty count as set.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("PROJECT_NAME"); ok {
		cfg.ProjectName = v
	}
	if v, ok := os.LookupEnv("REPO_URL"); ok {
		cfg.RepoURL = v
	}
}
