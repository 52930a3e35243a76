// Package config loads CLI defaults from an optional .taskmd.yaml in the
// working directory, overlaid with TASKMD_* environment variables.
// Precedence: flags > environment > file > built-ins.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	namespace  = "TASKMD"
	configFile = ".taskmd.yaml"
)

// Config holds the CLI defaults.
type Config struct {
	// File is the task file used when the positional argument is omitted.
	File string `yaml:"file" envconfig:"FILE"`
	// DefaultState is the state the mark command applies when no state flag
	// is given: done, progress, or blocked.
	DefaultState string `yaml:"default_state" envconfig:"DEFAULT_STATE"`
	// ReportMaxErrors caps the compilation errors shown per category in
	// generated reports.
	ReportMaxErrors int `yaml:"report_max_errors" envconfig:"REPORT_MAX_ERRORS"`
}

// Load builds the effective configuration. A missing config file is fine;
// a malformed one is not.
func Load() (*Config, error) {
	return load(configFile)
}

func load(path string) (*Config, error) {
	cfg := &Config{
		File:            "TODO.md",
		DefaultState:    "done",
		ReportMaxErrors: 5,
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("invalid %s: %w", path, unmarshalErr)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := envconfig.Process(namespace, cfg); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return cfg, nil
}
