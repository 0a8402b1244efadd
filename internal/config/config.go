package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultOutputName is the output file created under the base directory when
// no explicit output path is configured.
const DefaultOutputName = "apk_urls.txt"

// Config represents the application configuration structure.
// Every field can come from an optional YAML file and is always overridable
// from the environment. Command line flags take precedence over both.
type Config struct {
	// Environment selects the logger flavour (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum zap level written to stderr
	LogLevel string `env:"LOG_LEVEL" env-default:"warn" yaml:"logLevel"`

	// Workspace contains the on-disk layout of a run
	Workspace struct {
		// BaseDir holds decompiled trees and, by default, the output file
		BaseDir string `env:"XURL_BASE_DIR" env-default:"~/xurl" yaml:"baseDir"`
	} `yaml:"workspace"`

	// Output controls where and how extracted URLs are written
	Output struct {
		// File is the output path; empty means <BaseDir>/apk_urls.txt
		File string `env:"XURL_OUTPUT_FILE" yaml:"file"`
		// Format is the output encoding (text or json)
		Format string `env:"XURL_OUTPUT_FORMAT" env-default:"text" yaml:"format"`
	} `yaml:"output"`

	// Decompiler configures the external decompiler
	Decompiler struct {
		// Binary is the executable name or path
		Binary string `env:"DECOMPILER_BINARY" env-default:"apktool" yaml:"binary"`
		// Timeout bounds a single decompilation, zero waits forever
		Timeout time.Duration `env:"DECOMPILER_TIMEOUT" env-default:"0s" yaml:"timeout"`
	} `yaml:"decompiler"`

	// MetricsFile is an optional Prometheus textfile written after each run
	MetricsFile string `env:"XURL_METRICS_FILE" yaml:"metricsFile"`
}

// OutputFile returns the configured output path, falling back to the default
// file name inside the base directory.
func (c *Config) OutputFile() string {
	if c.Output.File != "" {
		return c.Output.File
	}

	return filepath.Join(c.Workspace.BaseDir, DefaultOutputName)
}

// Load receives the path for an optional yaml config file and returns a filled
// Config struct. With an empty path only the environment and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
