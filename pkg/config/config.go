// Package config loads synthd configuration from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/synthd/synthd/pkg/enhance"
	"github.com/synthd/synthd/pkg/export"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Log holds logging configuration.
type Log struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Config holds the full synthd configuration.
type Config struct {
	// Entity counts per generation run.
	Users    int `json:"users" yaml:"users"`
	Products int `json:"products" yaml:"products"`
	Orders   int `json:"orders" yaml:"orders"`

	// Locale for the fake value provider (BCP 47 or underscore form).
	Locale string `json:"locale" yaml:"locale"`

	// Seed for reproducible generation. Zero means a random seed.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// DB is the bbolt database path. Empty selects the in-memory store.
	DB string `json:"db" yaml:"db"`

	// Out is the directory export files are written to.
	Out string `json:"out" yaml:"out"`

	// Export is an optional format to export after generation
	// (json, csv, yaml). Empty disables the post-generation export.
	Export string `json:"export,omitempty" yaml:"export,omitempty"`

	// Enhancer configures the optional field enhancement step.
	Enhancer enhance.Config `json:"enhancer" yaml:"enhancer"`

	Log Log `json:"log" yaml:"log"`
}

// Default returns the default configuration, matching the CLI defaults.
func Default() *Config {
	return &Config{
		Users:    10,
		Products: 20,
		Orders:   50,
		Locale:   "en-US",
		DB:       "synthd.db",
		Out:      ".",
		Log:      Log{Level: "info", Format: "text"},
	}
}

// Load reads a Config from a YAML or JSON file, layered over Default.
// The format is detected from the file extension (.yaml/.yml for YAML,
// otherwise JSON).
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := Default()
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks counts and the export format selection.
func (c *Config) Validate() error {
	if c.Users < 0 || c.Products < 0 || c.Orders < 0 {
		return fmt.Errorf("entity counts must be non-negative (got %d users, %d products, %d orders)",
			c.Users, c.Products, c.Orders)
	}
	if c.Export != "" && export.ParseFormat(c.Export) == export.FormatUnknown {
		return fmt.Errorf("unknown export format %q (supported: json, csv, yaml)", c.Export)
	}
	return nil
}
