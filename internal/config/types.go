// Package config provides layered configuration for the sciframe toolkit:
// defaults, then a YAML project file, then SCIFRAME_ environment variables,
// then command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/sciframe-io/sciframe/internal/adapter"
)

// Defaults applied when neither file, env, nor flags say otherwise.
const (
	DefaultStateFile = "sciframe.db"
	DefaultOutput    = "table"
	DefaultDataDir   = "data"
)

// TargetConfig holds database target configuration for the query commands.
type TargetConfig struct {
	Type string `koanf:"type"` // duckdb, postgres

	// File-based databases (DuckDB)
	Path string `koanf:"path"` // file path or :memory:

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Common
	Schema string `koanf:"schema"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`
}

// Validate checks the target against the adapter registry.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !adapter.IsRegistered(strings.ToLower(t.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.List(),
		}
	}
	return nil
}

// ToAdapterConfig converts the target to an adapter connection config.
func (t *TargetConfig) ToAdapterConfig() adapter.Config {
	return adapter.Config{
		Type:     strings.ToLower(t.Type),
		Path:     t.Path,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Schema:   t.Schema,
		Options:  t.Options,
	}
}

// Config is the toolkit configuration.
type Config struct {
	// DataDir is where seed files live
	DataDir string `koanf:"data_dir"`
	// StatePath is the path to the frame store database
	StatePath string `koanf:"state_path"`
	// Encoding is the default character encoding for text sources
	Encoding string `koanf:"encoding"`
	// Output selects the rendering format (table, markdown, csv, json)
	Output string `koanf:"output"`
	// Verbose enables debug logging
	Verbose bool `koanf:"verbose"`
	// Target configures the database for query commands
	Target *TargetConfig `koanf:"target"`
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.StatePath == "" {
		c.StatePath = DefaultStateFile
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}
