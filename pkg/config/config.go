// Package config loads pipeline settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/japaniel/powerball/pkg/db"
	"github.com/japaniel/powerball/pkg/fetch"
)

// Database holds connection settings for the load stage.
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
	Schema string `yaml:"schema"`
}

// Config holds settings for the fetch, process and load stages.
type Config struct {
	RawDir       string   `yaml:"raw_dir"`
	ProcessedDir string   `yaml:"processed_dir"`
	Workers      int      `yaml:"workers"`
	SourceURL    string   `yaml:"source_url"`
	Database     Database `yaml:"database"`
}

func defaults() *Config {
	return &Config{
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		Workers:      4,
		SourceURL:    fetch.DefaultURL,
		Database: Database{
			Driver: db.DriverSQLite,
			DSN:    "powerball.db",
			Table:  "draws",
			Schema: db.SchemaLong,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Database.Driver {
	case db.DriverSQLite, db.DriverPostgres, db.DriverDuckDB:
	default:
		return fmt.Errorf("unsupported driver: %s", c.Database.Driver)
	}
	if _, err := db.ForName(c.Database.Schema); err != nil {
		return err
	}
	return nil
}
