package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rise/internal/storage"
)

// Config holds all RISE configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr               string   `yaml:"addr"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration: serve on :8000 (the
// port the frontend expects), permissive CORS, DB at the standard
// location.
func Default() (Config, error) {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Server: ServerConfig{
			Addr:               ":8000",
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{Path: dbPath},
		Logging:  LoggingConfig{Level: "info"},
	}, nil
}

// Load reads a YAML config file over the defaults, then applies env
// overrides (RISE_ADDR, RISE_DB). A missing file is not an error;
// the defaults stand.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("RISE_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath := os.Getenv("RISE_DB"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, nil
}
