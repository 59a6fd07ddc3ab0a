// Package config loads TaskFlow settings from defaults, a TOML file,
// TASKFLOW_* environment variables, and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"taskflow/app/models"
)

const (
	// DefaultAddr is the HTTP listen address.
	DefaultAddr = "0.0.0.0:8080"

	// DefaultConfigFile is read when present and no other path is given.
	DefaultConfigFile = "taskflow.toml"

	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultCORSOrigin      = "*"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds all runtime settings.
type Config struct {
	Server    Server    `toml:"server"`
	Log       Log       `toml:"log"`
	Dashboard Dashboard `toml:"dashboard"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string   `toml:"addr"`
	CORSOrigin      string   `toml:"cors_origin"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json, or logfmt
	File   string `toml:"file"`   // empty writes to stderr
}

// Dashboard configures the initial task list.
type Dashboard struct {
	Seed          bool          `toml:"seed"`
	DefaultFilter models.Filter `toml:"default_filter"`
}

// Duration decodes TOML strings such as "5s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a time.ParseDuration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            DefaultAddr,
			CORSOrigin:      DefaultCORSOrigin,
			ShutdownTimeout: Duration{DefaultShutdownTimeout},
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Dashboard: Dashboard{
			Seed:          true,
			DefaultFilter: models.FilterAll,
		},
	}
}

// Load builds a Config from defaults, then the TOML file at path, then the
// environment. An empty path falls back to TASKFLOW_CONFIG and then to
// DefaultConfigFile if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if v := os.Getenv("TASKFLOW_CONFIG"); v != "" {
			path = v
			explicit = true
		} else {
			path = DefaultConfigFile
		}
	}

	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TASKFLOW_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TASKFLOW_CORS_ORIGIN"); v != "" {
		cfg.Server.CORSOrigin = v
	}
	if v := os.Getenv("TASKFLOW_SHUTDOWN_TIMEOUT"); v != "" {
		if err := cfg.Server.ShutdownTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("TASKFLOW_SHUTDOWN_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("TASKFLOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TASKFLOW_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TASKFLOW_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TASKFLOW_SEED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TASKFLOW_SEED: %w", err)
		}
		cfg.Dashboard.Seed = b
	}
	if v := os.Getenv("TASKFLOW_DEFAULT_FILTER"); v != "" {
		f, err := models.ParseFilter(v)
		if err != nil {
			return fmt.Errorf("TASKFLOW_DEFAULT_FILTER: %w", err)
		}
		cfg.Dashboard.DefaultFilter = f
	}
	return nil
}

// Validate checks values that cannot be checked while decoding.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr is empty")
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative, got %s", c.Server.ShutdownTimeout.Duration)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format must be text, json, or logfmt, got %q", c.Log.Format)
	}
	return nil
}
