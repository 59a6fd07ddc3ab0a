package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskflow/app/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskflow.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr: got %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if !cfg.Dashboard.Seed {
		t.Error("Seed: expected true")
	}
	if cfg.Dashboard.DefaultFilter != models.FilterAll {
		t.Errorf("DefaultFilter: got %v, want All", cfg.Dashboard.DefaultFilter)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9090"
shutdown_timeout = "2s"

[log]
level = "debug"
format = "json"

[dashboard]
seed = false
default_filter = "Active"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr: got %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout.Duration != 2*time.Second {
		t.Errorf("ShutdownTimeout: got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.CORSOrigin != DefaultCORSOrigin {
		t.Errorf("CORSOrigin: got %q, want default", cfg.Server.CORSOrigin)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log: got %+v", cfg.Log)
	}
	if cfg.Dashboard.Seed {
		t.Error("Seed: expected false")
	}
	if cfg.Dashboard.DefaultFilter != models.FilterActive {
		t.Errorf("DefaultFilter: got %v, want Active", cfg.Dashboard.DefaultFilter)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKFLOW_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr: got %q", cfg.Server.Addr)
	}
}

func TestLoadInvalidFilter(t *testing.T) {
	path := writeConfig(t, "[dashboard]\ndefault_filter = \"Someday\"\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown default_filter")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "[server]\naddr = \"127.0.0.1:9090\"\n")
	t.Setenv("TASKFLOW_ADDR", ":7000")
	t.Setenv("TASKFLOW_LOG_FORMAT", "logfmt")
	t.Setenv("TASKFLOW_SEED", "false")
	t.Setenv("TASKFLOW_DEFAULT_FILTER", "completed")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Addr: got %q, want :7000", cfg.Server.Addr)
	}
	if cfg.Log.Format != "logfmt" {
		t.Errorf("Format: got %q", cfg.Log.Format)
	}
	if cfg.Dashboard.Seed {
		t.Error("Seed: expected false")
	}
	if cfg.Dashboard.DefaultFilter != models.FilterCompleted {
		t.Errorf("DefaultFilter: got %v", cfg.Dashboard.DefaultFilter)
	}
}

func TestEnvInvalidBool(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("TASKFLOW_SEED", "maybe")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TASKFLOW_SEED")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty addr", func(c *Config) { c.Server.Addr = " " }, true},
		{"negative timeout", func(c *Config) { c.Server.ShutdownTimeout.Duration = -time.Second }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"upper format", func(c *Config) { c.Log.Format = "JSON" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate: err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	f, err := ParseFlags([]string{"-mode", "tui", "-addr", ":1234", "-no-seed"}, &out)
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if f.Mode != ModeTUI {
		t.Errorf("Mode: got %q", f.Mode)
	}

	cfg := Default()
	f.Apply(cfg)
	if cfg.Server.Addr != ":1234" {
		t.Errorf("Addr: got %q", cfg.Server.Addr)
	}
	if cfg.Dashboard.Seed {
		t.Error("Seed: expected false")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Level: got %q, want default", cfg.Log.Level)
	}
}

func TestParseFlagsUnknownMode(t *testing.T) {
	var out bytes.Buffer
	if _, err := ParseFlags([]string{"-mode", "gui"}, &out); err == nil {
		t.Error("expected error for unknown mode")
	}
}
