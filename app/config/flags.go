package config

import (
	"flag"
	"fmt"
	"io"
)

// Mode selects which presentation surface runs.
type Mode string

const (
	ModeServe Mode = "serve"
	ModeTUI   Mode = "tui"
)

// Flags are the command-line options.
type Flags struct {
	ConfigPath string
	Mode       Mode
	Addr       string
	LogLevel   string
	NoSeed     bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("taskflow", flag.ContinueOnError)
	fs.SetOutput(output)

	var mode string
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	fs.StringVar(&mode, "mode", string(ModeServe), "serve|tui")
	fs.StringVar(&f.Addr, "addr", "", "HTTP listen address (overrides config)")
	fs.StringVar(&f.LogLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	fs.BoolVar(&f.NoSeed, "no-seed", false, "start with an empty task list")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch Mode(mode) {
	case ModeServe, ModeTUI:
		f.Mode = Mode(mode)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	return f, nil
}

// Apply overrides cfg with any flags that were set.
func (f *Flags) Apply(cfg *Config) {
	if f.Addr != "" {
		cfg.Server.Addr = f.Addr
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.NoSeed {
		cfg.Dashboard.Seed = false
	}
}
