package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Mode selects what App does with its input.
type Mode int

const (
	// ModeExpand writes expanded prompts.
	ModeExpand Mode = iota
	// ModeCheck validates prompts and writes diagnostics only.
	ModeCheck
	// ModeStrip writes prompts with comments removed.
	ModeStrip
)

func (m Mode) String() string {
	switch m {
	case ModeExpand:
		return "expand"
	case ModeCheck:
		return "check"
	case ModeStrip:
		return "strip"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// StdinText is the Text value telling App to read prompt text from standard input.
const StdinText = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Text       string // prompt text or StdinText, may be empty
	PromptFile string // HCL file with prompt blocks, excludes Text

	Seed     int64
	Count    int
	MaxDepth int
	Mode     Mode
	Strict   bool

	LogFormat string // "text" or "json", default "text"
	LogLevel  string // "debug", "info", "warn" or "error", default "warn"
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Text != "" && cfg.PromptFile != "" {
		return nil, errors.New("prompt text and prompt file cannot be used together")
	}
	if cfg.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth cannot be negative, got %d", cfg.MaxDepth)
	}
	if cfg.Mode < ModeExpand || cfg.Mode > ModeStrip {
		return nil, fmt.Errorf("unknown mode %s", cfg.Mode)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// logHandler returns the handler writing diagnostics to w in the configured format.
func (c *Config) logHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: logLevels[c.LogLevel]}
	if c.LogFormat == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
