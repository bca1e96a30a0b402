// Package config provides configuration management for teelog.
// It supports loading configuration from YAML files and environment variables,
// with validation and sensible defaults. The configuration file lives in the
// XDG config directory.
package config

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/logging"
)

// Color modes accepted by the color field.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the facility configuration.
// Configuration values can be set via YAML file or environment variables,
// with environment variables taking precedence.
type Config struct {
	// Retention
	CreateLogFile bool   `yaml:"create_log_file"`
	MaxLogFiles   int    `yaml:"max_log_files"`
	LogDirectory  string `yaml:"log_directory"`

	// Rendering
	Verbosity string        `yaml:"verbosity"`
	Color     string        `yaml:"color"`
	Prefix    PrefixConfig  `yaml:"prefix"`
	Palette   PaletteConfig `yaml:"palette"`

	// Capture
	RedirectStdStreams bool   `yaml:"redirect_std_streams"`
	ThreadName         string `yaml:"thread_name,omitempty"`

	// ConfigDir is where the config file was looked up. It is not persisted.
	ConfigDir string `yaml:"-"`
}

// PrefixConfig selects the segments written before every message.
type PrefixConfig struct {
	Timestamp bool `yaml:"timestamp"`
	Severity  bool `yaml:"severity"`
	Thread    bool `yaml:"thread"`
	Namespace bool `yaml:"namespace"`
	Class     bool `yaml:"class"`
	Method    bool `yaml:"method"`
	Line      bool `yaml:"line"`
}

// PaletteConfig holds a 256-colour index per severity.
type PaletteConfig struct {
	Debug   int `yaml:"debug"`
	Info    int `yaml:"info"`
	Warning int `yaml:"warning"`
	Error   int `yaml:"error"`
	Fatal   int `yaml:"fatal"`
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, constants.ConfigFileName)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// VerbosityTier returns the configured tier, TierNormal when unrecognised.
func (c *Config) VerbosityTier() logging.VerbosityTier {
	tier, _ := logging.ParseVerbosity(c.Verbosity)
	return tier
}

// ColorEnabled resolves the color mode against the given console writer.
func (c *Config) ColorEnabled(console io.Writer) bool {
	switch strings.ToLower(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return logging.DetectColor(console)
	}
}

// LoggingOptions converts the configuration into facility options that
// write to console.
func (c *Config) LoggingOptions(console io.Writer) logging.Options {
	opts := logging.DefaultOptions()
	opts.CreateLogFile = c.CreateLogFile
	opts.MaxLogFiles = c.MaxLogFiles
	opts.Directory = c.LogDirectory
	opts.Verbosity = c.VerbosityTier()
	opts.RedirectStdStreams = c.RedirectStdStreams
	opts.ThreadName = c.ThreadName
	opts.Prefix = c.Prefix.flags()
	opts.Palette = c.Palette.palette()
	if console != nil {
		opts.Console = console
	}
	opts.Color = c.ColorEnabled(opts.Console)
	return opts
}

func (p PrefixConfig) flags() logging.PrefixFlags {
	return logging.PrefixFlags{
		Timestamp: p.Timestamp,
		Severity:  p.Severity,
		Thread:    p.Thread,
		Namespace: p.Namespace,
		Class:     p.Class,
		Method:    p.Method,
		Line:      p.Line,
	}
}

func (p PaletteConfig) palette() logging.Palette {
	return logging.Palette{
		Debug:   logging.Color256(p.Debug),
		Info:    logging.Color256(p.Info),
		Warning: logging.Color256(p.Warning),
		Error:   logging.Color256(p.Error),
		Fatal:   logging.Color256(p.Fatal),
	}
}

// Indices returns the palette as a severity-ordered slice.
func (p PaletteConfig) Indices() []int {
	return []int{p.Debug, p.Info, p.Warning, p.Error, p.Fatal}
}
