package config

import (
	"os"
	"path/filepath"

	"github.com/tungetti/teelog/internal/constants"
)

// Default palette indices, matching logging.DefaultPalette.
const (
	DefaultDebugColor   = 7
	DefaultInfoColor    = 15
	DefaultWarningColor = 3
	DefaultErrorColor   = 9
	DefaultFatalColor   = 1
)

// DefaultConfig returns a Config with the facility defaults.
func DefaultConfig() *Config {
	return &Config{
		CreateLogFile: true,
		MaxLogFiles:   constants.DefaultMaxLogFiles,
		LogDirectory:  constants.DefaultLogDir,
		Verbosity:     "normal",
		Color:         ColorAuto,
		Prefix: PrefixConfig{
			Timestamp: true,
			Severity:  true,
			Class:     true,
			Method:    true,
			Line:      true,
		},
		Palette: PaletteConfig{
			Debug:   DefaultDebugColor,
			Info:    DefaultInfoColor,
			Warning: DefaultWarningColor,
			Error:   DefaultErrorColor,
			Fatal:   DefaultFatalColor,
		},
		RedirectStdStreams: false,
		ConfigDir:          defaultConfigDir(),
	}
}

// defaultConfigDir returns the XDG config directory for teelog.
// Falls back to ~/.config/teelog if XDG_CONFIG_HOME is not set.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", constants.DefaultConfigDir)
	}
	return filepath.Join(home, constants.DefaultConfigDir)
}

// GetConfigDir returns the configuration directory, respecting XDG.
func GetConfigDir() string {
	return defaultConfigDir()
}
