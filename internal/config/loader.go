package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/errors"
)

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = constants.EnvPrefix

// Loader handles configuration loading from multiple sources.
// It loads configuration in order: defaults -> file -> environment variables,
// with later sources overriding earlier ones.
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader creates a new configuration loader.
// If configPath is empty, only defaults and environment variables are used.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		envPrefix:  EnvPrefix,
	}
}

// NewLoaderWithPrefix creates a new loader with a custom environment variable prefix.
func NewLoaderWithPrefix(configPath, envPrefix string) *Loader {
	return &Loader{
		configPath: configPath,
		envPrefix:  envPrefix,
	}
}

// Load loads configuration from file and environment.
// Returns an error if the file exists but cannot be parsed.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		cfg.ConfigDir = filepath.Dir(l.configPath)
		if err := l.loadFromFile(cfg); err != nil {
			return nil, err
		}
	}

	l.loadFromEnv(cfg)

	return cfg, nil
}

// LoadAndValidate loads configuration and validates it.
func (l *Loader) LoadAndValidate() (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}

	validator := NewValidator()
	if err := validator.ValidateOrError(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads config from YAML file.
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file means defaults.
			return nil
		}
		return errors.Wrap(errors.Configuration, "failed to read config file", err).
			WithOp("config.loadFromFile")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.Configuration, "failed to parse config file", err).
			WithOp("config.loadFromFile")
	}

	return nil
}

// loadFromEnv loads config from environment variables.
// Unparseable numeric values are ignored.
func (l *Loader) loadFromEnv(cfg *Config) {
	l.envBool("CREATE_LOG_FILE", &cfg.CreateLogFile)
	l.envInt("MAX_LOG_FILES", &cfg.MaxLogFiles)
	l.envString("LOG_DIRECTORY", &cfg.LogDirectory)
	l.envString("VERBOSITY", &cfg.Verbosity)
	l.envString("COLOR", &cfg.Color)
	l.envBool("REDIRECT_STD_STREAMS", &cfg.RedirectStdStreams)
	l.envString("THREAD_NAME", &cfg.ThreadName)

	l.envBool("PREFIX_TIMESTAMP", &cfg.Prefix.Timestamp)
	l.envBool("PREFIX_SEVERITY", &cfg.Prefix.Severity)
	l.envBool("PREFIX_THREAD", &cfg.Prefix.Thread)
	l.envBool("PREFIX_NAMESPACE", &cfg.Prefix.Namespace)
	l.envBool("PREFIX_CLASS", &cfg.Prefix.Class)
	l.envBool("PREFIX_METHOD", &cfg.Prefix.Method)
	l.envBool("PREFIX_LINE", &cfg.Prefix.Line)

	l.envInt("PALETTE_DEBUG", &cfg.Palette.Debug)
	l.envInt("PALETTE_INFO", &cfg.Palette.Info)
	l.envInt("PALETTE_WARNING", &cfg.Palette.Warning)
	l.envInt("PALETTE_ERROR", &cfg.Palette.Error)
	l.envInt("PALETTE_FATAL", &cfg.Palette.Fatal)
}

func (l *Loader) envString(key string, dst *string) {
	if v := os.Getenv(l.envPrefix + key); v != "" {
		*dst = v
	}
}

func (l *Loader) envBool(key string, dst *bool) {
	if v := os.Getenv(l.envPrefix + key); v != "" {
		*dst = parseBool(v)
	}
}

func (l *Loader) envInt(key string, dst *int) {
	if v := os.Getenv(l.envPrefix + key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

// parseBool parses a string as a boolean value.
// Accepts: true, 1, yes, on (case-insensitive) as true.
// All other values are treated as false.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// Marshal renders the configuration as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.Configuration, "failed to marshal config", err).
			WithOp("config.Marshal")
	}
	return data, nil
}

// SaveConfig saves the configuration to a YAML file.
// An empty path means the config file in cfg.ConfigDir.
// The directory is created if it doesn't exist.
func SaveConfig(cfg *Config, path string) error {
	targetPath := path
	if targetPath == "" {
		targetPath = cfg.ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return errors.Wrap(errors.Configuration, "failed to create config directory", err).
			WithOp("config.SaveConfig")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(targetPath, data, 0644); err != nil {
		return errors.Wrap(errors.Configuration, "failed to write config file", err).
			WithOp("config.SaveConfig")
	}

	return nil
}

// LoadDefaultConfig loads configuration from the default location.
func LoadDefaultConfig() (*Config, error) {
	return NewLoader(DefaultConfig().ConfigPath()).Load()
}

// LoadDefaultConfigAndValidate loads and validates configuration from the default location.
func LoadDefaultConfigAndValidate() (*Config, error) {
	return NewLoader(DefaultConfig().ConfigPath()).LoadAndValidate()
}
