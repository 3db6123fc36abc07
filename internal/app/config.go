package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment selects logger defaults.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// configFilename is looked up in the home directory when no explicit path is given.
const configFilename = "config.yaml"

// Environment variables that override file settings.
const (
	envHome       = "TRAVELBOOK_HOME"
	envPassphrase = "TRAVELBOOK_PASSPHRASE"
	envLogLevel   = "TRAVELBOOK_LOG_LEVEL"
	envEnv        = "TRAVELBOOK_ENV"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string      `yaml:"home"`       // data directory, e.g. $HOME/.travelbook
	Passphrase  string      `yaml:"passphrase"` // seals book files when set
	LogLevel    string      `yaml:"log_level"`  // debug, info, warn, error
	Environment Environment `yaml:"environment"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() (Config, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Home:        filepath.Join(dir, ".travelbook"),
		LogLevel:    "info",
		Environment: Development,
	}, nil
}

// LoadConfig layers defaults, the YAML file and environment variables, lowest first.
// path may be empty, in which case config.yaml in the home directory is used if present.
func LoadConfig(path string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}
	if home := os.Getenv(envHome); home != "" {
		cfg.Home = home
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.Home, configFilename)
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if val := os.Getenv(envHome); val != "" {
		c.Home = val
	}
	if val := os.Getenv(envPassphrase); val != "" {
		c.Passphrase = val
	}
	if val := os.Getenv(envLogLevel); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv(envEnv); val != "" {
		c.Environment = Environment(strings.ToLower(val))
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Environment {
	case Development, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
