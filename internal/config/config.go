// Package config loads the fastset configuration file.
//
// The configuration lives in $FASTSET_HOME/config.yaml (default
// ~/.fastset/config.yaml). Every top-level section present in the file
// replaces the built-in default for that section; environment variables
// override individual keys afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/fastset/internal/fset"
	"github.com/rshade/fastset/internal/logging"
)

// Environment variables overriding configuration keys.
const (
	EnvHome        = "FASTSET_HOME"
	EnvLogLevel    = "FASTSET_LOG_LEVEL"
	EnvUseKeys     = "FASTSET_USE_KEYS"
	EnvOptionsFile = "FASTSET_OPTIONS_FILE"
)

const (
	configFileName = "config.yaml"
	logFileName    = "fastset.log"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the fastset configuration.
type Config struct {
	Look    LookConfig    `yaml:"look"`
	Format  FormatConfig  `yaml:"format"`
	Color   ColorConfig   `yaml:"color"`
	Logging LoggingConfig `yaml:"logging"`
	Options OptionsConfig `yaml:"options"`

	configPath string
}

// LookConfig controls key bindings.
type LookConfig struct {
	// UseKeys binds alt+<key> shortcuts for the option actions.
	UseKeys bool `yaml:"use_keys"`
}

// FormatConfig holds the row templates.
type FormatConfig struct {
	Option        string `yaml:"option"`
	OptionCurrent string `yaml:"option_current"`
}

// ColorConfig maps a column field to its [normal, selected] colors.
type ColorConfig map[string][]string

// OptionsConfig locates the option set.
type OptionsConfig struct {
	// File is a YAML option file; empty uses the built-in set.
	File string `yaml:"file"`
	// Watch reloads the pane when File changes on disk.
	Watch bool `yaml:"watch"`
}

// New returns the default configuration.
func New() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = filepath.Join(os.TempDir(), ".fastset")
	}

	s := fset.DefaultSettings()
	colors := make(ColorConfig, len(s.Colors))
	for field, pair := range s.Colors {
		colors[field] = []string{pair[0], pair[1]}
	}

	return &Config{
		Look: LookConfig{UseKeys: s.UseKeys},
		Format: FormatConfig{
			Option:        s.Format,
			OptionCurrent: s.FormatCurrent,
		},
		Color: colors,
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
			File:   filepath.Join(dir, "logs", logFileName),
		},
		Options:    OptionsConfig{Watch: true},
		configPath: filepath.Join(dir, configFileName),
	}
}

// Load returns the default configuration merged with the file at path and
// the environment. An empty path loads the default file, which may be absent.
func Load(path string) (*Config, error) {
	cfg := New()
	explicit := path != ""
	if explicit {
		cfg.configPath = path
	}

	if err := ShallowMergeYAML(cfg, cfg.configPath); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if env := os.Getenv(EnvUseKeys); env != "" {
		if val, err := strconv.ParseBool(env); err == nil {
			c.Look.UseKeys = val
		}
	}
	if file := os.Getenv(EnvOptionsFile); file != "" {
		c.Options.File = file
	}
}

// Validate checks the templates, colors and log level.
func (c *Config) Validate() error {
	if c.Format.Option == "" {
		return fmt.Errorf("%w: format.option is empty", ErrInvalidConfig)
	}
	if c.Format.OptionCurrent == "" {
		return fmt.Errorf("%w: format.option_current is empty", ErrInvalidConfig)
	}

	fields := make([]string, 0, len(c.Color))
	for field := range c.Color {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if !isColumn(field) {
			return fmt.Errorf("%w: color.%s is not a column", ErrInvalidConfig, field)
		}
		if n := len(c.Color[field]); n != 2 {
			return fmt.Errorf("%w: color.%s needs 2 colors, got %d", ErrInvalidConfig, field, n)
		}
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func isColumn(field string) bool {
	for _, col := range fset.Columns {
		if col.Field == field {
			return true
		}
	}
	return false
}

// ToSettings converts the configuration to pane settings. Columns without
// a color pair keep the default colors.
func (c *Config) ToSettings() fset.Settings {
	s := fset.DefaultSettings()
	s.UseKeys = c.Look.UseKeys
	s.Format = c.Format.Option
	s.FormatCurrent = c.Format.OptionCurrent
	for field, pair := range c.Color {
		if len(pair) == 2 {
			s.Colors[field] = fset.ColorPair{pair[0], pair[1]}
		}
	}
	return s
}

// ConfigPath returns the file the configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration to its file, creating the directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
