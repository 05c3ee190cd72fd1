// Package config selects which codec capabilities are available and how
// they are run. Configuration is read from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the codec runtime configuration.
type Config struct {
	// Checked routes every operation through package checked.
	Checked  bool     `toml:"checked" yaml:"checked"`
	Features []string `toml:"features" yaml:"features"`
	Logging  Logging  `toml:"logging" yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `toml:"level" yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Checked:  false,
		Features: []string{"all"},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the configuration at path over DefaultConfig. The format is
// chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = loadTOML(path, cfg)
	case ".yaml", ".yml":
		err = loadYAML(path, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fileConfig mirrors Config for TOML so unset keys can be told apart
// from zero values.
type fileConfig struct {
	Checked  bool     `toml:"checked"`
	Features []string `toml:"features"`
	Logging  struct {
		Level string `toml:"level"`
	} `toml:"logging"`
}

func loadTOML(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("checked") {
		cfg.Checked = raw.Checked
	}
	if meta.IsDefined("features") {
		cfg.Features = raw.Features
	}
	if meta.IsDefined("logging", "level") {
		cfg.Logging.Level = strings.TrimSpace(raw.Logging.Level)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks feature names and the log level.
func (c *Config) Validate() error {
	if _, err := c.FeatureSet(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FeatureSet parses Features into a set.
func (c *Config) FeatureSet() (Features, error) {
	return ParseFeatures(c.Features)
}

// Level parses the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Save writes c to path in the format implied by its extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(c)
		data = []byte(sb.String())
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
