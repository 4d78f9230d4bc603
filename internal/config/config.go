// Package config loads wordcount settings from a YAML file and environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting of the wordcount command.
type Config struct {
	Top       int           `yaml:"top"`
	MaxBytes  int64         `yaml:"max_bytes"`
	Timeout   time.Duration `yaml:"timeout"`
	CacheSize int           `yaml:"cache_size"`
	UserAgent string        `yaml:"user_agent"`
	Color     bool          `yaml:"color"`
	Counts    bool          `yaml:"counts"`
}

func Default() Config {
	return Config{
		Top:       10,
		MaxBytes:  16 << 20,
		Timeout:   30 * time.Second,
		CacheSize: 16,
		UserAgent: "wordcount/1.0",
		Color:     true,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not set.
// Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Top < 0:
		return fmt.Errorf("%w: top must be >= 0, got %d", ErrInvalidConfig, c.Top)
	case c.MaxBytes <= 0:
		return fmt.Errorf("%w: max_bytes must be > 0, got %d", ErrInvalidConfig, c.MaxBytes)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be > 0, got %s", ErrInvalidConfig, c.Timeout)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: cache_size must be >= 0, got %d", ErrInvalidConfig, c.CacheSize)
	}
	return nil
}
