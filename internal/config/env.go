package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Variables understood by Environment.Apply.
const (
	EnvTop       = "WORDCOUNT_TOP"
	EnvMaxBytes  = "WORDCOUNT_MAX_BYTES"
	EnvTimeout   = "WORDCOUNT_TIMEOUT"
	EnvCacheSize = "WORDCOUNT_CACHE_SIZE"
	EnvUserAgent = "WORDCOUNT_USER_AGENT"
	EnvColor     = "WORDCOUNT_COLOR"
	EnvCounts    = "WORDCOUNT_COUNTS"
)

type Environment map[string]EnvValue

// EnvValue helps to distinguish between empty files and files with the first empty line.
type EnvValue struct {
	Value      string
	NeedRemove bool
}

// Names must not be empty, start with a digit or contain '='.
func validateName(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return false
	}
	return !strings.ContainsRune(name, '=')
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", scanner.Err()
	}
	pre := strings.ReplaceAll(scanner.Text(), string(rune(0)), "\n")
	return strings.TrimRightFunc(pre, unicode.IsSpace), nil
}

// ReadDir reads an envdir: every regular file is a variable named after the file,
// its first line is the value. An empty file marks the variable for removal.
func ReadDir(dir string) (Environment, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("config: read envdir: %w", err)
	}
	env := Environment{}

	for _, entry := range dirEntries {
		if entry.IsDir() || !validateName(entry.Name()) {
			continue
		}

		stat, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("config: read envdir: %w", err)
		}
		if stat.Size() == 0 {
			env[entry.Name()] = EnvValue{NeedRemove: true}
			continue
		}

		value, err := readFirstLine(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("config: read envdir: %w", err)
		}
		env[entry.Name()] = EnvValue{Value: value}
	}
	return env, nil
}

// FromOS collects the WORDCOUNT_* variables of the process environment.
func FromOS() Environment {
	env := Environment{}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, "WORDCOUNT_") {
			env[name] = EnvValue{Value: value}
		}
	}
	return env
}

type setting struct {
	name  string
	set   func(cfg *Config, value string) error
	reset func(cfg *Config, defaults Config)
}

var settings = []setting{
	{
		name: EnvTop,
		set: func(cfg *Config, value string) (err error) {
			cfg.Top, err = strconv.Atoi(value)
			return err
		},
		reset: func(cfg *Config, d Config) { cfg.Top = d.Top },
	},
	{
		name: EnvMaxBytes,
		set: func(cfg *Config, value string) (err error) {
			cfg.MaxBytes, err = strconv.ParseInt(value, 10, 64)
			return err
		},
		reset: func(cfg *Config, d Config) { cfg.MaxBytes = d.MaxBytes },
	},
	{
		name: EnvTimeout,
		set: func(cfg *Config, value string) (err error) {
			cfg.Timeout, err = time.ParseDuration(value)
			return err
		},
		reset: func(cfg *Config, d Config) { cfg.Timeout = d.Timeout },
	},
	{
		name: EnvCacheSize,
		set: func(cfg *Config, value string) (err error) {
			cfg.CacheSize, err = strconv.Atoi(value)
			return err
		},
		reset: func(cfg *Config, d Config) { cfg.CacheSize = d.CacheSize },
	},
	{
		name: EnvUserAgent,
		set: func(cfg *Config, value string) error {
			cfg.UserAgent = value
			return nil
		},
		reset: func(cfg *Config, d Config) { cfg.UserAgent = d.UserAgent },
	},
	{
		name: EnvColor,
		set: func(cfg *Config, value string) (err error) {
			cfg.Color, err = strconv.ParseBool(value)
			return err
		},
		reset: func(cfg *Config, d Config) { cfg.Color = d.Color },
	},
	{
		name: EnvCounts,
		set: func(cfg *Config, value string) (err error) {
			cfg.Counts, err = strconv.ParseBool(value)
			return err
		},
		reset: func(cfg *Config, d Config) { cfg.Counts = d.Counts },
	},
}

// Apply overrides cfg with the known variables of env. A variable marked for
// removal restores the default value of its setting.
func (e Environment) Apply(cfg *Config) error {
	defaults := Default()
	for _, s := range settings {
		v, ok := e[s.name]
		if !ok {
			continue
		}
		if v.NeedRemove {
			s.reset(cfg, defaults)
			continue
		}
		if err := s.set(cfg, v.Value); err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, s.name, v.Value, err)
		}
	}
	return cfg.Validate()
}
