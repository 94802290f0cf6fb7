// Package config handles loading and saving the project configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/mdblog/internal/fsutil"
	"github.com/jmylchreest/mdblog/internal/theme"
)

// Default configuration values.
const (
	FileName        = "mdblog.toml"
	DefaultDebounce = 200 * time.Millisecond
)

// Config represents the mdblog project configuration.
type Config struct {
	Theme ThemeConfig `toml:"theme"`
	Watch WatchConfig `toml:"watch"`
}

// ThemeConfig selects the theme used for builds.
type ThemeConfig struct {
	Name string `toml:"name"` // Theme under _themes/, or the builtin "simple"
}

// WatchConfig holds options for `theme build --watch`.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "250ms", "1s", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '250ms', '1s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name: theme.DefaultThemeName,
		},
		Watch: WatchConfig{
			Debounce: Duration(DefaultDebounce),
		},
	}
}

// ConfigPath returns the config file path for a project root.
func ConfigPath(root string) string {
	return filepath.Join(root, FileName)
}

// LoadConfig loads configuration from path.
// Returns the default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Theme.Name != "" {
		if err := theme.ValidateName(c.Theme.Name); err != nil {
			return fmt.Errorf("theme.name %q: %w", c.Theme.Name, err)
		}
	}
	if c.Watch.Debounce < 0 {
		return errors.New("watch.debounce must not be negative")
	}
	return nil
}

// ThemeName returns the configured theme, falling back to the builtin one.
func (c *Config) ThemeName() string {
	if c.Theme.Name == "" {
		return theme.DefaultThemeName
	}
	return c.Theme.Name
}

// Save writes the configuration to path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	f, err := fsutil.CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
