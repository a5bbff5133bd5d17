// Package config provides configuration types, defaults, and persistence for glimmer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/zjrosen/glimmer/internal/log"
)

// PatternConfig defines a named, reusable highlight pattern.
type PatternConfig struct {
	Name    string `mapstructure:"name"`
	Pattern string `mapstructure:"pattern"`
	Color   string `mapstructure:"color"` // hex color e.g. "#10B981", overrides theme match color
}

// ThemeConfig holds theme customization options.
// Each value is a hex color; empty values keep the built-in defaults.
type ThemeConfig struct {
	Match  string `mapstructure:"match"`  // background of highlighted fragments
	Subtle string `mapstructure:"subtle"` // hints, help text, status bar
	Error  string `mapstructure:"error"`  // error indicators
}

// Config holds all configuration options for glimmer.
type Config struct {
	AutoReload         bool            `mapstructure:"auto_reload"`
	AutoReloadDebounce int             `mapstructure:"auto_reload_debounce"` // milliseconds
	Theme              ThemeConfig     `mapstructure:"theme"`
	Patterns           []PatternConfig `mapstructure:"patterns"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:         true,
		AutoReloadDebounce: 500,
		Patterns: []PatternConfig{
			{Name: "mentions", Pattern: `@\w+`},
			{Name: "urls", Pattern: `https?://\S+`},
			{Name: "numbers", Pattern: `\d+`},
		},
	}
}

// Pattern looks up a named pattern preset.
func (c Config) Pattern(name string) (PatternConfig, bool) {
	for _, p := range c.Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return PatternConfig{}, false
}

// Validate checks that every configured pattern preset compiles and that
// preset names are unique. Invalid presets are configuration errors, not
// something to discover mid-session in the playground.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Patterns))
	for _, p := range c.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern preset with empty name (pattern %q)", p.Pattern)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate pattern preset %q", p.Name)
		}
		seen[p.Name] = true
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return fmt.Errorf("pattern preset %q: %w", p.Name, err)
		}
	}
	log.Debug(log.CatConfig, "config validated", "presets", len(c.Patterns))
	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# glimmer configuration
#
# auto_reload: re-highlight the playground document when the file changes
auto_reload: true
# auto_reload_debounce: milliseconds to wait before reloading after a change
auto_reload_debounce: 500

# theme colors (hex); empty values keep the built-in defaults
theme:
  match: ""
  subtle: ""
  error: ""

# named pattern presets, usable via --preset
patterns:
  - name: mentions
    pattern: '@\w+'
  - name: urls
    pattern: 'https?://\S+'
  - name: numbers
    pattern: '\d+'
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
