// SPDX-License-Identifier: MIT

// Package config loads lvlath-aoc settings from an optional TOML file.
//
// Precedence is defaults, then the file, then command-line flags (applied by
// the caller on the returned value).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlath-aoc/maze"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the full set of settings.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Maze   MazeConfig   `toml:"maze"`
	Output OutputConfig `toml:"output"`
}

// LogConfig selects the log level: debug, info, warn, error or fatal.
type LogConfig struct {
	Level string `toml:"level"`
}

// MazeConfig holds the single-rune grid markers.
type MazeConfig struct {
	Wall  string `toml:"wall"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Maze:   MazeConfig{Wall: "#", Start: "S", End: "E"},
		Output: OutputConfig{Format: FormatText},
	}
}

// Load reads path on top of the defaults and validates the result.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a TOML document on top of the defaults. Keys the schema does
// not know are rejected so typos do not pass silently.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks:
//   - the log level is one charmbracelet/log understands
//   - each marker is exactly one rune and all three differ
//   - the output format is text or yaml
func (c Config) Validate() error {
	var errs []string

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}

	markers := []struct{ key, val string }{
		{"maze.wall", c.Maze.Wall},
		{"maze.start", c.Maze.Start},
		{"maze.end", c.Maze.End},
	}
	seen := make(map[string]string, len(markers))
	for _, m := range markers {
		if utf8.RuneCountInString(m.val) != 1 {
			errs = append(errs, fmt.Sprintf("%s: want exactly one character, got %q", m.key, m.val))
			continue
		}
		if prev, dup := seen[m.val]; dup {
			errs = append(errs, fmt.Sprintf("%s: %q already used by %s", m.key, m.val, prev))
			continue
		}
		seen[m.val] = m.key
	}

	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		errs = append(errs, fmt.Sprintf("output.format: want %s or %s, got %q", FormatText, FormatYAML, c.Output.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}

// LogLevel returns the parsed log level. Call Validate first.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// MazeOptions translates the markers into maze.Parse options.
func (c Config) MazeOptions() []maze.Option {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return []maze.Option{
		maze.WithWall(first(c.Maze.Wall)),
		maze.WithStart(first(c.Maze.Start)),
		maze.WithEnd(first(c.Maze.End)),
	}
}
