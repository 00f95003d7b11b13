// Package config holds pick's settings: the delimiter, where output goes,
// and the colour theme. Values come from an optional YAML file; the
// command line overrides them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Whitespace is the delimiter sentinel meaning "split on whitespace runs".
const Whitespace = "whitespace"

// Colors is a foreground/background pair. Empty means terminal default.
type Colors struct {
	FG      string `yaml:"fg"`
	BG      string `yaml:"bg"`
	Reverse bool   `yaml:"reverse"`
	Bold    bool   `yaml:"bold"`
}

// Theme maps the three cell style tags plus the chrome text.
type Theme struct {
	Cursor   Colors `yaml:"cursor"`
	Selected Colors `yaml:"selected"`
	Normal   Colors `yaml:"normal"`
	Hint     Colors `yaml:"hint"`
	Preview  Colors `yaml:"preview"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Delimiter string `yaml:"delimiter"`
	Output    string `yaml:"output"`
	Clipboard bool   `yaml:"clipboard"`
	LogFile   string `yaml:"log_file"`
	Debug     bool   `yaml:"debug"`
	Theme     Theme  `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delimiter: Whitespace,
		Clipboard: true,
		Theme: Theme{
			Cursor:   Colors{FG: "0", BG: "3"},
			Selected: Colors{Reverse: true},
			Normal:   Colors{FG: "251"},
			Hint:     Colors{FG: "8"},
			Preview:  Colors{FG: "251"},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SplitDelimiter converts the configured delimiter into the form the grid
// expects: "" for whitespace splitting, otherwise the literal separator.
// Backslash escapes such as \t are interpreted.
func (c Config) SplitDelimiter() (string, error) {
	d := c.Delimiter
	if d == "" || strings.EqualFold(d, Whitespace) {
		return "", nil
	}
	if strings.Contains(d, `\`) {
		u, err := strconv.Unquote(`"` + strings.ReplaceAll(d, `"`, `\"`) + `"`)
		if err != nil {
			return "", fmt.Errorf("delimiter %q: %w", d, err)
		}
		d = u
	}
	return d, nil
}
