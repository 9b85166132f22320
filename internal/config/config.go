// Package config holds the exporter's runtime settings: built-in defaults,
// an optional YAML config file, and the column selection applied to
// exported tables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file checked when no explicit path is given.
const DefaultPath = "~/.racetime-export/config.yaml"

// DefaultColumns is the column selection applied when the config sets none,
// in output order.
var DefaultColumns = []string{
	"Pos",
	"No",
	"Name",
	"Year of Birth",
	"Time",
	"Diff",
	"Cat",
	"Cat Pos",
	"Cat Diff",
	"⚤",
	"⚤ Pos",
	"⚤ Diff",
	"Club",
	"Pace",
	"City",
	"Status",
	"UCI-ID",
}

// Config holds the exporter's runtime settings. Zero Timeout and UserAgent
// defer to the scraper's defaults.
type Config struct {
	Timeout   time.Duration // HTTP request deadline
	UserAgent string        // User-Agent header sent with page fetches
	Columns   []string      // columns kept in exports; empty keeps all page columns
}

// fileConfig mirrors the YAML config file:
//
//	http:
//	  timeout: 45s
//	  user_agent: "..."
//	columns: [Pos, Name, Time]
//
// Columns is a pointer so an explicitly empty list (keep all page columns)
// can be told apart from an absent key (use DefaultColumns).
type fileConfig struct {
	HTTP struct {
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"http"`
	Columns *[]string `yaml:"columns"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Columns: append([]string(nil), DefaultColumns...),
	}
}

// Load reads the config file at path and overlays it on the defaults.
// A missing file is an error; use LoadDefault for the optional lookup.
func Load(path string) (Config, error) {
	path, err := expandHome(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("reading config: %w", err)
	}

	return parse(data)
}

// LoadDefault loads DefaultPath when that file exists and returns the
// built-in defaults when it does not.
func LoadDefault() (Config, error) {
	path, err := expandHome(DefaultPath)
	if err != nil {
		// No home directory means no default config file
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config: %w", err)
	}

	return parse(data)
}

// parse overlays the YAML document on the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if fc.HTTP.Timeout != "" {
		d, err := time.ParseDuration(fc.HTTP.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("parsing http timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if fc.Columns != nil {
		cfg.Columns = *fc.Columns
	}

	return cfg, nil
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, path[2:]), nil
}
