// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/sgs/lib/compactid"
)

// EnvironmentVariable names the config file used by [Load].
const EnvironmentVariable = "SGS_CONFIG"

// ServerAlias always resolves to [compactid.Server] and cannot be
// redefined in the aliases table.
const ServerAlias = "server"

// Format is an output encoding for identifiers.
type Format string

const (
	FormatHex    Format = "hex"
	FormatBase58 Format = "base58"
	FormatJSON   Format = "json"
	FormatCBOR   Format = "cbor"
)

// Formats lists every valid [Format].
var Formats = []Format{FormatHex, FormatBase58, FormatJSON, FormatCBOR}

// ColorMode controls terminal styling.
type ColorMode string

const (
	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists every valid [ColorMode].
var ColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// Config is the configuration for the sgs-id tool.
type Config struct {
	// Output controls how identifiers are printed.
	Output OutputConfig `yaml:"output"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Aliases maps human-readable names to hex-encoded identifiers,
	// e.g. "lobby: 0a01". Names are accepted anywhere an identifier
	// argument is expected.
	Aliases map[string]string `yaml:"aliases"`
}

// OutputConfig controls identifier output.
type OutputConfig struct {
	// Format is the default output encoding.
	// Default: hex
	Format Format `yaml:"format"`

	// Color controls lipgloss styling of inspect output.
	// Default: auto
	Color ColorMode `yaml:"color"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. It is also the base that
// a config file is merged into.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatHex,
			Color:  ColorAuto,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the file named by SGS_CONFIG.
//
// There are no fallbacks: if SGS_CONFIG is not set, Load fails. Callers
// that want to run without a config file use [Default] directly.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your sgs.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path and validates
// it. Files ending in .json or .jsonc may contain comments and trailing
// commas.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		// Field names are single words, so encoding/json's
		// case-insensitive matching lines up with the yaml tags.
		return json.Unmarshal(jsonc.ToJSON(data), c)
	}

	return yaml.Unmarshal(data, c)
}

// Validate checks the configuration for errors. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", Formats))
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", ColorModes))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	for _, name := range c.aliasNames() {
		if name == ServerAlias {
			errs = append(errs, fmt.Errorf("aliases.%s is reserved for the server identifier", ServerAlias))
			continue
		}
		if name == "" {
			errs = append(errs, fmt.Errorf("aliases contains an empty name"))
			continue
		}
		if _, err := compactid.ParseHex(c.Aliases[name]); err != nil {
			errs = append(errs, fmt.Errorf("aliases.%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Alias resolves a configured alias name to an identifier. The name
// "server" always resolves to [compactid.Server]. Alias values that
// do not decode report false; Validate rejects them at load time.
func (c *Config) Alias(name string) (compactid.ID, bool) {
	if name == ServerAlias {
		return compactid.Server, true
	}
	value, ok := c.Aliases[name]
	if !ok {
		return compactid.ID{}, false
	}
	id, err := compactid.ParseHex(value)
	if err != nil {
		return compactid.ID{}, false
	}
	return id, true
}

// AliasesFor returns the alias names that resolve to id, sorted. The
// server identifier always includes "server".
func (c *Config) AliasesFor(id compactid.ID) []string {
	var names []string
	if id.IsServer() {
		names = append(names, ServerAlias)
	}
	for _, name := range c.aliasNames() {
		if resolved, ok := c.Alias(name); ok && name != ServerAlias && resolved == id {
			names = append(names, name)
		}
	}
	return names
}

// aliasNames returns the configured alias names in sorted order so
// validation errors and lookups are deterministic.
func (c *Config) aliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
