// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/sgs/lib/compactid"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != FormatHex {
		t.Errorf("expected format=hex, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		t.Fatalf("LogLevel: %v", err)
	}
	if level != slog.LevelInfo {
		t.Errorf("LogLevel() = %v, want info", level)
	}
}

func TestLoad_RequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when SGS_CONFIG not set, got nil")
	}

	expectedMsg := "SGS_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	configPath := writeConfig(t, "sgs.yaml", `
output:
  format: base58
log:
  level: debug
aliases:
  lobby: 0a01
  alice: "0102"
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Output.Format != FormatBase58 {
		t.Errorf("expected format=base58, got %s", cfg.Output.Format)
	}
	// Unset fields keep their defaults.
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		t.Fatalf("LogLevel: %v", err)
	}
	if level != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", level)
	}

	lobby, ok := cfg.Alias("lobby")
	if !ok {
		t.Fatal("alias lobby not found")
	}
	if lobby != compactid.MustParseHex("0a01") {
		t.Errorf("Alias(lobby) = %s, want 0a01", lobby)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	configPath := writeConfig(t, "sgs.jsonc", `{
  // Captures from the staging cluster.
  "output": {"format": "json", "color": "never"},
  "aliases": {
    "lobby": "0a01", /* main lobby channel */
  },
}`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected format=json, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorNever {
		t.Errorf("expected color=never, got %s", cfg.Output.Color)
	}
	if _, ok := cfg.Alias("lobby"); !ok {
		t.Error("alias lobby not found")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	configPath := writeConfig(t, "sgs.yaml", `
output:
  format: xml
aliases:
  server: "01"
  broken: zz
`)

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{"output.format", "aliases.server", "aliases.broken"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %s", err, fragment)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"cbor-format", func(c *Config) { c.Output.Format = FormatCBOR }, false},
		{"bad-format", func(c *Config) { c.Output.Format = "yaml" }, true},
		{"bad-color", func(c *Config) { c.Output.Color = "sometimes" }, true},
		{"bad-level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"empty-alias-value", func(c *Config) { c.Aliases = map[string]string{"nobody": ""} }, false},
		{"odd-alias", func(c *Config) { c.Aliases = map[string]string{"odd": "abc"} }, true},
		{"empty-alias-name", func(c *Config) { c.Aliases = map[string]string{"": "01"} }, true},
		{"reserved-alias", func(c *Config) { c.Aliases = map[string]string{"server": "00"} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestAlias(t *testing.T) {
	cfg := Default()
	cfg.Aliases = map[string]string{
		"lobby":  "0a01",
		"lobby2": "0A01",
		"alice":  "0102",
	}

	server, ok := cfg.Alias(ServerAlias)
	if !ok || !server.IsServer() {
		t.Errorf("Alias(server) = %s, %v; want the server identifier", server, ok)
	}

	if _, ok := cfg.Alias("nobody"); ok {
		t.Error("Alias(nobody) should not resolve")
	}

	got := cfg.AliasesFor(compactid.MustParseHex("0a01"))
	if want := []string{"lobby", "lobby2"}; !slices.Equal(got, want) {
		t.Errorf("AliasesFor(0a01) = %v, want %v", got, want)
	}
	if got := cfg.AliasesFor(compactid.Server); !slices.Equal(got, []string{"server"}) {
		t.Errorf("AliasesFor(server) = %v, want [server]", got)
	}
	if got := cfg.AliasesFor(compactid.MustParseHex("ff")); len(got) != 0 {
		t.Errorf("AliasesFor(ff) = %v, want none", got)
	}
}
