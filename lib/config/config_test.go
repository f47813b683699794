// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "argconv.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}

	if cfg.DefaultLocale != "en-US" {
		t.Errorf("expected default_locale=en-US, got %s", cfg.DefaultLocale)
	}

	if cfg.Console.Name != "Console" {
		t.Errorf("expected console.name=Console, got %s", cfg.Console.Name)
	}

	if cfg.Console.Color != "auto" {
		t.Errorf("expected console.color=auto, got %s", cfg.Console.Color)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_RequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when ARGCONV_CONFIG not set, got nil")
	}

	expectedMsg := "ARGCONV_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging
default_locale: fr-FR
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}

	if cfg.DefaultLocale != "fr-FR" {
		t.Errorf("expected default_locale=fr-FR, got %s", cfg.DefaultLocale)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
default_locale: de-DE

console:
  name: Server
  color: always
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Console.Name != "Server" {
		t.Errorf("expected console.name=Server, got %s", cfg.Console.Name)
	}

	if cfg.Console.Color != "always" {
		t.Errorf("expected console.color=always, got %s", cfg.Console.Color)
	}

	tag, err := cfg.Locale()
	if err != nil {
		t.Fatalf("Locale() failed: %v", err)
	}
	if tag.String() != "de-DE" {
		t.Errorf("expected locale de-DE, got %s", tag)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	configPath := writeConfig(t, "console: [not, a, map]\n")
	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error %q should name the file", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging

default_locale: en-US

console:
  color: auto

staging:
  default_locale: en-GB
  console:
    name: Staging Console
    color: always
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.DefaultLocale != "en-GB" {
		t.Errorf("expected default_locale=en-GB, got %s", cfg.DefaultLocale)
	}

	if cfg.Console.Name != "Staging Console" {
		t.Errorf("expected console.name=Staging Console, got %s", cfg.Console.Name)
	}

	if cfg.Console.Color != "always" {
		t.Errorf("expected console.color=always, got %s", cfg.Console.Color)
	}
}

func TestProductionDefaults(t *testing.T) {
	configPath := writeConfig(t, "environment: production\n")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Console.Color != "never" {
		t.Errorf("expected console.color=never in production, got %s", cfg.Console.Color)
	}

	if cfg.Console.Name != "Console" {
		t.Errorf("expected console.name to keep its default, got %s", cfg.Console.Name)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("ARGCONV_TEST_DIR", "/from/env")
	t.Setenv("ARGCONV_TEST_UNSET", "")

	vars := map[string]string{"HOME": "/home/tester"}

	tests := []struct {
		input string
		want  string
	}{
		{"${HOME}/argconv.log", "/home/tester/argconv.log"},
		{"${ARGCONV_TEST_DIR}/out.log", "/from/env/out.log"},
		{"${ARGCONV_TEST_UNSET:-/tmp}/out.log", "/tmp/out.log"},
		{"${ARGCONV_TEST_UNSET}/out.log", "/out.log"},
		{"/plain/path", "/plain/path"},
	}

	for _, test := range tests {
		if got := expandVars(test.input, vars); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "invalid environment"},
		{"missing locale", func(c *Config) { c.DefaultLocale = "" }, "default_locale is required"},
		{"bad locale", func(c *Config) { c.DefaultLocale = "not a locale!" }, "default_locale"},
		{"missing console name", func(c *Config) { c.Console.Name = "" }, "console.name is required"},
		{"bad color", func(c *Config) { c.Console.Color = "sometimes" }, "console.color must be one of"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, test.wantErr)
			}
		})
	}
}

func TestLoadFile_ExpandsConsoleOutput(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	configPath := writeConfig(t, `
console:
  output: ${HOME}/argconv/console.log
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Console.Output != "/home/tester/argconv/console.log" {
		t.Errorf("expected expanded output path, got %s", cfg.Console.Output)
	}
}
