// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path from.
const EnvironmentVariable = "ARGCONV_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Color modes accepted by console.color.
var colorModes = []string{"auto", "always", "never"}

// Config is the master configuration for argconv.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// DefaultLocale is the BCP 47 tag reported by actors with no
	// locale of their own, such as the console.
	// Default: en-US
	DefaultLocale string `yaml:"default_locale"`

	// Console configures the console actor.
	Console ConsoleConfig `yaml:"console"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	DefaultLocale string         `yaml:"default_locale,omitempty"`
	Console       *ConsoleConfig `yaml:"console,omitempty"`
}

// ConsoleConfig configures the console actor.
type ConsoleConfig struct {
	// Name is the console's display name.
	// Default: Console
	Name string `yaml:"name"`

	// Color selects output styling: "auto" (style only on a terminal),
	// "always", or "never".
	// Default: auto (development), never (production)
	Color string `yaml:"color"`

	// Output is a file that console messages are appended to. Empty
	// means standard error.
	Output string `yaml:"output"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
func Default() *Config {
	return &Config{
		Environment:   Development,
		DefaultLocale: "en-US",
		Console: ConsoleConfig{
			Name:  "Console",
			Color: "auto",
		},
	}
}

// Load loads configuration from the ARGCONV_CONFIG environment variable.
//
// There are no fallbacks: if ARGCONV_CONFIG is not set, this fails.
// Callers that can run unconfigured check the variable themselves and
// use [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your argconv.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables do not
// override config values. The only expansion performed is ${HOME} and similar
// variables in console.output.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: plain output.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Console: &ConsoleConfig{Color: "never"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.DefaultLocale != "" {
		c.DefaultLocale = overrides.DefaultLocale
	}

	if overrides.Console != nil {
		if overrides.Console.Name != "" {
			c.Console.Name = overrides.Console.Name
		}
		if overrides.Console.Color != "" {
			c.Console.Color = overrides.Console.Color
		}
		if overrides.Console.Output != "" {
			c.Console.Output = overrides.Console.Output
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Console.Output = expandVars(c.Console.Output, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Locale parses DefaultLocale.
func (c *Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.DefaultLocale)
	if err != nil {
		return language.Und, fmt.Errorf("default_locale %q: %w", c.DefaultLocale, err)
	}
	return tag, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.DefaultLocale == "" {
		errs = append(errs, fmt.Errorf("default_locale is required"))
	} else if _, err := c.Locale(); err != nil {
		errs = append(errs, err)
	}

	if c.Console.Name == "" {
		errs = append(errs, fmt.Errorf("console.name is required"))
	}

	if !slices.Contains(colorModes, c.Console.Color) {
		errs = append(errs, fmt.Errorf("console.color must be one of: %v", colorModes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
