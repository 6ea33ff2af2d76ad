// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

// Package config provides configuration loading for the shiftai command.
//
// Configuration is loaded from a single YAML file specified by:
//   - SHIFTAI_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures deterministic,
// auditable configuration with no hidden overrides.
//
// The config file may contain environment-specific sections (development,
// staging, production) that override base values when the environment matches.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

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

// Config is the configuration for the shiftai command.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// API configures the backend connection.
	API APIConfig `yaml:"api"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API *APIConfig `yaml:"api,omitempty"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the root URL of the ShiftAI backend.
	// Default: https://api.theshiftai.in
	BaseURL string `yaml:"base_url"`

	// APIKey is the tenant credential. No default; obtained from
	// project registration (shiftai register, or shiftai configure to
	// store an existing key).
	APIKey string `yaml:"api_key"`

	// Timeout bounds each HTTP exchange.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the default configuration. These defaults are used as a
// base before loading the config file; the API key is always file-provided.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL: "https://api.theshiftai.in",
			Timeout: 60 * time.Second,
		},
	}
}

// Load loads configuration from the SHIFTAI_CONFIG environment variable.
//
// This is the only way to load configuration without an explicit path.
// There are no fallbacks or defaults - if SHIFTAI_CONFIG is not set, this
// fails. This ensures deterministic, auditable configuration with no hidden
// overrides.
func Load() (*Config, error) {
	configPath := os.Getenv("SHIFTAI_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("SHIFTAI_CONFIG environment variable not set; " +
			"set it to the path of your shiftai.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables do
// not override config values. The only expansion performed is ${VAR} and
// ${VAR:-default} patterns in the base URL, for config files shared between
// machines.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.API.BaseURL = expandVars(cfg.API.BaseURL, nil)

	return cfg, nil
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
	}

	if overrides == nil || overrides.API == nil {
		return
	}

	if overrides.API.BaseURL != "" {
		c.API.BaseURL = overrides.API.BaseURL
	}
	if overrides.API.APIKey != "" {
		c.API.APIKey = overrides.API.APIKey
	}
	if overrides.API.Timeout != 0 {
		c.API.Timeout = overrides.API.Timeout
	}
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

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	}

	if c.API.APIKey == "" {
		errs = append(errs, fmt.Errorf("api.api_key is required; run 'shiftai register' "+
			"to create a project or 'shiftai configure' to store an existing key"))
	}

	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
