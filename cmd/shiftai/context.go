// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
	"github.com/shiftaitop/shiftai-go/lib/config"
	"github.com/shiftaitop/shiftai-go/shiftai"
)

// clientParams is embedded in every command's parameter struct. It carries
// the config-file location plus per-invocation overrides for the backend
// connection. Flag overrides beat file values; the file is otherwise the
// single source of truth.
type clientParams struct {
	Config  string        `flag:"config" desc:"path to shiftai.yaml (overrides SHIFTAI_CONFIG)"`
	BaseURL string        `flag:"base-url" desc:"backend base URL (overrides config)"`
	APIKey  string        `flag:"api-key" desc:"tenant API key (overrides config)"`
	Timeout time.Duration `flag:"timeout" desc:"request timeout (overrides config)"`
}

// loadConfig resolves the effective configuration: defaults, then the
// config file (--config flag or SHIFTAI_CONFIG), then flag overrides.
// A missing config file is not an error when both --base-url and
// --api-key are given on the command line.
func (p *clientParams) loadConfig() (*config.Config, error) {
	var cfg *config.Config

	path := p.Config
	if path == "" {
		path = os.Getenv("SHIFTAI_CONFIG")
	}

	switch {
	case path != "":
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	case p.APIKey != "":
		cfg = config.Default()
	default:
		return nil, fmt.Errorf("no configuration: set SHIFTAI_CONFIG, pass --config, " +
			"or pass --api-key (run 'shiftai configure' to create a config file)")
	}

	if p.BaseURL != "" {
		cfg.API.BaseURL = p.BaseURL
	}
	if p.APIKey != "" {
		cfg.API.APIKey = p.APIKey
	}
	if p.Timeout != 0 {
		cfg.API.Timeout = p.Timeout
	}

	return cfg, nil
}

// connect builds an authenticated client from the resolved configuration.
// The caller owns the client and must Close it.
func (p *clientParams) connect() (*shiftai.Client, error) {
	cfg, err := p.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return shiftai.NewClient(shiftai.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.APIKey,
		Timeout: cfg.API.Timeout,
		Logger:  cli.NewCommandLogger(),
	})
}

// connectUnauthenticated builds a client for the endpoints that take no
// API key (registration, admin analytics). The client carries a
// placeholder credential that is never sent.
func (p *clientParams) connectUnauthenticated() (*shiftai.Client, error) {
	baseURL := p.BaseURL
	timeout := p.Timeout

	path := p.Config
	if path == "" {
		path = os.Getenv("SHIFTAI_CONFIG")
	}
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if baseURL == "" {
			baseURL = cfg.API.BaseURL
		}
		if timeout == 0 {
			timeout = cfg.API.Timeout
		}
	}
	if baseURL == "" {
		baseURL = config.Default().API.BaseURL
	}

	return shiftai.NewClient(shiftai.Config{
		BaseURL: baseURL,
		APIKey:  "unauthenticated",
		Timeout: timeout,
		Logger:  cli.NewCommandLogger(),
	})
}
