// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
	"github.com/shiftaitop/shiftai-go/lib/config"
)

type configureParams struct {
	Config  string        `flag:"config" desc:"config file to write (overrides SHIFTAI_CONFIG)"`
	BaseURL string        `flag:"base-url" desc:"backend base URL" default:"https://api.theshiftai.in"`
	APIKey  string        `flag:"api-key" desc:"tenant API key (prompted if omitted)"`
	Timeout time.Duration `flag:"timeout" desc:"request timeout" default:"60s"`
}

func configureCommand() *cli.Command {
	var params configureParams

	return &cli.Command{
		Name:    "configure",
		Summary: "Write a config file with the backend URL and API key",
		Description: `Write a shiftai.yaml config file. The API key is prompted without
echo unless --api-key is given; prefer the prompt so the key does not
land in shell history.

The file is written with mode 0600. Its location is --config,
SHIFTAI_CONFIG, or ~/.config/shiftai/shiftai.yaml in that order.`,
		Usage: "shiftai configure [flags]",
		Examples: []cli.Example{
			{
				Description: "Interactive setup",
				Command:     "shiftai configure",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("configure", &params)
		},
		Run: func(args []string) error {
			path, err := configureTargetPath(params.Config)
			if err != nil {
				return err
			}

			apiKey := params.APIKey
			if apiKey == "" {
				apiKey, err = promptAPIKey()
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(apiKey) == "" {
				return fmt.Errorf("API key must not be empty")
			}

			cfg := config.Default()
			cfg.API.BaseURL = params.BaseURL
			cfg.API.APIKey = apiKey
			cfg.API.Timeout = params.Timeout
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Rendered by hand rather than yaml.Marshal so the timeout
			// appears as "60s" instead of nanoseconds.
			data := fmt.Appendf(nil, "api:\n  base_url: %s\n  api_key: %s\n  timeout: %s\n",
				cfg.API.BaseURL, cfg.API.APIKey, cfg.API.Timeout)
			if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Printf("wrote %s\n", path)
			if os.Getenv("SHIFTAI_CONFIG") == "" && params.Config == "" {
				fmt.Printf("set SHIFTAI_CONFIG=%s to use it\n", path)
			}
			return nil
		},
	}
}

// configureTargetPath resolves where the config file is written:
// --config, SHIFTAI_CONFIG, or the per-user default location.
func configureTargetPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("SHIFTAI_CONFIG"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "shiftai", "shiftai.yaml"), nil
}

// promptAPIKey reads the API key from the terminal without echo.
func promptAPIKey() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("stdin is not a terminal; pass --api-key instead")
	}
	fmt.Fprint(os.Stderr, "API key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	return string(key), nil
}
