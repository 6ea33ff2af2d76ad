// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shiftai.yaml")
	content := `
api:
  base_url: https://file.example.com
  api_key: file-key
  timeout: 45s
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig_FlagOverridesFile(t *testing.T) {
	params := clientParams{
		Config:  writeTestConfig(t),
		BaseURL: "https://flag.example.com",
		Timeout: 5 * time.Second,
	}

	cfg, err := params.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.API.BaseURL != "https://flag.example.com" {
		t.Errorf("base_url = %q, want flag override", cfg.API.BaseURL)
	}
	if cfg.API.APIKey != "file-key" {
		t.Errorf("api_key = %q, want file value", cfg.API.APIKey)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("timeout = %s, want flag override", cfg.API.Timeout)
	}
}

func TestLoadConfig_FlagPathBeatsEnvironment(t *testing.T) {
	t.Setenv("SHIFTAI_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	params := clientParams{Config: writeTestConfig(t)}
	cfg, err := params.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.API.APIKey != "file-key" {
		t.Errorf("api_key = %q", cfg.API.APIKey)
	}
}

func TestLoadConfig_APIKeyFlagAlone(t *testing.T) {
	t.Setenv("SHIFTAI_CONFIG", "")

	params := clientParams{APIKey: "flag-key"}
	cfg, err := params.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.API.APIKey != "flag-key" {
		t.Errorf("api_key = %q", cfg.API.APIKey)
	}
	if cfg.API.BaseURL != "https://api.theshiftai.in" {
		t.Errorf("base_url = %q, want default", cfg.API.BaseURL)
	}
}

func TestLoadConfig_NoConfiguration(t *testing.T) {
	t.Setenv("SHIFTAI_CONFIG", "")

	params := clientParams{}
	if _, err := params.loadConfig(); err == nil {
		t.Fatal("expected error when no configuration source is available")
	}
}

func TestConfigureTargetPath(t *testing.T) {
	t.Setenv("SHIFTAI_CONFIG", "/tmp/env.yaml")

	path, err := configureTargetPath("/tmp/flag.yaml")
	if err != nil {
		t.Fatalf("configureTargetPath: %v", err)
	}
	if path != "/tmp/flag.yaml" {
		t.Errorf("path = %q, want flag value", path)
	}

	path, err = configureTargetPath("")
	if err != nil {
		t.Fatalf("configureTargetPath: %v", err)
	}
	if path != "/tmp/env.yaml" {
		t.Errorf("path = %q, want SHIFTAI_CONFIG value", path)
	}
}
