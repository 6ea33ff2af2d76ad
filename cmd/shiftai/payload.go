// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/shiftaitop/shiftai-go/shiftai"
)

// parseMetadata parses a --metadata argument. The value is either inline
// JSON (`{"plan":"pro"}`) or `@path` referencing a file. Files may use
// JSONC (comments and trailing commas), matching hand-maintained payload
// files.
func parseMetadata(value string) (shiftai.Metadata, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	data := []byte(value)
	if strings.HasPrefix(value, "@") {
		fileData, err := os.ReadFile(value[1:])
		if err != nil {
			return nil, fmt.Errorf("reading metadata file: %w", err)
		}
		data = fileData
	}

	var metadata shiftai.Metadata
	if err := json.Unmarshal(jsonc.ToJSON(data), &metadata); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	return metadata, nil
}

// loadSubmission reads a full submission request from a JSON or JSONC file.
func loadSubmission(path string) (*shiftai.SubmissionRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading submission file: %w", err)
	}
	var request shiftai.SubmissionRequest
	if err := json.Unmarshal(jsonc.ToJSON(data), &request); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &request, nil
}
