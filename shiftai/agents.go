// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
)

// AgentsClient manages registered AI agents.
type AgentsClient struct {
	transport *transport
}

// Create registers an agent. Name and platform are required; version is an
// optional model identifier (e.g. "4.0") and metadata an optional
// configuration bag. Agents are also created implicitly on first message
// reference via AgentData, so Create is only needed when the agent should
// exist before any message does.
func (c *AgentsClient) Create(ctx context.Context, name, platform, version string, metadata Metadata) (*Agent, error) {
	if err := requireFields(map[string]string{
		"name":     name,
		"platform": platform,
	}); err != nil {
		return nil, err
	}

	request := CreateAgentRequest{
		Name:     name,
		Platform: platform,
		Version:  optional(version),
		Metadata: metadata,
	}
	body, err := c.transport.post(ctx, "/api/agents", request)
	if err != nil {
		return nil, fmt.Errorf("creating agent %q: %w", name, err)
	}
	return decodeObject[Agent](body, "agent")
}
