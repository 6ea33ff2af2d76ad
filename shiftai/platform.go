// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
	"net/http"
)

// PlatformClient handles tenant registration.
type PlatformClient struct {
	transport *transport
}

// Register creates a new project (tenant) and returns its API key. The
// endpoint is unauthenticated — no Api-Key header is sent. The returned key
// is NOT adopted by this client: construct a new Client with it to issue
// authenticated calls for the new tenant.
func (c *PlatformClient) Register(ctx context.Context, projectName string, metadata Metadata) (*RegistrationResponse, error) {
	if err := requireFields(map[string]string{"projectName": projectName}); err != nil {
		return nil, err
	}

	request := RegistrationRequest{
		ProjectName: projectName,
		Metadata:    metadata,
	}
	body, err := c.transport.do(ctx, http.MethodPost, "/api/platform/register", nil, request, false)
	if err != nil {
		return nil, fmt.Errorf("registering project %q: %w", projectName, err)
	}

	response, err := decodeObject[RegistrationResponse](body, "registration response")
	if err != nil {
		return nil, err
	}
	c.transport.logger.Info("registered project",
		"project", projectName,
	)
	return response, nil
}
