// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
)

// UsersClient manages platform end users.
type UsersClient struct {
	transport *transport
}

// Create registers a user within the authenticated tenant. Username must be
// unique per tenant; metadata is an optional free-form bag stored with the
// user.
func (c *UsersClient) Create(ctx context.Context, username, email string, metadata Metadata) (*User, error) {
	if err := requireFields(map[string]string{
		"username": username,
		"email":    email,
	}); err != nil {
		return nil, err
	}

	request := CreateUserRequest{
		Username: username,
		Email:    email,
		Metadata: metadata,
	}
	body, err := c.transport.post(ctx, "/api/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user %q: %w", username, err)
	}
	return decodeObject[User](body, "user")
}
