// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// ConversationsClient reads conversations. Conversations are created and
// mutated server-side as messages arrive; this client only observes them.
type ConversationsClient struct {
	transport *transport
}

// Messages returns all messages of one conversation in chronological order,
// in the flattened per-message view.
func (c *ConversationsClient) Messages(ctx context.Context, conversationID uuid.UUID) ([]ConversationMessage, error) {
	if conversationID == uuid.Nil {
		return nil, validationf("conversationID is required")
	}
	path := "/api/conversations/" + conversationID.String() + "/messages"
	body, err := c.transport.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting messages of conversation %s: %w", conversationID, err)
	}
	return decodeList[ConversationMessage](body, "conversation messages")
}

// List returns summaries of all conversations in the authenticated tenant.
func (c *ConversationsClient) List(ctx context.Context) ([]ConversationSummary, error) {
	body, err := c.transport.get(ctx, "/api/conversations", nil)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return decodeList[ConversationSummary](body, "conversation list")
}

// ListByUser returns summaries of all conversations a user participated in.
func (c *ConversationsClient) ListByUser(ctx context.Context, username string) ([]ConversationSummary, error) {
	if err := requireFields(map[string]string{"username": username}); err != nil {
		return nil, err
	}
	path := "/api/conversations/by-user/" + url.PathEscape(username)
	body, err := c.transport.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing conversations of user %q: %w", username, err)
	}
	return decodeList[ConversationSummary](body, "conversation list")
}
