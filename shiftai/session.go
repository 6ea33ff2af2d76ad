// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PlatformSessionClient controls conversation sessions explicitly. Without
// it, sessions open implicitly on first message and close by server-side
// inactivity timeout.
type PlatformSessionClient struct {
	transport *transport
}

// Initiate opens a new conversation session. The request body is passed
// through verbatim (nil sends an empty body) and the response is returned
// as a raw map: the endpoint's shape is server-defined and may evolve, so
// this is deliberately the one call without a fixed response record.
func (c *PlatformSessionClient) Initiate(ctx context.Context, request map[string]any) (map[string]any, error) {
	if request == nil {
		request = map[string]any{}
	}
	body, err := c.transport.post(ctx, "/api/platformsession/initiate", request)
	if err != nil {
		return nil, fmt.Errorf("initiating session: %w", err)
	}
	return decodeMap(body, "session initiation response")
}

// EndConversation ends an active conversation session, fixing its EndedAt
// timestamp. Ending an already-ended conversation is a backend error
// (surfaced as a *BadRequestError), not a local one.
func (c *PlatformSessionClient) EndConversation(ctx context.Context, conversationID uuid.UUID) (*EndConversationResponse, error) {
	if conversationID == uuid.Nil {
		return nil, validationf("conversationID is required")
	}
	request := EndConversationRequest{ConversationID: conversationID}
	body, err := c.transport.post(ctx, "/api/platformsession/endconversation", request)
	if err != nil {
		return nil, fmt.Errorf("ending conversation %s: %w", conversationID, err)
	}
	return decodeObject[EndConversationResponse](body, "end conversation response")
}
