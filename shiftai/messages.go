// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// MessagesClient submits and reads platform messages.
type MessagesClient struct {
	transport *transport
}

// HumanMessage holds the typed arguments for SendHumanMessage. Username,
// Message, AgentName, and AgentPlatform are required; everything else is
// optional and omitted from the wire body when unset. UserEmail, when
// present, lets the backend create or link the user record on first
// reference.
type HumanMessage struct {
	Username      string
	Message       string
	AgentName     string
	AgentPlatform string
	UserEmail     string
	UserMetadata  Metadata
	Intent        string
	Entities      Metadata
	Annotations   Metadata
	SourceEvent   Metadata
	AgentVersion  string
	AgentMetadata Metadata
	Mode          string
}

// BotMessage holds the typed arguments for SendBotMessage. In addition to
// the human-message requirements, ReplyMessageID (the human message being
// answered) and RAGContext (the retrieval context that informed the reply)
// are mandatory.
type BotMessage struct {
	Username       string
	Message        string
	AgentName      string
	AgentPlatform  string
	ReplyMessageID uuid.UUID
	RAGContext     string
	UserEmail      string
	UserMetadata   Metadata
	Intent         string
	Entities       Metadata
	Annotations    Metadata
	SourceEvent    Metadata
	AgentVersion   string
	AgentMetadata  Metadata
	Mode           string
}

// SendHumanMessage submits a human-authored message. The sender role
// (HUMAN) and message type (TEXT) discriminators are set here, not by the
// caller. Validation failures are reported before any network call.
func (c *MessagesClient) SendHumanMessage(ctx context.Context, message HumanMessage) (*SubmissionResponse, error) {
	if err := requireFields(map[string]string{
		"Username":      message.Username,
		"Message":       message.Message,
		"AgentName":     message.AgentName,
		"AgentPlatform": message.AgentPlatform,
	}); err != nil {
		return nil, err
	}

	request := SubmissionRequest{
		Username:    ptr(message.Username),
		Email:       optional(message.UserEmail),
		Metadata:    message.UserMetadata,
		Message:     ptr(message.Message),
		Intent:      optional(message.Intent),
		Entities:    message.Entities,
		Annotations: message.Annotations,
		SourceEvent: message.SourceEvent,
		AgentData: &AgentData{
			Name:     message.AgentName,
			Platform: message.AgentPlatform,
			Version:  optional(message.AgentVersion),
			Metadata: message.AgentMetadata,
		},
		SenderRole:  ptr(SenderHuman),
		MessageType: ptr(messageTypeText),
		Mode:        optional(message.Mode),
	}

	return c.Submit(ctx, request)
}

// SendBotMessage submits an agent-authored reply. The sender role (BOT) and
// message type (TEXT) discriminators are set here. ReplyMessageID and
// RAGContext are required — a bot message always answers a specific human
// message and always declares what source material informed it.
func (c *MessagesClient) SendBotMessage(ctx context.Context, message BotMessage) (*SubmissionResponse, error) {
	if err := requireFields(map[string]string{
		"Username":      message.Username,
		"Message":       message.Message,
		"AgentName":     message.AgentName,
		"AgentPlatform": message.AgentPlatform,
	}); err != nil {
		return nil, err
	}
	if message.ReplyMessageID == uuid.Nil {
		return nil, validationf("ReplyMessageID is required for bot messages")
	}
	if strings.TrimSpace(message.RAGContext) == "" {
		return nil, validationf("RAGContext is required for bot messages")
	}

	replyID := message.ReplyMessageID
	request := SubmissionRequest{
		Username:    ptr(message.Username),
		Email:       optional(message.UserEmail),
		Metadata:    message.UserMetadata,
		Message:     ptr(message.Message),
		Intent:      optional(message.Intent),
		Entities:    message.Entities,
		Annotations: message.Annotations,
		SourceEvent: message.SourceEvent,
		AgentData: &AgentData{
			Name:     message.AgentName,
			Platform: message.AgentPlatform,
			Version:  optional(message.AgentVersion),
			Metadata: message.AgentMetadata,
		},
		SenderRole:     ptr(SenderBot),
		MessageType:    ptr(messageTypeText),
		RAGContext:     ptr(message.RAGContext),
		ReplyMessageID: &replyID,
		Mode:           optional(message.Mode),
	}

	return c.Submit(ctx, request)
}

// Submit sends a fully-formed submission request verbatim — the low-level
// escape hatch. No fields are injected or validated beyond JSON encoding;
// the caller owns the discriminators.
func (c *MessagesClient) Submit(ctx context.Context, request SubmissionRequest) (*SubmissionResponse, error) {
	body, err := c.transport.post(ctx, "/api/messages/submit", request)
	if err != nil {
		return nil, fmt.Errorf("submitting message: %w", err)
	}
	return decodeObject[SubmissionResponse](body, "message submission response")
}

// List returns all messages for the authenticated tenant.
func (c *MessagesClient) List(ctx context.Context) ([]Message, error) {
	body, err := c.transport.get(ctx, "/api/messages", nil)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return decodeList[Message](body, "message list")
}

// Get retrieves a single message by its server-assigned identifier.
func (c *MessagesClient) Get(ctx context.Context, messageID uuid.UUID) (*Message, error) {
	if messageID == uuid.Nil {
		return nil, validationf("messageID is required")
	}
	body, err := c.transport.get(ctx, "/api/messages/"+messageID.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting message %s: %w", messageID, err)
	}
	return decodeObject[Message](body, "message")
}

// ListByAgent returns all messages attributed to one agent.
func (c *MessagesClient) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]Message, error) {
	if agentID == uuid.Nil {
		return nil, validationf("agentID is required")
	}
	body, err := c.transport.get(ctx, "/api/messages/by-agent/"+agentID.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing messages for agent %s: %w", agentID, err)
	}
	return decodeList[Message](body, "message list")
}

// requireFields checks that every named argument is non-blank, reporting
// the missing ones in a single validation error.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if len(missing) == 1 {
		return validationf("%s is required", missing[0])
	}
	// Deterministic order for error messages and tests.
	slices.Sort(missing)
	return validationf("required fields missing: %s", strings.Join(missing, ", "))
}

// ptr returns a pointer to v, for populating optional wire fields.
func ptr[T any](v T) *T { return &v }

// optional returns nil for a blank string so that the field is omitted from
// the wire body instead of being sent empty.
func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
