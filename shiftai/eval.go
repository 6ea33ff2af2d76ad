// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// EvalClient triggers evaluation-metric generation for completed sessions.
// This is an internal observability surface, not part of normal client
// flows; response shapes are server-defined and returned as raw maps.
type EvalClient struct {
	transport *transport
}

// GenerateSessionMetrics generates evaluation metrics for one completed
// conversation.
func (c *EvalClient) GenerateSessionMetrics(ctx context.Context, conversationID uuid.UUID) (map[string]any, error) {
	if conversationID == uuid.Nil {
		return nil, validationf("conversationID is required")
	}
	path := "/api/eval/sessions/" + conversationID.String() + "/generate-metrics"
	body, err := c.transport.post(ctx, path, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("generating metrics for session %s: %w", conversationID, err)
	}
	return decodeMap(body, "session metrics status")
}

// GenerateAllSessionMetrics generates evaluation metrics for every
// completed session in the authenticated tenant.
func (c *EvalClient) GenerateAllSessionMetrics(ctx context.Context) (map[string]any, error) {
	body, err := c.transport.post(ctx, "/api/eval/sessions/generate-metrics", map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("generating metrics for all sessions: %w", err)
	}
	return decodeMap(body, "session metrics status")
}

// GenerateAllConversationMetrics starts a cross-tenant batch job (admin
// endpoint, unauthenticated). The returned map carries a job identifier for
// BatchProgress.
func (c *EvalClient) GenerateAllConversationMetrics(ctx context.Context) (map[string]any, error) {
	body, err := c.transport.do(ctx, http.MethodPost, "/api/eval/sessions/generate-metrics-all", nil, map[string]any{}, false)
	if err != nil {
		return nil, fmt.Errorf("generating metrics for all conversations: %w", err)
	}
	return decodeMap(body, "batch job status")
}

// BatchProgress reports the progress of a batch metrics job (admin
// endpoint, unauthenticated).
func (c *EvalClient) BatchProgress(ctx context.Context, jobID string) (map[string]any, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, validationf("jobID is required")
	}
	path := "/api/eval/sessions/generate-metrics-all/" + url.PathEscape(jobID) + "/progress"
	body, err := c.transport.do(ctx, http.MethodGet, path, nil, nil, false)
	if err != nil {
		return nil, fmt.Errorf("getting progress of job %q: %w", jobID, err)
	}
	return decodeMap(body, "batch job progress")
}
