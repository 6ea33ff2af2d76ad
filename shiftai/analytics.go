// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Result-count bounds for the top-N analytics queries. A limit of 0 selects
// the endpoint's default; anything outside [1, MaxTopLimit] is rejected with
// a *ValidationError before any network call — the limit is never silently
// clamped, since invisible result-set truncation is worse than an error.
const (
	// DefaultTopLimit is used by TopAgents, TopUsers, and All when the
	// caller passes 0.
	DefaultTopLimit = 5

	// DefaultProjectTopLimit is used by ProjectData when the caller passes 0.
	DefaultProjectTopLimit = 10

	// MaxTopLimit is the largest accepted result-count limit.
	MaxTopLimit = 100
)

// AnalyticsClient reads aggregate analytics and manages message feedback.
type AnalyticsClient struct {
	transport *transport
}

// SubmitFeedback records feedback on a bot message. MessageID is required;
// like/dislike/regeneration flags and free-text feedback are optional.
func (c *AnalyticsClient) SubmitFeedback(ctx context.Context, request FeedbackRequest) (*FeedbackResponse, error) {
	if request.MessageID == uuid.Nil {
		return nil, validationf("MessageID is required")
	}
	body, err := c.transport.post(ctx, "/api/analytics/feedback", request)
	if err != nil {
		return nil, fmt.Errorf("submitting feedback for message %s: %w", request.MessageID, err)
	}
	return decodeObject[FeedbackResponse](body, "feedback response")
}

// GetFeedback retrieves the stored feedback record for a bot message.
func (c *AnalyticsClient) GetFeedback(ctx context.Context, messageID uuid.UUID) (*MessageFeedback, error) {
	if messageID == uuid.Nil {
		return nil, validationf("messageID is required")
	}
	body, err := c.transport.get(ctx, "/api/analytics/feedback/"+messageID.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting feedback for message %s: %w", messageID, err)
	}
	return decodeObject[MessageFeedback](body, "message feedback")
}

// Dashboard returns the tenant-wide metrics snapshot.
func (c *AnalyticsClient) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	body, err := c.transport.get(ctx, "/api/analytics/dashboard", nil)
	if err != nil {
		return nil, fmt.Errorf("getting dashboard metrics: %w", err)
	}
	return decodeObject[DashboardMetrics](body, "dashboard metrics")
}

// TopAgents returns the agents ranked by query count. limit 0 selects
// DefaultTopLimit; out-of-range limits are rejected.
func (c *AnalyticsClient) TopAgents(ctx context.Context, limit int) ([]TopAgent, error) {
	query, err := limitQuery("limit", limit, DefaultTopLimit)
	if err != nil {
		return nil, err
	}
	body, err := c.transport.get(ctx, "/api/analytics/top-agents", query)
	if err != nil {
		return nil, fmt.Errorf("getting top agents: %w", err)
	}
	return decodeList[TopAgent](body, "top agents")
}

// TopUsers returns the users ranked by activity. limit 0 selects
// DefaultTopLimit; out-of-range limits are rejected.
func (c *AnalyticsClient) TopUsers(ctx context.Context, limit int) ([]TopUser, error) {
	query, err := limitQuery("limit", limit, DefaultTopLimit)
	if err != nil {
		return nil, err
	}
	body, err := c.transport.get(ctx, "/api/analytics/top-users", query)
	if err != nil {
		return nil, fmt.Errorf("getting top users: %w", err)
	}
	return decodeList[TopUser](body, "top users")
}

// UserAnalytics returns the per-user analytics table.
func (c *AnalyticsClient) UserAnalytics(ctx context.Context) ([]UserAnalytics, error) {
	body, err := c.transport.get(ctx, "/api/analytics/users", nil)
	if err != nil {
		return nil, fmt.Errorf("getting user analytics: %w", err)
	}
	return decodeList[UserAnalytics](body, "user analytics")
}

// ProjectData returns the project-level aggregate including top-N activity
// lists. topLimit 0 selects DefaultProjectTopLimit; out-of-range limits are
// rejected.
func (c *AnalyticsClient) ProjectData(ctx context.Context, topLimit int) (*ProjectAnalytics, error) {
	query, err := limitQuery("topLimit", topLimit, DefaultProjectTopLimit)
	if err != nil {
		return nil, err
	}
	body, err := c.transport.get(ctx, "/api/analytics/project", query)
	if err != nil {
		return nil, fmt.Errorf("getting project analytics: %w", err)
	}
	return decodeObject[ProjectAnalytics](body, "project analytics")
}

// All returns the cross-tenant analytics snapshot. This is an admin
// endpoint with no authentication and a server-defined response shape, so
// the result is a raw map. topLimit 0 selects DefaultTopLimit.
func (c *AnalyticsClient) All(ctx context.Context, topLimit int) (map[string]any, error) {
	query, err := limitQuery("topLimit", topLimit, DefaultTopLimit)
	if err != nil {
		return nil, err
	}
	body, err := c.transport.do(ctx, http.MethodGet, "/api/analytics/all", query, nil, false)
	if err != nil {
		return nil, fmt.Errorf("getting all analytics: %w", err)
	}
	return decodeMap(body, "all analytics")
}

// Initialize triggers server-side analytics initialization. Admin endpoint,
// unauthenticated, server-defined response shape.
func (c *AnalyticsClient) Initialize(ctx context.Context) (map[string]any, error) {
	body, err := c.transport.do(ctx, http.MethodPost, "/api/analytics/initialize", nil, nil, false)
	if err != nil {
		return nil, fmt.Errorf("initializing analytics: %w", err)
	}
	return decodeMap(body, "analytics initialization")
}

// limitQuery validates a result-count limit and renders it as the named
// query parameter. 0 selects the default; negative values and values above
// MaxTopLimit are rejected.
func limitQuery(name string, limit, defaultLimit int) (url.Values, error) {
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > MaxTopLimit {
		return nil, validationf("%s must be between 1 and %d, got %d", name, MaxTopLimit, limit)
	}
	return url.Values{name: []string{strconv.Itoa(limit)}}, nil
}
