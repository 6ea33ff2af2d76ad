// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Metadata is a free-form key-value bag attached to users, agents, and
// messages. Equality over Metadata is order-insensitive, as for any Go map.
type Metadata = map[string]any

// Sender role discriminators for message submission. The role is set by the
// client (SendHumanMessage / SendBotMessage), never by the caller.
const (
	SenderHuman = "HUMAN"
	SenderBot   = "BOT"
)

// messageTypeText is the only message type this SDK submits.
const messageTypeText = "TEXT"

// timestampLayouts are the accepted wire forms, tried in order. The backend
// emits ISO-8601 both with a zone designator and without one (zone-less
// values are UTC).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Timestamp is an ISO-8601 instant as exchanged with the backend. It decodes
// both RFC 3339 values and the backend's zone-less datetime form, and always
// encodes as RFC 3339 in UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t as a wire Timestamp, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid ISO-8601 timestamp %q", raw)
}

// wireValidator is implemented by response records whose wire contract has
// required fields. The check runs after unmarshal; a failure surfaces to the
// caller as a *DecodeError.
type wireValidator interface {
	validateWire() error
}

// decodeObject unmarshals a 2xx response body into T and enforces the
// record's required fields. An empty body decodes to the zero record, per
// the transport contract.
func decodeObject[T any](body []byte, what string) (*T, error) {
	var record T
	if len(bytes.TrimSpace(body)) == 0 {
		return &record, nil
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &DecodeError{What: what, Err: err}
	}
	if validator, ok := any(&record).(wireValidator); ok {
		if err := validator.validateWire(); err != nil {
			return nil, &DecodeError{What: what, Err: err}
		}
	}
	return &record, nil
}

// decodeList unmarshals a 2xx response body into a slice of T, enforcing
// required fields on each element.
func decodeList[T any](body []byte, what string) ([]T, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &DecodeError{What: what, Err: err}
	}
	for i := range records {
		if validator, ok := any(&records[i]).(wireValidator); ok {
			if err := validator.validateWire(); err != nil {
				return nil, &DecodeError{What: what, Err: fmt.Errorf("element %d: %w", i, err)}
			}
		}
	}
	return records, nil
}

// decodeMap unmarshals a 2xx response body into a raw map. Used for the
// endpoints whose response shape is server-defined and may evolve
// (platform-session initiate, admin analytics, eval).
func decodeMap(body []byte, what string) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{What: what, Err: err}
	}
	return result, nil
}

// RegistrationRequest is the body of POST /api/platform/register.
type RegistrationRequest struct {
	ProjectName string   `json:"projectName"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// RegistrationResponse is returned by Platform.Register. The API key is the
// tenant credential for all subsequent authenticated calls; it is not
// adopted by the client that performed the registration.
type RegistrationResponse struct {
	ID          *int64     `json:"id,omitempty"`
	TenantID    *string    `json:"tenantId,omitempty"`
	ProjectName *string    `json:"projectName,omitempty"`
	APIKey      string     `json:"apiKey"`
	CreatedAt   *Timestamp `json:"createdAt,omitempty"`
	Message     *string    `json:"message,omitempty"`
}

func (r *RegistrationResponse) validateWire() error {
	if strings.TrimSpace(r.APIKey) == "" {
		return fmt.Errorf("missing required field apiKey")
	}
	return nil
}

// AgentData identifies the agent a message is attributed to. Submitted
// inline with messages so that agents are created on first reference.
type AgentData struct {
	Name     string   `json:"name"`
	Platform string   `json:"platform"`
	Version  *string  `json:"version,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// SubmissionRequest is the full wire body of POST /api/messages/submit.
// Messages.Submit sends it verbatim; SendHumanMessage and SendBotMessage
// build it from their typed arguments and set the discriminator fields.
type SubmissionRequest struct {
	Username       *string    `json:"username,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Metadata       Metadata   `json:"metadata,omitempty"`
	AgentData      *AgentData `json:"agentData,omitempty"`
	SenderRole     *string    `json:"senderType,omitempty"`
	Message        *string    `json:"message,omitempty"`
	Intent         *string    `json:"intent,omitempty"`
	Entities       Metadata   `json:"entities,omitempty"`
	Annotations    Metadata   `json:"annotations,omitempty"`
	MessageType    *string    `json:"messageType,omitempty"`
	SourceEvent    Metadata   `json:"sourceEvent,omitempty"`
	RAGContext     *string    `json:"ragContext,omitempty"`
	ReplyMessageID *uuid.UUID `json:"replyMessageId,omitempty"`
	Mode           *string    `json:"mode,omitempty"`
}

// ConversationTurn is one message in a prior conversation turn returned
// alongside a submission response.
type ConversationTurn struct {
	Sender  *string `json:"sender,omitempty"`
	Message *string `json:"message,omitempty"`
}

// SimilarConversation is a vector-store hit for a conversation similar to
// the submitted human message.
type SimilarConversation struct {
	Text             *string    `json:"text,omitempty"`
	HumanMessageID   *uuid.UUID `json:"humanMessageId,omitempty"`
	BotMessageID     *uuid.UUID `json:"botMessageId,omitempty"`
	ConversationID   *uuid.UUID `json:"conversationId,omitempty"`
	UserID           *uuid.UUID `json:"userId,omitempty"`
	AgentID          *uuid.UUID `json:"agentId,omitempty"`
	Timestamp        *Timestamp `json:"timestamp,omitempty"`
	MessageType      *string    `json:"messageType,omitempty"`
	GeneratedContext *string    `json:"generatedContext,omitempty"`
	Confidence       *float64   `json:"confidence,omitempty"`
	Certainty        *float64   `json:"certainty,omitempty"`
}

// SubmissionResponse is returned by message submission. MessageID is the
// server-assigned identifier of the stored message and is required; all
// other fields depend on the sender role (contextual prompt and similar
// conversations accompany human submissions, operation status accompanies
// bot submissions).
type SubmissionResponse struct {
	Success               *bool                 `json:"success,omitempty"`
	MessageID             uuid.UUID             `json:"messageId"`
	ConversationID        *uuid.UUID            `json:"conversationId,omitempty"`
	Message               *string               `json:"message,omitempty"`
	SenderRole            *string               `json:"senderType,omitempty"`
	ReplyMessageID        *uuid.UUID            `json:"replyMessageId,omitempty"`
	ContextualPrompt      Metadata              `json:"contextualPrompt,omitempty"`
	HumanQuery            *string               `json:"humanQuery,omitempty"`
	PreviousConversations [][]ConversationTurn  `json:"previousKConversations,omitempty"`
	SimilarConversations  []SimilarConversation `json:"similarConversations,omitempty"`
	OperationStatus       map[string]bool       `json:"operationStatus,omitempty"`
	ConversationTitle     *string               `json:"conversationTitle,omitempty"`
}

func (r *SubmissionResponse) validateWire() error {
	if r.MessageID == uuid.Nil {
		return fmt.Errorf("missing required field messageId")
	}
	return nil
}

// Message is the stored message record returned by the message read
// endpoints. Relationship fields (user, agent, conversation, reply target)
// arrive as nested objects whose shape belongs to the backend; they are
// kept as raw maps rather than frozen into types that would break on
// server-side schema evolution.
type Message struct {
	ID               uuid.UUID  `json:"id"`
	Message          *string    `json:"message,omitempty"`
	Sender           *string    `json:"sender,omitempty"`
	MessageType      *string    `json:"messageType,omitempty"`
	PlatformUser     Metadata   `json:"platformUser,omitempty"`
	Agent            Metadata   `json:"agent,omitempty"`
	User             Metadata   `json:"user,omitempty"`
	Conversation     Metadata   `json:"conversation,omitempty"`
	ReplyToMessage   Metadata   `json:"replyToMessage,omitempty"`
	ProjectName      *string    `json:"projectName,omitempty"`
	AgentName        *string    `json:"agentName,omitempty"`
	Mode             *string    `json:"mode,omitempty"`
	Timestamp        *Timestamp `json:"timestamp,omitempty"`
	Intent           *string    `json:"intent,omitempty"`
	Entities         Metadata   `json:"entities,omitempty"`
	Annotations      Metadata   `json:"annotations,omitempty"`
	SourceEvent      Metadata   `json:"sourceEvent,omitempty"`
	GeneratedContext *string    `json:"generatedContext,omitempty"`
	RAGContext       *string    `json:"ragContext,omitempty"`
	LikeFeedback     *bool      `json:"likeFeedback,omitempty"`
	DislikeFeedback  *bool      `json:"dislikeFeedback,omitempty"`
	FeedbackText     *string    `json:"feedbackText,omitempty"`
	Regeneration     *bool      `json:"regeneration,omitempty"`
	FeedbackUpdated  *Timestamp `json:"feedbackUpdatedAt,omitempty"`
}

func (m *Message) validateWire() error {
	if m.ID == uuid.Nil {
		return fmt.Errorf("missing required field id")
	}
	return nil
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// User is a platform end user, unique per tenant by username.
type User struct {
	UserID      uuid.UUID `json:"userId"`
	Username    *string   `json:"username,omitempty"`
	Email       *string   `json:"email,omitempty"`
	ProjectName *string   `json:"projectName,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
}

func (u *User) validateWire() error {
	if u.UserID == uuid.Nil {
		return fmt.Errorf("missing required field userId")
	}
	return nil
}

// CreateAgentRequest is the body of POST /api/agents.
type CreateAgentRequest struct {
	Name     string   `json:"name"`
	Platform string   `json:"platform"`
	Version  *string  `json:"version,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Agent is a registered AI agent.
type Agent struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name,omitempty"`
	Platform    *string   `json:"platform,omitempty"`
	Version     *string   `json:"version,omitempty"`
	ProjectName *string   `json:"projectName,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
}

func (a *Agent) validateWire() error {
	if a.ID == uuid.Nil {
		return fmt.Errorf("missing required field id")
	}
	return nil
}

// FeedbackRequest is the body of POST /api/analytics/feedback. MessageID
// must reference a bot message.
type FeedbackRequest struct {
	MessageID    uuid.UUID `json:"messageId"`
	Like         *bool     `json:"like,omitempty"`
	Dislike      *bool     `json:"dislike,omitempty"`
	Feedback     *string   `json:"feedback,omitempty"`
	Regeneration *bool     `json:"regeneration,omitempty"`
}

// FeedbackResponse is returned by Analytics.SubmitFeedback.
type FeedbackResponse struct {
	Success      *bool      `json:"success,omitempty"`
	Message      *string    `json:"message,omitempty"`
	BotMessageID *uuid.UUID `json:"botMessageId,omitempty"`
}

// MessageFeedback is the stored feedback record for a bot message, returned
// by GET /api/analytics/feedback/{messageId}.
type MessageFeedback struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	MessageID    *uuid.UUID `json:"messageId,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Feedback     *string    `json:"feedback,omitempty"`
	Like         *bool      `json:"like,omitempty"`
	Dislike      *bool      `json:"dislike,omitempty"`
	Regeneration *bool      `json:"regeneration,omitempty"`
	SubmittedAt  *Timestamp `json:"submittedAt,omitempty"`
}

// DashboardMetrics is the tenant-wide aggregate snapshot.
type DashboardMetrics struct {
	TotalUsers             *int64   `json:"totalUsers,omitempty"`
	TotalAgents            *int64   `json:"totalAgents,omitempty"`
	TotalQueries           *int64   `json:"totalQueries,omitempty"`
	TotalResponses         *int64   `json:"totalResponses,omitempty"`
	AvgResponseTimeSeconds *float64 `json:"avgResponseTimeSeconds,omitempty"`
	TotalFeedback          *int64   `json:"totalFeedback,omitempty"`
	Likes                  *int64   `json:"likes,omitempty"`
	Dislikes               *int64   `json:"dislikes,omitempty"`
	Regenerates            *int64   `json:"regenerates,omitempty"`
}

// TopAgent is one row of the top-agents-by-query-count ranking.
type TopAgent struct {
	Rank                   *int       `json:"rank,omitempty"`
	AgentName              *string    `json:"agentName,omitempty"`
	AgentID                *uuid.UUID `json:"agentId,omitempty"`
	QueryCount             *int64     `json:"queryCount,omitempty"`
	SatisfactionPercentage *float64   `json:"satisfactionPercentage,omitempty"`
}

// TopUser is one row of the top-users-by-activity ranking.
type TopUser struct {
	Rank                   *int       `json:"rank,omitempty"`
	Username               *string    `json:"username,omitempty"`
	Email                  *string    `json:"email,omitempty"`
	UserID                 *uuid.UUID `json:"userId,omitempty"`
	QueryCount             *int64     `json:"queryCount,omitempty"`
	AvgResponseTimeSeconds *float64   `json:"avgResponseTimeSeconds,omitempty"`
}

// UserAnalytics is one row of the per-user analytics table.
type UserAnalytics struct {
	Username               *string    `json:"username,omitempty"`
	Email                  *string    `json:"email,omitempty"`
	UserID                 *uuid.UUID `json:"userId,omitempty"`
	Queries                *int64     `json:"queries,omitempty"`
	Responses              *int64     `json:"responses,omitempty"`
	AvgResponseTimeSeconds *float64   `json:"avgResponseTimeSeconds,omitempty"`
	Likes                  *int64     `json:"likes,omitempty"`
	Dislikes               *int64     `json:"dislikes,omitempty"`
	Regenerates            *int64     `json:"regenerates,omitempty"`
}

// ProjectAnalytics is the project-level aggregate including top-N activity
// lists. The list elements' shape is server-defined.
type ProjectAnalytics struct {
	TotalUsers             *int64   `json:"totalUsers,omitempty"`
	TotalAgents            *int64   `json:"totalAgents,omitempty"`
	TotalQueries           *int64   `json:"totalQueries,omitempty"`
	TotalResponses         *int64   `json:"totalResponses,omitempty"`
	AvgResponseTimeSeconds *float64 `json:"avgResponseTimeSeconds,omitempty"`
	TotalFeedback          *int64   `json:"totalFeedback,omitempty"`
	Likes                  *int64   `json:"likes,omitempty"`
	Dislikes               *int64   `json:"dislikes,omitempty"`
	Regenerates            *int64   `json:"regenerates,omitempty"`
	TopUserActivity        []any    `json:"topUserActivity,omitempty"`
	TopDevicesByUsage      []any    `json:"topDevicesByUsage,omitempty"`
}

// ConversationSummary describes one conversation without its messages.
// EndedAt is unset while the conversation is active.
type ConversationSummary struct {
	ConversationID    uuid.UUID  `json:"conversationId"`
	StartedAt         *Timestamp `json:"startedAt,omitempty"`
	EndedAt           *Timestamp `json:"endedAt,omitempty"`
	UserID            *uuid.UUID `json:"userId,omitempty"`
	Username          *string    `json:"username,omitempty"`
	AgentID           *uuid.UUID `json:"agentId,omitempty"`
	AgentName         *string    `json:"agentName,omitempty"`
	ConversationTitle *string    `json:"conversationTitle,omitempty"`
}

func (c *ConversationSummary) validateWire() error {
	if c.ConversationID == uuid.Nil {
		return fmt.Errorf("missing required field conversationId")
	}
	return nil
}

// ConversationMessage is the flattened per-message view returned by the
// conversation read endpoints — no nested relationship objects.
// GeneratedContext is present on all messages; RAGContext only on bot
// messages.
type ConversationMessage struct {
	ID                uuid.UUID  `json:"id"`
	Message           *string    `json:"message,omitempty"`
	Timestamp         *Timestamp `json:"timestamp,omitempty"`
	Sender            *string    `json:"sender,omitempty"`
	MessageType       *string    `json:"messageType,omitempty"`
	UserID            *uuid.UUID `json:"userId,omitempty"`
	Username          *string    `json:"username,omitempty"`
	AgentID           *uuid.UUID `json:"agentId,omitempty"`
	AgentName         *string    `json:"agentName,omitempty"`
	Intent            *string    `json:"intent,omitempty"`
	Entities          Metadata   `json:"entities,omitempty"`
	Annotations       Metadata   `json:"annotations,omitempty"`
	SourceEvent       Metadata   `json:"sourceEvent,omitempty"`
	ReplyToMessageID  *uuid.UUID `json:"replyToMessageId,omitempty"`
	GeneratedContext  *string    `json:"generatedContext,omitempty"`
	RAGContext        *string    `json:"ragContext,omitempty"`
	LikeFeedback      *bool      `json:"likeFeedback,omitempty"`
	DislikeFeedback   *bool      `json:"dislikeFeedback,omitempty"`
	FeedbackText      *string    `json:"feedbackText,omitempty"`
	Regeneration      *bool      `json:"regeneration,omitempty"`
	FeedbackUpdated   *Timestamp `json:"feedbackUpdatedAt,omitempty"`
	ConversationTitle *string    `json:"conversationTitle,omitempty"`
}

func (m *ConversationMessage) validateWire() error {
	if m.ID == uuid.Nil {
		return fmt.Errorf("missing required field id")
	}
	return nil
}

// EndConversationRequest is the body of POST /api/platformsession/endconversation.
type EndConversationRequest struct {
	ConversationID uuid.UUID `json:"conversationId"`
}

// EndConversationResponse is returned when a conversation session is ended.
type EndConversationResponse struct {
	Success        *bool      `json:"success,omitempty"`
	Message        *string    `json:"message,omitempty"`
	ConversationID *uuid.UUID `json:"conversationId,omitempty"`
	StartedAt      *Timestamp `json:"startedAt,omitempty"`
	EndedAt        *Timestamp `json:"endedAt,omitempty"`
}
