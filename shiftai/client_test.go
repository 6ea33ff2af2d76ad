// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestClient creates a Client backed by the given httptest.Server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		APIKey:     "test-api-key",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClient_MissingBaseURL(t *testing.T) {
	_, err := NewClient(Config{APIKey: "key"})
	if err == nil {
		t.Fatal("expected error for missing BaseURL")
	}
	if !IsValidation(err) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "https://api.theshiftai.in"})
	if err == nil {
		t.Fatal("expected error for missing APIKey")
	}
	if !IsValidation(err) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestNewClient_MalformedBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://exa mple.com/\x7f", APIKey: "key"})
	if err == nil {
		t.Fatal("expected error for malformed BaseURL")
	}
	if !IsValidation(err) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestClient_APIKeyHeaderInjection(t *testing.T) {
	var receivedKey string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedKey = request.Header.Get("Api-Key")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	if _, err := client.Messages.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if receivedKey != "test-api-key" {
		t.Errorf("Api-Key = %q, want %q", receivedKey, "test-api-key")
	}
}

func TestClient_TrailingSlashBaseURL(t *testing.T) {
	var receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL:    server.URL + "/",
		APIKey:     "test-api-key",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	if _, err := client.Messages.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if receivedPath != "/api/messages" {
		t.Errorf("path = %q, want %q", receivedPath, "/api/messages")
	}
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	client.Close()
	client.Close() // must not panic or block
}

func TestClient_UseAfterClose(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestCount++
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	client.Close()

	_, err := client.Messages.List(context.Background())
	if err == nil {
		t.Fatal("expected error after Close")
	}
	if !IsValidation(err) {
		t.Errorf("expected *ValidationError, got %T: %v", err, err)
	}
	if requestCount != 0 {
		t.Errorf("expected no requests after Close, server saw %d", requestCount)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Messages.List(ctx)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte(`<html>Bad Gateway</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	_, err := client.Messages.List(context.Background())
	if !IsServerError(err) {
		t.Fatalf("expected *ServerError, got %T: %v", err, err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("expected error to unwrap to *APIError")
	}
	if apiErr.Message != "HTTP 502" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "HTTP 502")
	}
	if apiErr.Body != `<html>Bad Gateway</html>` {
		t.Errorf("Body = %q, want raw body preserved", apiErr.Body)
	}
}

// Full exchange lifecycle: register a project, then use the issued key to
// send a human message and a bot reply that echoes the human message's ID.
func TestClient_RegisterAndExchange(t *testing.T) {
	humanID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/platform/register", func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Api-Key") != "" {
			t.Error("registration must not send Api-Key")
		}
		writer.Write([]byte(`{"apiKey":"issued-key","projectName":"support-bot","tenantId":"t-1"}`))
	})
	mux.HandleFunc("/api/messages/submit", func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("Api-Key"); got != "issued-key" {
			t.Errorf("Api-Key = %q, want %q", got, "issued-key")
		}
		var body SubmissionRequest
		if err := decodeJSONBody(request, &body); err != nil {
			t.Fatalf("decoding submission: %v", err)
		}
		switch deref(body.SenderRole) {
		case SenderHuman:
			writer.Write([]byte(`{"messageId":"` + humanID.String() + `","senderType":"HUMAN"}`))
		case SenderBot:
			writer.Write([]byte(`{"messageId":"` + uuid.NewString() + `","senderType":"BOT","replyMessageId":"` + deref(body.ReplyMessageID).String() + `"}`))
		default:
			t.Errorf("senderType = %q, want HUMAN or BOT", deref(body.SenderRole))
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	bootstrap, err := NewClient(Config{
		BaseURL:    server.URL,
		APIKey:     "placeholder",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer bootstrap.Close()

	registration, err := bootstrap.Platform.Register(context.Background(), "support-bot", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registration.APIKey != "issued-key" {
		t.Fatalf("APIKey = %q, want %q", registration.APIKey, "issued-key")
	}

	client, err := NewClient(Config{
		BaseURL:    server.URL,
		APIKey:     registration.APIKey,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient with issued key: %v", err)
	}
	defer client.Close()

	human, err := client.Messages.SendHumanMessage(context.Background(), HumanMessage{
		Username:      "alice",
		Message:       "where is my order?",
		AgentName:     "support",
		AgentPlatform: "web",
	})
	if err != nil {
		t.Fatalf("SendHumanMessage: %v", err)
	}
	if human.MessageID != humanID {
		t.Fatalf("human MessageID = %s, want %s", human.MessageID, humanID)
	}
	if deref(human.SenderRole) != SenderHuman {
		t.Errorf("human senderType = %q, want HUMAN", deref(human.SenderRole))
	}

	bot, err := client.Messages.SendBotMessage(context.Background(), BotMessage{
		Username:       "alice",
		Message:        "your order shipped yesterday",
		AgentName:      "support",
		AgentPlatform:  "web",
		ReplyMessageID: human.MessageID,
		RAGContext:     "order #1234: shipped 2026-08-30",
	})
	if err != nil {
		t.Fatalf("SendBotMessage: %v", err)
	}
	if deref(bot.SenderRole) != SenderBot {
		t.Errorf("bot senderType = %q, want BOT", deref(bot.SenderRole))
	}
	if deref(bot.ReplyMessageID) != human.MessageID {
		t.Errorf("bot replyMessageId = %s, want %s", deref(bot.ReplyMessageID), human.MessageID)
	}
}
