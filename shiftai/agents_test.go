// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestAgentsCreate(t *testing.T) {
	agentID := uuid.New()
	var received CreateAgentRequest
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/agents" {
			t.Errorf("path = %q", request.URL.Path)
		}
		if err := decodeJSONBody(request, &received); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		writer.Write([]byte(`{"id":"` + agentID.String() + `","name":"support","platform":"web"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	agent, err := client.Agents.Create(context.Background(), "support", "web", "4.0", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if received.Name != "support" || received.Platform != "web" {
		t.Errorf("received = %+v", received)
	}
	if deref(received.Version) != "4.0" {
		t.Errorf("version = %q", deref(received.Version))
	}
	if agent.ID != agentID {
		t.Errorf("ID = %s, want %s", agent.ID, agentID)
	}
}

func TestAgentsCreate_VersionOmittedWhenBlank(t *testing.T) {
	var received CreateAgentRequest
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if err := decodeJSONBody(request, &received); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		writer.Write([]byte(`{"id":"` + uuid.NewString() + `"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	if _, err := client.Agents.Create(context.Background(), "support", "web", "", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if received.Version != nil {
		t.Errorf("blank version must be omitted, got %q", deref(received.Version))
	}
}

func TestAgentsCreate_MissingArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("unexpected request")
	}))
	defer server.Close()

	client := newTestClient(t, server)
	defer client.Close()

	if _, err := client.Agents.Create(context.Background(), "", "web", "", nil); !IsValidation(err) {
		t.Errorf("missing name: expected *ValidationError, got %T", err)
	}
	if _, err := client.Agents.Create(context.Background(), "support", "", "", nil); !IsValidation(err) {
		t.Errorf("missing platform: expected *ValidationError, got %T", err)
	}
}
