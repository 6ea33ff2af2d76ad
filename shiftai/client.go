// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shiftaitop/shiftai-go/lib/netutil"
)

// defaultTimeout bounds each HTTP exchange when the caller does not supply
// an *http.Client of their own. There are no retries — a request either
// completes within the timeout or fails to the caller.
const defaultTimeout = 60 * time.Second

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL of the ShiftAI backend
	// (e.g., "https://api.theshiftai.in"). Required.
	BaseURL string

	// APIKey is the tenant credential sent as the Api-Key header on
	// authenticated requests. Required. Registration does not use it, so
	// a client constructed only to call Platform.Register may carry any
	// non-empty placeholder.
	APIKey string

	// HTTPClient is used for all requests. If nil, a client with Timeout
	// set to 60s is created and owned by the Client.
	HTTPClient *http.Client

	// Timeout overrides the owned HTTP client's timeout. Ignored when
	// HTTPClient is supplied — configure that client directly instead.
	Timeout time.Duration

	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client is the entry point to the ShiftAI backend. It aggregates one
// resource client per backend resource group, all sharing a single
// transport, and owns the transport's lifecycle.
//
// A Client is safe for concurrent use: it holds no mutable state beyond the
// closed flag, and the underlying connection pool is synchronized by
// net/http. Calls are never retried and responses are never cached.
type Client struct {
	Platform        *PlatformClient
	Messages        *MessagesClient
	Users           *UsersClient
	Agents          *AgentsClient
	Analytics       *AnalyticsClient
	Conversations   *ConversationsClient
	PlatformSession *PlatformSessionClient
	Eval            *EvalClient

	transport *transport
}

// NewClient creates a ShiftAI client. BaseURL and APIKey are both required
// and validated non-empty; a malformed BaseURL is rejected here rather than
// on the first request.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		return nil, validationf("BaseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, validationf("invalid BaseURL %q: %v", baseURL, err)
	}
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, validationf("APIKey is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	t := &transport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}

	return &Client{
		Platform:        &PlatformClient{transport: t},
		Messages:        &MessagesClient{transport: t},
		Users:           &UsersClient{transport: t},
		Agents:          &AgentsClient{transport: t},
		Analytics:       &AnalyticsClient{transport: t},
		Conversations:   &ConversationsClient{transport: t},
		PlatformSession: &PlatformSessionClient{transport: t},
		Eval:            &EvalClient{transport: t},
		transport:       t,
	}, nil
}

// Close releases the transport's idle connections and marks the client
// closed. Closing twice is a no-op; any call issued after Close fails with
// a *ValidationError before reaching the network. In-flight requests are
// not interrupted — cancel their contexts to abort them.
func (c *Client) Close() {
	if c.transport.closed.Swap(true) {
		return
	}
	c.transport.httpClient.CloseIdleConnections()
	c.transport.logger.Debug("shiftai client closed")
}

// transport performs one HTTP exchange per call against the backend. It is
// shared by all resource clients and holds only immutable credentials plus
// the closed flag.
type transport struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	closed     atomic.Bool
}

// do executes one request and returns the raw response body. Non-2xx
// responses are mapped to the typed error taxonomy; nothing is retried.
// authenticated controls whether the Api-Key header is attached — the
// registration and admin endpoints are the only unauthenticated ones.
func (t *transport) do(ctx context.Context, method, path string, query url.Values, requestBody any, authenticated bool) ([]byte, error) {
	if t.closed.Load() {
		return nil, validationf("client is closed")
	}

	requestURL := t.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("shiftai: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("shiftai: creating request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		request.Header.Set("Api-Key", t.apiKey)
	}

	response, err := t.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("shiftai: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, mapStatusError(response.StatusCode, netutil.ErrorBody(response.Body))
	}

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("shiftai: reading response body: %w", err)
	}
	return responseBody, nil
}

// get is a convenience wrapper for authenticated GET requests.
func (t *transport) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return t.do(ctx, http.MethodGet, path, query, nil, true)
}

// post is a convenience wrapper for authenticated POST requests.
func (t *transport) post(ctx context.Context, path string, requestBody any) ([]byte, error) {
	return t.do(ctx, http.MethodPost, path, nil, requestBody, true)
}
