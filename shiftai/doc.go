// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

// Package shiftai is a typed client for the ShiftAI conversational-AI
// platform's REST API.
//
// [Client] is the entry point: it aggregates one resource client per
// backend resource group (Platform, Messages, Users, Agents, Analytics,
// Conversations, PlatformSession, Eval), all sharing a single HTTP
// transport whose lifecycle the Client owns. Construct it with a base URL
// and a tenant API key, and call Close when done:
//
//	client, err := shiftai.NewClient(shiftai.Config{
//	    BaseURL: "https://api.theshiftai.in",
//	    APIKey:  "pk_your_api_key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	response, err := client.Messages.SendHumanMessage(ctx, shiftai.HumanMessage{
//	    Username:      "john_doe",
//	    Message:       "hi",
//	    AgentName:     "Bot",
//	    AgentPlatform: "OpenAI",
//	})
//
// New tenants obtain an API key through [PlatformClient.Register] — an
// unauthenticated call. The key is not adopted by the registering client;
// construct a fresh Client with it.
//
// Every method takes a context and issues exactly one HTTP exchange: no
// retries, no caching, no hidden state. Cancelling the context aborts the
// in-flight request. The Client is safe for concurrent use.
//
// Failures fall into three disjoint families. Caller-side mistakes
// (missing arguments, out-of-range limits, use after Close) return a
// [*ValidationError] before any network call. Backend rejections map the
// HTTP status to a fixed taxonomy — [*BadRequestError], [*UnauthorizedError],
// [*NotFoundError], [*ServerError], or the catch-all [*APIError], each
// carrying the status code and the server's message; [IsNotFound] and
// friends test for them. A malformed or incomplete 2xx response body is a
// [*DecodeError], signaling a contract mismatch rather than a usage or
// business error.
package shiftai
