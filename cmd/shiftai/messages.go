// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
	"github.com/shiftaitop/shiftai-go/shiftai"
)

func messagesCommand() *cli.Command {
	return &cli.Command{
		Name:    "messages",
		Summary: "Submit and read platform messages",
		Subcommands: []*cli.Command{
			sendHumanCommand(),
			sendBotCommand(),
			submitCommand(),
			messagesListCommand(),
			messagesGetCommand(),
			messagesByAgentCommand(),
		},
	}
}

// --- send-human ---

type sendHumanParams struct {
	clientParams
	cli.JSONOutput
	Username      string `flag:"username,u" desc:"platform user submitting the message"`
	AgentName     string `flag:"agent" desc:"agent the message is addressed to"`
	AgentPlatform string `flag:"platform" desc:"agent platform (e.g. web, slack)"`
	AgentVersion  string `flag:"agent-version" desc:"agent version"`
	Email         string `flag:"email" desc:"user email, links the user record on first reference"`
	Intent        string `flag:"intent" desc:"classified intent"`
	Mode          string `flag:"mode" desc:"submission mode"`
	Metadata      string `flag:"metadata" desc:"user metadata as inline JSON or @file"`
}

func sendHumanCommand() *cli.Command {
	var params sendHumanParams

	return &cli.Command{
		Name:    "send-human",
		Summary: "Submit a human-authored message",
		Description: `Submit a human-authored message. The message text is the positional
argument; sender role and message type are set automatically. The
response carries the stored message ID plus the contextual prompt for
answering it.`,
		Usage: "shiftai messages send-human --username USER --agent AGENT --platform PLATFORM <message>",
		Examples: []cli.Example{
			{
				Description: "Submit a user question",
				Command:     "shiftai messages send-human -u alice --agent support --platform web 'where is my order?'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("send-human", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one message argument, got %d", len(args))
			}

			metadata, err := parseMetadata(params.Metadata)
			if err != nil {
				return err
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			response, err := client.Messages.SendHumanMessage(context.Background(), shiftai.HumanMessage{
				Username:      params.Username,
				Message:       args[0],
				AgentName:     params.AgentName,
				AgentPlatform: params.AgentPlatform,
				AgentVersion:  params.AgentVersion,
				UserEmail:     params.Email,
				UserMetadata:  metadata,
				Intent:        params.Intent,
				Mode:          params.Mode,
			})
			if err != nil {
				return err
			}
			return cli.WriteJSON(response)
		},
	}
}

// --- send-bot ---

type sendBotParams struct {
	clientParams
	cli.JSONOutput
	Username      string `flag:"username,u" desc:"platform user the reply is addressed to"`
	AgentName     string `flag:"agent" desc:"agent authoring the reply"`
	AgentPlatform string `flag:"platform" desc:"agent platform (e.g. web, slack)"`
	AgentVersion  string `flag:"agent-version" desc:"agent version"`
	ReplyTo       string `flag:"reply-to" desc:"ID of the human message being answered"`
	RAGContext    string `flag:"rag-context" desc:"retrieval context that informed the reply"`
	Mode          string `flag:"mode" desc:"submission mode"`
}

func sendBotCommand() *cli.Command {
	var params sendBotParams

	return &cli.Command{
		Name:    "send-bot",
		Summary: "Submit an agent-authored reply",
		Description: `Submit an agent-authored reply to a human message. --reply-to and
--rag-context are required: a bot message always answers a specific
human message and always declares its source material.`,
		Usage: "shiftai messages send-bot --username USER --agent AGENT --platform PLATFORM --reply-to ID --rag-context TEXT <message>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("send-bot", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one message argument, got %d", len(args))
			}

			replyID, err := parseUUIDArg("--reply-to", params.ReplyTo)
			if err != nil {
				return err
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			response, err := client.Messages.SendBotMessage(context.Background(), shiftai.BotMessage{
				Username:       params.Username,
				Message:        args[0],
				AgentName:      params.AgentName,
				AgentPlatform:  params.AgentPlatform,
				AgentVersion:   params.AgentVersion,
				ReplyMessageID: replyID,
				RAGContext:     params.RAGContext,
				Mode:           params.Mode,
			})
			if err != nil {
				return err
			}
			return cli.WriteJSON(response)
		},
	}
}

// --- submit ---

type submitParams struct {
	clientParams
	File string `flag:"file,f" desc:"submission request file (JSON or JSONC)"`
}

func submitCommand() *cli.Command {
	var params submitParams

	return &cli.Command{
		Name:    "submit",
		Summary: "Submit a raw submission request from a file",
		Description: `Submit a fully-formed submission request verbatim from a file. No
fields are injected; the file owns the sender role and message type.
This is the escape hatch for payloads the typed flags do not cover.`,
		Usage: "shiftai messages submit --file payload.jsonc",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("submit", &params)
		},
		Run: func(args []string) error {
			if params.File == "" {
				return fmt.Errorf("--file is required")
			}

			request, err := loadSubmission(params.File)
			if err != nil {
				return err
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			response, err := client.Messages.Submit(context.Background(), *request)
			if err != nil {
				return err
			}
			return cli.WriteJSON(response)
		},
	}
}

// --- list / get / by-agent ---

type messagesListParams struct {
	clientParams
	cli.JSONOutput
}

func messagesListCommand() *cli.Command {
	var params messagesListParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all messages in the project",
		Usage:   "shiftai messages list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			messages, err := client.Messages.List(context.Background())
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(messages); done {
				return err
			}
			return writeMessageTable(messages)
		},
	}
}

func messagesGetCommand() *cli.Command {
	var params messagesListParams

	return &cli.Command{
		Name:    "get",
		Summary: "Show one message by ID",
		Usage:   "shiftai messages get <message-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one message ID, got %d args", len(args))
			}
			messageID, err := parseUUIDArg("message ID", args[0])
			if err != nil {
				return err
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			message, err := client.Messages.Get(context.Background(), messageID)
			if err != nil {
				return err
			}
			return cli.WriteJSON(message)
		},
	}
}

func messagesByAgentCommand() *cli.Command {
	var params messagesListParams

	return &cli.Command{
		Name:    "by-agent",
		Summary: "List messages attributed to one agent",
		Usage:   "shiftai messages by-agent <agent-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("by-agent", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one agent ID, got %d args", len(args))
			}
			agentID, err := parseUUIDArg("agent ID", args[0])
			if err != nil {
				return err
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			messages, err := client.Messages.ListByAgent(context.Background(), agentID)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(messages); done {
				return err
			}
			return writeMessageTable(messages)
		},
	}
}

// writeMessageTable renders messages as an aligned text table.
func writeMessageTable(messages []shiftai.Message) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tSENDER\tAGENT\tTIMESTAMP\tMESSAGE")
	for _, message := range messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			message.ID,
			stringOr(message.Sender, "-"),
			stringOr(message.AgentName, "-"),
			timestampOr(message.Timestamp, "-"),
			truncate(stringOr(message.Message, ""), 60),
		)
	}
	return tw.Flush()
}

// parseUUIDArg parses a UUID argument, naming it in the error.
func parseUUIDArg(name, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return id, nil
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func timestampOr(value *shiftai.Timestamp, fallback string) string {
	if value == nil {
		return fallback
	}
	return value.UTC().Format("2006-01-02 15:04:05")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
