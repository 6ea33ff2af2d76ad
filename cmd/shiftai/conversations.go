// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
	"github.com/shiftaitop/shiftai-go/shiftai"
)

func conversationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "conversations",
		Summary: "Inspect conversations",
		Subcommands: []*cli.Command{
			conversationsListCommand(),
			conversationsMessagesCommand(),
			conversationsByUserCommand(),
		},
	}
}

type conversationsListParams struct {
	clientParams
	cli.JSONOutput
}

func conversationsListCommand() *cli.Command {
	var params conversationsListParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all conversations in the project",
		Usage:   "shiftai conversations list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			conversations, err := client.Conversations.List(context.Background())
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(conversations); done {
				return err
			}
			return writeConversationTable(conversations)
		},
	}
}

func conversationsMessagesCommand() *cli.Command {
	var params conversationsListParams

	return &cli.Command{
		Name:    "messages",
		Summary: "Show the messages of one conversation",
		Usage:   "shiftai conversations messages <conversation-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("messages", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one conversation ID, got %d args", len(args))
			}
			conversationID, err := parseUUIDArg("conversation ID", args[0])
			if err != nil {
				return err
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			messages, err := client.Conversations.Messages(context.Background(), conversationID)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(messages); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "TIMESTAMP\tSENDER\tMESSAGE")
			for _, message := range messages {
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					timestampOr(message.Timestamp, "-"),
					stringOr(message.Sender, "-"),
					truncate(stringOr(message.Message, ""), 80),
				)
			}
			return tw.Flush()
		},
	}
}

func conversationsByUserCommand() *cli.Command {
	var params conversationsListParams

	return &cli.Command{
		Name:    "by-user",
		Summary: "List conversations a user participated in",
		Usage:   "shiftai conversations by-user <username>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("by-user", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one username, got %d args", len(args))
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			conversations, err := client.Conversations.ListByUser(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(conversations); done {
				return err
			}
			return writeConversationTable(conversations)
		},
	}
}

func writeConversationTable(conversations []shiftai.ConversationSummary) error {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tAGENT\tSTARTED\tENDED\tTITLE")
	for _, conversation := range conversations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			conversation.ConversationID,
			stringOr(conversation.Username, "-"),
			stringOr(conversation.AgentName, "-"),
			timestampOr(conversation.StartedAt, "-"),
			timestampOr(conversation.EndedAt, "active"),
			truncate(stringOr(conversation.ConversationTitle, ""), 40),
		)
	}
	return tw.Flush()
}
