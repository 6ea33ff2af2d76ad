// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
)

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:    "session",
		Summary: "Control conversation sessions explicitly",
		Description: `Control conversation sessions. Without explicit control, sessions
open implicitly on first message and close by server-side inactivity
timeout.`,
		Subcommands: []*cli.Command{
			sessionInitiateCommand(),
			sessionEndCommand(),
		},
	}
}

type sessionInitiateParams struct {
	clientParams
	Body string `flag:"body" desc:"request body as inline JSON or @file (default empty)"`
}

func sessionInitiateCommand() *cli.Command {
	var params sessionInitiateParams

	return &cli.Command{
		Name:    "initiate",
		Summary: "Open a new conversation session",
		Usage:   "shiftai session initiate [--body JSON]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("initiate", &params)
		},
		Run: func(args []string) error {
			var body map[string]any
			if params.Body != "" {
				metadata, err := parseMetadata(params.Body)
				if err != nil {
					return err
				}
				body = metadata
			}

			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.PlatformSession.Initiate(context.Background(), body)
			if err != nil {
				return err
			}
			return cli.WriteJSON(result)
		},
	}
}

type sessionEndParams struct {
	clientParams
}

func sessionEndCommand() *cli.Command {
	var params sessionEndParams

	return &cli.Command{
		Name:    "end",
		Summary: "End an active conversation session",
		Usage:   "shiftai session end <conversation-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("end", &params)
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

			response, err := client.PlatformSession.EndConversation(context.Background(), conversationID)
			if err != nil {
				return err
			}
			return cli.WriteJSON(response)
		},
	}
}
