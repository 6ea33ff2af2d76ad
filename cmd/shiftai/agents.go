// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
)

func agentsCommand() *cli.Command {
	return &cli.Command{
		Name:    "agents",
		Summary: "Manage registered AI agents",
		Subcommands: []*cli.Command{
			agentsCreateCommand(),
		},
	}
}

type agentsCreateParams struct {
	clientParams
	Platform string `flag:"platform,p" desc:"agent platform (e.g. web, slack)"`
	Version  string `flag:"version" desc:"agent version"`
	Metadata string `flag:"metadata" desc:"agent metadata as inline JSON or @file"`
}

func agentsCreateCommand() *cli.Command {
	var params agentsCreateParams

	return &cli.Command{
		Name:    "create",
		Summary: "Register an agent",
		Description: `Register an agent. Agents are also created implicitly on first
message reference; explicit creation is only needed when the agent
should exist before any message does.`,
		Usage: "shiftai agents create --platform PLATFORM <name>",
		Examples: []cli.Example{
			{
				Description: "Register an agent",
				Command:     "shiftai agents create -p web support",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one agent name, got %d args", len(args))
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

			agent, err := client.Agents.Create(context.Background(), args[0], params.Platform, params.Version, metadata)
			if err != nil {
				return err
			}
			return cli.WriteJSON(agent)
		},
	}
}
