// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
)

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:    "users",
		Summary: "Manage platform end users",
		Subcommands: []*cli.Command{
			usersCreateCommand(),
		},
	}
}

type usersCreateParams struct {
	clientParams
	Email    string `flag:"email,e" desc:"user email"`
	Metadata string `flag:"metadata" desc:"user metadata as inline JSON or @file"`
}

func usersCreateCommand() *cli.Command {
	var params usersCreateParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a platform user",
		Description: `Create a platform user. Users are also created implicitly when a
message references an unknown username; explicit creation is only
needed when the user should exist before any message does.`,
		Usage: "shiftai users create --email EMAIL <username>",
		Examples: []cli.Example{
			{
				Description: "Create a user",
				Command:     "shiftai users create -e alice@example.com alice",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one username, got %d args", len(args))
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

			user, err := client.Users.Create(context.Background(), args[0], params.Email, metadata)
			if err != nil {
				return err
			}
			return cli.WriteJSON(user)
		},
	}
}
