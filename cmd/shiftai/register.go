// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
)

type registerParams struct {
	clientParams
	cli.JSONOutput
	Metadata string `flag:"metadata" desc:"project metadata as inline JSON or @file"`
}

func registerCommand() *cli.Command {
	var params registerParams

	return &cli.Command{
		Name:    "register",
		Summary: "Register a new project and obtain its API key",
		Description: `Register a new project (tenant) with the backend. Registration takes
no API key; the response contains the key for all subsequent calls.

The key is printed once. Store it with 'shiftai configure' or in your
config file; it cannot be retrieved again.`,
		Usage: "shiftai register <project-name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Register a project",
				Command:     "shiftai register support-bot",
			},
			{
				Description: "Register with metadata",
				Command:     `shiftai register support-bot --metadata '{"team":"cx"}'`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("register", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one project name, got %d args", len(args))
			}
			projectName := args[0]

			metadata, err := parseMetadata(params.Metadata)
			if err != nil {
				return err
			}

			client, err := params.connectUnauthenticated()
			if err != nil {
				return err
			}
			defer client.Close()

			registration, err := client.Platform.Register(context.Background(), projectName, metadata)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(registration); done {
				return err
			}

			fmt.Printf("project %q registered\n", projectName)
			if registration.TenantID != nil {
				fmt.Printf("tenant:  %s\n", *registration.TenantID)
			}
			fmt.Printf("api key: %s\n", registration.APIKey)
			fmt.Println("\nStore the key with 'shiftai configure' - it is shown only once.")
			return nil
		},
	}
}
