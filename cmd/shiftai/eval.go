// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
)

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:    "eval",
		Summary: "Trigger evaluation-metric generation",
		Subcommands: []*cli.Command{
			evalGenerateCommand(),
			evalGenerateAllCommand(),
			evalProgressCommand(),
		},
	}
}

type evalParams struct {
	clientParams
}

func evalGenerateCommand() *cli.Command {
	var params evalParams

	return &cli.Command{
		Name:    "generate",
		Summary: "Generate metrics for one completed conversation",
		Usage:   "shiftai eval generate <conversation-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("generate", &params)
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

			result, err := client.Eval.GenerateSessionMetrics(context.Background(), conversationID)
			if err != nil {
				return err
			}
			return cli.WriteJSON(result)
		},
	}
}

func evalGenerateAllCommand() *cli.Command {
	var params evalParams

	return &cli.Command{
		Name:    "generate-all",
		Summary: "Generate metrics for every completed session in the project",
		Usage:   "shiftai eval generate-all",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("generate-all", &params)
		},
		Run: func(args []string) error {
			client, err := params.connect()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Eval.GenerateAllSessionMetrics(context.Background())
			if err != nil {
				return err
			}
			return cli.WriteJSON(result)
		},
	}
}

func evalProgressCommand() *cli.Command {
	var params evalParams

	return &cli.Command{
		Name:    "progress",
		Summary: "Show the progress of a batch metrics job",
		Usage:   "shiftai eval progress <job-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("progress", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one job ID, got %d args", len(args))
			}

			client, err := params.connectUnauthenticated()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Eval.BatchProgress(context.Background(), args[0])
			if err != nil {
				return err
			}
			return cli.WriteJSON(result)
		},
	}
}
