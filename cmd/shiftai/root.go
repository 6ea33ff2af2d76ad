// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/shiftaitop/shiftai-go/cmd/shiftai/cli"
)

// rootCommand assembles the full command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "shiftai",
		Summary: "Command-line client for the ShiftAI backend",
		Description: `shiftai is a command-line client for the ShiftAI conversational-AI
backend. It covers project registration, message submission, user and
agent management, analytics, and conversation inspection.

Configuration is read from the file named by SHIFTAI_CONFIG or --config;
run 'shiftai configure' to create one.`,
		Subcommands: []*cli.Command{
			registerCommand(),
			configureCommand(),
			messagesCommand(),
			usersCommand(),
			agentsCommand(),
			analyticsCommand(),
			conversationsCommand(),
			sessionCommand(),
			evalCommand(),
		},
	}
}
