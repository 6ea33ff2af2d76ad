// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

// The shiftai command is a CLI for the ShiftAI conversational-AI backend:
// project registration, message submission, analytics, and conversation
// inspection, built on the shiftai client package.
package main

import (
	"fmt"
	"os"

	"github.com/shiftaitop/shiftai-go/shiftai"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError with
		// the desired code. Don't print a redundant "error:" line for those.
		if _, ok := err.(interface{ ExitCode() int }); !ok {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

// exitCode maps a command error to the process exit code. An ExitError
// carries its own code; validation errors (bad arguments, caught before any
// network call) exit 2; API and other failures exit 1.
func exitCode(err error) int {
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	if shiftai.IsValidation(err) {
		return 2
	}
	return 1
}
