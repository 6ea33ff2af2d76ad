// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

// Package cli provides the command framework for the shiftai command-line
// tool: a nested command tree with structured help, tag-driven flag binding
// over pflag, JSON output support, and typo suggestions for unknown
// commands and flags.
package cli
