// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the n8n-mcp-server
// binary.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in the commands
// package and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Beyond command plumbing, the package carries [ParamsSchema] and
// [Schema]: reflection-based JSON Schema generation from parameter
// structs. The MCP server uses it to advertise operation input schemas
// over tools/list, and [BindFlags] binds command flags from the same
// struct definitions so a parameter struct needs declaring only once.
package cli
