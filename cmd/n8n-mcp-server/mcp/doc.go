// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package mcp implements the Model Context Protocol server that
// exposes the gateway's operation catalog as MCP tools over
// newline-delimited JSON-RPC 2.0 on stdin/stdout.
//
// Tool descriptions are built once at startup from
// [gateway.Gateway.Operations]: each operation becomes a tool whose
// inputSchema is reflected from its parameter struct via
// [cli.ParamsSchema], and whose annotations (read-only, destructive,
// idempotent) come from the operation descriptor. tools/call forwards
// the name and raw argument bag to [gateway.Gateway.Dispatch] and
// wraps the resulting envelope in a single text content block with an
// isError flag and structured errorInfo metadata.
//
// stdout carries only protocol frames; all logging goes to stderr.
// This package implements the 2025-11-25 MCP protocol revision.
package mcp
