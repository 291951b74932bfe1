// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the n8n-mcp-server command tree: the MCP
// server itself (serve) plus the operator-facing helpers around it
// (tools, invoke, doctor, version).
package commands

import (
	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/mcp"
)

// Root builds and returns the complete command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "n8n-mcp-server",
		Description: `n8n-mcp-server: MCP gateway to the n8n workflow-automation API.

Exposes n8n's administrative REST API (workflows, projects, users,
variables, executions, tags, security audit) as Model Context
Protocol tools for tool-calling LLM clients.`,
		Subcommands: []*cli.Command{
			mcp.ServeCommand(),
			toolsCommand(),
			invokeCommand(),
			doctorCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Run the MCP server with a default session from the environment",
				Command:     "N8N_API_URL=https://n8n.example.com N8N_API_KEY=... n8n-mcp-server serve",
			},
			{
				Description: "List the operations the server exposes",
				Command:     "n8n-mcp-server tools",
			},
			{
				Description: "Check that the configured backend is reachable",
				Command:     "n8n-mcp-server doctor",
			},
			{
				Description: "Dispatch one operation from the shell",
				Command:     `n8n-mcp-server invoke list-workflows --args '{sessionId: "..."}'`,
			},
		},
	}
}
