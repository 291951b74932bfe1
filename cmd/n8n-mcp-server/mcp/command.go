// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/gateway"
)

type serveParams struct {
	Config   string `flag:"config" desc:"path to a YAML config file"`
	LogLevel string `flag:"log-level" desc:"minimum log level: debug, info, warn, error"`
}

// ServeCommand returns the "serve" command: the MCP server on stdio.
func ServeCommand() *cli.Command {
	var params serveParams
	return &cli.Command{
		Name:    "serve",
		Summary: "Run the MCP server on stdin/stdout",
		Description: `Run the Model Context Protocol server: JSON-RPC 2.0 requests are
read from stdin, responses are written to stdout, and logs go to
stderr. This command is intended to be launched by MCP-capable
clients (agent frameworks, editors) as a subprocess.

When both N8N_API_URL and N8N_API_KEY are set — or a config file
names a backend — a default session is established at startup, so
the client can call operations without an explicit connect. A
failed startup probe is a warning, not a fatal error: the client
can still connect explicitly.`,
		Usage: "n8n-mcp-server serve [flags]",
		Examples: []cli.Example{
			{
				Description: "Serve with a backend seeded from the environment",
				Command:     "N8N_API_URL=https://n8n.example.com N8N_API_KEY=... n8n-mcp-server serve",
			},
			{
				Description: "Serve with a config file",
				Command:     "n8n-mcp-server serve --config /etc/n8n-mcp-server.yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("serve", &params)
		},
		Run: func(args []string) error {
			return runServe(&params)
		},
	}
}

func runServe(params *serveParams) error {
	ctx := context.Background()

	gw, logger, err := BuildGateway(ctx, params.Config, params.LogLevel)
	if err != nil {
		return err
	}

	server, err := NewServer(gw, logger)
	if err != nil {
		return err
	}

	logger.Info("mcp server listening on stdio")
	return server.Serve(ctx)
}

// BuildGateway assembles the full dispatch stack from a config file
// path and a log-level override: logger, registry, gateway, and the
// optional default session. Shared by serve and the one-shot invoke
// command so both resolve configuration identically.
//
// The default session comes from the config file's backend block, or
// from N8N_API_URL/N8N_API_KEY when no config file names one. A failed
// seed probe logs a warning and leaves the registry empty.
func BuildGateway(ctx context.Context, configPath, logLevel string) (*gateway.Gateway, *slog.Logger, error) {
	var config *gateway.Config
	if configPath != "" {
		loaded, err := gateway.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		config = loaded
	}

	// Flag wins over config file; default is info.
	levelSource := logLevel
	if levelSource == "" && config != nil {
		levelSource = config.LogLevel
	}
	level, err := cli.ParseLogLevel(levelSource)
	if err != nil {
		return nil, nil, err
	}
	logger := cli.NewCommandLoggerLevel(level)

	gw := gateway.New(gateway.NewRegistry(), logger)

	backend := gateway.BackendFromEnvironment()
	if config != nil && config.Backend != nil {
		backend = config.Backend
	}
	if backend != nil {
		if id, err := gw.SeedSession(ctx, backend); err != nil {
			logger.Warn("default session not established", "url", backend.URL, "error", err)
		} else {
			logger.Info("default session established", "url", backend.URL, "session_id", id)
		}
	}

	return gw, logger, nil
}
