// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/mcp"
)

type invokeParams struct {
	Args     string `flag:"args" desc:"argument bag as inline JSON (JSONC accepted)"`
	ArgsFile string `flag:"args-file" desc:"path to a file holding the argument bag"`
	Config   string `flag:"config" desc:"path to a YAML config file"`
	LogLevel string `flag:"log-level" desc:"minimum log level: debug, info, warn, error"`
}

func invokeCommand() *cli.Command {
	var params invokeParams
	return &cli.Command{
		Name:    "invoke",
		Summary: "Dispatch one operation from the shell",
		Description: `Dispatch a single operation through the same gateway the MCP server
uses, for debugging outside an agent. The argument bag is parsed
leniently (comments and trailing commas are fine), since humans
author it by hand.

When a default backend is configured (environment or config file),
a session is established first and its id can be omitted from the
argument bag by passing the printed session id explicitly. The
envelope text is printed to stdout; a failed operation exits 1.`,
		Usage: "n8n-mcp-server invoke <operation> [flags]",
		Examples: []cli.Example{
			{
				Description: "Connect and note the session id",
				Command:     `n8n-mcp-server invoke connect --args '{url: "https://n8n.example.com", apiKey: "..."}'`,
			},
			{
				Description: "List workflows with an argument file",
				Command:     "n8n-mcp-server invoke list-workflows --args-file args.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("invoke", &params)
		},
		Run: func(args []string) error {
			return runInvoke(&params, args)
		},
	}
}

func runInvoke(params *invokeParams, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("invoke takes exactly one operation name (run 'n8n-mcp-server tools' for the list)")
	}
	name := args[0]

	arguments, err := argumentBag(params)
	if err != nil {
		return err
	}

	ctx := context.Background()
	gw, logger, err := mcp.BuildGateway(ctx, params.Config, params.LogLevel)
	if err != nil {
		return err
	}

	envelope := gw.Dispatch(ctx, name, arguments)
	if envelope.IsError {
		logger.Debug("operation failed", "operation", name, "category", string(envelope.Category))
		fmt.Fprintln(os.Stderr, envelope.Text)
		return &cli.ExitError{Code: 1}
	}
	fmt.Println(envelope.Text)
	return nil
}

// argumentBag resolves the raw argument JSON from --args or
// --args-file. Both forms accept JSONC; an absent bag means no
// arguments, which the gateway treats as an empty object.
func argumentBag(params *invokeParams) (json.RawMessage, error) {
	if params.Args != "" && params.ArgsFile != "" {
		return nil, fmt.Errorf("--args and --args-file are mutually exclusive")
	}

	var source []byte
	switch {
	case params.Args != "":
		source = []byte(params.Args)
	case params.ArgsFile != "":
		data, err := os.ReadFile(params.ArgsFile)
		if err != nil {
			return nil, fmt.Errorf("reading argument file: %w", err)
		}
		source = data
	default:
		return nil, nil
	}

	normalized := jsonc.ToJSON(source)
	if !json.Valid(normalized) {
		return nil, fmt.Errorf("argument bag is not valid JSON")
	}
	return normalized, nil
}
