// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/gateway"
)

type toolsParams struct {
	cli.JSONOutput
}

// toolListing is the JSON form of one catalog entry, as printed by
// "tools --json". It mirrors what tools/list advertises over MCP.
type toolListing struct {
	Name        string      `json:"name"`
	Summary     string      `json:"summary"`
	Description string      `json:"description"`
	Mutating    bool        `json:"mutating"`
	InputSchema *cli.Schema `json:"inputSchema"`
}

func toolsCommand() *cli.Command {
	var params toolsParams
	return &cli.Command{
		Name:    "tools",
		Summary: "Print the operation catalog",
		Description: `Print the operations the MCP server exposes, in the order they are
advertised over tools/list. With --json, the full machine-readable
catalog is dumped, including each operation's input schema.`,
		Usage: "n8n-mcp-server tools [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tools", &params)
		},
		Run: func(args []string) error {
			return runTools(&params)
		},
	}
}

func runTools(params *toolsParams) error {
	catalog := gateway.Catalog()

	if params.OutputJSON {
		listings := make([]toolListing, 0, len(catalog))
		for _, op := range catalog {
			schema, err := cli.ParamsSchema(op.Params())
			if err != nil {
				return fmt.Errorf("schema for %s: %w", op.Name, err)
			}
			listings = append(listings, toolListing{
				Name:        op.Name,
				Summary:     op.Summary,
				Description: op.Description,
				Mutating:    op.Confirm != "",
				InputSchema: schema,
			})
		}
		return cli.WriteJSON(listings)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	for _, op := range catalog {
		fmt.Fprintf(tw, "%s\t%s\n", op.Name, op.Summary)
	}
	return tw.Flush()
}
