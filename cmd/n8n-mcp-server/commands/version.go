// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/lib/version"
)

type versionParams struct {
	Short bool `flag:"short" desc:"print only the version number"`
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "n8n-mcp-server version [--short|--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if params.OutputJSON {
				return cli.WriteJSON(map[string]string{
					"version":   version.Version,
					"gitCommit": version.GitCommit,
					"gitDirty":  version.GitDirty,
					"buildTime": version.BuildTime,
				})
			}
			if params.Short {
				fmt.Println(version.Short())
				return nil
			}
			fmt.Printf("n8n-mcp-server %s\n", version.Full())
			return nil
		},
	}
}
