// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli/doctor"
	"github.com/illuminaresolutions/n8n-mcp-server/gateway"
	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type doctorParams struct {
	Config string `flag:"config" desc:"path to a YAML config file"`
	cli.JSONOutput
}

func doctorCommand() *cli.Command {
	var params doctorParams
	return &cli.Command{
		Name:    "doctor",
		Summary: "Check configuration and backend reachability",
		Description: `Run the health checks an operator needs before wiring the server
into an agent: the config file parses, the credential resolves, the
backend URL is well-formed, and the instance answers the same probe
the connect operation uses. Exits non-zero when any check fails.`,
		Usage: "n8n-mcp-server doctor [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the environment-configured backend",
				Command:     "N8N_API_URL=https://n8n.example.com N8N_API_KEY=... n8n-mcp-server doctor",
			},
			{
				Description: "Check a config file, machine-readable",
				Command:     "n8n-mcp-server doctor --config /etc/n8n-mcp-server.yaml --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("doctor", &params)
		},
		Run: func(args []string) error {
			return runDoctor(&params)
		},
	}
}

func runDoctor(params *doctorParams) error {
	results := doctorChecks(context.Background(), params.Config)

	if params.OutputJSON {
		if err := cli.WriteJSON(doctor.BuildReport(results)); err != nil {
			return err
		}
	} else {
		doctor.PrintChecklist(os.Stdout, results)
	}

	if !doctor.Healthy(results) {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// doctorChecks runs the checks in dependency order: each later check
// is skipped when an earlier one leaves it nothing to work with.
func doctorChecks(ctx context.Context, configPath string) []doctor.Result {
	var results []doctor.Result

	backend := gateway.BackendFromEnvironment()
	if configPath == "" {
		results = append(results, doctor.Pass("config", "no config file, using environment"))
	} else {
		config, err := gateway.LoadConfig(configPath)
		if err != nil {
			results = append(results, doctor.FailWithHint("config", err.Error(),
				"check the path and YAML syntax"))
			return results
		}
		if err := config.Validate(); err != nil {
			results = append(results, doctor.FailWithHint("config", err.Error(),
				"fix the config file before serving"))
			return results
		}
		results = append(results, doctor.Pass("config", fmt.Sprintf("loaded from %s", configPath)))
		if config.Backend != nil {
			backend = config.Backend
		}
	}

	if backend == nil {
		results = append(results,
			doctor.Warn("backend", fmt.Sprintf("no backend configured (set %s and %s, or add a backend block)",
				gateway.EnvBackendURL, gateway.EnvBackendKey)),
			doctor.Skip("credential", "no backend to check"),
			doctor.Skip("probe", "no backend to check"))
		return results
	}
	results = append(results, doctor.Pass("backend", backend.URL))

	key, err := backend.APIKey.Source.Read()
	if err != nil {
		results = append(results,
			doctor.FailWithHint("credential", err.Error(),
				"check the environment variable or credential file"),
			doctor.Skip("probe", "no credential to probe with"))
		return results
	}

	client, err := n8n.NewClient(n8n.ClientConfig{BaseURL: backend.URL, APIKey: key})
	if err != nil {
		key.Close()
		results = append(results,
			doctor.FailWithHint("probe", err.Error(), "fix the backend URL"))
		return results
	}
	defer client.Close()

	if err := client.Probe(ctx); err != nil {
		results = append(results, doctor.FailWithHint("probe", err.Error(),
			"verify the instance is running and the API key is valid"))
		return results
	}
	results = append(results, doctor.Pass("probe", "backend reachable, API key accepted"))

	return results
}
