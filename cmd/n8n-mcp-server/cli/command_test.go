// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "n8n-mcp-server",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "tools",
				Run: func(args []string) error {
					called = "tools"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"tools"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "tools" {
		t.Errorf("dispatched to %q, want %q", called, "tools")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "n8n-mcp-server",
		Subcommands: []*Command{
			{
				Name: "tools",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(args []string) error {
							called = "tools list"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"tools", "list", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "tools list" {
		t.Errorf("dispatched to %q, want %q", called, "tools list")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var configPath string
	var target string

	command := &Command{
		Name: "invoke",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("invoke", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "/default.yaml", "config path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--config", "/custom.yaml", "list-workflows"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "/custom.yaml" {
		t.Errorf("configPath = %q, want %q", configPath, "/custom.yaml")
	}
	if target != "list-workflows" {
		t.Errorf("target = %q, want %q", target, "list-workflows")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "serve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.String("log-level", "info", "minimum log level")
			flagSet.String("config", "", "config path")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--log-levl"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --log-level") {
		t.Errorf("error = %q, want suggestion for '--log-level'", errStr)
	}
	// Suggestion should be on the same line as the error, not buried.
	if !strings.Contains(errStr, "log-levl") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	// Should include a pointer to --help.
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "serve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.String("config", "", "config path")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "n8n-mcp-server",
		Subcommands: []*Command{
			{Name: "serve"},
			{Name: "tools"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"tols"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"tools\"") {
		t.Errorf("error = %q, want suggestion for 'tools'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "n8n-mcp-server",
		Subcommands: []*Command{
			{Name: "serve"},
			{Name: "tools"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "n8n-mcp-server",
				Summary: "MCP gateway for n8n instances",
				Subcommands: []*Command{
					{Name: "serve", Summary: "Run the MCP server on stdio"},
				},
			}

			err := root.Execute([]string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "n8n-mcp-server",
		Subcommands: []*Command{
			{Name: "serve", Summary: "Run the MCP server on stdio"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "n8n-mcp-server",
		Description: "MCP gateway exposing the n8n admin REST API to tool-calling agents.",
		Subcommands: []*Command{
			{Name: "serve", Summary: "Run the MCP server on stdio"},
			{Name: "tools", Summary: "List the operation catalog"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Serve with a seeded default session",
				Command:     "N8N_API_URL=https://n8n.example.com N8N_API_KEY=... n8n-mcp-server serve",
			},
			{
				Description: "Inspect the catalog as JSON",
				Command:     "n8n-mcp-server tools --json",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"MCP gateway exposing the n8n admin REST API to tool-calling agents.",
		"Usage:",
		"n8n-mcp-server <command> [flags]",
		"Commands:",
		"serve",
		"Run the MCP server on stdio",
		"tools",
		"List the operation catalog",
		"Examples:",
		"n8n-mcp-server tools --json",
		"Run 'n8n-mcp-server <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "serve",
		Summary: "Run the MCP server on stdio",
		Usage:   "n8n-mcp-server serve [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flagSet.String("config", "", "YAML config path")
			flagSet.String("log-level", "info", "minimum log level")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"n8n-mcp-server serve [flags]",
		"Flags:",
		"config",
		"log-level",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "n8n-mcp-server"}
	tools := &Command{Name: "tools", parent: root}
	list := &Command{Name: "list", parent: tools}

	if got := root.fullName(); got != "n8n-mcp-server" {
		t.Errorf("root.fullName() = %q, want %q", got, "n8n-mcp-server")
	}
	if got := tools.fullName(); got != "n8n-mcp-server tools" {
		t.Errorf("tools.fullName() = %q, want %q", got, "n8n-mcp-server tools")
	}
	if got := list.fullName(); got != "n8n-mcp-server tools list" {
		t.Errorf("list.fullName() = %q, want %q", got, "n8n-mcp-server tools list")
	}
}
