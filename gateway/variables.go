// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type listVariablesParams struct {
	SessionParams
}

type createVariableParams struct {
	SessionParams
	Key   string `json:"key" desc:"variable key" required:"true"`
	Value string `json:"value" desc:"variable value" required:"true"`
}

type deleteVariableParams struct {
	SessionParams
	VariableID string `json:"variableId" desc:"variable identifier" required:"true"`
}

// Variable operations require an n8n Enterprise license with the
// variables feature.
func variableOperations() []Operation {
	return []Operation{
		{
			Name:    "list-variables",
			Summary: "List all variables",
			Description: "Returns every environment variable defined on the instance. " +
				"Requires an n8n Enterprise license with the variables feature " +
				"enabled.",
			Params:      func() any { return &listVariablesParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				return client.ListVariables(ctx)
			},
		},
		{
			Name:    "create-variable",
			Summary: "Create a variable",
			Description: "Creates an environment variable with the given key and " +
				"value. Requires an n8n Enterprise license with the variables " +
				"feature enabled.",
			Params:      func() any { return &createVariableParams{} },
			Session:     true,
			Confirm:     "Variable created.",
			Annotations: Create(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*createVariableParams)
				return nil, client.CreateVariable(ctx, p.Key, p.Value)
			},
		},
		{
			Name:    "delete-variable",
			Summary: "Delete a variable",
			Description: "Permanently deletes an environment variable. Requires an " +
				"n8n Enterprise license with the variables feature enabled.",
			Params:      func() any { return &deleteVariableParams{} },
			Session:     true,
			Confirm:     "Variable deleted.",
			Annotations: Destructive(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*deleteVariableParams)
				return nil, client.DeleteVariable(ctx, p.VariableID)
			},
		},
	}
}
