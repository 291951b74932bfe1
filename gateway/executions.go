// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type listExecutionsParams struct {
	SessionParams
	Status      string `json:"status" desc:"filter by execution status" enum:"error,success,waiting"`
	WorkflowID  string `json:"workflowId" desc:"filter by workflow identifier"`
	ProjectID   string `json:"projectId" desc:"filter by project identifier"`
	IncludeData bool   `json:"includeData" desc:"include full execution data in each result"`
	Limit       int    `json:"limit" desc:"maximum number of results (backend caps at 250)"`
}

type getExecutionParams struct {
	SessionParams
	ExecutionID int64 `json:"executionId" desc:"numeric execution identifier" required:"true"`
	IncludeData bool  `json:"includeData" desc:"include full execution data"`
}

type deleteExecutionParams struct {
	SessionParams
	ExecutionID int64 `json:"executionId" desc:"numeric execution identifier" required:"true"`
}

// Execution records are read and deleted only. Running, stopping, or
// retrying workflows is out of scope for this server.
func executionOperations() []Operation {
	return []Operation{
		{
			Name:    "list-executions",
			Summary: "List workflow executions",
			Description: "Returns past workflow executions, optionally filtered by " +
				"status, workflow, or project. Execution data is omitted unless " +
				"includeData is set; large instances return a cursor for the next " +
				"page.",
			Params:      func() any { return &listExecutionsParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*listExecutionsParams)
				return client.ListExecutions(ctx, &n8n.ExecutionListOptions{
					Status:      p.Status,
					WorkflowID:  p.WorkflowID,
					ProjectID:   p.ProjectID,
					IncludeData: p.IncludeData,
					Limit:       p.Limit,
				})
			},
		},
		{
			Name:    "get-execution",
			Summary: "Get one execution by id",
			Description: "Returns a single execution record. Set includeData to get " +
				"the full node-by-node run data.",
			Params:      func() any { return &getExecutionParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*getExecutionParams)
				return client.GetExecution(ctx, p.ExecutionID, p.IncludeData)
			},
		},
		{
			Name:    "delete-execution",
			Summary: "Delete an execution record",
			Description: "Permanently deletes one execution record. The workflow " +
				"itself is unaffected.",
			Params:      func() any { return &deleteExecutionParams{} },
			Session:     true,
			Confirm:     "Execution deleted.",
			Annotations: Destructive(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*deleteExecutionParams)
				return client.DeleteExecution(ctx, p.ExecutionID)
			},
		},
	}
}
