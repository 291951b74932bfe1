// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"encoding/json"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type listWorkflowsParams struct {
	SessionParams
}

// workflowIDParams serves every operation addressing one workflow by id.
type workflowIDParams struct {
	SessionParams
	WorkflowID string `json:"workflowId" desc:"workflow identifier" required:"true"`
}

type createWorkflowParams struct {
	SessionParams
	Name        string            `json:"name" desc:"workflow name" required:"true"`
	Nodes       []json.RawMessage `json:"nodes" desc:"workflow nodes in n8n's node format; defaults to an empty list"`
	Connections json.RawMessage   `json:"connections" desc:"node connection graph keyed by source node name; defaults to an empty object"`
	Settings    json.RawMessage   `json:"settings" desc:"workflow settings object; defaults to an empty object"`
}

type updateWorkflowParams struct {
	SessionParams
	WorkflowID  string            `json:"workflowId" desc:"workflow identifier" required:"true"`
	Name        string            `json:"name" desc:"workflow name" required:"true"`
	Nodes       []json.RawMessage `json:"nodes" desc:"workflow nodes in n8n's node format; defaults to an empty list"`
	Connections json.RawMessage   `json:"connections" desc:"node connection graph keyed by source node name; defaults to an empty object"`
	Settings    json.RawMessage   `json:"settings" desc:"workflow settings object; defaults to an empty object"`
}

// rawOrEmptyObject substitutes an empty JSON object for an absent
// field. A nil RawMessage would marshal as null, which the backend
// rejects.
func rawOrEmptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`)
	}
	return raw
}

func workflowDefinition(name string, nodes []json.RawMessage, connections, settings json.RawMessage) *n8n.WorkflowDefinition {
	if nodes == nil {
		nodes = []json.RawMessage{}
	}
	return &n8n.WorkflowDefinition{
		Name:        name,
		Nodes:       nodes,
		Connections: rawOrEmptyObject(connections),
		Settings:    rawOrEmptyObject(settings),
	}
}

func workflowOperations() []Operation {
	return []Operation{
		{
			Name:    "list-workflows",
			Summary: "List all workflows",
			Description: "Returns every workflow on the instance with its id, name, " +
				"activation state, and tags. Node definitions are included; large " +
				"instances return a cursor for the next page.",
			Params:      func() any { return &listWorkflowsParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				return client.ListWorkflows(ctx)
			},
		},
		{
			Name:    "get-workflow",
			Summary: "Get one workflow by id",
			Description: "Returns the full definition of a single workflow, including " +
				"its nodes, connection graph, and settings.",
			Params:      func() any { return &workflowIDParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*workflowIDParams)
				return client.GetWorkflow(ctx, p.WorkflowID)
			},
		},
		{
			Name:    "create-workflow",
			Summary: "Create a new workflow",
			Description: "Creates a workflow from a name and an optional node graph. " +
				"New workflows are created inactive; use activate-workflow to turn " +
				"one on once it is ready.",
			Params:      func() any { return &createWorkflowParams{} },
			Session:     true,
			Confirm:     "Workflow created.",
			Annotations: Create(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*createWorkflowParams)
				return client.CreateWorkflow(ctx, workflowDefinition(p.Name, p.Nodes, p.Connections, p.Settings))
			},
		},
		{
			Name:    "update-workflow",
			Summary: "Replace a workflow's definition",
			Description: "Replaces the entire definition of an existing workflow. " +
				"This is a wholesale update: fields left out are reset to their " +
				"defaults, not preserved. Fetch the current definition with " +
				"get-workflow first if you only want to change part of it.",
			Params:      func() any { return &updateWorkflowParams{} },
			Session:     true,
			Confirm:     "Workflow updated.",
			Annotations: Idempotent(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*updateWorkflowParams)
				return client.UpdateWorkflow(ctx, p.WorkflowID, workflowDefinition(p.Name, p.Nodes, p.Connections, p.Settings))
			},
		},
		{
			Name:    "delete-workflow",
			Summary: "Delete a workflow",
			Description: "Permanently deletes a workflow. Its past executions remain " +
				"until deleted separately.",
			Params:      func() any { return &workflowIDParams{} },
			Session:     true,
			Confirm:     "Workflow deleted.",
			Annotations: Destructive(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*workflowIDParams)
				return client.DeleteWorkflow(ctx, p.WorkflowID)
			},
		},
		{
			Name:    "activate-workflow",
			Summary: "Activate a workflow",
			Description: "Turns a workflow on so its triggers start firing. Activating " +
				"an already active workflow is harmless.",
			Params:      func() any { return &workflowIDParams{} },
			Session:     true,
			Confirm:     "Workflow activated.",
			Annotations: Idempotent(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*workflowIDParams)
				return client.ActivateWorkflow(ctx, p.WorkflowID)
			},
		},
		{
			Name:    "deactivate-workflow",
			Summary: "Deactivate a workflow",
			Description: "Turns a workflow off so its triggers stop firing. Running " +
				"executions are not interrupted.",
			Params:      func() any { return &workflowIDParams{} },
			Session:     true,
			Confirm:     "Workflow deactivated.",
			Annotations: Idempotent(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*workflowIDParams)
				return client.DeactivateWorkflow(ctx, p.WorkflowID)
			},
		},
	}
}
